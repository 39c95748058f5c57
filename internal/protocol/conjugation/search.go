package conjugation

import (
	"context"
	"fmt"

	"quatex/internal/quaternion"
)

// MaxSearchModulus bounds SolveConjugacy; the search visits m⁴ candidates.
const MaxSearchModulus = 31

// SolveConjugacy finds an invertible S with S·g·S⁻¹ = t by trying every
// quaternion in the ring. It only works for toy moduli and exists to show how
// small parameters leak the Conjugacy Search Problem.
func SolveConjugacy(ctx context.Context, ring quaternion.Ring, g, t quaternion.Quaternion) (quaternion.Quaternion, error) {
	m := ring.Modulus()
	if m > MaxSearchModulus {
		return quaternion.Zero, fmt.Errorf("%w: %d > %d", ErrModulusTooLarge, m, MaxSearchModulus)
	}
	g, t = ring.ReduceQ(g), ring.ReduceQ(t)

	for w := int64(0); w < m; w++ {
		if err := ctx.Err(); err != nil {
			return quaternion.Zero, err
		}
		for x := int64(0); x < m; x++ {
			for y := int64(0); y < m; y++ {
				for z := int64(0); z < m; z++ {
					s := quaternion.New(w, x, y, z)
					c, ok := ring.Conjugation(s, g)
					if ok && c == t {
						return s, nil
					}
				}
			}
		}
	}
	return quaternion.Zero, ErrNoConjugator
}

// Eavesdrop is what a passive observer learns from an exchanged session.
type Eavesdrop struct {
	// ConjugatorA satisfies ConjugatorA·G·ConjugatorA⁻¹ = publicA.
	ConjugatorA quaternion.Quaternion `json:"conjugator_a"`
	// ConjugatorB satisfies ConjugatorB·G·ConjugatorB⁻¹ = publicB.
	ConjugatorB quaternion.Quaternion `json:"conjugator_b"`

	// ForgedA is ConjugatorA·publicB·ConjugatorA⁻¹, the observer's guess
	// at sharedA; likewise ForgedB.
	ForgedA quaternion.Quaternion `json:"forged_a"`
	ForgedB quaternion.Quaternion `json:"forged_b"`

	// MatchesA and MatchesB are set once the session has derived values.
	MatchesA bool `json:"matches_a"`
	MatchesB bool `json:"matches_b"`
}

// EavesdropSession recovers conjugators for both public values of st and
// replays the derivation with them.
func EavesdropSession(ctx context.Context, st State) (Eavesdrop, error) {
	if st.Phase() < PhasePublicValuesExchanged {
		return Eavesdrop{}, &SequenceError{Op: "eavesdrop", Have: st.Phase(), Want: PhasePublicValuesExchanged}
	}
	ring, err := quaternion.NewRing(st.Modulus)
	if err != nil {
		return Eavesdrop{}, err
	}

	publicA, okA := st.Public(PartyA)
	publicB, okB := st.Public(PartyB)
	if !okA || !okB {
		return Eavesdrop{}, &SequenceError{Op: "eavesdrop", Have: st.Phase(), Want: PhasePublicValuesExchanged}
	}

	var ev Eavesdrop
	if ev.ConjugatorA, err = SolveConjugacy(ctx, ring, st.Base, publicA); err != nil {
		return Eavesdrop{}, fmt.Errorf("public %s: %w", PartyA, err)
	}
	if ev.ConjugatorB, err = SolveConjugacy(ctx, ring, st.Base, publicB); err != nil {
		return Eavesdrop{}, fmt.Errorf("public %s: %w", PartyB, err)
	}

	// Both conjugators are invertible by construction.
	ev.ForgedA, _ = ring.Conjugation(ev.ConjugatorA, publicB)
	ev.ForgedB, _ = ring.Conjugation(ev.ConjugatorB, publicA)

	if out, ok := st.Outcome(); ok {
		ev.MatchesA = ValuesEqual(ev.ForgedA, out.SharedA)
		ev.MatchesB = ValuesEqual(ev.ForgedB, out.SharedB)
	}
	return ev, nil
}
