package conjugation

import (
	"fmt"

	"quatex/internal/quaternion"
)

// GenerateParameters samples a fresh base and two invertible secrets.
//
// Each secret is redrawn until it is invertible. maxAttempts bounds the draws
// per secret; maxAttempts <= 0 draws without bound, which terminates with
// probability 1 for a prime modulus but never for a ring without units.
// The returned State has every derived field absent.
func GenerateParameters(ring quaternion.Ring, s *quaternion.Sampler, maxAttempts int) (State, error) {
	base := ring.Random(s)
	secretA, err := invertibleSecret(ring, s, maxAttempts)
	if err != nil {
		return State{}, fmt.Errorf("secret %s: %w", PartyA, err)
	}
	secretB, err := invertibleSecret(ring, s, maxAttempts)
	if err != nil {
		return State{}, fmt.Errorf("secret %s: %w", PartyB, err)
	}
	return State{
		Modulus: ring.Modulus(),
		Base:    base,
		SecretA: secretA,
		SecretB: secretB,
	}, nil
}

// NewState builds a ParametersGenerated session from chosen values. The
// inputs are reduced into the ring; invertibility is checked at exchange.
func NewState(ring quaternion.Ring, base, secretA, secretB quaternion.Quaternion) State {
	return State{
		Modulus: ring.Modulus(),
		Base:    ring.ReduceQ(base),
		SecretA: ring.ReduceQ(secretA),
		SecretB: ring.ReduceQ(secretB),
	}
}

func invertibleSecret(ring quaternion.Ring, s *quaternion.Sampler, maxAttempts int) (quaternion.Quaternion, error) {
	for attempt := 1; maxAttempts <= 0 || attempt <= maxAttempts; attempt++ {
		q := ring.Random(s)
		if ring.IsInvertible(q) {
			return q, nil
		}
	}
	return quaternion.Zero, fmt.Errorf("%w (%d draws mod %d)", ErrAttemptsExhausted, maxAttempts, ring.Modulus())
}

// ExchangePublicValues computes publicA = A·G·A⁻¹ and publicB = B·G·B⁻¹.
//
// Only valid from PhaseParametersGenerated; a session that already holds a
// public value is rejected rather than overwritten.
func ExchangePublicValues(st State) (State, error) {
	ring, err := st.ring("exchange", PhaseParametersGenerated)
	if err != nil {
		return st, err
	}
	if st.Phase() != PhaseParametersGenerated ||
		st.PublicA != nil || st.PublicB != nil || st.SharedA != nil || st.SharedB != nil {
		return st, &SequenceError{Op: "exchange", Have: st.Phase(), Want: PhaseParametersGenerated}
	}

	var public [2]quaternion.Quaternion
	for i, p := range [2]Party{PartyA, PartyB} {
		v, ok := ring.Conjugation(st.Secret(p), st.Base)
		if !ok {
			return st, &NonInvertibleSecretError{Party: p}
		}
		public[i] = v
	}

	st.PublicA = ptr(public[0])
	st.PublicB = ptr(public[1])
	return st, nil
}

// DeriveSharedValues computes sharedA = A·publicB·A⁻¹ and
// sharedB = B·publicA·B⁻¹ and compares them.
//
// Only valid from PhasePublicValuesExchanged.
func DeriveSharedValues(st State) (State, Outcome, error) {
	ring, err := st.ring("derive", PhasePublicValuesExchanged)
	if err != nil {
		return st, Outcome{}, err
	}
	if st.Phase() != PhasePublicValuesExchanged || st.SharedA != nil || st.SharedB != nil {
		return st, Outcome{}, &SequenceError{Op: "derive", Have: st.Phase(), Want: PhasePublicValuesExchanged}
	}

	sharedA, ok := ring.Conjugation(st.SecretA, *st.PublicB)
	if !ok {
		return st, Outcome{}, &NonInvertibleSecretError{Party: PartyA}
	}
	sharedB, ok := ring.Conjugation(st.SecretB, *st.PublicA)
	if !ok {
		return st, Outcome{}, &NonInvertibleSecretError{Party: PartyB}
	}

	st.SharedA = ptr(sharedA)
	st.SharedB = ptr(sharedB)
	out, _ := st.Outcome()
	return st, out, nil
}

// Run drives a fresh session through all three phases.
func Run(ring quaternion.Ring, s *quaternion.Sampler, maxAttempts int) (State, Outcome, error) {
	st, err := GenerateParameters(ring, s, maxAttempts)
	if err != nil {
		return State{}, Outcome{}, err
	}
	return Complete(st)
}

// Complete runs the exchange and derivation phases on st.
func Complete(st State) (State, Outcome, error) {
	st, err := ExchangePublicValues(st)
	if err != nil {
		return st, Outcome{}, err
	}
	return DeriveSharedValues(st)
}

// CommutatorDefect returns AB − BA mod m, which is zero exactly when the two
// secrets commute.
func CommutatorDefect(ring quaternion.Ring, a, b quaternion.Quaternion) quaternion.Quaternion {
	ab := ring.Multiply(a, b)
	ba := ring.Multiply(b, a)
	return ring.Add(ab, ring.Scale(ba, -1))
}

func (s State) ring(op string, want Phase) (quaternion.Ring, error) {
	if s.Phase() == PhaseUninitialized {
		return quaternion.Ring{}, &SequenceError{Op: op, Have: PhaseUninitialized, Want: want}
	}
	return quaternion.NewRing(s.Modulus)
}
