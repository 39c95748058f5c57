package conjugation

import "quatex/internal/quaternion"

// Party names one side of the exchange.
type Party string

const (
	PartyA Party = "A"
	PartyB Party = "B"
)

// Phase is the position of a session in the protocol.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseParametersGenerated
	PhasePublicValuesExchanged
	PhaseSharedValuesDerived
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseParametersGenerated:
		return "parameters-generated"
	case PhasePublicValuesExchanged:
		return "public-values-exchanged"
	case PhaseSharedValuesDerived:
		return "shared-values-derived"
	default:
		return "unknown"
	}
}

// State is one simulated session. Derived fields are nil until their phase
// has run.
type State struct {
	Modulus int64                 `json:"modulus"`
	Base    quaternion.Quaternion `json:"base"`
	SecretA quaternion.Quaternion `json:"secret_a"`
	SecretB quaternion.Quaternion `json:"secret_b"`

	PublicA *quaternion.Quaternion `json:"public_a,omitempty"`
	PublicB *quaternion.Quaternion `json:"public_b,omitempty"`
	SharedA *quaternion.Quaternion `json:"shared_a,omitempty"`
	SharedB *quaternion.Quaternion `json:"shared_b,omitempty"`
}

// Phase derives the session phase from which fields are present. A phase
// counts only when every earlier phase's fields are present too, so a state
// edited out of order reports the last complete phase.
func (s State) Phase() Phase {
	switch {
	case s.Modulus < 1:
		return PhaseUninitialized
	case s.PublicA == nil || s.PublicB == nil:
		return PhaseParametersGenerated
	case s.SharedA == nil || s.SharedB == nil:
		return PhasePublicValuesExchanged
	default:
		return PhaseSharedValuesDerived
	}
}

// Secret returns the private quaternion of p.
func (s State) Secret(p Party) quaternion.Quaternion {
	if p == PartyB {
		return s.SecretB
	}
	return s.SecretA
}

// Public returns the published value of p, if exchanged.
func (s State) Public(p Party) (quaternion.Quaternion, bool) {
	v := s.PublicA
	if p == PartyB {
		v = s.PublicB
	}
	if v == nil {
		return quaternion.Zero, false
	}
	return *v, true
}

// Outcome is the result of the derivation phase.
type Outcome struct {
	SharedA quaternion.Quaternion `json:"shared_a"`
	SharedB quaternion.Quaternion `json:"shared_b"`
	Agree   bool                  `json:"agree"`
}

// Outcome returns the derivation result once shared values exist.
func (s State) Outcome() (Outcome, bool) {
	if s.Phase() != PhaseSharedValuesDerived {
		return Outcome{}, false
	}
	return Outcome{
		SharedA: *s.SharedA,
		SharedB: *s.SharedB,
		Agree:   ValuesEqual(*s.SharedA, *s.SharedB),
	}, true
}

// ValuesEqual reports componentwise equality.
func ValuesEqual(a, b quaternion.Quaternion) bool {
	return quaternion.Equal(a, b)
}

func ptr(q quaternion.Quaternion) *quaternion.Quaternion { return &q }
