package types

import (
	"quatex/internal/protocol/conjugation"
	"quatex/internal/quaternion"
)

// EventKind names the step a session Event records.
type EventKind string

const (
	EventGenerated EventKind = "generated"
	EventExchanged EventKind = "exchanged"
	EventDerived   EventKind = "derived"
	EventRejected  EventKind = "rejected"
)

// Event is the structured outcome of one protocol step. Rendering it as
// text is left to the presentation layer.
type Event struct {
	Kind   EventKind                        `json:"kind"`
	Phase  string                           `json:"phase"`
	AtUTC  int64                            `json:"at_utc"`
	Values map[string]quaternion.Quaternion `json:"values,omitempty"`
	Agree  *bool                            `json:"agree,omitempty"`
	Error  string                           `json:"error,omitempty"`

	// KeyFingerprint identifies the session key derived from an agreed
	// shared value.
	KeyFingerprint Fingerprint `json:"key_fingerprint,omitempty"`
}

// Session is a named, persisted simulation.
type Session struct {
	Name       SessionName       `json:"name"`
	Seed       string            `json:"seed"`
	CreatedUTC int64             `json:"created_utc"`
	UpdatedUTC int64             `json:"updated_utc"`
	State      conjugation.State `json:"state"`
	History    []Event           `json:"history,omitempty"`
}

// Summary is the listing view of a session; it never carries secrets.
type Summary struct {
	Name       SessionName `json:"name"`
	Modulus    int64       `json:"modulus"`
	Phase      string      `json:"phase"`
	Sealed     bool        `json:"sealed"`
	UpdatedUTC int64       `json:"updated_utc"`
}

// Simulation is a complete throwaway session run in memory.
type Simulation struct {
	Seed       string                `json:"seed"`
	State      conjugation.State     `json:"state"`
	Outcome    conjugation.Outcome   `json:"outcome"`
	Commutator quaternion.Quaternion `json:"commutator"`
}
