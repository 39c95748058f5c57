// Package domain defines the data models and interfaces shared across quatex.
// It contains plain types (records, events, transcripts) and contracts
// (interfaces) only; the arithmetic lives in internal/quaternion and the
// protocol in internal/protocol/conjugation.
package domain
