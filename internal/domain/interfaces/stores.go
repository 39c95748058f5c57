package interfaces

import domaintypes "quatex/internal/domain/types"

// SessionStore persists named simulation sessions. A non-empty passphrase
// seals the record on disk.
type SessionStore interface {
	SaveSession(passphrase string, session domaintypes.Session) error
	LoadSession(passphrase string, name domaintypes.SessionName) (domaintypes.Session, bool, error)
	ListSessions() ([]domaintypes.Summary, error)
	DeleteSession(name domaintypes.SessionName) error
}

// TranscriptStore keeps per-session assistant conversations.
type TranscriptStore interface {
	AppendTurns(name domaintypes.SessionName, turns ...domaintypes.Turn) error
	LoadTranscript(name domaintypes.SessionName) (domaintypes.Transcript, error)
	DeleteTranscript(name domaintypes.SessionName) error
}
