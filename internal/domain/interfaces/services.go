package interfaces

import (
	"context"

	domaintypes "quatex/internal/domain/types"
	"quatex/internal/protocol/conjugation"
)

// SessionService drives the protocol phases over stored sessions.
type SessionService interface {
	Generate(
		passphrase string,
		name domaintypes.SessionName,
		modulus int64,
		seedHex string,
	) (domaintypes.Session, domaintypes.Event, error)
	Exchange(passphrase string, name domaintypes.SessionName) (domaintypes.Session, domaintypes.Event, error)
	Derive(passphrase string, name domaintypes.SessionName) (domaintypes.Session, domaintypes.Event, error)
	Get(passphrase string, name domaintypes.SessionName) (domaintypes.Session, error)
	List() ([]domaintypes.Summary, error)
	Delete(name domaintypes.SessionName) error
	Eavesdrop(ctx context.Context, passphrase string, name domaintypes.SessionName) (conjugation.Eavesdrop, error)
}

// SurveyService runs many independent sessions and tallies agreement.
type SurveyService interface {
	Survey(ctx context.Context, modulus int64, trials int, seedHex string) (domaintypes.SurveyReport, error)
}

// TutorService answers questions about a session and records the
// conversation.
type TutorService interface {
	Ask(ctx context.Context, passphrase string, name domaintypes.SessionName, utterance string) (string, error)
	Transcript(name domaintypes.SessionName) (domaintypes.Transcript, error)
}
