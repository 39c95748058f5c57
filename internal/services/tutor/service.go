package tutor

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/op/go-logging.v1"

	"quatex/internal/domain"
)

// Service pairs the assistant with a session and its transcript.
//
// Each question is sent with a system turn describing the session's public
// state, followed by the stored transcript. Secrets are never described.
type Service struct {
	sessions    domain.SessionService
	transcripts domain.TranscriptStore
	assistant   domain.Assistant
	log         *logging.Logger
}

// New constructs a tutor Service.
func New(
	sessions domain.SessionService,
	transcripts domain.TranscriptStore,
	assistant domain.Assistant,
	log *logging.Logger,
) *Service {
	return &Service{
		sessions:    sessions,
		transcripts: transcripts,
		assistant:   assistant,
		log:         log,
	}
}

// Ask sends utterance about session name and records both turns.
//
// When the assistant fails but still produced fallback text, the turns are
// recorded and the text is returned together with the assistant's error.
func (s *Service) Ask(ctx context.Context, passphrase string, name domain.SessionName, utterance string) (string, error) {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return "", fmt.Errorf("empty question")
	}
	sess, err := s.sessions.Get(passphrase, name)
	if err != nil {
		return "", err
	}
	tr, err := s.transcripts.LoadTranscript(name)
	if err != nil {
		return "", err
	}

	history := make([]domain.Turn, 0, len(tr.Turns)+1)
	history = append(history, domain.Turn{Role: domain.RoleSystem, Text: Describe(sess)})
	history = append(history, tr.Turns...)

	answer, askErr := s.assistant.Ask(ctx, history, utterance)
	if answer == "" {
		if askErr == nil {
			askErr = fmt.Errorf("assistant returned no answer")
		}
		return "", askErr
	}

	if err := s.transcripts.AppendTurns(name,
		domain.Turn{Role: domain.RoleUser, Text: utterance},
		domain.Turn{Role: domain.RoleAssistant, Text: answer},
	); err != nil {
		return "", err
	}
	s.log.Debugf("%s: answered question (%d prior turns)", name, len(tr.Turns))
	return answer, askErr
}

// Transcript returns the recorded conversation of name.
func (s *Service) Transcript(name domain.SessionName) (domain.Transcript, error) {
	return s.transcripts.LoadTranscript(name)
}

// Describe renders the public part of sess for the assistant.
func Describe(sess domain.Session) string {
	st := sess.State
	var b strings.Builder
	fmt.Fprintf(&b, "Session %s: modulus %d, phase %s. Base G = %s.", sess.Name, st.Modulus, st.Phase(), st.Base)
	if st.PublicA != nil && st.PublicB != nil {
		fmt.Fprintf(&b, " Public values: A·G·A⁻¹ = %s, B·G·B⁻¹ = %s.", *st.PublicA, *st.PublicB)
	}
	if out, ok := st.Outcome(); ok {
		fmt.Fprintf(&b, " Shared values: A side %s, B side %s, agree=%t.", out.SharedA, out.SharedB, out.Agree)
	}
	return b.String()
}

// Compile-time assertion that Service implements domain.TutorService.
var _ domain.TutorService = (*Service)(nil)
