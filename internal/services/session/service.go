package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gopkg.in/op/go-logging.v1"

	"quatex/internal/crypto"
	"quatex/internal/domain"
	"quatex/internal/protocol/conjugation"
	"quatex/internal/quaternion"
	"quatex/internal/util/memzero"
)

// ErrSessionNotFound is returned when no session with the given name exists.
var ErrSessionNotFound = errors.New("session not found")

// Service runs protocol phases against stored sessions.
//
// This service handles:
//   - Sampling parameters from a reproducible seed (Generate).
//   - Publishing the conjugated base for both parties (Exchange).
//   - Deriving and comparing the shared values (Derive).
//   - Replaying the exchange as a passive observer (Eavesdrop).
//
// Rejected phases are recorded in the history but never change the
// protocol state.
type Service struct {
	sessions    domain.SessionStore
	transcripts domain.TranscriptStore
	log         *logging.Logger

	maxAttempts int
	now         func() time.Time
}

// New constructs a session Service. transcripts may be nil, in which case
// Delete leaves assistant conversations alone.
func New(
	sessions domain.SessionStore,
	transcripts domain.TranscriptStore,
	log *logging.Logger,
	maxAttempts int,
) *Service {
	return &Service{
		sessions:    sessions,
		transcripts: transcripts,
		log:         log,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

// Generate samples fresh parameters for name in Z/modulus Z. An empty
// seedHex draws a fresh seed, which is recorded so the run can be replayed.
//
// Regenerating an existing session discards its public and shared values but
// keeps its history.
func (s *Service) Generate(
	passphrase string,
	name domain.SessionName,
	modulus int64,
	seedHex string,
) (domain.Session, domain.Event, error) {
	ring, err := quaternion.NewRing(modulus)
	if err != nil {
		return domain.Session{}, domain.Event{}, err
	}
	sampler, err := quaternion.NewSamplerFromHex(seedHex)
	if err != nil {
		return domain.Session{}, domain.Event{}, err
	}

	sess, found, err := s.sessions.LoadSession(passphrase, name)
	if err != nil {
		return domain.Session{}, domain.Event{}, fmt.Errorf("load session %q: %w", name, err)
	}

	st, err := conjugation.GenerateParameters(ring, sampler, s.maxAttempts)
	if err != nil {
		return domain.Session{}, domain.Event{}, fmt.Errorf("generate parameters: %w", err)
	}

	at := s.now().UTC().Unix()
	if !found {
		sess = domain.Session{Name: name, CreatedUTC: at}
	}
	sess.Seed = sampler.SeedHex()
	sess.State = st
	sess.UpdatedUTC = at

	ev := domain.Event{
		Kind:  domain.EventGenerated,
		Phase: st.Phase().String(),
		AtUTC: at,
		Values: map[string]quaternion.Quaternion{
			"base":     st.Base,
			"secret_a": st.SecretA,
			"secret_b": st.SecretB,
		},
	}
	sess.History = append(sess.History, ev)

	if err := s.sessions.SaveSession(passphrase, sess); err != nil {
		return domain.Session{}, domain.Event{}, err
	}
	s.log.Infof("%s: generated parameters mod %d (seed %s)", name, modulus, sess.Seed)
	return sess, ev, nil
}

// Exchange publishes A·G·A⁻¹ and B·G·B⁻¹ for name.
//
// A non-invertible secret or an out-of-sequence call is returned as the
// typed conjugation error together with a rejected Event.
func (s *Service) Exchange(passphrase string, name domain.SessionName) (domain.Session, domain.Event, error) {
	sess, err := s.load(passphrase, name)
	if err != nil {
		return domain.Session{}, domain.Event{}, err
	}

	st, err := conjugation.ExchangePublicValues(sess.State)
	if err != nil {
		return s.reject(passphrase, sess, err)
	}

	at := s.now().UTC().Unix()
	ev := domain.Event{
		Kind:  domain.EventExchanged,
		Phase: st.Phase().String(),
		AtUTC: at,
		Values: map[string]quaternion.Quaternion{
			"public_a": *st.PublicA,
			"public_b": *st.PublicB,
		},
	}
	sess.State = st
	sess.UpdatedUTC = at
	sess.History = append(sess.History, ev)

	if err := s.sessions.SaveSession(passphrase, sess); err != nil {
		return domain.Session{}, domain.Event{}, err
	}
	s.log.Infof("%s: exchanged public values", name)
	return sess, ev, nil
}

// Derive computes both shared values for name and records whether they
// agree. When they do, the Event carries the fingerprint of the session key
// the parties would use.
func (s *Service) Derive(passphrase string, name domain.SessionName) (domain.Session, domain.Event, error) {
	sess, err := s.load(passphrase, name)
	if err != nil {
		return domain.Session{}, domain.Event{}, err
	}

	st, out, err := conjugation.DeriveSharedValues(sess.State)
	if err != nil {
		return s.reject(passphrase, sess, err)
	}

	at := s.now().UTC().Unix()
	ev := domain.Event{
		Kind:  domain.EventDerived,
		Phase: st.Phase().String(),
		AtUTC: at,
		Values: map[string]quaternion.Quaternion{
			"shared_a": out.SharedA,
			"shared_b": out.SharedB,
		},
		Agree: &out.Agree,
	}
	if out.Agree {
		fp, err := keyFingerprint(st.Modulus, out.SharedA)
		if err != nil {
			return domain.Session{}, domain.Event{}, err
		}
		ev.KeyFingerprint = fp
	}
	sess.State = st
	sess.UpdatedUTC = at
	sess.History = append(sess.History, ev)

	if err := s.sessions.SaveSession(passphrase, sess); err != nil {
		return domain.Session{}, domain.Event{}, err
	}
	if out.Agree {
		s.log.Noticef("%s: shared values agree", name)
	} else {
		s.log.Infof("%s: shared values disagree", name)
	}
	return sess, ev, nil
}

// Get loads the session called name.
func (s *Service) Get(passphrase string, name domain.SessionName) (domain.Session, error) {
	return s.load(passphrase, name)
}

// List returns summaries of every stored session.
func (s *Service) List() ([]domain.Summary, error) {
	return s.sessions.ListSessions()
}

// Delete removes the session and its assistant transcript.
func (s *Service) Delete(name domain.SessionName) error {
	if err := s.sessions.DeleteSession(name); err != nil {
		return err
	}
	if s.transcripts != nil {
		if err := s.transcripts.DeleteTranscript(name); err != nil {
			return err
		}
	}
	s.log.Infof("%s: deleted", name)
	return nil
}

// Eavesdrop plays a passive observer of name: it recovers a conjugator for
// each public value by exhaustive search and replays the derivation with
// them. Only toy moduli are searchable.
func (s *Service) Eavesdrop(ctx context.Context, passphrase string, name domain.SessionName) (conjugation.Eavesdrop, error) {
	sess, err := s.load(passphrase, name)
	if err != nil {
		return conjugation.Eavesdrop{}, err
	}
	s.log.Debugf("%s: searching conjugators mod %d", name, sess.State.Modulus)
	return conjugation.EavesdropSession(ctx, sess.State)
}

func (s *Service) load(passphrase string, name domain.SessionName) (domain.Session, error) {
	sess, found, err := s.sessions.LoadSession(passphrase, name)
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session %q: %w", name, err)
	}
	if !found {
		return domain.Session{}, fmt.Errorf("%w: %q", ErrSessionNotFound, name)
	}
	return sess, nil
}

// reject records cause in the history, leaving the protocol state as it was,
// and returns cause to the caller.
func (s *Service) reject(passphrase string, sess domain.Session, cause error) (domain.Session, domain.Event, error) {
	at := s.now().UTC().Unix()
	ev := domain.Event{
		Kind:  domain.EventRejected,
		Phase: sess.State.Phase().String(),
		AtUTC: at,
		Error: cause.Error(),
	}
	sess.UpdatedUTC = at
	sess.History = append(sess.History, ev)
	if err := s.sessions.SaveSession(passphrase, sess); err != nil {
		return domain.Session{}, domain.Event{}, errors.Join(cause, err)
	}
	s.log.Warningf("%s: %v", sess.Name, cause)
	return sess, ev, cause
}

func keyFingerprint(modulus int64, shared quaternion.Quaternion) (domain.Fingerprint, error) {
	ring, err := quaternion.NewRing(modulus)
	if err != nil {
		return "", err
	}
	key, err := crypto.DeriveSessionKey(ring, shared)
	if err != nil {
		return "", err
	}
	defer memzero.Zero(key)
	return crypto.Fingerprint(key), nil
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)
