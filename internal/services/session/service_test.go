package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quatex/internal/domain"
	"quatex/internal/log"
	"quatex/internal/protocol/conjugation"
	"quatex/internal/quaternion"
	"quatex/internal/services/session"
	"quatex/internal/store"
)

const seed = "000102030405060708090a0b0c0d0e0f"

type fixture struct {
	svc         *session.Service
	sessions    *store.SessionFileStore
	transcripts *store.TranscriptBoltStore
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	home := t.TempDir()
	ts, err := store.OpenTranscriptBoltStore(home)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ts.Close() })

	ss := store.NewSessionFileStore(home)
	logger := log.Discard().GetLogger("session_test")
	return fixture{
		svc:         session.New(ss, ts, logger, 64),
		sessions:    ss,
		transcripts: ts,
	}
}

// seedState stores a ParametersGenerated session built from chosen values.
func (f fixture) seedState(t *testing.T, name domain.SessionName, base, a, b quaternion.Quaternion) {
	t.Helper()
	st := conjugation.NewState(quaternion.MustRing(13), base, a, b)
	require.NoError(t, f.sessions.SaveSession("", domain.Session{Name: name, State: st}))
}

func TestService_FullRun(t *testing.T) {
	f := newFixture(t)

	sess, ev, err := f.svc.Generate("", "demo", 13, seed)
	require.NoError(t, err)
	require.Equal(t, domain.EventGenerated, ev.Kind)
	require.Equal(t, "parameters-generated", ev.Phase)
	require.Equal(t, seed, sess.Seed)
	require.Contains(t, ev.Values, "base")
	require.True(t, quaternion.MustRing(13).IsInvertible(ev.Values["secret_a"]))

	_, ev, err = f.svc.Exchange("", "demo")
	require.NoError(t, err)
	require.Equal(t, domain.EventExchanged, ev.Kind)
	require.Contains(t, ev.Values, "public_a")
	require.Contains(t, ev.Values, "public_b")

	sess, ev, err = f.svc.Derive("", "demo")
	require.NoError(t, err)
	require.Equal(t, domain.EventDerived, ev.Kind)
	require.Equal(t, "shared-values-derived", ev.Phase)
	require.NotNil(t, ev.Agree)
	require.Equal(t, ev.Values["shared_a"] == ev.Values["shared_b"], *ev.Agree)
	require.Equal(t, *ev.Agree, ev.KeyFingerprint != "")

	require.Len(t, sess.History, 3)
	got, err := f.svc.Get("", "demo")
	require.NoError(t, err)
	require.Equal(t, sess, got)
}

func TestService_GenerateDeterministic(t *testing.T) {
	f := newFixture(t)

	one, _, err := f.svc.Generate("", "one", 101, seed)
	require.NoError(t, err)
	two, _, err := f.svc.Generate("", "two", 101, seed)
	require.NoError(t, err)
	require.Equal(t, one.State, two.State)

	fresh, _, err := f.svc.Generate("", "fresh", 101, "")
	require.NoError(t, err)
	require.Len(t, fresh.Seed, 2*quaternion.SeedBytes)
}

func TestService_RegenerateKeepsHistory(t *testing.T) {
	f := newFixture(t)

	first, _, err := f.svc.Generate("", "again", 13, seed)
	require.NoError(t, err)
	_, _, err = f.svc.Exchange("", "again")
	require.NoError(t, err)

	sess, _, err := f.svc.Generate("", "again", 17, "")
	require.NoError(t, err)
	require.Equal(t, first.CreatedUTC, sess.CreatedUTC)
	require.Equal(t, int64(17), sess.State.Modulus)
	require.Nil(t, sess.State.PublicA)
	require.Len(t, sess.History, 3)
}

func TestService_ToySessionDisagrees(t *testing.T) {
	f := newFixture(t)
	f.seedState(t, "toy", quaternion.New(1, 2, 3, 4), quaternion.New(2, 1, 0, 1), quaternion.New(1, 3, 1, 0))

	_, ev, err := f.svc.Exchange("", "toy")
	require.NoError(t, err)
	assert.Equal(t, quaternion.New(1, 5, 4, 1), ev.Values["public_a"])
	assert.Equal(t, quaternion.New(1, 4, 10, 11), ev.Values["public_b"])

	_, ev, err = f.svc.Derive("", "toy")
	require.NoError(t, err)
	assert.Equal(t, quaternion.New(1, 4, 3, 11), ev.Values["shared_a"])
	assert.Equal(t, quaternion.New(1, 10, 2, 4), ev.Values["shared_b"])
	require.False(t, *ev.Agree)
	require.Empty(t, ev.KeyFingerprint)

	spy, err := f.svc.Eavesdrop(context.Background(), "", "toy")
	require.NoError(t, err)
	assert.Equal(t, quaternion.New(1, 2, 9, 10), spy.ForgedA)
	assert.False(t, spy.MatchesA)
}

func TestService_CommutingSecretsAgree(t *testing.T) {
	f := newFixture(t)
	a := quaternion.New(2, 1, 0, 1)
	f.seedState(t, "commute", quaternion.New(1, 2, 3, 4), a, quaternion.MustRing(13).Multiply(a, a))

	_, _, err := f.svc.Exchange("", "commute")
	require.NoError(t, err)
	_, ev, err := f.svc.Derive("", "commute")
	require.NoError(t, err)
	require.True(t, *ev.Agree)
	require.Equal(t, quaternion.New(1, 4, 3, 2), ev.Values["shared_a"])
	require.Len(t, ev.KeyFingerprint.String(), 20)
}

func TestService_RejectedPhasesKeepState(t *testing.T) {
	f := newFixture(t)
	f.seedState(t, "seq", quaternion.New(1, 2, 3, 4), quaternion.New(2, 1, 0, 1), quaternion.New(1, 3, 1, 0))

	_, _, err := f.svc.Derive("", "seq")
	require.ErrorIs(t, err, conjugation.ErrProtocolSequence)

	before, _, err := f.svc.Exchange("", "seq")
	require.NoError(t, err)

	after, ev, err := f.svc.Exchange("", "seq")
	require.ErrorIs(t, err, conjugation.ErrProtocolSequence)
	require.Equal(t, domain.EventRejected, ev.Kind)
	require.Equal(t, before.State, after.State)
	require.Len(t, after.History, 3)
}

func TestService_NonInvertibleSecret(t *testing.T) {
	f := newFixture(t)
	f.seedState(t, "bad", quaternion.New(1, 2, 3, 4), quaternion.New(2, 3, 0, 0), quaternion.New(1, 3, 1, 0))

	sess, ev, err := f.svc.Exchange("", "bad")
	require.ErrorIs(t, err, conjugation.ErrNonInvertibleSecret)

	var nie *conjugation.NonInvertibleSecretError
	require.ErrorAs(t, err, &nie)
	require.Equal(t, conjugation.PartyA, nie.Party)
	require.Equal(t, domain.EventRejected, ev.Kind)
	require.Nil(t, sess.State.PublicA)
}

func TestService_Errors(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.svc.Exchange("", "ghost")
	require.ErrorIs(t, err, session.ErrSessionNotFound)

	_, _, err = f.svc.Generate("", "zero", 0, "")
	require.ErrorIs(t, err, quaternion.ErrInvalidModulus)

	_, _, err = f.svc.Generate("", "hex", 13, "not-hex")
	require.Error(t, err)

	_, err = f.svc.Eavesdrop(context.Background(), "", "ghost")
	require.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestService_SealedSession(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.svc.Generate("pw", "locked", 13, seed)
	require.NoError(t, err)

	_, err = f.svc.Get("nope", "locked")
	require.ErrorIs(t, err, store.ErrWrongPassphrase)

	_, _, err = f.svc.Exchange("pw", "locked")
	require.NoError(t, err)

	list, err := f.svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.True(t, list[0].Sealed)
	require.Equal(t, "public-values-exchanged", list[0].Phase)
}

func TestService_DeleteDropsTranscript(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.svc.Generate("", "gone", 13, seed)
	require.NoError(t, err)
	require.NoError(t, f.transcripts.AppendTurns("gone", domain.Turn{Role: domain.RoleUser, Text: "hello"}))

	require.NoError(t, f.svc.Delete("gone"))

	_, err = f.svc.Get("", "gone")
	require.ErrorIs(t, err, session.ErrSessionNotFound)
	tr, err := f.transcripts.LoadTranscript("gone")
	require.NoError(t, err)
	require.Empty(t, tr.Turns)
}

func TestSimulate(t *testing.T) {
	a, err := session.Simulate(13, seed, 64)
	require.NoError(t, err)
	require.Equal(t, seed, a.Seed)
	require.Equal(t, conjugation.PhaseSharedValuesDerived, a.State.Phase())
	require.Equal(t, a.Outcome.SharedA == a.Outcome.SharedB, a.Outcome.Agree)

	ring := quaternion.MustRing(13)
	require.Equal(t, conjugation.CommutatorDefect(ring, a.State.SecretA, a.State.SecretB), a.Commutator)

	b, err := session.Simulate(13, seed, 64)
	require.NoError(t, err)
	require.Equal(t, a, b)

	_, err = session.Simulate(-1, seed, 64)
	require.ErrorIs(t, err, quaternion.ErrInvalidModulus)
}
