package conjugation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quatex/internal/protocol/conjugation"
	"quatex/internal/quaternion"
)

var (
	toyRing    = quaternion.MustRing(13)
	toyBase    = quaternion.New(1, 2, 3, 4)
	toySecretA = quaternion.New(2, 1, 0, 1)
	toySecretB = quaternion.New(1, 3, 1, 0)
)

func toyState() conjugation.State {
	return conjugation.NewState(toyRing, toyBase, toySecretA, toySecretB)
}

func TestToySession_SharedValuesDisagree(t *testing.T) {
	st := toyState()
	require.Equal(t, conjugation.PhaseParametersGenerated, st.Phase())

	st, err := conjugation.ExchangePublicValues(st)
	require.NoError(t, err)
	require.Equal(t, conjugation.PhasePublicValuesExchanged, st.Phase())
	assert.Equal(t, quaternion.New(1, 5, 4, 1), *st.PublicA)
	assert.Equal(t, quaternion.New(1, 4, 10, 11), *st.PublicB)

	st, out, err := conjugation.DeriveSharedValues(st)
	require.NoError(t, err)
	require.Equal(t, conjugation.PhaseSharedValuesDerived, st.Phase())
	assert.Equal(t, quaternion.New(1, 4, 3, 11), out.SharedA)
	assert.Equal(t, quaternion.New(1, 10, 2, 4), out.SharedB)
	assert.False(t, out.Agree)
	assert.False(t, conjugation.ValuesEqual(out.SharedA, out.SharedB))

	stored, ok := st.Outcome()
	require.True(t, ok)
	assert.Equal(t, out, stored)
}

func TestConjugationPreservesScalarAndNorm(t *testing.T) {
	st, out, err := conjugation.Complete(toyState())
	require.NoError(t, err)
	for _, q := range []quaternion.Quaternion{*st.PublicA, *st.PublicB, out.SharedA, out.SharedB} {
		assert.Equal(t, toyBase.W, q.W)
		assert.Equal(t, toyRing.NormSquared(toyBase), toyRing.NormSquared(q))
		assert.True(t, toyRing.Contains(q))
	}
}

func TestCommutingSecretsAgree(t *testing.T) {
	// A and A² commute, so both sides conjugate by the same product.
	a2 := toyRing.Multiply(toySecretA, toySecretA)
	st := conjugation.NewState(toyRing, toyBase, toySecretA, a2)
	_, out, err := conjugation.Complete(st)
	require.NoError(t, err)
	assert.True(t, out.Agree)
	assert.Equal(t, quaternion.New(1, 4, 3, 2), out.SharedA)

	assert.True(t, conjugation.CommutatorDefect(toyRing, toySecretA, a2).IsZero())
	assert.Equal(t, quaternion.New(0, 11, 6, 2), conjugation.CommutatorDefect(toyRing, toySecretA, toySecretB))
}

func TestExchange_NonInvertibleSecret(t *testing.T) {
	st := conjugation.NewState(toyRing, toyBase, toySecretA, quaternion.New(2, 3, 0, 0))
	got, err := conjugation.ExchangePublicValues(st)
	require.ErrorIs(t, err, conjugation.ErrNonInvertibleSecret)

	var nie *conjugation.NonInvertibleSecretError
	require.True(t, errors.As(err, &nie))
	assert.Equal(t, conjugation.PartyB, nie.Party)
	assert.Nil(t, got.PublicA)
	assert.Nil(t, got.PublicB)

	st = conjugation.NewState(toyRing, toyBase, quaternion.Zero, toySecretB)
	_, err = conjugation.ExchangePublicValues(st)
	require.ErrorIs(t, err, conjugation.ErrNonInvertibleSecret)
	require.True(t, errors.As(err, &nie))
	assert.Equal(t, conjugation.PartyA, nie.Party)
}

func TestSequenceGuards(t *testing.T) {
	_, err := conjugation.ExchangePublicValues(conjugation.State{})
	require.ErrorIs(t, err, conjugation.ErrProtocolSequence)

	_, _, err = conjugation.DeriveSharedValues(toyState())
	require.ErrorIs(t, err, conjugation.ErrProtocolSequence)
	var se *conjugation.SequenceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, conjugation.PhaseParametersGenerated, se.Have)
	assert.Equal(t, conjugation.PhasePublicValuesExchanged, se.Want)

	exchanged, err := conjugation.ExchangePublicValues(toyState())
	require.NoError(t, err)

	// Re-entry is rejected and the recorded public values survive.
	again, err := conjugation.ExchangePublicValues(exchanged)
	require.ErrorIs(t, err, conjugation.ErrProtocolSequence)
	assert.Equal(t, *exchanged.PublicA, *again.PublicA)

	derived, _, err := conjugation.DeriveSharedValues(exchanged)
	require.NoError(t, err)
	_, _, err = conjugation.DeriveSharedValues(derived)
	require.ErrorIs(t, err, conjugation.ErrProtocolSequence)
	_, err = conjugation.ExchangePublicValues(derived)
	require.ErrorIs(t, err, conjugation.ErrProtocolSequence)
}

func TestGenerateParameters_ResetsDerivedFields(t *testing.T) {
	ring := quaternion.MustRing(101)
	s := quaternion.NewSeededSampler([]byte("generate"))
	for i := 0; i < 50; i++ {
		st, err := conjugation.GenerateParameters(ring, s, 0)
		require.NoError(t, err)
		require.Equal(t, conjugation.PhaseParametersGenerated, st.Phase())
		require.Nil(t, st.PublicA)
		require.Nil(t, st.PublicB)
		require.Nil(t, st.SharedA)
		require.Nil(t, st.SharedB)
		require.True(t, ring.IsInvertible(st.SecretA))
		require.True(t, ring.IsInvertible(st.SecretB))
		require.True(t, ring.Contains(st.Base))
	}
}

func TestGenerateParameters_Deterministic(t *testing.T) {
	ring := quaternion.MustRing(101)
	a, err := conjugation.GenerateParameters(ring, quaternion.NewSeededSampler([]byte("x")), 64)
	require.NoError(t, err)
	b, err := conjugation.GenerateParameters(ring, quaternion.NewSeededSampler([]byte("x")), 64)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateParameters_AttemptsExhausted(t *testing.T) {
	// Z/1Z has no units: every norm is 0.
	ring := quaternion.MustRing(1)
	_, err := conjugation.GenerateParameters(ring, quaternion.NewSeededSampler(nil), 8)
	require.ErrorIs(t, err, conjugation.ErrAttemptsExhausted)
}

func TestRun_MostlyDisagrees(t *testing.T) {
	ring := quaternion.MustRing(101)
	s := quaternion.NewSeededSampler([]byte("survey"))
	var agree int
	const trials = 200
	for i := 0; i < trials; i++ {
		st, out, err := conjugation.Run(ring, s, 0)
		require.NoError(t, err)
		require.Equal(t, conjugation.PhaseSharedValuesDerived, st.Phase())
		if out.Agree {
			agree++
		}
	}
	assert.Less(t, agree, trials/10)
}

func TestSolveConjugacy_ToySession(t *testing.T) {
	st, _, err := conjugation.Complete(toyState())
	require.NoError(t, err)

	ctx := context.Background()
	sA, err := conjugation.SolveConjugacy(ctx, toyRing, toyBase, *st.PublicA)
	require.NoError(t, err)
	assert.Equal(t, quaternion.New(0, 1, 1, 10), sA)
	got, ok := toyRing.Conjugation(sA, toyBase)
	require.True(t, ok)
	assert.Equal(t, *st.PublicA, got)

	ev, err := conjugation.EavesdropSession(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, quaternion.New(0, 1, 0, 9), ev.ConjugatorB)
	assert.Equal(t, quaternion.New(1, 2, 9, 10), ev.ForgedA)
	assert.Equal(t, quaternion.New(1, 2, 9, 10), ev.ForgedB)
	assert.False(t, ev.MatchesA)
	assert.False(t, ev.MatchesB)
}

func TestSolveConjugacy_Limits(t *testing.T) {
	_, err := conjugation.SolveConjugacy(context.Background(), quaternion.MustRing(101), toyBase, toyBase)
	require.ErrorIs(t, err, conjugation.ErrModulusTooLarge)

	// Conjugation preserves the norm, so a target with a different norm has
	// no conjugator.
	_, err = conjugation.SolveConjugacy(context.Background(), toyRing, toyBase, quaternion.New(1, 0, 0, 0))
	require.ErrorIs(t, err, conjugation.ErrNoConjugator)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = conjugation.SolveConjugacy(ctx, toyRing, toyBase, toyBase)
	require.ErrorIs(t, err, context.Canceled)

	_, err = conjugation.EavesdropSession(context.Background(), toyState())
	require.ErrorIs(t, err, conjugation.ErrProtocolSequence)
}

// A stored state edited by hand may hold shared values without the public
// values they were derived from.
func TestEditedState_SharedWithoutPublic(t *testing.T) {
	q := quaternion.New(1, 4, 3, 11)
	st := toyState()
	st.SharedA, st.SharedB = &q, &q

	assert.Equal(t, conjugation.PhaseParametersGenerated, st.Phase())
	_, ok := st.Outcome()
	assert.False(t, ok)

	_, err := conjugation.EavesdropSession(context.Background(), st)
	var se *conjugation.SequenceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, conjugation.PhasePublicValuesExchanged, se.Want)

	_, _, err = conjugation.DeriveSharedValues(st)
	require.ErrorIs(t, err, conjugation.ErrProtocolSequence)

	// Stale shared values block the exchange instead of surviving it.
	_, err = conjugation.ExchangePublicValues(st)
	require.ErrorIs(t, err, conjugation.ErrProtocolSequence)

	// One public value is not an exchange either.
	st = toyState()
	st.PublicA = &q
	assert.Equal(t, conjugation.PhaseParametersGenerated, st.Phase())
	_, err = conjugation.EavesdropSession(context.Background(), st)
	require.ErrorIs(t, err, conjugation.ErrProtocolSequence)
}

func TestState_SecretAndPublic(t *testing.T) {
	st := toyState()
	assert.Equal(t, toySecretA, st.Secret(conjugation.PartyA))
	assert.Equal(t, toySecretB, st.Secret(conjugation.PartyB))
	_, ok := st.Public(conjugation.PartyA)
	assert.False(t, ok)

	st, err := conjugation.ExchangePublicValues(st)
	require.NoError(t, err)
	pb, ok := st.Public(conjugation.PartyB)
	require.True(t, ok)
	assert.Equal(t, quaternion.New(1, 4, 10, 11), pb)
}
