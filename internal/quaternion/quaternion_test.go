package quaternion_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quatex/internal/quaternion"
)

func TestReduce_NonNegative(t *testing.T) {
	for _, m := range []int64{1, 2, 7, 13, 101} {
		for a := int64(-250); a <= 250; a++ {
			r := quaternion.Reduce(a, m)
			require.GreaterOrEqual(t, r, int64(0))
			require.Less(t, r, m)
			require.Zero(t, (a-r)%m, "reduce(%d, %d) = %d is not congruent", a, m, r)
		}
	}
}

func TestMultiply_Unreduced(t *testing.T) {
	a := quaternion.New(1, 2, 3, 4)
	b := quaternion.New(5, 6, 7, 8)
	assert.Equal(t, quaternion.New(-60, 12, 30, 24), quaternion.Multiply(a, b))
	assert.Equal(t, quaternion.New(-60, 20, 14, 32), quaternion.Multiply(b, a))
	assert.Equal(t, int64(30), quaternion.NormSquared(a))
	assert.Equal(t, quaternion.New(1, -2, -3, -4), quaternion.Conjugate(a))
	assert.Equal(t, quaternion.New(6, 8, 10, 12), quaternion.Add(a, b))
}

func TestRing_HamiltonNonCommutative(t *testing.T) {
	for _, m := range []int64{3, 5, 13, 101, 7919} {
		r := quaternion.MustRing(m)
		ij := r.Multiply(quaternion.I, quaternion.J)
		ji := r.Multiply(quaternion.J, quaternion.I)
		require.Equal(t, quaternion.K, ij, "m=%d", m)
		require.Equal(t, quaternion.New(0, 0, 0, m-1), ji, "m=%d", m)
		require.NotEqual(t, ij, ji)
	}

	r := quaternion.MustRing(101)
	a := quaternion.New(1, 2, 3, 4)
	b := quaternion.New(5, 6, 7, 8)
	assert.Equal(t, quaternion.New(41, 12, 30, 24), r.Multiply(a, b))
	assert.Equal(t, quaternion.New(41, 20, 14, 32), r.Multiply(b, a))
}

func TestRing_AddCommutativeAssociative(t *testing.T) {
	r := quaternion.MustRing(13)
	s := quaternion.NewSeededSampler([]byte("add-laws"))
	for i := 0; i < 200; i++ {
		a, b, c := r.Random(s), r.Random(s), r.Random(s)
		require.Equal(t, r.Add(a, b), r.Add(b, a))
		require.Equal(t, r.Add(r.Add(a, b), c), r.Add(a, r.Add(b, c)))
		require.True(t, r.Contains(r.Add(a, b)))
	}
}

func TestRing_ReducesNegativeInputs(t *testing.T) {
	r := quaternion.MustRing(13)
	q := quaternion.New(-1, -14, 27, 0)
	assert.Equal(t, quaternion.New(12, 12, 1, 0), r.ReduceQ(q))
	assert.Equal(t, quaternion.New(12, 1, 12, 0), r.Conjugate(q))
	assert.True(t, r.Contains(r.Multiply(q, q)))
}

func TestRing_InvertKnownValue(t *testing.T) {
	r := quaternion.MustRing(101)
	q := quaternion.New(1, 2, 3, 4)
	inv, ok := r.Invert(q)
	require.True(t, ok)
	assert.Equal(t, quaternion.New(64, 74, 10, 47), inv)
	assert.Equal(t, quaternion.Identity, r.Multiply(q, inv))
	assert.Equal(t, quaternion.Identity, r.Multiply(inv, q))
}

func TestRing_InvertPrimeModulus(t *testing.T) {
	for _, m := range []int64{2, 3, 13, 101, 65537} {
		r := quaternion.MustRing(m)
		s := quaternion.NewSeededSampler([]byte{byte(m), byte(m >> 8)})
		for i := 0; i < 300; i++ {
			q := r.Random(s)
			inv, ok := r.Invert(q)
			if r.NormSquared(q) == 0 {
				require.False(t, ok)
				require.Equal(t, quaternion.Zero, inv)
				continue
			}
			require.True(t, ok, "q=%v m=%d", q, m)
			require.Equal(t, quaternion.Identity, r.Multiply(q, inv), "q=%v m=%d", q, m)
			require.Equal(t, quaternion.Identity, r.Multiply(inv, q), "q=%v m=%d", q, m)
		}
	}
}

func TestRing_InvertAbsent(t *testing.T) {
	for _, m := range []int64{1, 2, 13, 15, 101} {
		_, ok := quaternion.MustRing(m).Invert(quaternion.Zero)
		assert.False(t, ok, "zero must not invert mod %d", m)
	}

	// Nonzero but N(q) = 13 ≡ 0.
	_, ok := quaternion.MustRing(13).Invert(quaternion.New(2, 3, 0, 0))
	assert.False(t, ok)

	// N(q) = 3 shares a factor with 15.
	_, ok = quaternion.MustRing(15).Invert(quaternion.New(1, 1, 1, 0))
	assert.False(t, ok)

	// N(q) = 2 is a unit mod 15.
	inv, ok := quaternion.MustRing(15).Invert(quaternion.New(1, 1, 0, 0))
	require.True(t, ok)
	assert.Equal(t, quaternion.Identity, quaternion.MustRing(15).Multiply(quaternion.New(1, 1, 0, 0), inv))
}

func TestModularInverse(t *testing.T) {
	s, err := quaternion.ModularInverse(3, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(5), s)

	s, err = quaternion.ModularInverse(-3, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), s)

	// Negative Bézout coefficient: 2·(-5) + 11·1 = 1.
	s, err = quaternion.ModularInverse(2, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(6), s)

	_, err = quaternion.ModularInverse(6, 9)
	require.ErrorIs(t, err, quaternion.ErrNotInvertible)

	_, err = quaternion.ModularInverse(0, 13)
	require.ErrorIs(t, err, quaternion.ErrNotInvertible)

	_, err = quaternion.ModularInverse(3, 0)
	require.ErrorIs(t, err, quaternion.ErrInvalidModulus)

	for a := int64(1); a < 101; a++ {
		s, err := quaternion.ModularInverse(a, 101)
		require.NoError(t, err)
		require.Equal(t, int64(1), a*s%101)
	}
}

func TestNewRing_RejectsBadModulus(t *testing.T) {
	for _, m := range []int64{0, -5, quaternion.MaxModulus + 1} {
		_, err := quaternion.NewRing(m)
		require.ErrorIs(t, err, quaternion.ErrInvalidModulus)
	}
	r, err := quaternion.NewRing(quaternion.MaxModulus)
	require.NoError(t, err)

	big := quaternion.New(r.Modulus()-1, r.Modulus()-1, r.Modulus()-1, r.Modulus()-1)
	p := r.Multiply(big, big)
	assert.True(t, r.Contains(p))
	assert.Equal(t, quaternion.New(r.Reduce(-2), r.Reduce(2), r.Reduce(2), r.Reduce(2)), p)
}

func TestRing_RandomWithinRange(t *testing.T) {
	r := quaternion.MustRing(7)
	s := quaternion.NewSeededSampler([]byte("range"))
	seen := map[int64]bool{}
	for i := 0; i < 500; i++ {
		q := r.Random(s)
		require.True(t, r.Contains(q))
		seen[q.W] = true
	}
	assert.Len(t, seen, 7)
}

func TestSampler_Deterministic(t *testing.T) {
	r := quaternion.MustRing(1009)
	a := quaternion.NewSeededSampler([]byte("seed"))
	b := quaternion.NewSeededSampler([]byte("seed"))
	c := quaternion.NewSeededSampler([]byte("other"))
	var same, diff bool = true, false
	for i := 0; i < 20; i++ {
		qa, qb, qc := r.Random(a), r.Random(b), r.Random(c)
		same = same && qa == qb
		diff = diff || qa != qc
	}
	assert.True(t, same)
	assert.True(t, diff)

	fresh, err := quaternion.NewSampler()
	require.NoError(t, err)
	assert.Len(t, fresh.Seed(), quaternion.SeedBytes)

	again, err := quaternion.NewSamplerFromHex(fresh.SeedHex())
	require.NoError(t, err)
	assert.Equal(t, r.Random(fresh), r.Random(again))

	_, err = quaternion.NewSamplerFromHex("zz")
	require.ErrorIs(t, err, quaternion.ErrInvalidSeed)
}

func TestFormatParse(t *testing.T) {
	q := quaternion.New(1, -2, 30, 4)
	assert.Equal(t, "[1, -2i, 30j, 4k]", q.String())

	back, err := quaternion.Parse(q.String())
	require.NoError(t, err)
	assert.Equal(t, q, back)

	bare, err := quaternion.Parse(" 5, 6 ,7,8 ")
	require.NoError(t, err)
	assert.Equal(t, quaternion.New(5, 6, 7, 8), bare)

	for _, bad := range []string{"", "[1, 2i, 3j]", "[1, 2i, 3j, xk]", "1,2,3,4,5"} {
		_, err := quaternion.Parse(bad)
		require.ErrorIs(t, err, quaternion.ErrMalformed, "input %q", bad)
	}
}

func TestQuaternion_JSONText(t *testing.T) {
	type wrap struct {
		Q quaternion.Quaternion `json:"q"`
	}
	b, err := json.Marshal(wrap{Q: quaternion.New(1, 2, 3, 4)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"q":"[1, 2i, 3j, 4k]"}`, string(b))

	var w wrap
	require.NoError(t, json.Unmarshal(b, &w))
	assert.Equal(t, quaternion.New(1, 2, 3, 4), w.Q)
}
