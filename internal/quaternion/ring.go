package quaternion

import (
	"errors"
	"fmt"
)

// MaxModulus bounds the modulus so every Hamilton product term of reduced
// components fits in an int64 (|term sum| < 4·m²).
const MaxModulus int64 = 1 << 30

var (
	// ErrInvalidModulus is returned for a modulus outside [1, MaxModulus].
	ErrInvalidModulus = fmt.Errorf("modulus must be in [1, %d]", MaxModulus)

	// ErrNotInvertible is returned when gcd(a, m) != 1.
	ErrNotInvertible = errors.New("value has no inverse modulo m")
)

// Ring is the finite ring (Z/mZ)^4 with the Hamilton product.
//
// Every method reduces its inputs first and returns components in [0, m).
// The zero Ring is not usable; construct one with NewRing.
type Ring struct {
	m int64
}

// NewRing returns the ring of quaternions modulo m.
func NewRing(m int64) (Ring, error) {
	if m < 1 || m > MaxModulus {
		return Ring{}, fmt.Errorf("%w: got %d", ErrInvalidModulus, m)
	}
	return Ring{m: m}, nil
}

// MustRing is NewRing for constant moduli.
func MustRing(m int64) Ring {
	r, err := NewRing(m)
	if err != nil {
		panic(err)
	}
	return r
}

// Modulus returns m.
func (r Ring) Modulus() int64 { return r.m }

// Reduce returns n mod m in [0, m).
func (r Ring) Reduce(n int64) int64 { return Reduce(n, r.m) }

// ReduceQ reduces every component of q.
func (r Ring) ReduceQ(q Quaternion) Quaternion {
	return Quaternion{
		W: r.Reduce(q.W),
		X: r.Reduce(q.X),
		Y: r.Reduce(q.Y),
		Z: r.Reduce(q.Z),
	}
}

// Contains reports whether every component of q already lies in [0, m).
func (r Ring) Contains(q Quaternion) bool {
	for _, c := range q.Components() {
		if c < 0 || c >= r.m {
			return false
		}
	}
	return true
}

// Add returns a + b mod m.
func (r Ring) Add(a, b Quaternion) Quaternion {
	return r.ReduceQ(Add(r.ReduceQ(a), r.ReduceQ(b)))
}

// Multiply returns the Hamilton product a·b mod m.
func (r Ring) Multiply(a, b Quaternion) Quaternion {
	return r.ReduceQ(Multiply(r.ReduceQ(a), r.ReduceQ(b)))
}

// Conjugate returns (w, −x, −y, −z) mod m.
func (r Ring) Conjugate(q Quaternion) Quaternion {
	return r.ReduceQ(Conjugate(r.ReduceQ(q)))
}

// NormSquared returns w² + x² + y² + z² mod m.
func (r Ring) NormSquared(q Quaternion) int64 {
	return r.Reduce(NormSquared(r.ReduceQ(q)))
}

// Scale multiplies every component by s mod m.
func (r Ring) Scale(q Quaternion, s int64) Quaternion {
	q = r.ReduceQ(q)
	s = r.Reduce(s)
	return Quaternion{
		W: r.Reduce(q.W * s),
		X: r.Reduce(q.X * s),
		Y: r.Reduce(q.Y * s),
		Z: r.Reduce(q.Z * s),
	}
}

// Invert returns q⁻¹ = conj(q)·N(q)⁻¹ mod m.
//
// ok is false when N(q) ≡ 0 or gcd(N(q), m) != 1; the quaternion has no
// inverse in the ring and the returned value is Zero.
func (r Ring) Invert(q Quaternion) (inv Quaternion, ok bool) {
	n := r.NormSquared(q)
	if n == 0 {
		return Zero, false
	}
	nInv, err := ModularInverse(n, r.m)
	if err != nil {
		return Zero, false
	}
	return r.Scale(r.Conjugate(q), nInv), true
}

// IsInvertible reports whether q has an inverse modulo m.
func (r Ring) IsInvertible(q Quaternion) bool {
	_, ok := r.Invert(q)
	return ok
}

// Conjugation returns s·g·s⁻¹ mod m. ok is false when s is not invertible.
func (r Ring) Conjugation(s, g Quaternion) (Quaternion, bool) {
	sInv, ok := r.Invert(s)
	if !ok {
		return Zero, false
	}
	return r.Multiply(r.Multiply(s, g), sInv), true
}

// Random returns four independent uniform residues in [0, m).
func (r Ring) Random(s *Sampler) Quaternion {
	return Quaternion{
		W: s.Int64N(r.m),
		X: s.Int64N(r.m),
		Y: s.Int64N(r.m),
		Z: s.Int64N(r.m),
	}
}

// Reduce returns the non-negative residue of n modulo m (m > 0).
func Reduce(n, m int64) int64 {
	res := n % m
	if res < 0 {
		res += m
	}
	return res
}

// ModularInverse returns the s in [0, m) with a·s ≡ 1 (mod m).
//
// The extended Euclidean algorithm yields gcd(a, m) alongside the Bézout
// coefficient; a gcd other than 1 is reported as ErrNotInvertible.
func ModularInverse(a, m int64) (int64, error) {
	if m < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidModulus, m)
	}
	oldR, rem := Reduce(a, m), m
	oldS, s := int64(1), int64(0)
	for rem != 0 {
		q := oldR / rem
		oldR, rem = rem, oldR-q*rem
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNotInvertible, a, m, oldR)
	}
	return Reduce(oldS, m), nil
}
