package quaternion

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	mrand "math/rand/v2"

	"golang.org/x/crypto/sha3"
)

// SeedBytes is the length of a generated sampler seed.
const SeedBytes = 16

const domainSampler = "quatex-sampler-v1"

// ErrInvalidSeed is returned for a seed that is not valid hex.
var ErrInvalidSeed = errors.New("sampler seed is not valid hex")

// shakeSource is a math/rand/v2 Source reading 8 bytes at a time from a
// SHAKE256 stream keyed by the seed.
type shakeSource struct {
	xof sha3.ShakeHash
	buf [8]byte
}

func newShakeSource(seed []byte) *shakeSource {
	h := sha3.NewShake256()
	_, _ = h.Write([]byte(domainSampler))
	_, _ = h.Write(seed)
	return &shakeSource{xof: h}
}

func (s *shakeSource) Uint64() uint64 {
	_, _ = s.xof.Read(s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

// Sampler draws uniform integers for simulations. Not safe for concurrent use;
// each session owns its own Sampler.
type Sampler struct {
	seed []byte
	rng  *mrand.Rand
}

// NewSeededSampler returns a deterministic sampler: equal seeds produce equal
// draws.
func NewSeededSampler(seed []byte) *Sampler {
	own := append([]byte(nil), seed...)
	return &Sampler{
		seed: own,
		rng:  mrand.New(newShakeSource(own)),
	}
}

// NewSampler returns a sampler keyed by a fresh random seed.
func NewSampler() (*Sampler, error) {
	seed := make([]byte, SeedBytes)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("sampler seed: %w", err)
	}
	return NewSeededSampler(seed), nil
}

// NewSamplerFromHex parses a hex seed; an empty string yields a fresh seed.
func NewSamplerFromHex(seedHex string) (*Sampler, error) {
	if seedHex == "" {
		return NewSampler()
	}
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	return NewSeededSampler(seed), nil
}

// Seed returns a copy of the seed.
func (s *Sampler) Seed() []byte { return append([]byte(nil), s.seed...) }

// SeedHex returns the seed hex encoded.
func (s *Sampler) SeedHex() string { return hex.EncodeToString(s.seed) }

// Int64N returns a uniform integer in [0, n). It panics if n <= 0.
func (s *Sampler) Int64N(n int64) int64 { return s.rng.Int64N(n) }
