package session

import (
	"quatex/internal/domain"
	"quatex/internal/protocol/conjugation"
	"quatex/internal/quaternion"
)

// Simulate runs a complete session in memory. Nothing is stored; each call
// owns its State. An empty seedHex draws a fresh seed.
func Simulate(modulus int64, seedHex string, maxAttempts int) (domain.Simulation, error) {
	ring, err := quaternion.NewRing(modulus)
	if err != nil {
		return domain.Simulation{}, err
	}
	sampler, err := quaternion.NewSamplerFromHex(seedHex)
	if err != nil {
		return domain.Simulation{}, err
	}
	st, out, err := conjugation.Run(ring, sampler, maxAttempts)
	if err != nil {
		return domain.Simulation{}, err
	}
	return domain.Simulation{
		Seed:       sampler.SeedHex(),
		State:      st,
		Outcome:    out,
		Commutator: conjugation.CommutatorDefect(ring, st.SecretA, st.SecretB),
	}, nil
}
