package conjugation

import (
	"errors"
	"fmt"
)

var (
	// ErrNonInvertibleSecret matches every *NonInvertibleSecretError.
	ErrNonInvertibleSecret = errors.New("secret has no inverse")

	// ErrProtocolSequence matches every *SequenceError.
	ErrProtocolSequence = errors.New("protocol phase out of sequence")

	// ErrAttemptsExhausted is returned when no invertible secret was found
	// within the configured number of draws.
	ErrAttemptsExhausted = errors.New("no invertible secret within attempt bound")

	// ErrModulusTooLarge is returned by SolveConjugacy for moduli above
	// MaxSearchModulus.
	ErrModulusTooLarge = errors.New("modulus too large for exhaustive search")

	// ErrNoConjugator is returned by SolveConjugacy when no invertible S
	// satisfies S·G·S⁻¹ = T.
	ErrNoConjugator = errors.New("no conjugator found")
)

// NonInvertibleSecretError reports which party's secret cannot be inverted.
type NonInvertibleSecretError struct {
	Party Party
}

func (e *NonInvertibleSecretError) Error() string {
	return fmt.Sprintf("secret %s has no inverse; regenerate parameters", e.Party)
}

// Is makes errors.Is(err, ErrNonInvertibleSecret) hold.
func (e *NonInvertibleSecretError) Is(target error) bool {
	return target == ErrNonInvertibleSecret
}

// SequenceError reports a phase invoked from the wrong phase.
type SequenceError struct {
	Op   string
	Have Phase
	Want Phase
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("%s: session is %s, want %s", e.Op, e.Have, e.Want)
}

// Is makes errors.Is(err, ErrProtocolSequence) hold.
func (e *SequenceError) Is(target error) bool {
	return target == ErrProtocolSequence
}
