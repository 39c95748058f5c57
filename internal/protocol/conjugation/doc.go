// Package conjugation implements the naive conjugation "key exchange" over
// quaternions modulo m, the non-abelian stand-in for Diffie–Hellman.
//
// # Overview
//
// Both parties share a public base G. Each holds an invertible secret S and
// publishes T = S·G·S⁻¹. Each then conjugates the peer's public value by its
// own secret:
//
//	sharedA = A·(B·G·B⁻¹)·A⁻¹ = (AB)·G·(AB)⁻¹
//	sharedB = B·(A·G·A⁻¹)·B⁻¹ = (BA)·G·(BA)⁻¹
//
// The Hamilton product is not commutative, so AB ≠ BA for almost every secret
// pair and the two values disagree. Reproducing that disagreement is the
// point of the package; nothing here forces commuting secrets.
//
// # Phases
//
//	Uninitialized → ParametersGenerated → PublicValuesExchanged → SharedValuesDerived
//
// GenerateParameters always starts over with every derived field absent.
// ExchangePublicValues and DeriveSharedValues reject re-entry with a
// *SequenceError instead of overwriting recorded values.
//
// # Errors
//
// ErrNonInvertibleSecret (as *NonInvertibleSecretError) is returned when a
// secret has no inverse; regenerate parameters and retry. ErrAttemptsExhausted
// is returned when a bounded secret search gives up.
//
// Nothing in this package is safe for concurrent use on the same State.
package conjugation
