// Package quaternion implements integer quaternion arithmetic, both over Z and
// reduced into the finite ring (Z/mZ)^4.
//
// # Call shapes
//
// Unreduced arithmetic is exposed as package functions (Add, Multiply,
// Conjugate, NormSquared). Reduced arithmetic lives on Ring, which carries the
// modulus explicitly so reduced and unreduced values are never mixed by an
// optional argument.
//
// # Non-commutativity
//
// Multiply is the Hamilton product. It is not commutative: i·j = k but
// j·i = −k. Everything in protocol/conjugation depends on this.
//
// # Randomness
//
// Sampler draws uniform residues from a SHAKE256 stream keyed by a seed. It is
// meant for reproducible simulations and is not a secure source.
package quaternion
