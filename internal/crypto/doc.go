// Package crypto holds the small amount of real cryptography quatex shows
// next to the toy exchange.
//
// Contents
//
//   - Short fingerprints of quaternions and derived keys for display/logging
//     (Fingerprint, FingerprintQuaternion)
//   - The symmetric key a session would use if both parties agreed on their
//     shared value (DeriveSessionKey), via HKDF-SHA256
//
// # Notes
//
// A derived key is only meaningful when the two shared values agree. Callers
// should wipe returned keys with memzero.Zero once displayed.
package crypto
