// Package store provides file-based persistence for quatex sessions.
//
// It contains concrete implementations of the domain storage interfaces.
// All methods are concurrency-safe, via internal locking for the JSON files
// and bolt transactions for the database. Stored files live under the
// configured home directory.
//
// The package includes stores for:
//   - Simulation sessions (SessionFileStore), one file per session, sealed
//     with scrypt + ChaCha20-Poly1305 when a passphrase is given
//   - Assistant transcripts (TranscriptBoltStore), a bbolt database with
//     CBOR-encoded turns
package store
