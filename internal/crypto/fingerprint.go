package crypto

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"quatex/internal/domain"
	"quatex/internal/quaternion"
)

// Fingerprint returns a short hex fingerprint of b.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(b []byte) domain.Fingerprint {
	sum := sha256.Sum256(b)
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}

// FingerprintQuaternion fingerprints the canonical encoding of q.
func FingerprintQuaternion(q quaternion.Quaternion) domain.Fingerprint {
	return Fingerprint(encodeQuaternion(q))
}

// encodeQuaternion is the big-endian concatenation of w, x, y and z.
func encodeQuaternion(q quaternion.Quaternion) []byte {
	b := make([]byte, 0, 32)
	for _, c := range q.Components() {
		b = binary.BigEndian.AppendUint64(b, uint64(c))
	}
	return b
}
