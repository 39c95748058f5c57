package crypto

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"

	"quatex/internal/quaternion"
	"quatex/internal/util/memzero"
)

// SessionKeyBytes is the length of a derived session key.
const SessionKeyBytes = 32

// ErrInvalidShared is returned when the shared value does not belong to the
// ring it claims.
var ErrInvalidShared = errors.New("shared value is not a reduced element of the ring")

var sessionKeyInfo = []byte("quatex|session-key")

// DeriveSessionKey expands a shared quaternion into a symmetric key. The
// modulus is the HKDF salt so equal components in different rings give
// unrelated keys.
func DeriveSessionKey(ring quaternion.Ring, shared quaternion.Quaternion) ([]byte, error) {
	if !ring.Contains(shared) {
		return nil, ErrInvalidShared
	}
	ikm := encodeQuaternion(shared)
	defer memzero.Zero(ikm)

	salt := binary.BigEndian.AppendUint64(nil, uint64(ring.Modulus()))
	r := hkdf.New(sha256.New, ikm, salt, sessionKeyInfo)
	key := make([]byte, SessionKeyBytes)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}
	return key, nil
}
