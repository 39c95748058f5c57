package store

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"quatex/internal/util/memzero"
)

const (
	// The current supported version of the sealed session format.
	envelopeFormatVersion = 1
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// ciphertext has been modified / corrupted.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted session")

	// ErrPassphraseRequired is returned when a sealed session is loaded
	// without a passphrase.
	ErrPassphraseRequired = errors.New("session is sealed; passphrase required")
)

// envelope holds a sealed session body and its KDF parameters.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

// seal derives a key from passphrase and seals raw. ad binds the envelope to
// its session name so a file renamed on disk fails to open.
func seal(passphrase string, raw, ad []byte, p kdfParams) (*envelope, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt, p.N, p.R, p.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return &envelope{
		V:      envelopeFormatVersion,
		Salt:   salt,
		N:      p.N,
		R:      p.R,
		P:      p.P,
		Nonce:  nonce,
		Cipher: aead.Seal(nil, nonce, raw, ad),
	}, nil
}

// open reverses seal.
func open(passphrase string, env *envelope, ad []byte) ([]byte, error) {
	if env.V > envelopeFormatVersion {
		return nil, fmt.Errorf("unsupported envelope version %d", env.V)
	}
	key, err := scrypt.Key([]byte(passphrase), env.Salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	if len(env.Nonce) != aead.NonceSize() {
		return nil, ErrWrongPassphrase
	}
	pt, err := aead.Open(nil, env.Nonce, env.Cipher, ad)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

// kdfParams are the scrypt tunables.
type kdfParams struct {
	N, R, P int
}

func defaultKDFParams() kdfParams { return kdfParams{N: 1 << 15, R: 8, P: 1} }
