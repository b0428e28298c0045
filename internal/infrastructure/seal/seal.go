// Package seal encrypts the upstream bearer credential before it is written
// to session storage, so a dump of Redis does not yield usable tokens.
package seal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

var (
	// ErrEmptySecret is returned when no sealing secret is configured.
	ErrEmptySecret = errors.New("seal: secret must not be empty")
	// ErrMalformed is returned when a sealed value cannot be decoded or
	// authenticated.
	ErrMalformed = errors.New("seal: malformed sealed value")
)

// Sealer performs authenticated encryption with a key derived from the
// configured secret via HKDF-SHA256.
type Sealer struct {
	aead cipher.AEAD
}

// New derives the sealing key and prepares the AEAD.
func New(secret string) (*Sealer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte("session-credential"))
	key := make([]byte, 32)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("seal: derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("seal: cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("seal: gcm: %w", err)
	}

	return &Sealer{aead: aead}, nil
}

// Seal encrypts the plaintext and returns base64(nonce || ciphertext).
func (s *Sealer) Seal(plaintext string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("seal: nonce: %w", err)
	}
	sealed := s.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a value produced by Seal.
func (s *Sealer) Open(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", ErrMalformed
	}
	if len(raw) < s.aead.NonceSize() {
		return "", ErrMalformed
	}
	nonce, ciphertext := raw[:s.aead.NonceSize()], raw[s.aead.NonceSize():]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrMalformed
	}
	return string(plaintext), nil
}
