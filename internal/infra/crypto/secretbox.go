// Package crypto seals credential tokens before they reach the database.
package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"io"
	"log/slog"
	"strings"

	"reviewhub/config"
	"reviewhub/internal/domain/service"
	"reviewhub/internal/errors"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize      = 32
	nonceSize    = 24
	sealedPrefix = "sb1:"
)

// ErrInvalidKey is returned when the configured key is not 32 bytes of base64.
var ErrInvalidKey = errors.New("token cipher key must be 32 bytes, base64 encoded")

// ErrCorruptToken is returned when a sealed token cannot be opened.
var ErrCorruptToken = errors.New("sealed token is corrupt")

type secretboxCipher struct {
	key *[keySize]byte
}

// NewTokenCipher returns a secretbox cipher for the configured key. Without a key
// tokens are stored as-is and a warning is logged.
func NewTokenCipher(cfg *config.Config, logger *slog.Logger) (service.TokenCipher, error) {
	if cfg.TokenCipher == nil || cfg.TokenCipher.Key == "" {
		logger.Warn("Token cipher key not configured, credential tokens are stored unsealed")

		return plaintextCipher{}, nil
	}

	return NewSecretboxCipher(cfg.TokenCipher.Key)
}

// NewSecretboxCipher builds a cipher from a base64-encoded 32-byte key.
func NewSecretboxCipher(encodedKey string) (service.TokenCipher, error) {
	raw, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil || len(raw) != keySize {
		return nil, ErrInvalidKey
	}
	var key [keySize]byte
	copy(key[:], raw)

	return &secretboxCipher{key: &key}, nil
}

// Seal encrypts plaintext. Empty input stays empty.
func (c *secretboxCipher) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", errors.Wrap(err, "failed to generate nonce")
	}
	box := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, c.key)

	return sealedPrefix + base64.StdEncoding.EncodeToString(box), nil
}

// Open decrypts a sealed token. Values without the sealed prefix predate
// sealing and are returned unchanged.
func (c *secretboxCipher) Open(sealed string) (string, error) {
	if !strings.HasPrefix(sealed, sealedPrefix) {
		return sealed, nil
	}

	box, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(sealed, sealedPrefix))
	if err != nil || len(box) < nonceSize+secretbox.Overhead {
		return "", ErrCorruptToken
	}
	var nonce [nonceSize]byte
	copy(nonce[:], box[:nonceSize])

	plain, ok := secretbox.Open(nil, box[nonceSize:], &nonce, c.key)
	if !ok {
		return "", ErrCorruptToken
	}

	return string(plain), nil
}

// plaintextCipher stores tokens unchanged.
type plaintextCipher struct{}

func (plaintextCipher) Seal(plaintext string) (string, error) { return plaintext, nil }

func (plaintextCipher) Open(sealed string) (string, error) { return sealed, nil }

// NewPlaintextCipher returns a cipher that leaves tokens unchanged.
func NewPlaintextCipher() service.TokenCipher {
	return plaintextCipher{}
}
