package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/yap/internal/errors"
)

const (
	// NonceSize is the length of the nonce prepended to every sealed payload.
	NonceSize = 12

	// TagSize is the length of the GCM authentication tag appended by Seal.
	TagSize = 16

	// Overhead is the number of bytes Seal adds to a plaintext.
	Overhead = NonceSize + TagSize
)

// Engine seals and opens secret values with AES-256-GCM.
//
// A sealed payload is laid out as nonce || ciphertext || tag with no header.
// The engine holds no per-call state and is safe for concurrent use.
type Engine struct {
	aead cipher.AEAD
	rand io.Reader
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithRandom replaces the nonce source. It defaults to crypto/rand.
func WithRandom(r io.Reader) EngineOption {
	return func(e *Engine) {
		e.rand = r
	}
}

// NewEngine derives a key from passphrase and returns an engine bound to it.
func NewEngine(passphrase string, opts ...EngineOption) (*Engine, error) {
	return NewEngineFromKey(DeriveKey(passphrase), opts...)
}

// NewEngineFromKey returns an engine bound to an already derived key.
func NewEngineFromKey(key Key, opts ...EngineOption) (*Engine, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	e := &Engine{aead: aead, rand: rand.Reader}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Seal encrypts plaintext under a fresh random nonce. The result is
// len(plaintext)+Overhead bytes long.
func (e *Engine) Seal(plaintext []byte) ([]byte, error) {
	out := make([]byte, NonceSize, len(plaintext)+Overhead)
	if _, err := io.ReadFull(e.rand, out); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrEntropyFailure, err)
	}

	return e.aead.Seal(out, out[:NonceSize], plaintext, nil), nil
}

// Open verifies and decrypts a payload produced by Seal. Nothing is returned
// unless the tag verifies.
func (e *Engine) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < Overhead {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", kerrors.ErrMalformedInput, len(sealed), Overhead)
	}

	nonce, ciphertext := sealed[:NonceSize], sealed[NonceSize:]
	plaintext, err := e.aead.Open(make([]byte, 0, len(ciphertext)-TagSize), nonce, ciphertext, nil)
	if err != nil {
		return nil, kerrors.ErrAuthenticationFailure
	}

	return plaintext, nil
}
