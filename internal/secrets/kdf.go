package secrets

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the length of a derived key in bytes (AES-256).
	KeySize = 32

	// KDFIterations is the PBKDF2 iteration count used for every vault.
	KDFIterations = 100_000

	// KDFName identifies the derivation scheme in vault metadata.
	KDFName = "pbkdf2-hmac-sha256"
)

// kdfSalt is shared by every vault so existing vaults stay openable.
// Two vaults with the same passphrase therefore derive the same key.
var kdfSalt = []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

// Key is a derived symmetric key.
type Key [KeySize]byte

// DeriveKey turns a passphrase into a key using PBKDF2-HMAC-SHA256.
// The same passphrase always yields the same key. An empty passphrase is
// accepted and produces a weak key.
func DeriveKey(passphrase string) Key {
	var key Key
	copy(key[:], pbkdf2.Key([]byte(passphrase), kdfSalt, KDFIterations, KeySize, sha256.New))
	return key
}
