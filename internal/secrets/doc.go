// Package secrets provides the cryptographic core of yap.
//
// This package derives a symmetric key from the user's passphrase and seals
// individual secret values with authenticated encryption.
//
// # Key Derivation
//
// Keys are derived with PBKDF2-HMAC-SHA256 using 100,000 iterations and a
// fixed salt. Derivation is deterministic so a secret sealed in one process
// can be opened in the next one with the same passphrase. Because the salt
// is fixed, two vaults protected by the same passphrase share a key.
//
// # Sealed Payloads
//
// Each secret is sealed with AES-256-GCM under a fresh 12-byte random nonce
// and no associated data. The on-disk layout is:
//
//	nonce (12 bytes) || ciphertext (N bytes) || tag (16 bytes)
//
// There is no header, version byte or length prefix. Open rejects anything
// shorter than 28 bytes before attempting decryption, and reports every tag
// failure as ErrAuthenticationFailure regardless of whether the key was
// wrong or the bytes were modified.
//
// # Concurrency
//
// An Engine is immutable after construction and may be shared by multiple
// goroutines. Callers remain responsible for serializing writes to the same
// secret file.
package secrets
