package errors

import (
	"errors"
	"fmt"
)

// Cryptographic errors indicate failures inside the sealing engine.
var (
	// ErrCrypto is the base for every failure raised by the cryptographic primitives.
	ErrCrypto = errors.New("cryptographic error")

	// ErrEntropyFailure indicates the secure random source could not supply a nonce.
	ErrEntropyFailure = fmt.Errorf("%w: entropy source failed", ErrCrypto)

	// ErrAuthenticationFailure indicates a sealed payload failed tag verification.
	// Wrong passphrases and tampered files are reported identically.
	ErrAuthenticationFailure = fmt.Errorf("%w: cannot decrypt", ErrCrypto)

	// ErrMalformedInput indicates a sealed payload is shorter than its framing.
	ErrMalformedInput = errors.New("sealed payload is malformed")
)

// Vault errors indicate issues with the secret store on disk.
var (
	// ErrSecretNotFound indicates no secret with the given name exists in the vault.
	ErrSecretNotFound = errors.New("secret not found in this vault")

	// ErrInvalidSecretName indicates a secret name cannot be used as a file name.
	ErrInvalidSecretName = errors.New("invalid secret name")

	// ErrVaultNotInitialized indicates the vault directory does not exist yet.
	ErrVaultNotInitialized = errors.New("vault has not been initialized")

	// ErrInvalidUTF8 indicates a decrypted secret is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("secret is not valid UTF-8")

	// ErrNoAuditLog indicates the vault has no audit log yet.
	ErrNoAuditLog = errors.New("no audit log found")
)

// Configuration errors indicate issues with the user's settings.
var (
	// ErrNoHomeDir indicates no home directory could be found for the current user.
	ErrNoHomeDir = errors.New("no home directory was found")

	// ErrBadConfigKey indicates the requested setting does not exist.
	ErrBadConfigKey = errors.New("config key does not exist")

	// ErrPassphraseMismatch indicates the passphrase confirmation did not match.
	ErrPassphraseMismatch = errors.New("passphrases do not match")
)

// Command errors.
var (
	// ErrNotImplemented indicates the command is reserved but not available yet.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidDateFormat indicates a date filter is not in YYYY-MM-DD format.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidLength indicates a requested password length is out of range.
	ErrInvalidLength = errors.New("invalid password length")
)
