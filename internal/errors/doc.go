// Package errors provides typed error values for yap.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Crypto errors: ErrEntropyFailure, ErrAuthenticationFailure (both wrap
//     ErrCrypto), ErrMalformedInput
//   - Vault errors: ErrSecretNotFound, ErrInvalidSecretName,
//     ErrVaultNotInitialized, ErrInvalidUTF8
//   - Config errors: ErrNoHomeDir, ErrBadConfigKey
//
// Failures from the filesystem or from YAML/TOML decoding are wrapped with
// context using fmt.Errorf and %w, so the underlying cause stays reachable.
//
// # Usage
//
//	value, err := v.Get(name)
//	if errors.Is(err, yerrors.ErrAuthenticationFailure) {
//	    // Wrong passphrase or corrupted file
//	}
package errors
