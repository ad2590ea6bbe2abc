package utils

import (
	"bytes"
	"os"

	kerrors "github.com/PolarWolf314/yap/internal/errors"
)

// PassphraseSource records where a passphrase was obtained.
type PassphraseSource int

const (
	PassphraseFromEnv PassphraseSource = iota
	PassphraseFromPrompt
)

func (s PassphraseSource) String() string {
	if s == PassphraseFromEnv {
		return "environment"
	}
	return "prompt"
}

// passphraseReader is swapped out in tests.
var passphraseReader = func(prompt string) ([]byte, error) {
	if IsTerminal() {
		return ReadPassphrase(prompt)
	}
	return ReadPassphraseFromTTY(prompt)
}

// ResolvePassphrase returns the vault passphrase from the envName variable,
// or prompts for it when the variable is unset. With confirm set, the prompt
// is repeated and both entries must match.
func ResolvePassphrase(envName string, confirm bool) (string, PassphraseSource, error) {
	if value, ok := os.LookupEnv(envName); ok {
		return value, PassphraseFromEnv, nil
	}

	first, err := passphraseReader("Vault passphrase: ")
	if err != nil {
		return "", PassphraseFromPrompt, err
	}

	if confirm {
		second, err := passphraseReader("Confirm passphrase: ")
		if err != nil {
			return "", PassphraseFromPrompt, err
		}
		if !bytes.Equal(first, second) {
			return "", PassphraseFromPrompt, kerrors.ErrPassphraseMismatch
		}
	}

	return string(first), PassphraseFromPrompt, nil
}
