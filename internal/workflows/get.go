package workflows

import (
	"context"
)

// GetResult contains the outcome of a get operation.
type GetResult struct {
	Name  string
	Value string
}

// Get opens the secret stored under name.
//
// Returns ErrVaultNotInitialized if the vault does not exist.
// Returns ErrSecretNotFound if there is no such secret.
// Returns ErrAuthenticationFailure if the passphrase is wrong or the file was modified.
func Get(ctx context.Context, opts Options, name string) (*GetResult, error) {
	v, err := openVault(opts)
	if err != nil {
		return nil, err
	}

	value, err := v.Get(name)
	record(v, "get", name, 0, err)
	if err != nil {
		return nil, err
	}

	return &GetResult{Name: name, Value: value}, nil
}
