package workflows

import (
	"context"
)

// Remove deletes the secret stored under name.
//
// Returns ErrSecretNotFound if there is no such secret.
func Remove(ctx context.Context, opts Options, name string) error {
	v, err := openVault(opts)
	if err != nil {
		return err
	}

	err = v.Remove(name)
	record(v, "remove", name, 0, err)
	return err
}
