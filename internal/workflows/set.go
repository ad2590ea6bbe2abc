package workflows

import (
	"context"
)

// SetResult contains the outcome of a set operation.
type SetResult struct {
	Name string

	// Overwritten is true when a previous value was replaced.
	Overwritten bool
}

// Set seals value and stores it under name, replacing any existing value.
//
// Returns ErrVaultNotInitialized if the vault does not exist.
// Returns ErrInvalidSecretName if name cannot be used as a secret name.
func Set(ctx context.Context, opts Options, name, value string) (*SetResult, error) {
	v, err := openVault(opts)
	if err != nil {
		return nil, err
	}

	names, err := v.List("")
	if err != nil {
		return nil, err
	}

	err = v.Set(name, value)
	record(v, "set", name, 0, err)
	if err != nil {
		return nil, err
	}

	return &SetResult{Name: name, Overwritten: contains(names, name)}, nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

