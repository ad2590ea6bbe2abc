package workflows

import (
	"context"

	"github.com/PolarWolf314/yap/internal/secrets"
)

// GenerateOptions configures the generate workflow.
type GenerateOptions struct {
	// Name is the secret to store the password under.
	Name string

	// Length is the password length. 0 selects DefaultPasswordLength.
	Length int
}

// GenerateResult contains the outcome of a generate operation.
type GenerateResult struct {
	Name  string
	Value string
}

// Generate creates a random password and stores it under opts.Name.
//
// Returns ErrInvalidLength if the length is outside the supported range.
func Generate(ctx context.Context, opts Options, gen GenerateOptions) (*GenerateResult, error) {
	length := gen.Length
	if length == 0 {
		length = secrets.DefaultPasswordLength
	}

	password, err := secrets.GeneratePassword(length)
	if err != nil {
		return nil, err
	}

	v, err := openVault(opts)
	if err != nil {
		return nil, err
	}

	err = v.Set(gen.Name, password)
	record(v, "generate", gen.Name, 0, err)
	if err != nil {
		return nil, err
	}

	return &GenerateResult{Name: gen.Name, Value: password}, nil
}
