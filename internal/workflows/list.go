package workflows

import (
	"context"
)

// ListResult contains the outcome of a list operation.
type ListResult struct {
	Names   []string
	Pattern string
}

// List returns the names of secrets matching pattern. Values are not opened.
func List(ctx context.Context, opts Options, pattern string) (*ListResult, error) {
	v, err := openVault(opts)
	if err != nil {
		return nil, err
	}

	names, err := v.List(pattern)
	record(v, "list", "", len(names), err)
	if err != nil {
		return nil, err
	}

	return &ListResult{Names: names, Pattern: pattern}, nil
}
