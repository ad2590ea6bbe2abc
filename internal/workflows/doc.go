// Package workflows provides high-level orchestration for yap commands.
//
// Workflows coordinate the configs, vault and audit packages to implement
// complete user-facing features. Each workflow handles a single command's
// business logic, independent of CLI concerns like flag parsing, spinners
// and output formatting.
//
// The cmd/ package stays thin: it parses flags, resolves the passphrase
// into an engine once, calls the workflow and formats the result.
//
// # Available Workflows
//
//   - Init: creates the settings file and the vault
//   - Get, Set, Remove, List: operate on secrets in the vault
//   - Generate: stores a random password
//   - Sync: reserved; returns ErrNotImplemented
//   - ConfigGet, ConfigSet: read and update settings
//   - Log: reads the vault's audit history
//   - Doctor: checks the vault for common problems
//
// # Error Handling
//
// Workflows return sentinel errors from the internal/errors package, so the
// CLI layer can pick a message without string matching:
//
//	result, err := workflows.Get(ctx, opts, "db")
//	if errors.Is(err, kerrors.ErrAuthenticationFailure) {
//	    // Wrong passphrase or modified file
//	}
package workflows
