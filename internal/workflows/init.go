package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/PolarWolf314/yap/internal/audit"
	"github.com/PolarWolf314/yap/internal/configs"
	"github.com/PolarWolf314/yap/internal/vault"
)

// InitResult contains the outcome of an init operation.
type InitResult struct {
	// VaultPath is the directory holding the vault.
	VaultPath string

	// VaultUUID is the identifier recorded in the vault metadata.
	VaultUUID string

	// ConfigPath is the settings file.
	ConfigPath string

	// AlreadyExisted is true when the vault directory was present before init.
	AlreadyExisted bool
}

// Init creates the yap directory, the default settings file and the vault.
//
// Running init again is safe: existing settings and secrets are kept.
// Init does not need the passphrase, so opts.Engine may be nil.
func Init(ctx context.Context, opts Options) (*InitResult, error) {
	if err := configs.InitConfiguration(opts.Settings.YapPath); err != nil {
		return nil, fmt.Errorf("initializing settings: %w", err)
	}

	vaultPath := opts.VaultPath()
	_, statErr := os.Stat(vaultPath)

	v, err := vault.Create(vaultPath, opts.Engine)
	if err != nil {
		return nil, fmt.Errorf("creating vault: %w", err)
	}

	audit.Log(v.Dir(), audit.Entry{Operation: "init", VaultUUID: v.ID()})

	return &InitResult{
		VaultPath:      v.Dir(),
		VaultUUID:      v.ID(),
		ConfigPath:     opts.Settings.ConfigPath,
		AlreadyExisted: statErr == nil,
	}, nil
}
