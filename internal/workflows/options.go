package workflows

import (
	"fmt"

	"github.com/PolarWolf314/yap/internal/audit"
	"github.com/PolarWolf314/yap/internal/configs"
	"github.com/PolarWolf314/yap/internal/vault"
)

// Options carries what every vault workflow needs. It is resolved once at
// startup by the CLI and passed down explicitly.
type Options struct {
	// Settings locates the user's yap directory. Required.
	Settings *configs.UserSettings

	// Store overrides the vault directory. Empty selects the default vault.
	Store string

	// Engine seals and opens secret values. Built once from the passphrase.
	Engine vault.Sealer
}

// VaultPath returns the vault directory these options select.
func (o Options) VaultPath() string {
	return o.Settings.VaultPath(o.Store)
}

func openVault(opts Options) (*vault.Vault, error) {
	v, err := vault.Load(opts.VaultPath(), opts.Engine)
	if err != nil {
		return nil, fmt.Errorf("loading vault: %w", err)
	}
	return v, nil
}

// record appends an audit entry for op, marking it failed when err is set.
func record(v *vault.Vault, op, secret string, count int, err error) {
	audit.Log(v.Dir(), audit.Entry{
		Operation: op,
		VaultUUID: v.ID(),
		Secret:    secret,
		Count:     count,
		Failed:    err != nil,
	})
}
