package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/yap/internal/configs"
	kerrors "github.com/PolarWolf314/yap/internal/errors"
)

// Sync will push and pull the vault to the configured remote_url.
// It is reserved in the command set but not implemented; it only validates
// that the vault exists and reports the configured remote.
func Sync(ctx context.Context, opts Options) error {
	if _, err := openVault(opts); err != nil {
		return err
	}

	var remote string
	if config, err := configs.ReadConfiguration(opts.Settings.YapPath); err == nil {
		remote = config.Get(configs.SettingRemoteURL)
	}
	if remote == "" {
		return fmt.Errorf("%w: sync (no remote_url configured)", kerrors.ErrNotImplemented)
	}
	return fmt.Errorf("%w: sync with %s", kerrors.ErrNotImplemented, remote)
}
