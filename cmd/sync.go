package cmd

import (
	"context"
	"errors"
	"fmt"

	kerrors "github.com/PolarWolf314/yap/internal/errors"
	"github.com/PolarWolf314/yap/internal/ui"
	"github.com/PolarWolf314/yap/internal/workflows"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize the vault with remote_url (not available yet)",
	Args:  cobra.NoArgs,
	RunE:  runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting sync command")

	err := workflows.Sync(context.Background(), vaultOptions(nil))
	if errors.Is(err, kerrors.ErrNotImplemented) {
		fmt.Println(ui.Warning.Sprint("⚠") + " Sync is not available yet")
		Logger.Debugf("%v", err)
		return reported(err)
	}
	if err != nil {
		fmt.Println(formatVaultError("Failed to sync", err))
		return reported(err)
	}
	return nil
}
