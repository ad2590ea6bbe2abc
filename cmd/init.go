package cmd

import (
	"context"

	"github.com/PolarWolf314/yap/internal/ui"
	"github.com/PolarWolf314/yap/internal/workflows"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the settings file and the vault",
	Long: `Creates ~/.yap/config.yaml and the vault directory.

Running init again is safe: existing settings and secrets are kept.
The passphrase is not needed to create a vault; it is asked for the first
time a secret is stored.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting init command")

	spinner, cleanup := startSpinner("Initializing vault...")
	defer cleanup()

	result, err := workflows.Init(context.Background(), vaultOptions(nil))
	if err != nil {
		spinner.FinalMSG = ui.Fail("Failed to initialize vault", err)
		return reported(err)
	}

	Logger.Infof("Vault %s at %s", result.VaultUUID, result.VaultPath)
	Logger.Debugf("Settings file at %s", result.ConfigPath)

	if result.AlreadyExisted {
		spinner.FinalMSG = ui.Done("Vault already initialized at "+ui.Path.Sprint(result.VaultPath)) + "\n" +
			ui.Muted.Sprint("Existing settings and secrets were kept")
		return nil
	}

	spinner.FinalMSG = ui.Done("Vault initialized at "+ui.Path.Sprint(result.VaultPath)) + "\n" +
		ui.Next("Store your first secret with", "yap set <name>")
	return nil
}
