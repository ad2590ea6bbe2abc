package cmd

import (
	"context"

	"github.com/PolarWolf314/yap/internal/ui"
	"github.com/PolarWolf314/yap/internal/workflows"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a secret",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]
	Logger.Infof("Starting remove command for %s", name)

	spinner, cleanup := startSpinner("Removing secret...")
	defer cleanup()

	if err := workflows.Remove(context.Background(), vaultOptions(nil), name); err != nil {
		spinner.FinalMSG = formatVaultError("Failed to remove secret "+name, err)
		return reported(err)
	}

	spinner.FinalMSG = ui.Done("Removed " + ui.Name.Sprint(name))
	return nil
}
