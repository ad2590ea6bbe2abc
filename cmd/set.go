package cmd

import (
	"context"

	"github.com/PolarWolf314/yap/internal/ui"
	"github.com/PolarWolf314/yap/internal/utils"
	"github.com/PolarWolf314/yap/internal/workflows"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <name> [value]",
	Short: "Store a secret",
	Long: `Encrypts a value and stores it under the given name, replacing any
previous value.

When the value is omitted it is read from stdin, with a single trailing
newline removed.

Examples:
  yap set db-password hunter2
  echo -n hunter2 | yap set db-password
  yap set tls-key < key.pem`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	name := args[0]
	Logger.Infof("Starting set command for %s", name)

	var value string
	if len(args) == 2 {
		value = args[1]
	} else {
		Logger.Debugf("Reading value from stdin")
		data, err := utils.ReadStdin()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read secret value: %w", err)
		}
		value = utils.TrimTrailingNewline(string(data))
	}

	engine, err := loadEngine(true)
	if err != nil {
		return err
	}

	spinner, cleanup := startSpinner("Storing secret...")
	defer cleanup()

	result, err := workflows.Set(context.Background(), vaultOptions(engine), name, value)
	if err != nil {
		spinner.FinalMSG = formatVaultError("Failed to store secret "+name, err)
		return reported(err)
	}

	if result.Overwritten {
		spinner.FinalMSG = ui.Done("Updated " + ui.Name.Sprint(result.Name))
	} else {
		spinner.FinalMSG = ui.Done("Stored " + ui.Name.Sprint(result.Name))
	}
	return nil
}
