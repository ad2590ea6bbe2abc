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

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and update settings",
	Long: `Reads and updates settings stored in ~/.yap/config.yaml.

Available keys:
  remote_url  remote used by 'yap sync'
  session     free-form session identifier`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Reading setting %s", args[0])

		value, err := workflows.ConfigGet(context.Background(), settings(), args[0])
		if err != nil {
			fmt.Println(formatConfigError("Failed to read setting", err))
			return reported(err)
		}

		fmt.Println(value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Update a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Updating setting %s", args[0])

		if err := workflows.ConfigSet(context.Background(), settings(), args[0], args[1]); err != nil {
			fmt.Println(formatConfigError("Failed to update setting", err))
			return reported(err)
		}

		fmt.Println(ui.Done("Set " + ui.Name.Sprint(args[0])))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}

func formatConfigError(action string, err error) string {
	if errors.Is(err, kerrors.ErrBadConfigKey) {
		return ui.Fail(action, err) + "\n" + ui.Info.Sprint("→") + " Valid keys are remote_url and session"
	}
	return ui.Fail(action, err) + "\n" + ui.Next("Create the settings file with", "yap init")
}
