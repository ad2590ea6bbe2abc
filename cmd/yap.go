package cmd

import (
	"fmt"

	"github.com/PolarWolf314/yap/internal/configs"
	logger "github.com/PolarWolf314/yap/internal/logging"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	store   string
	Logger  logger.Logger

	YapCmd = &cobra.Command{
		Use:   "yap",
		Short: "yap - yet another password manager",
		Long: `yap keeps named secrets in a local vault. Every secret is sealed with
AES-256-GCM under a key derived from your passphrase.

The passphrase is read from the YAP_PASSPHRASE environment variable, or
prompted for when it is not set.

Usage:
  yap <command> [flags]

Run 'yap help <command>' for more details on a specific command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing yap with verbose=%t, debug=%t", verbose, debug)

			if err := configs.InitUserSettings(); err != nil {
				return Logger.ErrorfAndReturn("failed to resolve user settings: %w", err)
			}
			Logger.Debugf("Using yap directory %s", configs.UserYapSettings.YapPath)
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewColorFigure("yap", "alligator2", "green", true)
			banner.Print()
			fmt.Println()
			fmt.Println("Run 'yap --help' to see available commands.")
		},
	}
)

func init() {
	YapCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	YapCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	YapCmd.PersistentFlags().StringVarP(&store, "store", "s", "", "vault directory (default ~/.yap/vault)")

	YapCmd.AddCommand(initCmd)
	YapCmd.AddCommand(getCmd)
	YapCmd.AddCommand(setCmd)
	YapCmd.AddCommand(generateCmd)
	YapCmd.AddCommand(listCmd)
	YapCmd.AddCommand(removeCmd)
	YapCmd.AddCommand(syncCmd)
	YapCmd.AddCommand(configCmd)
	YapCmd.AddCommand(logCmd)
	YapCmd.AddCommand(doctorCmd)
}

// Execute runs the yap command tree.
func Execute() error {
	return YapCmd.Execute()
}
