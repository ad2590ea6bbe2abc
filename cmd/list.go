package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/yap/internal/ui"
	"github.com/PolarWolf314/yap/internal/workflows"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "List stored secret names",
	Long: `Lists the names of stored secrets. Values are not decrypted, so no
passphrase is needed.

The optional pattern supports *, ?, [...] and {a,b} globs.

Examples:
  yap list
  yap list 'prod-*'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	pattern := ""
	if len(args) == 1 {
		pattern = args[0]
	}
	Logger.Infof("Starting list command with pattern %q", pattern)

	result, err := workflows.List(context.Background(), vaultOptions(nil), pattern)
	if err != nil {
		fmt.Println(formatVaultError("Failed to list secrets", err))
		return reported(err)
	}

	if len(result.Names) == 0 {
		if pattern == "" {
			fmt.Println(ui.Muted.Sprint("No secrets stored"))
		} else {
			fmt.Println(ui.Muted.Sprint("No secrets match " + pattern))
		}
		return nil
	}

	for _, name := range result.Names {
		fmt.Println(name)
	}
	return nil
}
