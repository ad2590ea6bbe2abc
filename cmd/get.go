package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/yap/internal/workflows"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print a secret",
	Long: `Decrypts the named secret and prints it to stdout.

Examples:
  yap get db-password
  DB_PASSWORD=$(yap get db-password)`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	name := args[0]
	Logger.Infof("Starting get command for %s", name)

	engine, err := loadEngine(false)
	if err != nil {
		return err
	}

	result, err := workflows.Get(context.Background(), vaultOptions(engine), name)
	if err != nil {
		Logger.Errorf("get %s: %v", name, err)
		fmt.Println(formatVaultError("Failed to read secret "+name, err))
		return reported(err)
	}

	fmt.Println(result.Value)
	return nil
}
