package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/yap/internal/secrets"
	"github.com/PolarWolf314/yap/internal/ui"
	"github.com/PolarWolf314/yap/internal/workflows"
	"github.com/spf13/cobra"
)

var generateLength int

func init() {
	generateCmd.Flags().IntVarP(&generateLength, "length", "l", secrets.DefaultPasswordLength,
		fmt.Sprintf("password length (%d-%d)", secrets.MinPasswordLength, secrets.MaxPasswordLength))
}

var generateCmd = &cobra.Command{
	Use:   "generate <name>",
	Short: "Generate and store a random password",
	Long: `Generates a random password, stores it under the given name and prints it.

Examples:
  yap generate db-password
  yap generate api-token --length 64`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	name := args[0]
	Logger.Infof("Starting generate command for %s (length %d)", name, generateLength)

	engine, err := loadEngine(true)
	if err != nil {
		return err
	}

	result, err := workflows.Generate(context.Background(), vaultOptions(engine), workflows.GenerateOptions{
		Name:   name,
		Length: generateLength,
	})
	if err != nil {
		fmt.Println(formatVaultError("Failed to generate secret "+name, err))
		return reported(err)
	}

	fmt.Println(result.Value)
	Logger.Infof("Stored generated password as %s", ui.Name.Sprint(result.Name))
	return nil
}
