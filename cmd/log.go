package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/PolarWolf314/yap/internal/audit"
	kerrors "github.com/PolarWolf314/yap/internal/errors"
	"github.com/PolarWolf314/yap/internal/ui"
	"github.com/PolarWolf314/yap/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	logLimit     int
	logReverse   bool
	logSecret    string
	logOperation string
	logSince     string
	logUntil     string
	logOneline   bool
	logJSON      bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().StringVar(&logSecret, "secret", "", "filter by secret name")
	logCmd.Flags().StringVar(&logOperation, "operation", "", "filter by operation type (comma-separated)")
	logCmd.Flags().StringVar(&logSince, "since", "", "show entries after date (YYYY-MM-DD)")
	logCmd.Flags().StringVar(&logUntil, "until", "", "show entries before date (YYYY-MM-DD)")
	logCmd.Flags().BoolVar(&logOneline, "oneline", false, "compact one-line format")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the vault's audit log",
	Long: `Displays the audit log of vault operations. Secret values are never
recorded, only the operation and the secret name.

Examples:
  yap log                          # View full log
  yap log -n 10                    # Last 10 entries
  yap log --reverse                # Most recent first
  yap log --secret db-password     # Filter by secret
  yap log --operation get,set      # Filter by operation
  yap log --since 2024-01-01       # Filter by date
  yap log --json                   # JSON output`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting log command")

	result, err := workflows.Log(context.Background(), vaultOptions(nil), workflows.LogOptions{
		Limit:      logLimit,
		Reverse:    logReverse,
		Secret:     logSecret,
		Operations: logOperation,
		Since:      logSince,
		Until:      logUntil,
	})
	if err != nil {
		fmt.Println(formatLogError(err))
		if errors.Is(err, kerrors.ErrNoAuditLog) {
			return nil
		}
		return reported(err)
	}

	Logger.Debugf("Parsed %d entries from audit log", result.TotalEntriesBeforeFilter)
	Logger.Debugf("After filtering: %d entries", len(result.Entries))

	if len(result.Entries) == 0 {
		if result.TotalEntriesBeforeFilter == 0 {
			fmt.Println("No audit log entries found.")
		} else {
			fmt.Println("No audit log entries found matching the filters.")
		}
		return nil
	}

	switch {
	case logJSON:
		return outputLogJSON(result.Entries)
	case logOneline:
		for _, e := range result.Entries {
			fmt.Printf("%s %s %s\n", workflows.FormatDate(e.Timestamp), e.Operation, workflows.FormatDetails(e))
		}
	default:
		for _, e := range result.Entries {
			status := ""
			if e.Failed {
				status = ui.Error.Sprint("failed")
			}
			fmt.Printf("%-19s  %-10s  %-30s  %s\n",
				workflows.FormatDateTime(e.Timestamp), e.Operation, workflows.FormatDetails(e), status)
		}
	}
	return nil
}

func formatLogError(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrNoAuditLog):
		return ui.Info.Sprint("ℹ") + " No audit log found. Operations are logged once the vault is used."
	case errors.Is(err, kerrors.ErrInvalidDateFormat):
		return ui.Fail("Invalid date filter", err)
	default:
		return formatVaultError("Failed to read audit log", err)
	}
}

func outputLogJSON(entries []audit.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries to JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
