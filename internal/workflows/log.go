package workflows

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/PolarWolf314/yap/internal/audit"
	kerrors "github.com/PolarWolf314/yap/internal/errors"
)

// LogOptions configures the log workflow.
type LogOptions struct {
	// Limit is the maximum number of entries to return. 0 means no limit.
	Limit int

	// Reverse orders entries from most recent to oldest when true.
	Reverse bool

	// Secret filters entries by secret name.
	Secret string

	// Operations filters entries by operation types (comma-separated).
	Operations string

	// Since filters entries after this date (YYYY-MM-DD format).
	Since string

	// Until filters entries before this date (YYYY-MM-DD format).
	Until string
}

// LogResult contains the outcome of a log operation.
type LogResult struct {
	// Entries are the filtered audit log entries.
	Entries []audit.Entry

	// TotalEntriesBeforeFilter is the count of entries before filtering.
	TotalEntriesBeforeFilter int
}

// Log reads and filters the vault's audit log.
//
// Returns ErrVaultNotInitialized if the vault does not exist.
// Returns ErrNoAuditLog if no audit log exists.
// Returns ErrInvalidDateFormat if the date format is invalid.
func Log(ctx context.Context, opts Options, logOpts LogOptions) (*LogResult, error) {
	vaultPath := opts.VaultPath()
	if _, err := os.Stat(vaultPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrVaultNotInitialized, vaultPath)
	}

	if _, err := os.Stat(audit.LogPath(vaultPath)); os.IsNotExist(err) {
		return nil, kerrors.ErrNoAuditLog
	}

	entries, err := audit.ReadEntries(vaultPath)
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}

	result := &LogResult{
		TotalEntriesBeforeFilter: len(entries),
	}

	filtered := entries

	if logOpts.Secret != "" {
		filtered = filterBySecret(filtered, logOpts.Secret)
	}

	if logOpts.Operations != "" {
		ops := strings.Split(logOpts.Operations, ",")
		for i := range ops {
			ops[i] = strings.TrimSpace(ops[i])
		}
		filtered = filterByOperations(filtered, ops)
	}

	if logOpts.Since != "" {
		sinceTime, err := time.Parse("2006-01-02", logOpts.Since)
		if err != nil {
			return nil, fmt.Errorf("%w: --since date format invalid, use YYYY-MM-DD", kerrors.ErrInvalidDateFormat)
		}
		filtered = filterByTime(filtered, func(t time.Time) bool { return !t.Before(sinceTime) })
	}

	if logOpts.Until != "" {
		untilTime, err := time.Parse("2006-01-02", logOpts.Until)
		if err != nil {
			return nil, fmt.Errorf("%w: --until date format invalid, use YYYY-MM-DD", kerrors.ErrInvalidDateFormat)
		}
		// Include the entire day.
		untilTime = untilTime.Add(24*time.Hour - time.Nanosecond)
		filtered = filterByTime(filtered, func(t time.Time) bool { return !t.After(untilTime) })
	}

	if logOpts.Reverse {
		for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		}
	}

	// Limit always keeps the most recent entries.
	if logOpts.Limit > 0 && len(filtered) > logOpts.Limit {
		if logOpts.Reverse {
			filtered = filtered[:logOpts.Limit]
		} else {
			filtered = filtered[len(filtered)-logOpts.Limit:]
		}
	}

	result.Entries = filtered
	return result, nil
}

func filterBySecret(entries []audit.Entry, secret string) []audit.Entry {
	var result []audit.Entry
	for _, e := range entries {
		if e.Secret == secret {
			result = append(result, e)
		}
	}
	return result
}

// filterByOperations filters entries by operation types.
func filterByOperations(entries []audit.Entry, ops []string) []audit.Entry {
	opSet := make(map[string]bool)
	for _, op := range ops {
		opSet[strings.ToLower(op)] = true
	}

	var result []audit.Entry
	for _, e := range entries {
		if opSet[strings.ToLower(e.Operation)] {
			result = append(result, e)
		}
	}
	return result
}

// filterByTime keeps entries whose timestamp satisfies keep. Entries with
// unparseable timestamps are dropped.
func filterByTime(entries []audit.Entry, keep func(time.Time) bool) []audit.Entry {
	var result []audit.Entry
	for _, e := range entries {
		t, err := parseTimestamp(e.Timestamp)
		if err != nil {
			continue
		}
		if keep(t) {
			result = append(result, e)
		}
	}
	return result
}

// parseTimestamp accepts the audit log's microsecond format and RFC3339.
func parseTimestamp(ts string) (time.Time, error) {
	t, err := time.Parse("2006-01-02T15:04:05.000000Z", ts)
	if err != nil {
		t, err = time.Parse(time.RFC3339, ts)
	}
	return t, err
}

// FormatDate formats a timestamp string to YYYY-MM-DD.
func FormatDate(ts string) string {
	t, err := parseTimestamp(ts)
	if err != nil {
		if len(ts) >= 10 {
			return ts[:10]
		}
		return ts
	}
	return t.Format("2006-01-02")
}

// FormatDateTime formats a timestamp string to YYYY-MM-DD HH:MM:SS.
func FormatDateTime(ts string) string {
	t, err := parseTimestamp(ts)
	if err != nil {
		if len(ts) >= 19 {
			return ts[:19]
		}
		return ts
	}
	return t.Format("2006-01-02 15:04:05")
}

// FormatDetails describes what an entry touched.
func FormatDetails(e audit.Entry) string {
	switch e.Operation {
	case "get", "set", "generate", "remove":
		return e.Secret
	case "list":
		return fmt.Sprintf("%d secrets", e.Count)
	case "init":
		return e.VaultUUID
	default:
		return ""
	}
}
