package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// LogFileName is the audit log inside a vault directory.
const LogFileName = ".yap-audit.jsonl"

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"`             // RFC3339 with microseconds.
	Operation string `json:"op"`             // Operation name.
	VaultUUID string `json:"vault,omitempty"` // Vault the operation ran against.

	// Optional fields depending on operation.
	Secret string `json:"secret,omitempty"` // For get/set/generate/remove.
	Count  int    `json:"count,omitempty"`  // For list.
	Failed bool   `json:"failed,omitempty"` // Set when the operation returned an error.
}

// Log appends an entry to the audit log of the vault at vaultPath.
// Operations should not fail just because audit logging failed, so errors
// are dropped.
func Log(vaultPath string, entry Entry) {
	if vaultPath == "" {
		return
	}

	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	// #nosec G304 -- path is built from the user's own vault directory.
	f, err := os.OpenFile(LogPath(vaultPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the audit log file of a vault.
func LogPath(vaultPath string) string {
	return filepath.Join(vaultPath, LogFileName)
}

// ReadEntries reads all entries from a vault's audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries(vaultPath string) ([]Entry, error) {
	data, err := os.ReadFile(LogPath(vaultPath))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				// Skip malformed entries.
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
