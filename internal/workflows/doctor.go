package workflows

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/yap/internal/configs"
	"github.com/PolarWolf314/yap/internal/secrets"
)

// CheckStatus represents the result status of a health check.
type CheckStatus int

const (
	// CheckPass means the check passed.
	CheckPass CheckStatus = iota
	// CheckWarning means the check found a non-critical issue.
	CheckWarning
	// CheckError means the check found a critical issue.
	CheckError
)

// String returns a string representation of CheckStatus.
func (s CheckStatus) String() string {
	switch s {
	case CheckPass:
		return "pass"
	case CheckWarning:
		return "warning"
	case CheckError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for CheckStatus.
func (s CheckStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// CheckResult holds the result of a single health check.
type CheckResult struct {
	Name       string      `json:"name"`
	Status     CheckStatus `json:"status"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// DoctorResult holds the complete result of the doctor workflow.
type DoctorResult struct {
	Checks      []CheckResult `json:"checks"`
	Summary     DoctorSummary `json:"summary"`
	Suggestions []string      `json:"suggestions,omitempty"`
}

// DoctorSummary holds counts of checks by status.
type DoctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

// Doctor runs health checks on the settings file and the vault.
// It never opens secrets, so opts.Engine may be nil.
//
// The doctor workflow checks:
//   - Settings file presence and validity
//   - Vault directory presence and permissions
//   - Vault metadata and key derivation parameters
//   - Secret file permissions and minimum sealed size
//   - Leftover temporary files from interrupted writes
func Doctor(ctx context.Context, opts Options) (*DoctorResult, error) {
	vaultPath := opts.VaultPath()

	checks := []func() CheckResult{
		func() CheckResult { return checkSettingsFile(opts.Settings.YapPath) },
		func() CheckResult { return checkVaultDirectory(vaultPath) },
		func() CheckResult { return checkVaultMetadata(vaultPath) },
		func() CheckResult { return checkSecretFiles(vaultPath) },
		func() CheckResult { return checkTempFiles(vaultPath) },
	}

	var results []CheckResult
	for _, check := range checks {
		results = append(results, check())
	}

	var suggestions []string
	seen := make(map[string]bool)
	for _, result := range results {
		if result.Suggestion != "" && result.Status != CheckPass && !seen[result.Suggestion] {
			suggestions = append(suggestions, result.Suggestion)
			seen[result.Suggestion] = true
		}
	}

	return &DoctorResult{
		Checks:      results,
		Summary:     calculateDoctorSummary(results),
		Suggestions: suggestions,
	}, nil
}

func checkSettingsFile(yapPath string) CheckResult {
	const name = "Settings file"

	if _, err := os.Stat(filepath.Join(yapPath, configs.ConfigFileName)); os.IsNotExist(err) {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    "Settings file not found",
			Suggestion: "Run 'yap init' to create it",
		}
	}

	if _, err := configs.ReadConfiguration(yapPath); err != nil {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    fmt.Sprintf("Settings file is invalid: %v", err),
			Suggestion: "Fix or delete the settings file, then run 'yap init'",
		}
	}

	return CheckResult{Name: name, Status: CheckPass, Message: "Settings file is valid"}
}

func checkVaultDirectory(vaultPath string) CheckResult {
	const name = "Vault directory"

	info, err := os.Stat(vaultPath)
	if os.IsNotExist(err) {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    fmt.Sprintf("Vault not found at %s", vaultPath),
			Suggestion: "Run 'yap init' to create the vault",
		}
	}
	if err != nil {
		return CheckResult{
			Name:    name,
			Status:  CheckError,
			Message: fmt.Sprintf("Failed to stat vault: %v", err),
		}
	}
	if !info.IsDir() {
		return CheckResult{
			Name:    name,
			Status:  CheckError,
			Message: fmt.Sprintf("%s is not a directory", vaultPath),
		}
	}

	if mode := info.Mode().Perm(); mode&0077 != 0 {
		return CheckResult{
			Name:       name,
			Status:     CheckWarning,
			Message:    fmt.Sprintf("Vault directory is accessible by other users (%04o)", mode),
			Suggestion: fmt.Sprintf("Run 'chmod 700 %s' to fix permissions", vaultPath),
		}
	}

	return CheckResult{Name: name, Status: CheckPass, Message: "Vault directory exists with correct permissions"}
}

func checkVaultMetadata(vaultPath string) CheckResult {
	const name = "Vault metadata"

	if _, err := os.Stat(vaultPath); err != nil {
		return CheckResult{Name: name, Status: CheckError, Message: "Cannot check metadata: vault not found"}
	}

	metadata, err := configs.LoadVaultMetadata(vaultPath)
	if err != nil {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    fmt.Sprintf("Vault metadata is invalid: %v", err),
			Suggestion: fmt.Sprintf("Delete %s and run 'yap init' to recreate it", configs.VaultMetadataFileName),
		}
	}

	if metadata.Vault.UUID == "" {
		return CheckResult{
			Name:       name,
			Status:     CheckWarning,
			Message:    "Vault has no metadata file",
			Suggestion: "Run 'yap init' to write vault metadata",
		}
	}

	if metadata.Vault.KDF != secrets.KDFName || metadata.Vault.Iterations != secrets.KDFIterations {
		return CheckResult{
			Name:   name,
			Status: CheckError,
			Message: fmt.Sprintf("Vault was created with %s/%d, this build uses %s/%d",
				metadata.Vault.KDF, metadata.Vault.Iterations, secrets.KDFName, secrets.KDFIterations),
		}
	}

	return CheckResult{Name: name, Status: CheckPass, Message: fmt.Sprintf("Vault %s is valid", metadata.Vault.UUID)}
}

func checkSecretFiles(vaultPath string) CheckResult {
	const name = "Secret files"

	entries, err := os.ReadDir(vaultPath)
	if err != nil {
		return CheckResult{Name: name, Status: CheckError, Message: "Cannot check secrets: vault not readable"}
	}

	var malformed, permissive []string
	count := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		count++

		info, err := entry.Info()
		if err != nil {
			malformed = append(malformed, entry.Name())
			continue
		}
		if info.Size() < secrets.Overhead {
			malformed = append(malformed, entry.Name())
		}
		if info.Mode().Perm()&0077 != 0 {
			permissive = append(permissive, entry.Name())
		}
	}

	if len(malformed) > 0 {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    fmt.Sprintf("%d secret(s) are too short to be sealed: %s", len(malformed), strings.Join(malformed, ", ")),
			Suggestion: "Set these secrets again with 'yap set'",
		}
	}

	if len(permissive) > 0 {
		return CheckResult{
			Name:       name,
			Status:     CheckWarning,
			Message:    fmt.Sprintf("%d secret(s) are accessible by other users: %s", len(permissive), strings.Join(permissive, ", ")),
			Suggestion: fmt.Sprintf("Run 'chmod 600' on the files in %s", vaultPath),
		}
	}

	return CheckResult{Name: name, Status: CheckPass, Message: fmt.Sprintf("%d secret(s) look well formed", count)}
}

func checkTempFiles(vaultPath string) CheckResult {
	const name = "Interrupted writes"

	matches, err := filepath.Glob(filepath.Join(vaultPath, ".yap-tmp-*"))
	if err != nil || len(matches) == 0 {
		return CheckResult{Name: name, Status: CheckPass, Message: "No leftover temporary files"}
	}

	return CheckResult{
		Name:       name,
		Status:     CheckWarning,
		Message:    fmt.Sprintf("Found %d leftover temporary file(s)", len(matches)),
		Suggestion: fmt.Sprintf("Remove the .yap-tmp-* files in %s", vaultPath),
	}
}

// calculateDoctorSummary calculates the counts of checks by status.
func calculateDoctorSummary(results []CheckResult) DoctorSummary {
	var summary DoctorSummary
	for _, result := range results {
		switch result.Status {
		case CheckPass:
			summary.Passed++
		case CheckWarning:
			summary.Warnings++
		case CheckError:
			summary.Errors++
		}
	}
	return summary
}
