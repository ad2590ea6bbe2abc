package workflows

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/yap/internal/audit"
	"github.com/PolarWolf314/yap/internal/configs"
	kerrors "github.com/PolarWolf314/yap/internal/errors"
	"github.com/PolarWolf314/yap/internal/secrets"
)

func testEngine(t *testing.T, passphrase string) *secrets.Engine {
	t.Helper()
	engine, err := secrets.NewEngineFromKey(secrets.DeriveKey(passphrase))
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}
	return engine
}

// setupVault returns options for an initialized vault in a temp directory.
func setupVault(t *testing.T) Options {
	t.Helper()
	opts := Options{
		Settings: configs.NewUserSettings(t.TempDir()),
		Engine:   testEngine(t, "correct horse"),
	}
	if _, err := Init(context.Background(), opts); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return opts
}

func TestInit(t *testing.T) {
	ctx := context.Background()
	opts := Options{Settings: configs.NewUserSettings(t.TempDir())}

	result, err := Init(ctx, opts)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if result.AlreadyExisted {
		t.Error("expected a fresh vault")
	}
	if result.VaultUUID == "" {
		t.Error("expected a vault UUID")
	}
	if _, err := os.Stat(result.ConfigPath); err != nil {
		t.Errorf("settings file missing: %v", err)
	}

	again, err := Init(ctx, opts)
	if err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	if !again.AlreadyExisted {
		t.Error("expected second Init to report an existing vault")
	}
	if again.VaultUUID != result.VaultUUID {
		t.Errorf("vault UUID changed from %s to %s", result.VaultUUID, again.VaultUUID)
	}
}

func TestInit_KeepsSettings(t *testing.T) {
	ctx := context.Background()
	opts := Options{Settings: configs.NewUserSettings(t.TempDir())}

	if _, err := Init(ctx, opts); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := ConfigSet(ctx, opts.Settings, "remote_url", "git@example.com:me/vault"); err != nil {
		t.Fatalf("ConfigSet failed: %v", err)
	}
	if _, err := Init(ctx, opts); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	got, err := ConfigGet(ctx, opts.Settings, "remote_url")
	if err != nil {
		t.Fatalf("ConfigGet failed: %v", err)
	}
	if got != "git@example.com:me/vault" {
		t.Errorf("remote_url = %q after re-init", got)
	}
}

func TestSetGet(t *testing.T) {
	ctx := context.Background()
	opts := setupVault(t)

	setResult, err := Set(ctx, opts, "db", "db-password-123")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if setResult.Overwritten {
		t.Error("first Set should not report an overwrite")
	}

	got, err := Get(ctx, opts, "db")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Value != "db-password-123" {
		t.Errorf("Get = %q, want %q", got.Value, "db-password-123")
	}

	setResult, err = Set(ctx, opts, "db", "rotated")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if !setResult.Overwritten {
		t.Error("second Set should report an overwrite")
	}

	info, err := os.Stat(filepath.Join(opts.VaultPath(), "db"))
	if err != nil {
		t.Fatalf("secret file missing: %v", err)
	}
	if info.Size() != int64(len("rotated")+secrets.Overhead) {
		t.Errorf("secret file size = %d, want %d", info.Size(), len("rotated")+secrets.Overhead)
	}
}

func TestGet_WrongPassphrase(t *testing.T) {
	ctx := context.Background()
	opts := setupVault(t)

	if _, err := Set(ctx, opts, "db", "value"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	opts.Engine = testEngine(t, "wrong horse")
	_, err := Get(ctx, opts, "db")
	if !errors.Is(err, kerrors.ErrAuthenticationFailure) {
		t.Errorf("expected ErrAuthenticationFailure, got %v", err)
	}
}

func TestGet_Errors(t *testing.T) {
	ctx := context.Background()
	opts := setupVault(t)

	if _, err := Get(ctx, opts, "missing"); !errors.Is(err, kerrors.ErrSecretNotFound) {
		t.Errorf("expected ErrSecretNotFound, got %v", err)
	}
	if _, err := Get(ctx, opts, "../escape"); !errors.Is(err, kerrors.ErrInvalidSecretName) {
		t.Errorf("expected ErrInvalidSecretName, got %v", err)
	}

	opts.Store = filepath.Join(t.TempDir(), "nowhere")
	if _, err := Get(ctx, opts, "db"); !errors.Is(err, kerrors.ErrVaultNotInitialized) {
		t.Errorf("expected ErrVaultNotInitialized, got %v", err)
	}
}

func TestGet_Truncated(t *testing.T) {
	ctx := context.Background()
	opts := setupVault(t)

	if err := os.WriteFile(filepath.Join(opts.VaultPath(), "short"), make([]byte, 27), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := Get(ctx, opts, "short"); !errors.Is(err, kerrors.ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput, got %v", err)
	}
}

func TestListAndRemove(t *testing.T) {
	ctx := context.Background()
	opts := setupVault(t)

	for _, name := range []string{"prod-db", "prod-api", "dev-db"} {
		if _, err := Set(ctx, opts, name, "v"); err != nil {
			t.Fatalf("Set %s failed: %v", name, err)
		}
	}

	all, err := List(ctx, opts, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if strings.Join(all.Names, ",") != "dev-db,prod-api,prod-db" {
		t.Errorf("List = %v", all.Names)
	}

	prod, err := List(ctx, opts, "prod-*")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(prod.Names) != 2 {
		t.Errorf("expected 2 prod secrets, got %v", prod.Names)
	}

	if err := Remove(ctx, opts, "prod-db"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := Remove(ctx, opts, "prod-db"); !errors.Is(err, kerrors.ErrSecretNotFound) {
		t.Errorf("expected ErrSecretNotFound, got %v", err)
	}
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	opts := setupVault(t)

	result, err := Generate(ctx, opts, GenerateOptions{Name: "api"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(result.Value) != secrets.DefaultPasswordLength {
		t.Errorf("password length = %d, want %d", len(result.Value), secrets.DefaultPasswordLength)
	}

	got, err := Get(ctx, opts, "api")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Value != result.Value {
		t.Error("stored value differs from generated password")
	}

	if _, err := Generate(ctx, opts, GenerateOptions{Name: "api", Length: 4}); !errors.Is(err, kerrors.ErrInvalidLength) {
		t.Errorf("expected ErrInvalidLength, got %v", err)
	}
}

func TestSync(t *testing.T) {
	ctx := context.Background()
	opts := setupVault(t)

	err := Sync(ctx, opts)
	if !errors.Is(err, kerrors.ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}

	if err := ConfigSet(ctx, opts.Settings, "remote_url", "https://example.com/vault"); err != nil {
		t.Fatalf("ConfigSet failed: %v", err)
	}
	err = Sync(ctx, opts)
	if !errors.Is(err, kerrors.ErrNotImplemented) || !strings.Contains(err.Error(), "https://example.com/vault") {
		t.Errorf("expected ErrNotImplemented naming the remote, got %v", err)
	}
}

func TestConfig_BadKey(t *testing.T) {
	ctx := context.Background()
	opts := setupVault(t)

	if _, err := ConfigGet(ctx, opts.Settings, "colour"); !errors.Is(err, kerrors.ErrBadConfigKey) {
		t.Errorf("expected ErrBadConfigKey, got %v", err)
	}
	if err := ConfigSet(ctx, opts.Settings, "colour", "blue"); !errors.Is(err, kerrors.ErrBadConfigKey) {
		t.Errorf("expected ErrBadConfigKey, got %v", err)
	}
}

func TestLog(t *testing.T) {
	ctx := context.Background()
	opts := setupVault(t)

	if _, err := Set(ctx, opts, "db", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := Get(ctx, opts, "db"); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if _, err := Get(ctx, opts, "missing"); err == nil {
		t.Fatal("expected Get of missing secret to fail")
	}

	result, err := Log(ctx, opts, LogOptions{})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if result.TotalEntriesBeforeFilter != 4 {
		t.Errorf("expected 4 entries (init, set, get, get), got %d", result.TotalEntriesBeforeFilter)
	}

	gets, err := Log(ctx, opts, LogOptions{Operations: "get"})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if len(gets.Entries) != 2 {
		t.Fatalf("expected 2 get entries, got %d", len(gets.Entries))
	}
	if !gets.Entries[1].Failed {
		t.Error("expected the missing-secret get to be marked failed")
	}

	bySecret, err := Log(ctx, opts, LogOptions{Secret: "db", Limit: 1, Reverse: true})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if len(bySecret.Entries) != 1 || bySecret.Entries[0].Operation != "get" {
		t.Errorf("expected most recent db entry to be a get, got %+v", bySecret.Entries)
	}
}

func TestLog_DateFilters(t *testing.T) {
	ctx := context.Background()
	opts := setupVault(t)
	vaultPath := opts.VaultPath()

	if err := os.Remove(audit.LogPath(vaultPath)); err != nil {
		t.Fatalf("failed to reset audit log: %v", err)
	}
	audit.Log(vaultPath, audit.Entry{Timestamp: "2024-01-10T12:00:00.000000Z", Operation: "set", Secret: "a"})
	audit.Log(vaultPath, audit.Entry{Timestamp: "2024-02-10T12:00:00.000000Z", Operation: "set", Secret: "b"})
	audit.Log(vaultPath, audit.Entry{Timestamp: "2024-03-10T12:00:00.000000Z", Operation: "set", Secret: "c"})

	result, err := Log(ctx, opts, LogOptions{Since: "2024-02-01", Until: "2024-02-10"})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if len(result.Entries) != 1 || result.Entries[0].Secret != "b" {
		t.Errorf("expected only secret b, got %+v", result.Entries)
	}

	if _, err := Log(ctx, opts, LogOptions{Since: "10/02/2024"}); !errors.Is(err, kerrors.ErrInvalidDateFormat) {
		t.Errorf("expected ErrInvalidDateFormat, got %v", err)
	}
}

func TestLog_NoAuditLog(t *testing.T) {
	ctx := context.Background()
	opts := setupVault(t)

	if err := os.Remove(audit.LogPath(opts.VaultPath())); err != nil {
		t.Fatalf("failed to remove audit log: %v", err)
	}

	if _, err := Log(ctx, opts, LogOptions{}); !errors.Is(err, kerrors.ErrNoAuditLog) {
		t.Errorf("expected ErrNoAuditLog, got %v", err)
	}
}

func TestDoctor_Healthy(t *testing.T) {
	ctx := context.Background()
	opts := setupVault(t)

	if _, err := Set(ctx, opts, "db", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	result, err := Doctor(ctx, opts)
	if err != nil {
		t.Fatalf("Doctor failed: %v", err)
	}
	if result.Summary.Errors != 0 || result.Summary.Warnings != 0 {
		for _, c := range result.Checks {
			t.Logf("%s: %s %s", c.Name, c.Status, c.Message)
		}
		t.Errorf("expected a healthy vault, got %+v", result.Summary)
	}
	if len(result.Suggestions) != 0 {
		t.Errorf("expected no suggestions, got %v", result.Suggestions)
	}
}

func TestDoctor_Problems(t *testing.T) {
	ctx := context.Background()
	opts := setupVault(t)
	vaultPath := opts.VaultPath()

	if err := os.WriteFile(filepath.Join(vaultPath, "truncated"), []byte("short"), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(vaultPath, ".yap-tmp-123"), nil, 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	result, err := Doctor(ctx, opts)
	if err != nil {
		t.Fatalf("Doctor failed: %v", err)
	}

	statuses := make(map[string]CheckStatus)
	for _, c := range result.Checks {
		statuses[c.Name] = c.Status
	}
	if statuses["Secret files"] != CheckError {
		t.Errorf("expected truncated secret to be an error, got %s", statuses["Secret files"])
	}
	if statuses["Interrupted writes"] != CheckWarning {
		t.Errorf("expected leftover temp file to be a warning, got %s", statuses["Interrupted writes"])
	}
	if len(result.Suggestions) < 2 {
		t.Errorf("expected suggestions, got %v", result.Suggestions)
	}
}

func TestDoctor_NoVault(t *testing.T) {
	opts := Options{Settings: configs.NewUserSettings(t.TempDir())}

	result, err := Doctor(context.Background(), opts)
	if err != nil {
		t.Fatalf("Doctor failed: %v", err)
	}
	if result.Summary.Errors == 0 {
		t.Error("expected errors for a missing vault")
	}

	found := false
	for _, s := range result.Suggestions {
		if strings.Contains(s, "yap init") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a 'yap init' suggestion, got %v", result.Suggestions)
	}
}

func TestCheckStatus_JSON(t *testing.T) {
	data, err := CheckWarning.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if string(data) != `"warning"` {
		t.Errorf("MarshalJSON = %s", data)
	}
}

func TestFormatHelpers(t *testing.T) {
	ts := "2024-03-10T12:34:56.000000Z"
	if got := FormatDate(ts); got != "2024-03-10" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatDateTime(ts); got != "2024-03-10 12:34:56" {
		t.Errorf("FormatDateTime = %q", got)
	}
	if got := FormatDate("garbage"); got != "garbage" {
		t.Errorf("FormatDate of unparseable input = %q", got)
	}

	if got := FormatDetails(audit.Entry{Operation: "get", Secret: "db"}); got != "db" {
		t.Errorf("FormatDetails(get) = %q", got)
	}
	if got := FormatDetails(audit.Entry{Operation: "list", Count: 3}); got != "3 secrets" {
		t.Errorf("FormatDetails(list) = %q", got)
	}
}
