package configs

import (
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/yap/internal/errors"
)

const (
	// YapDirName is the per-user directory under $HOME.
	YapDirName = ".yap"

	// ConfigFileName is the settings file inside the yap directory.
	ConfigFileName = "config.yaml"

	// VaultDirName is the default vault directory inside the yap directory.
	VaultDirName = "vault"

	// PassphraseEnv names the environment variable read for the vault passphrase.
	PassphraseEnv = "YAP_PASSPHRASE"
)

type UserSettings struct {
	YapPath          string
	ConfigPath       string
	DefaultVaultPath string
}

var UserYapSettings = &UserSettings{}

// InitUserSettings resolves the user's yap directories from $HOME.
func InitUserSettings() error {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return kerrors.ErrNoHomeDir
	}

	UserYapSettings = NewUserSettings(filepath.Join(homeDir, YapDirName))
	return nil
}

// NewUserSettings returns settings rooted at yapPath.
func NewUserSettings(yapPath string) *UserSettings {
	return &UserSettings{
		YapPath:          yapPath,
		ConfigPath:       filepath.Join(yapPath, ConfigFileName),
		DefaultVaultPath: filepath.Join(yapPath, VaultDirName),
	}
}

// VaultPath returns store when set, otherwise the default vault directory.
func (s *UserSettings) VaultPath(store string) string {
	if store != "" {
		return store
	}
	return s.DefaultVaultPath
}
