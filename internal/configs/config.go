package configs

import (
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/yap/internal/errors"
)

// Settings are global settings which persist between invocations.
type Settings struct {
	RemoteURL string `yaml:"remote_url"`
	Session   string `yaml:"session"`
}

// SettingKey names a setting the user may read or update.
type SettingKey int

const (
	SettingRemoteURL SettingKey = iota
	SettingSession
)

var settingKeyNames = map[SettingKey]string{
	SettingRemoteURL: "remote_url",
	SettingSession:   "session",
}

// ParseSettingKey returns the SettingKey for name.
// Returns ErrBadConfigKey if name is not a known setting.
func ParseSettingKey(name string) (SettingKey, error) {
	for key, keyName := range settingKeyNames {
		if keyName == name {
			return key, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", kerrors.ErrBadConfigKey, name)
}

func (k SettingKey) String() string {
	return settingKeyNames[k]
}

// Configuration holds the settings and the file they were loaded from.
type Configuration struct {
	Settings Settings
	path     string
}

// InitConfiguration writes default settings to dir, creating it if needed.
// An existing settings file is left untouched.
func InitConfiguration(dir string) error {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := SaveYAML(path, &Settings{}); err != nil {
		return fmt.Errorf("failed to write default settings: %w", err)
	}
	return nil
}

// ReadConfiguration loads the settings file from dir.
func ReadConfiguration(dir string) (*Configuration, error) {
	path := filepath.Join(dir, ConfigFileName)

	config := &Configuration{path: path}
	if err := LoadYAML(path, &config.Settings); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return config, nil
}

// Get returns the value stored for key.
func (c *Configuration) Get(key SettingKey) string {
	switch key {
	case SettingRemoteURL:
		return c.Settings.RemoteURL
	case SettingSession:
		return c.Settings.Session
	}
	return ""
}

// Set updates key in memory. Call Save to persist it.
func (c *Configuration) Set(key SettingKey, value string) {
	switch key {
	case SettingRemoteURL:
		c.Settings.RemoteURL = value
	case SettingSession:
		c.Settings.Session = value
	}
}

// Save writes the settings back to the file they were read from.
func (c *Configuration) Save() error {
	if err := SaveYAML(c.path, &c.Settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
