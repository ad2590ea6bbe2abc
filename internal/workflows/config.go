package workflows

import (
	"context"

	"github.com/PolarWolf314/yap/internal/configs"
)

// ConfigGet returns the value of the named setting.
//
// Returns ErrBadConfigKey if key is not a known setting.
func ConfigGet(ctx context.Context, settings *configs.UserSettings, key string) (string, error) {
	settingKey, err := configs.ParseSettingKey(key)
	if err != nil {
		return "", err
	}

	config, err := configs.ReadConfiguration(settings.YapPath)
	if err != nil {
		return "", err
	}

	return config.Get(settingKey), nil
}

// ConfigSet updates the named setting and saves the settings file.
//
// Returns ErrBadConfigKey if key is not a known setting.
func ConfigSet(ctx context.Context, settings *configs.UserSettings, key, value string) error {
	settingKey, err := configs.ParseSettingKey(key)
	if err != nil {
		return err
	}

	config, err := configs.ReadConfiguration(settings.YapPath)
	if err != nil {
		return err
	}

	config.Set(settingKey, value)
	return config.Save()
}
