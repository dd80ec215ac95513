package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const (
	keyStoreDriver          = "store.driver"
	keyStorePath            = "store.path"
	keyWeekendDays          = "settings.weekend_days"
	keyTwentyFourHour       = "settings.24hr_clock"
	keyNotificationsEnabled = "notifications.enabled"
	keyHookLogin            = "hooks.login"
	keyHookBreakStart       = "hooks.break_start"
	keyHookBreakStop        = "hooks.break_stop"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. The file is created with default values if it does
// not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyStoreDriver, "bolt")
	v.SetDefault(keyStorePath, "")
	v.SetDefault(keyWeekendDays, []string{"saturday", "sunday"})
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyHookLogin, "")
	v.SetDefault(keyHookBreakStart, "")
	v.SetDefault(keyHookBreakStop, "")
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
