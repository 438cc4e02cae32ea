package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings are the static knobs of the tool. They come from an optional
// config file plus LEDGER_* environment variables (LEDGER_OUTPUT_DIR and so
// on), with the environment winning.
type Settings struct {
	OutputDir       string
	Months          int
	Debug           bool
	CredentialsFile string
}

// Load reads settings from path (skipped when empty) and the environment.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("output_dir", "receipts")
	v.SetDefault("months", 6)
	v.SetDefault("debug", false)
	v.SetDefault("credentials_file", "")
	v.SetEnvPrefix("LEDGER")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	settings := &Settings{
		OutputDir:       v.GetString("output_dir"),
		Months:          v.GetInt("months"),
		Debug:           v.GetBool("debug"),
		CredentialsFile: v.GetString("credentials_file"),
	}
	if settings.Months <= 0 {
		return nil, fmt.Errorf("months must be positive, got %d", settings.Months)
	}
	return settings, nil
}
