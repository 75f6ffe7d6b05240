package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/vigil/errors"
)

// Load reads the vigil configuration using Viper.
//
// Precedence (lowest to highest): defaults < user config (~/.vigil/config.toml)
// < project config (vigil.toml found by upward search) < environment.
func Load() (*Config, error) {
	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &config, nil
}

// LoadWithViper loads configuration using a provided Viper instance (used in tests)
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	v := viper.New()

	// Set up environment variable binding
	v.SetEnvPrefix("VIGIL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind the bare credential variables operators already export for the
	// batch database. These win over the VIGIL_-prefixed forms.
	BindCredentialEnvVars(v)

	SetDefaults(v)

	mergeConfigFiles(v)

	return v
}

// BindCredentialEnvVars binds the five database credential variables to
// their conventional unprefixed names.
func BindCredentialEnvVars(v *viper.Viper) {
	v.BindEnv("database.name", "DB_NAME", "VIGIL_DATABASE_NAME")
	v.BindEnv("database.user", "DB_USER", "VIGIL_DATABASE_USER")
	v.BindEnv("database.password", "DB_PASSWORD", "VIGIL_DATABASE_PASSWORD")
	v.BindEnv("database.host", "DB_HOST", "VIGIL_DATABASE_HOST")
	v.BindEnv("database.port", "DB_PORT", "VIGIL_DATABASE_PORT")
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Credentials have no defaults; absence is a validation error.
	v.SetDefault("database.sslmode", "disable")

	// Schedule defaults
	v.SetDefault("schedule.path", "batch.csv")
	v.SetDefault("schedule.morning_path", "")
}

// findProjectConfig searches for vigil.toml by walking up the directory tree.
// Returns the path to the first config file found, or empty string if none found.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, "vigil.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root, stop searching
			break
		}
		dir = parent
	}

	return ""
}

// mergeConfigFiles merges configuration files in precedence order:
// user config first, then project config on top.
func mergeConfigFiles(v *viper.Viper) {
	homeDir, _ := os.UserHomeDir()

	configPaths := []string{
		filepath.Join(homeDir, ".vigil", "config.toml"),
	}
	if projectConfig := findProjectConfig(); projectConfig != "" {
		configPaths = append(configPaths, projectConfig)
	}

	for _, path := range configPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		v.MergeInConfig()
	}
}
