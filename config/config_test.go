package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Name:     "batch",
			User:     "ops",
			Password: "secret",
			Host:     "db.internal",
			Port:     "5432",
			SSLMode:  "disable",
		},
		Schedule: ScheduleConfig{Path: "batch.csv"},
	}
}

func TestValidateComplete(t *testing.T) {
	require.NoError(t, completeConfig().Validate())
}

func TestValidateListsEveryMissingCredential(t *testing.T) {
	cfg := completeConfig()
	cfg.Database.User = ""
	cfg.Database.Password = ""
	cfg.Database.Port = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_USER")
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.Contains(t, err.Error(), "DB_PORT")
	assert.NotContains(t, err.Error(), "DB_NAME")
	assert.NotContains(t, err.Error(), "DB_HOST")
}

func TestValidateEmptySchedulePath(t *testing.T) {
	cfg := completeConfig()
	cfg.Schedule.Path = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schedule.path")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_NAME", "batch")
	t.Setenv("DB_USER", "ops")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5432")

	v := viper.New()
	BindCredentialEnvVars(v)
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "batch", cfg.Database.Name)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "batch.csv", cfg.Schedule.Path)
}

func TestMorningSchedulePathFallback(t *testing.T) {
	cfg := completeConfig()
	assert.Equal(t, "batch.csv", cfg.MorningSchedulePath())

	cfg.Schedule.MorningPath = "batchAMJobs.csv"
	assert.Equal(t, "batchAMJobs.csv", cfg.MorningSchedulePath())
}
