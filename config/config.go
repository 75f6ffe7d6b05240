package config

// Config represents the vigil configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
}

// DatabaseConfig holds the connection parameters for the batch execution
// store. All five credential fields are required; there are no usable
// defaults for them.
type DatabaseConfig struct {
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	SSLMode  string `mapstructure:"sslmode"`
}

// ScheduleConfig locates the expected-schedule flat files.
type ScheduleConfig struct {
	// Path is the schedule checked against the yesterday window.
	Path string `mapstructure:"path"`
	// MorningPath is the schedule checked against the today 00:00-06:00
	// window. Empty means reuse Path.
	MorningPath string `mapstructure:"morning_path"`
}

// MorningSchedulePath returns the schedule file for the morning pass,
// falling back to the main schedule path when none is configured.
func (c *Config) MorningSchedulePath() string {
	if c.Schedule.MorningPath != "" {
		return c.Schedule.MorningPath
	}
	return c.Schedule.Path
}
