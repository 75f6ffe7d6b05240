package config

import (
	"strings"

	"github.com/teranos/vigil/errors"
)

// Validate checks that the configuration is complete enough to run.
// Every missing credential is reported in one error so the operator can
// fix them all at once. Called before any database work begins.
func (c *Config) Validate() error {
	var missing []string
	if c.Database.Name == "" {
		missing = append(missing, "DB_NAME")
	}
	if c.Database.User == "" {
		missing = append(missing, "DB_USER")
	}
	if c.Database.Password == "" {
		missing = append(missing, "DB_PASSWORD")
	}
	if c.Database.Host == "" {
		missing = append(missing, "DB_HOST")
	}
	if c.Database.Port == "" {
		missing = append(missing, "DB_PORT")
	}

	if len(missing) > 0 {
		err := errors.Newf("database credentials are not fully set: missing %s",
			strings.Join(missing, ", "))
		return errors.WithHint(err,
			"export the listed variables or set the [database] section in vigil.toml")
	}

	if c.Schedule.Path == "" {
		return errors.New("schedule.path cannot be empty")
	}

	return nil
}
