package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/teranos/vigil/config"
	"github.com/teranos/vigil/errors"
	"github.com/teranos/vigil/logger"
)

// Open opens a connection to the batch execution store described by cfg.
// If log is provided, logs database operations; otherwise operates silently.
//
// The handle is verified with a ping before it is returned, so credential
// and connectivity problems surface here rather than on the first query.
func Open(cfg *config.Config, log *zap.SugaredLogger) (*sql.DB, error) {
	if log != nil {
		log.Debugw("Opening database",
			logger.FieldHost, cfg.Database.Host,
			logger.FieldPort, cfg.Database.Port,
			logger.FieldDatabase, cfg.Database.Name,
		)
	}

	db, err := sql.Open("postgres", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, wrapConnectError(err, cfg)
	}

	if log != nil {
		log.Infow("Database connected",
			logger.FieldHost, cfg.Database.Host,
			logger.FieldPort, cfg.Database.Port,
			logger.FieldDatabase, cfg.Database.Name,
		)
	}

	return db, nil
}

// wrapConnectError wraps a ping failure with an operator hint. Network-level
// failures are marked with ErrConnectionFailed and point at the host settings;
// anything else, typically an authentication rejection, points at the
// credentials instead.
func wrapConnectError(err error, cfg *config.Config) error {
	wrapped := errors.Wrapf(err, "failed to reach database %s@%s:%s",
		cfg.Database.Name, cfg.Database.Host, cfg.Database.Port)
	if IsConnectionError(err) {
		wrapped = errors.Mark(wrapped, ErrConnectionFailed)
		return errors.WithHint(wrapped, "check that the database host and port are reachable (DB_HOST, DB_PORT)")
	}
	return errors.WithHint(wrapped, "check the database credentials (DB_NAME, DB_USER, DB_PASSWORD)")
}

// dsn builds a lib/pq connection string in key=value form.
func dsn(cfg *config.Config) string {
	return fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.SSLMode,
	)
}
