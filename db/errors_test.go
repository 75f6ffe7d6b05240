package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/vigil/config"
	"github.com/teranos/vigil/errors"
)

func TestIsConnectionError(t *testing.T) {
	assert.False(t, IsConnectionError(nil))
	assert.False(t, IsConnectionError(errors.New("syntax error")))

	assert.True(t, IsConnectionError(ErrConnectionFailed))
	assert.True(t, IsConnectionError(errors.Wrap(ErrConnectionFailed, "opening store")))

	// Raw driver errors cannot be wrapped at the source; match on message.
	assert.True(t, IsConnectionError(errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")))
	assert.True(t, IsConnectionError(errors.New("lookup db.internal: no such host")))
}

func TestWrapConnectErrorUnreachableHost(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Name = "batch"
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5432"

	ping := errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")
	err := wrapConnectError(ping, cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnectionFailed)
	assert.Contains(t, err.Error(), "batch@db.internal:5432")

	hints := errors.GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], "DB_HOST")
}

func TestWrapConnectErrorBadCredentials(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Name = "batch"
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5432"

	ping := errors.New(`pq: password authentication failed for user "vigil"`)
	err := wrapConnectError(ping, cfg)

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrConnectionFailed))

	hints := errors.GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], "DB_PASSWORD")
}
