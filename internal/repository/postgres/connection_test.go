package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard-server/internal/config"
)

func TestNewConnection_InvalidDSN(t *testing.T) {
	conn, err := NewConnection(context.Background(), config.Database{DSN: "://not-a-dsn"})

	require.Error(t, err)
	assert.Nil(t, conn)
	assert.Contains(t, err.Error(), "failed to parse postgres dsn")
}

func TestConnection_CloseWithoutPool(t *testing.T) {
	conn := &Connection{}

	assert.NoError(t, conn.Close())
	assert.Error(t, conn.Ping(context.Background()))
}
