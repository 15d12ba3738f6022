package context

import (
	stdctx "context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/taskboard/taskboard-server/internal/model"
)

func TestManager_SetAndGetClaims(t *testing.T) {
	m := NewManager()
	claims := model.TokenClaims{UserID: uuid.New(), Username: "alice", Role: model.RoleUser}

	ctx := m.SetClaims(stdctx.Background(), claims)

	got, ok := m.GetClaims(ctx)
	assert.True(t, ok)
	assert.Equal(t, claims, got)
}

func TestManager_GetClaims_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetClaims(stdctx.Background())
	assert.False(t, ok)
}
