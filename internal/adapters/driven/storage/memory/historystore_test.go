package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contexta-labs/contexta-cli/internal/core/domain"
)

func TestHistoryStore_AppendAndList(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, domain.HistoryEntry{ID: "h1", DocumentID: "D1"}))
	require.NoError(t, store.Append(ctx, domain.HistoryEntry{ID: "h2", DocumentID: "D2"}))
	require.NoError(t, store.Append(ctx, domain.HistoryEntry{ID: "h3", DocumentID: "D1"}))

	all, err := store.List(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "h3", all[0].ID, "most recent first")

	byDoc, err := store.List(ctx, "D1", 0)
	require.NoError(t, err)
	require.Len(t, byDoc, 2)
	assert.Equal(t, "h3", byDoc[0].ID)
	assert.Equal(t, "h1", byDoc[1].ID)

	limited, err := store.List(ctx, "", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "h3", limited[0].ID)
}
