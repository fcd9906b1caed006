package repository

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	appErr "github.com/goalplan/engine/pkg/errors"
	"github.com/goalplan/engine/pkg/database"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "plans.db"), database.Options{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestPlanRepository_InsertAssignsIncreasingIDs(t *testing.T) {
	repo := NewPlanRepository(openTestDB(t))
	ctx := context.Background()

	first, err := repo.Insert(ctx, "Bakery Launch", json.RawMessage(`{"project_name":"Bakery Launch","tasks":[]}`))
	require.NoError(t, err)
	second, err := repo.Insert(ctx, "Bakery Launch", json.RawMessage(`{"project_name":"Bakery Launch","tasks":[]}`))
	require.NoError(t, err)

	assert.Equal(t, uint(1), first)
	assert.Greater(t, second, first)
}

func TestPlanRepository_GetDataRoundTrip(t *testing.T) {
	repo := NewPlanRepository(openTestDB(t))
	ctx := context.Background()

	doc := `{"project_name":"Bakery Launch","tasks":[{"task_id":1,"task_name":"Find location","description":"Scout","timeline_days":14,"dependencies":[]}]}`
	id, err := repo.Insert(ctx, "Bakery Launch", json.RawMessage(doc))
	require.NoError(t, err)

	got, err := repo.GetData(ctx, id)
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(got))
}

func TestPlanRepository_GetDataNotFound(t *testing.T) {
	repo := NewPlanRepository(openTestDB(t))
	ctx := context.Background()

	_, err := repo.GetData(ctx, 42)
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))

	_, err = repo.Insert(ctx, "Other", json.RawMessage(`{"project_name":"Other","tasks":[]}`))
	require.NoError(t, err)

	_, err = repo.GetData(ctx, 42)
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}

func TestPlanRepository_ListSummariesNewestFirst(t *testing.T) {
	repo := NewPlanRepository(openTestDB(t))
	ctx := context.Background()

	empty, err := repo.ListSummaries(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, name := range []string{"First", "Second", "Third"} {
		_, err := repo.Insert(ctx, name, json.RawMessage(`{"project_name":"`+name+`","tasks":[]}`))
		require.NoError(t, err)
	}

	list, err := repo.ListSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Third", list[0].ProjectName)
	assert.Equal(t, "Second", list[1].ProjectName)
	assert.Equal(t, "First", list[2].ProjectName)
	for _, s := range list {
		assert.NotZero(t, s.ID)
		assert.False(t, s.CreatedAt.IsZero())
	}
}
