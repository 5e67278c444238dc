package repository_test

import (
	"context"
	"testing"

	"todoapi/infras/otel/mocks"
	"todoapi/infras/sqlite"
	"todoapi/internal/domains/todo/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) repository.Todo {
	t.Helper()

	conn := &sqlite.Connection{DB: sqlite.CreateSQLiteConn(":memory:")}
	t.Cleanup(func() {
		_ = conn.DB.Close()
	})

	return repository.New(conn, mocks.NewOtel())
}

func TestRepository_InsertAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.Insert(ctx, "buy milk", false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	todo, found, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, id, todo.TodoID)
	assert.Equal(t, "buy milk", todo.Content)
	assert.False(t, todo.Completed)
}

func TestRepository_GetMissing(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, found, err := repo.Get(ctx, 999)
	require.NoError(t, err)
	assert.False(t, found)

	exist, err := repo.Exist(ctx, 999)
	require.NoError(t, err)
	assert.False(t, exist)
}

func TestRepository_GetAllOrdered(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	todos, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)

	for _, content := range []string{"first", "second", "third"} {
		_, err := repo.Insert(ctx, content, false)
		require.NoError(t, err)
	}

	todos, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 3)

	assert.Equal(t, "first", todos[0].Content)
	assert.Equal(t, "second", todos[1].Content)
	assert.Equal(t, "third", todos[2].Content)
	assert.Less(t, todos[0].TodoID, todos[1].TodoID)
	assert.Less(t, todos[1].TodoID, todos[2].TodoID)
}

func TestRepository_PartialUpdate(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.Insert(ctx, "buy milk", false)
	require.NoError(t, err)

	err = repo.Update(ctx, id, map[string]any{"completed": true})
	require.NoError(t, err)

	todo, found, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "buy milk", todo.Content, "content must survive a completed-only update")
	assert.True(t, todo.Completed)

	err = repo.Update(ctx, id, map[string]any{"content": "buy oat milk"})
	require.NoError(t, err)

	todo, _, err = repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "buy oat milk", todo.Content)
	assert.True(t, todo.Completed, "completed must survive a content-only update")
}

func TestRepository_UpdateEmptyFieldsIsNoop(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.Insert(ctx, "buy milk", true)
	require.NoError(t, err)

	err = repo.Update(ctx, id, map[string]any{})
	require.NoError(t, err)

	todo, found, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "buy milk", todo.Content)
	assert.True(t, todo.Completed)
}

func TestRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.Insert(ctx, "buy milk", false)
	require.NoError(t, err)

	applied, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, applied)

	_, found, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, found)

	todos, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)

	applied, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, applied, "deleting an absent id reports not applied")
}

func TestRepository_IDsNeverReused(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.Insert(ctx, "first", false)
	require.NoError(t, err)

	second, err := repo.Insert(ctx, "second", false)
	require.NoError(t, err)
	require.Greater(t, second, first)

	applied, err := repo.Delete(ctx, second)
	require.NoError(t, err)
	require.True(t, applied)

	third, err := repo.Insert(ctx, "third", false)
	require.NoError(t, err)
	assert.Greater(t, third, second, "ids must keep increasing after a delete")
}
