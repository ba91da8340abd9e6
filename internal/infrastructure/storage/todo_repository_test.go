package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/todomate/todomate/internal/domain/todo"
)

// setupTestRepo 在临时目录创建 SQLite 仓储
func setupTestRepo(t *testing.T) todo.Repository {
	t.Helper()

	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := NewTodoRepository(db)
	require.NoError(t, err)
	return repo
}

func TestTodoRepositorySaveAssignsID(t *testing.T) {
	repo := setupTestRepo(t)

	item := &todo.TodoItem{Text: "할일 1", Deadline: 1700000000000}
	require.NoError(t, repo.Save(item))
	// 创建后回填数据库分配的 ID
	assert.Equal(t, int64(1), item.ID)

	second := &todo.TodoItem{Text: "할일 2", Deadline: 1700000000000}
	require.NoError(t, repo.Save(second))
	assert.Equal(t, int64(2), second.ID)
}

func TestTodoRepositoryReplace(t *testing.T) {
	repo := setupTestRepo(t)

	item := &todo.TodoItem{Text: "할일 1", Deadline: 1700000000000}
	require.NoError(t, repo.Save(item))

	item.Text = "할일 1 수정"
	item.Done = true
	require.NoError(t, repo.Save(item))

	found, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "할일 1 수정", found.Text)
	assert.True(t, found.Done)

	// 整条替换不产生新行
	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTodoRepositoryFindByIDMissing(t *testing.T) {
	repo := setupTestRepo(t)

	found, err := repo.FindByID(42)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestTodoRepositoryFindAllOrder(t *testing.T) {
	repo := setupTestRepo(t)

	for _, text := range []string{"첫번째", "두번째", "세번째"} {
		require.NoError(t, repo.Save(&todo.TodoItem{Text: text, Deadline: 1700000000000}))
	}

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	// 按插入顺序返回
	assert.Equal(t, "첫번째", all[0].Text)
	assert.Equal(t, "세번째", all[2].Text)
}

func TestTodoRepositoryDelete(t *testing.T) {
	repo := setupTestRepo(t)

	item := &todo.TodoItem{Text: "할일 1", Deadline: 1700000000000}
	require.NoError(t, repo.Save(item))

	rows, err := repo.Delete(item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	// 重复删除返回 0 行，不报错
	rows, err = repo.Delete(item.ID)
	require.NoError(t, err)
	assert.Zero(t, rows)
}
