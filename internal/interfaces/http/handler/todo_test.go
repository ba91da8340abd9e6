package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/todomate/todomate/internal/domain/todo"
	"github.com/todomate/todomate/internal/infrastructure/storage"
)

// setupTestRouter 创建带真实 SQLite 仓储的测试路由（hub 为 nil，不广播）
func setupTestRouter(t *testing.T) (*gin.Engine, todo.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := storage.OpenDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := storage.NewTodoRepository(db)
	require.NoError(t, err)

	h := NewTodoHandler(repo, nil)
	router := gin.New()
	api := router.Group("/api")
	{
		api.GET("/todos", h.List)
		api.POST("/todos", h.Create)
		api.PUT("/todos/:id", h.Replace)
		api.DELETE("/todos/:id", h.Delete)
	}
	return router, repo
}

// envelope 测试用响应结构
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestListEmptyReturnsArray(t *testing.T) {
	router, _ := setupTestRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/todos", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, env.Code)
	// 空列表输出 []，不输出 null
	assert.Equal(t, "[]", string(env.Data))
}

func TestCreateTodo(t *testing.T) {
	router, repo := setupTestRouter(t)

	w, env := doRequest(t, router, http.MethodPost, "/api/todos", gin.H{
		"text":     "할일 1",
		"done":     false,
		"deadline": 1700000000000,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, env.Code)

	var created todo.TodoItem
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "할일 1", created.Text)

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateTodoMissingText(t *testing.T) {
	router, _ := setupTestRouter(t)

	w, env := doRequest(t, router, http.MethodPost, "/api/todos", gin.H{
		"deadline": 1700000000000,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 100001, env.Code)
}

func TestReplaceTodo(t *testing.T) {
	router, repo := setupTestRouter(t)
	item := &todo.TodoItem{Text: "할일 1", Deadline: 1700000000000}
	require.NoError(t, repo.Save(item))

	// 路径中的 ID 为准，请求体里的 ID 被忽略
	w, env := doRequest(t, router, http.MethodPut, "/api/todos/1", gin.H{
		"id":       999,
		"text":     "할일 1 수정",
		"done":     true,
		"deadline": 1800000000000,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, env.Code)

	found, err := repo.FindByID(1)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "할일 1 수정", found.Text)
	assert.True(t, found.Done)
	assert.Equal(t, int64(1800000000000), found.Deadline)
}

func TestReplaceTodoNotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	w, env := doRequest(t, router, http.MethodPut, "/api/todos/42", gin.H{
		"text":     "없는 할일",
		"deadline": 1700000000000,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 800004, env.Code)
}

func TestReplaceTodoInvalidID(t *testing.T) {
	router, _ := setupTestRouter(t)

	w, env := doRequest(t, router, http.MethodPut, "/api/todos/abc", gin.H{
		"text": "할일",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 100001, env.Code)
}

func TestDeleteTodo(t *testing.T) {
	router, repo := setupTestRouter(t)
	item := &todo.TodoItem{Text: "할일 1", Deadline: 1700000000000}
	require.NoError(t, repo.Save(item))

	w, env := doRequest(t, router, http.MethodDelete, "/api/todos/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, env.Code)

	// 再次删除同一 ID 返回 404
	w, env = doRequest(t, router, http.MethodDelete, "/api/todos/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 800004, env.Code)
}
