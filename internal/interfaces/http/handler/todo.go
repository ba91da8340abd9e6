package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/todomate/todomate/internal/domain/todo"
	"github.com/todomate/todomate/internal/infrastructure/websocket"
	"github.com/todomate/todomate/internal/interfaces/http/response"
)

// TodoHandler 待办事项处理器
type TodoHandler struct {
	repo todo.Repository
	hub  *websocket.Hub
}

// NewTodoHandler 创建待办事项处理器
func NewTodoHandler(repo todo.Repository, hub *websocket.Hub) *TodoHandler {
	return &TodoHandler{repo: repo, hub: hub}
}

// CreateTodoRequest 创建待办请求
type CreateTodoRequest struct {
	Text     string `json:"text" binding:"required"`
	Done     bool   `json:"done"`
	Deadline int64  `json:"deadline" binding:"required"`
}

// ReplaceTodoRequest 整条替换待办请求（PUT 的请求体为完整待办）
// 编辑后的内容允许为空字符串，只在创建时要求非空
type ReplaceTodoRequest struct {
	ID       int64  `json:"id"`
	Text     string `json:"text"`
	Done     bool   `json:"done"`
	Deadline int64  `json:"deadline"`
}

// List 获取待办列表
// @Summary 获取待办列表
// @Tags 待办
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	items, err := h.repo.FindAll()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, 800001, "获取待办列表失败")
		return
	}

	// data 始终是数组，空列表不输出 null
	if items == nil {
		items = []*todo.TodoItem{}
	}
	response.Success(c, items)
}

// Create 创建待办
// @Summary 创建待办
// @Tags 待办
// @Accept json
// @Produce json
// @Param body body CreateTodoRequest true "待办内容"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, 100001, "参数错误")
		return
	}

	item := &todo.TodoItem{
		Text:     req.Text,
		Done:     req.Done,
		Deadline: req.Deadline,
	}

	if err := h.repo.Save(item); err != nil {
		response.Error(c, http.StatusInternalServerError, 800002, "创建待办失败")
		return
	}

	h.notifyChanged()
	response.Success(c, item)
}

// Replace 整条替换待办
// @Summary 整条替换待办
// @Tags 待办
// @Accept json
// @Produce json
// @Param id path int true "待办ID"
// @Param body body ReplaceTodoRequest true "完整待办"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /todos/{id} [put]
func (h *TodoHandler) Replace(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, 100001, "待办ID无效")
		return
	}

	var req ReplaceTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, 100001, "参数错误")
		return
	}

	// 路径中的 ID 为准，请求体中的 ID 被忽略
	existing, err := h.repo.FindByID(id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, 800003, "查询待办失败")
		return
	}
	if existing == nil {
		response.Error(c, http.StatusNotFound, 800004, "待办不存在")
		return
	}

	item := &todo.TodoItem{
		ID:       id,
		Text:     req.Text,
		Done:     req.Done,
		Deadline: req.Deadline,
	}

	if err := h.repo.Save(item); err != nil {
		response.Error(c, http.StatusInternalServerError, 800005, "更新待办失败")
		return
	}

	h.notifyChanged()
	response.Success(c, item)
}

// Delete 删除待办
// @Summary 删除待办
// @Tags 待办
// @Accept json
// @Produce json
// @Param id path int true "待办ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, 100001, "待办ID无效")
		return
	}

	rows, err := h.repo.Delete(id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, 800006, "删除待办失败")
		return
	}
	if rows == 0 {
		response.Error(c, http.StatusNotFound, 800004, "待办不存在")
		return
	}

	h.notifyChanged()
	response.Success(c, nil)
}

// notifyChanged 向所有连接的界面广播变更提示
func (h *TodoHandler) notifyChanged() {
	if h.hub == nil {
		return
	}
	_ = h.hub.Broadcast(websocket.ChangeEvent{
		Event: "todos-changed",
		At:    time.Now().UnixMilli(),
	})
}

// parseID 解析路径中的待办 ID
func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
