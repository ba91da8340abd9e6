package todo

// CreateTodoDTO 创建待办请求载荷，与 POST /api/todos 的请求体一致
type CreateTodoDTO struct {
	Text     string `json:"text"`
	Done     bool   `json:"done"`
	Deadline int64  `json:"deadline"` // Unix 毫秒时间戳
}
