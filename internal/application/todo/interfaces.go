package todo

import (
	"context"

	"github.com/todomate/todomate/internal/domain/todo"
)

// RemoteSource 远端数据源接口（应用层需要的技术能力，不是领域概念）
// 对应服务端 /api/todos 的 CRUD 契约，由 infrastructure/api 实现
type RemoteSource interface {
	// FetchAll 拉取完整待办列表，无任何分页/过滤参数
	FetchAll(ctx context.Context) ([]todo.TodoItem, error)

	// Create 创建待办
	Create(ctx context.Context, req CreateTodoDTO) error

	// Update 按 ID 整条替换待办
	Update(ctx context.Context, item todo.TodoItem) error

	// Delete 按 ID 删除待办
	Delete(ctx context.Context, id int64) error
}

// Notifier 用户可见通知接口，四个级别与界面提示一一对应
// 所有失败在 Store 内部终结，只通过通知上报，不向调用方抛出
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}

// KeywordStore 搜索关键字持久化接口
// 关键字在启动时恢复、每次变更时保存，属于核心逻辑之外的副作用
type KeywordStore interface {
	Load() (string, error)
	Save(keyword string) error
}
