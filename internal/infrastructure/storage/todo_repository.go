package storage

import (
	"database/sql"
	"fmt"

	"github.com/todomate/todomate/internal/domain/todo"
)

// todoRepository 待办事项 SQLite 仓储实现
// 主键为 AUTOINCREMENT 整数，ID 永远由数据库分配；FindAll 按插入顺序返回
type todoRepository struct {
	db *sql.DB
}

// NewTodoRepository 创建待办事项仓储实例
func NewTodoRepository(db *sql.DB) (todo.Repository, error) {
	if err := initTodoTable(db); err != nil {
		return nil, err
	}
	return &todoRepository{db: db}, nil
}

// initTodoTable 初始化待办事项表
func initTodoTable(db *sql.DB) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS todos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		text TEXT NOT NULL,
		done INTEGER NOT NULL DEFAULT 0,
		deadline INTEGER NOT NULL
	);`

	if _, err := db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to create todos table: %w", err)
	}

	createIndexSQL := `
	CREATE INDEX IF NOT EXISTS idx_todos_deadline ON todos(deadline);`

	if _, err := db.Exec(createIndexSQL); err != nil {
		return fmt.Errorf("failed to create todos indexes: %w", err)
	}

	return nil
}

// Save 保存待办事项（ID 为 0 时创建并回填 ID，否则整条替换）
func (r *todoRepository) Save(item *todo.TodoItem) error {
	done := 0
	if item.Done {
		done = 1
	}

	if item.ID == 0 {
		result, err := r.db.Exec(
			`INSERT INTO todos (text, done, deadline) VALUES (?, ?, ?)`,
			item.Text, done, item.Deadline,
		)
		if err != nil {
			return fmt.Errorf("failed to insert todo: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get inserted todo id: %w", err)
		}
		item.ID = id
		return nil
	}

	_, err := r.db.Exec(
		`INSERT OR REPLACE INTO todos (id, text, done, deadline) VALUES (?, ?, ?, ?)`,
		item.ID, item.Text, done, item.Deadline,
	)
	if err != nil {
		return fmt.Errorf("failed to save todo: %w", err)
	}
	return nil
}

// FindByID 根据 ID 查找待办事项
func (r *todoRepository) FindByID(id int64) (*todo.TodoItem, error) {
	query := `SELECT id, text, done, deadline FROM todos WHERE id = ?`

	var item todo.TodoItem
	var done int

	err := r.db.QueryRow(query, id).Scan(&item.ID, &item.Text, &done, &item.Deadline)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query todo: %w", err)
	}

	item.Done = done == 1
	return &item, nil
}

// FindAll 按插入顺序获取所有待办事项
func (r *todoRepository) FindAll() ([]*todo.TodoItem, error) {
	query := `SELECT id, text, done, deadline FROM todos ORDER BY id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}
	defer rows.Close()

	var items []*todo.TodoItem
	for rows.Next() {
		var item todo.TodoItem
		var done int
		if err := rows.Scan(&item.ID, &item.Text, &done, &item.Deadline); err != nil {
			continue
		}
		item.Done = done == 1
		items = append(items, &item)
	}

	return items, nil
}

// Delete 删除待办事项，返回删除的行数
func (r *todoRepository) Delete(id int64) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete todo: %w", err)
	}
	return result.RowsAffected()
}

// 编译时检查接口实现
var _ todo.Repository = (*todoRepository)(nil)
