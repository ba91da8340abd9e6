package todo

// Repository 待办事项仓储接口
type Repository interface {
	// Save 保存待办事项（ID 为 0 时创建并回填 ID，否则整条替换）
	Save(item *TodoItem) error

	// FindByID 根据 ID 查找待办事项，不存在时返回 nil
	FindByID(id int64) (*TodoItem, error)

	// FindAll 按插入顺序获取所有待办事项
	FindAll() ([]*TodoItem, error)

	// Delete 删除待办事项，返回删除的行数
	Delete(id int64) (int64, error)
}
