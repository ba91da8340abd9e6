package storage

import "github.com/google/wire"

// ProviderSet Storage 基础设施层 ProviderSet
// SettingsRepository 仅客户端使用，由客户端入口手工装配
var ProviderSet = wire.NewSet(
	ProvideDB,         // 提供数据库连接
	NewTodoRepository, // 待办事项仓储
)
