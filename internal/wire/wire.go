//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"
	"github.com/todomate/todomate/internal/infrastructure/config"
	"github.com/todomate/todomate/internal/infrastructure/storage"
	"github.com/todomate/todomate/internal/infrastructure/websocket"
	interfacesHTTP "github.com/todomate/todomate/internal/interfaces/http"
)

// InitializeApp 初始化所有服务
func InitializeApp() (*App, error) {
	wire.Build(
		// 按层组合 ProviderSet
		config.ProviderSet,        // 配置
		storage.ProviderSet,       // 存储基础设施
		websocket.NewHub,          // 变更事件广播
		interfacesHTTP.ProviderSet, // HTTP 接口层
		NewApp, // 组合所有服务的应用结构
	)
	return nil, nil
}
