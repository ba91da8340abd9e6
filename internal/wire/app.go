package wire

import (
	"database/sql"

	"log/slog"

	"github.com/todomate/todomate/internal/infrastructure/config"
	applog "github.com/todomate/todomate/internal/infrastructure/log"
	"github.com/todomate/todomate/internal/infrastructure/websocket"
	interfacesHTTP "github.com/todomate/todomate/internal/interfaces/http"
)

// App 应用主结构，组合所有服务
type App struct {
	HTTPServer    *interfacesHTTP.HTTPServer
	hub           *websocket.Hub
	configWatcher *config.Watcher
	db            *sql.DB
	logger        *slog.Logger
}

// NewApp 创建应用实例
func NewApp(
	httpServer *interfacesHTTP.HTTPServer,
	hub *websocket.Hub,
	configWatcher *config.Watcher,
	db *sql.DB,
) *App {
	return &App{
		HTTPServer:    httpServer,
		hub:           hub,
		configWatcher: configWatcher,
		db:            db,
		logger:        applog.NewModuleLogger("app", "main"),
	}
}

// Start 启动所有服务（HTTP 监听在后台 goroutine 中进行）
func (a *App) Start() error {
	a.hub.Start()

	if err := a.configWatcher.Start(); err != nil {
		// 配置热更新不可用不阻止启动
		a.logger.Warn("config watcher unavailable", "error", err)
	}

	go func() {
		if err := a.HTTPServer.Start(); err != nil {
			a.logger.Error("HTTP server stopped", "error", err)
		}
	}()

	return nil
}

// Stop 停止所有服务
func (a *App) Stop() error {
	if err := a.HTTPServer.Stop(); err != nil {
		a.logger.Error("failed to stop HTTP server", "error", err)
	}
	if err := a.configWatcher.Stop(); err != nil {
		a.logger.Warn("failed to stop config watcher", "error", err)
	}
	return a.db.Close()
}
