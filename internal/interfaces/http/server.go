package http

import (
	"context"
	"net/http"
	"time"

	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/todomate/todomate/internal/infrastructure/config"
	applog "github.com/todomate/todomate/internal/infrastructure/log"
	"github.com/todomate/todomate/internal/interfaces/http/handler"
	"github.com/todomate/todomate/internal/interfaces/http/middleware"
)

// HTTPServer HTTP 服务器
type HTTPServer struct {
	router   *gin.Engine
	httpPort string
	server   *http.Server
	logger   *slog.Logger
}

// NewServer 创建 HTTP 服务器
func NewServer(
	cfg *config.ServerConfig,
	todoHandler *handler.TodoHandler,
	wsHandler *handler.WSHandler,
) *HTTPServer {
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(middleware.EnsureUTF8Body())

	logger := applog.NewModuleLogger("http", "server")

	// 注册路由：分页和过滤都在客户端完成，这里不接受任何查询参数
	api := router.Group("/api")
	{
		api.GET("/todos", todoHandler.List)
		api.POST("/todos", todoHandler.Create)
		api.PUT("/todos/:id", todoHandler.Replace)
		api.DELETE("/todos/:id", todoHandler.Delete)
	}

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 待办变更事件推送
	router.GET("/ws", wsHandler.Serve)

	return &HTTPServer{
		router:   router,
		httpPort: cfg.HTTPPort,
		logger:   logger,
	}
}

// Start 启动服务器
func (s *HTTPServer) Start() error {
	s.server = &http.Server{
		Addr:    s.httpPort,
		Handler: s.router,
	}

	s.logger.Info("HTTP server starting",
		"port", s.httpPort,
	)

	return s.server.ListenAndServe()
}

// Shutdown 优雅关闭
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// Stop 停止服务器
func (s *HTTPServer) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}
