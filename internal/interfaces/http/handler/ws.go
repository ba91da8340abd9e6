package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"
	"github.com/todomate/todomate/internal/infrastructure/config"
	applog "github.com/todomate/todomate/internal/infrastructure/log"
	"github.com/todomate/todomate/internal/infrastructure/websocket"
)

const (
	// writeWait 单条消息写超时
	writeWait = 10 * time.Second
	// pingPeriod 心跳间隔
	pingPeriod = 30 * time.Second
)

// WSHandler 待办变更事件 WebSocket 处理器
type WSHandler struct {
	hub      *websocket.Hub
	upgrader gorillaws.Upgrader
	logger   *slog.Logger
}

// NewWSHandler 创建 WebSocket 处理器
func NewWSHandler(hub *websocket.Hub, cfg *config.WebSocketConfig) *WSHandler {
	return &WSHandler{
		hub: hub,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			// 本地守护进程，允许任意来源
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: applog.NewModuleLogger("http", "ws-handler"),
	}
}

// Serve 升级连接并开始推送变更事件
func (h *WSHandler) Serve(c *gin.Context) {
	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	conn := &websocket.Connection{Send: make(chan []byte, 8)}
	h.hub.Register(conn)

	go h.writePump(ws, conn)
	go h.readPump(ws, conn)
}

// writePump 将广播消息写入连接，并维持心跳
func (h *WSHandler) writePump(ws *gorillaws.Conn, conn *websocket.Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ws.Close()
	}()

	for {
		select {
		case data, ok := <-conn.Send:
			ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub 已注销该连接
				ws.WriteMessage(gorillaws.CloseMessage, []byte{})
				return
			}
			if err := ws.WriteMessage(gorillaws.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.WriteMessage(gorillaws.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump 丢弃入站消息，连接断开时注销
func (h *WSHandler) readPump(ws *gorillaws.Conn, conn *websocket.Connection) {
	defer h.hub.Unregister(conn)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}
