package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	applog "github.com/todomate/todomate/internal/infrastructure/log"
)

// RequestIDHeader 请求 ID 响应头
const RequestIDHeader = "X-Request-ID"

// RequestID 为每个请求生成 ID，写入响应头和请求上下文，便于日志关联
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(
			applog.WithRequestID(c.Request.Context(), requestID),
		)
		c.Next()
	}
}
