package middleware

import (
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// EnsureUTF8Body 确保请求体是 UTF-8 编码的中间件
// Windows 下的 curl 可能以 GBK 编码发送中文待办内容，这里检测并转换
func EnsureUTF8Body() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.ContentLength == 0 {
			c.Next()
			return
		}

		bodyBytes, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Next()
			return
		}
		c.Request.Body.Close()

		if converted, ok := normalizeUTF8(bodyBytes); ok {
			bodyBytes = converted
			c.Request.ContentLength = int64(len(bodyBytes))
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		c.Next()
	}
}

// normalizeUTF8 非 UTF-8 内容按 GBK 解码转换，返回转换结果和是否发生了转换
func normalizeUTF8(body []byte) ([]byte, bool) {
	if len(body) == 0 || utf8.Valid(body) {
		return body, false
	}

	reader := transform.NewReader(bytes.NewReader(body), simplifiedchinese.GBK.NewDecoder())
	converted, err := io.ReadAll(reader)
	if err != nil || !utf8.Valid(converted) {
		return body, false
	}
	return converted, true
}
