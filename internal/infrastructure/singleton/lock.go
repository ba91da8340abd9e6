package singleton

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"
)

// HealthCheckTimeout 健康检查超时时间
const HealthCheckTimeout = 2 * time.Second

// CheckAndLock 以监听端口的方式实现单例锁
//
// 端口可用时返回 listener（调用方关闭后交给 HTTP 服务器监听）；
// 端口被健康的实例占用时返回 (nil, nil)，调用方应直接退出；
// 端口被占用但健康检查失败时返回错误。
func CheckAndLock(port string) (net.Listener, error) {
	listener, err := net.Listen("tcp", port)
	if err == nil {
		return listener, nil
	}

	if !errors.Is(err, syscall.EADDRINUSE) {
		return nil, fmt.Errorf("failed to listen on %s: %w", port, err)
	}

	if isInstanceRunning(port) {
		// 已有实例运行
		return nil, nil
	}
	return nil, fmt.Errorf("port %s is in use but the instance is not healthy", port)
}

// isInstanceRunning 通过 /health 探测已有实例
func isInstanceRunning(port string) bool {
	client := &http.Client{Timeout: HealthCheckTimeout}

	resp, err := client.Get(fmt.Sprintf("http://localhost%s/health", port))
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
