package notification

import (
	"log/slog"
	"time"

	apptodo "github.com/todomate/todomate/internal/application/todo"
	applog "github.com/todomate/todomate/internal/infrastructure/log"
)

// Level 通知级别
type Level int

const (
	// LevelSuccess 操作成功
	LevelSuccess Level = iota
	// LevelInfo 一般信息
	LevelInfo
	// LevelWarning 校验警告
	LevelWarning
	// LevelError 请求失败
	LevelError
)

// String 级别名称
func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Notification 一条用户可见通知
type Notification struct {
	Level   Level
	Message string
	At      time.Time
}

// LogNotifier 将通知写入日志（无界面场景与测试兜底）
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier 创建日志通知器
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{logger: applog.NewModuleLogger("notification", "log")}
}

// Success 成功通知
func (n *LogNotifier) Success(msg string) { n.logger.Info(msg, "level", "success") }

// Info 信息通知
func (n *LogNotifier) Info(msg string) { n.logger.Info(msg, "level", "info") }

// Warning 警告通知
func (n *LogNotifier) Warning(msg string) { n.logger.Warn(msg, "level", "warning") }

// Error 错误通知
func (n *LogNotifier) Error(msg string) { n.logger.Error(msg, "level", "error") }

// ChanNotifier 带缓冲通道的通知器，由终端界面消费展示
// 缓冲满时丢弃新通知，保证状态层的写路径永不阻塞
type ChanNotifier struct {
	ch chan Notification
}

// NewChanNotifier 创建通道通知器
func NewChanNotifier(buffer int) *ChanNotifier {
	if buffer <= 0 {
		buffer = 16
	}
	return &ChanNotifier{ch: make(chan Notification, buffer)}
}

// Notifications 通知通道（只读）
func (n *ChanNotifier) Notifications() <-chan Notification {
	return n.ch
}

// Success 成功通知
func (n *ChanNotifier) Success(msg string) { n.push(LevelSuccess, msg) }

// Info 信息通知
func (n *ChanNotifier) Info(msg string) { n.push(LevelInfo, msg) }

// Warning 警告通知
func (n *ChanNotifier) Warning(msg string) { n.push(LevelWarning, msg) }

// Error 错误通知
func (n *ChanNotifier) Error(msg string) { n.push(LevelError, msg) }

func (n *ChanNotifier) push(level Level, msg string) {
	select {
	case n.ch <- Notification{Level: level, Message: msg, At: time.Now()}:
	default:
	}
}

// 编译时检查接口实现
var (
	_ apptodo.Notifier = (*LogNotifier)(nil)
	_ apptodo.Notifier = (*ChanNotifier)(nil)
)
