package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChanNotifierDelivers(t *testing.T) {
	n := NewChanNotifier(4)

	n.Success("待办已添加")
	n.Warning("请输入待办内容")

	first := <-n.Notifications()
	assert.Equal(t, LevelSuccess, first.Level)
	assert.Equal(t, "待办已添加", first.Message)
	assert.False(t, first.At.IsZero())

	second := <-n.Notifications()
	assert.Equal(t, LevelWarning, second.Level)
}

func TestChanNotifierDropsWhenFull(t *testing.T) {
	n := NewChanNotifier(1)

	// 缓冲满时丢弃而不是阻塞写路径
	n.Info("第一条")
	n.Info("第二条")

	got := <-n.Notifications()
	assert.Equal(t, "第一条", got.Message)

	select {
	case extra := <-n.Notifications():
		require.Failf(t, "unexpected notification", "got %q", extra.Message)
	default:
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "success", LevelSuccess.String())
	assert.Equal(t, "error", LevelError.String())
}
