package todo

import (
	"strings"
	"time"
)

// NearDeadlineWindow 截止时间临近的判定窗口
const NearDeadlineWindow = 3 * 24 * time.Hour

// TodoItem 待办事项实体
// Deadline 为 Unix 毫秒时间戳（UTC 时刻），与 HTTP 接口的 JSON 字段一一对应
type TodoItem struct {
	ID       int64  `json:"id"`       // 唯一标识，由服务端分配，客户端不可修改
	Text     string `json:"text"`     // 待办内容
	Done     bool   `json:"done"`     // 是否完成
	Deadline int64  `json:"deadline"` // 截止时间（Unix 毫秒）
}

// Toggle 切换完成状态
func (t *TodoItem) Toggle() {
	t.Done = !t.Done
}

// DeadlineTime 截止时间
func (t *TodoItem) DeadlineTime() time.Time {
	return time.UnixMilli(t.Deadline)
}

// NearDeadline 截止时间是否临近（3 天以内，含已过期）
func (t *TodoItem) NearDeadline(now time.Time) bool {
	return t.DeadlineTime().Sub(now) <= NearDeadlineWindow
}

// MatchKeyword 待办内容是否包含关键字（不区分大小写，空关键字匹配所有）
func (t *TodoItem) MatchKeyword(keyword string) bool {
	if keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Text), strings.ToLower(keyword))
}
