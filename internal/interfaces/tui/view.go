package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	apptodo "github.com/todomate/todomate/internal/application/todo"
	"github.com/todomate/todomate/internal/infrastructure/notification"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	deadlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	urgentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	editingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	footerStyle = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)

	statusStyles = map[notification.Level]lipgloss.Style{
		notification.LevelSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		notification.LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		notification.LevelWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		notification.LevelError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

// View 渲染整个界面
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("待办列表"))
	if m.snap.SearchKeyword != "" {
		b.WriteString(footerStyle.Render(fmt.Sprintf("  （搜索：%s）", m.snap.SearchKeyword)))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.renderFooter()))
	b.WriteString("\n")

	if m.mode != modeNormal {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		style, ok := statusStyles[m.statusLevel]
		if !ok {
			style = footerStyle
		}
		b.WriteString("\n")
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.renderHelp()))
	b.WriteString("\n")

	return b.String()
}

// renderList 渲染当前可见条目
func (m *Model) renderList() string {
	if m.snap.Loading && len(m.snap.Rendered) == 0 {
		return footerStyle.Render("  加载中...") + "\n"
	}
	if len(m.snap.Rendered) == 0 {
		return footerStyle.Render("  没有待办事项") + "\n"
	}

	selected := make(map[int64]bool, len(m.snap.SelectedIDs))
	for _, id := range m.snap.SelectedIDs {
		selected[id] = true
	}

	now := time.Now()
	var b strings.Builder
	for i, item := range m.snap.Rendered {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		checkbox := "[ ]"
		if selected[item.ID] {
			checkbox = "[x]"
		}

		mark := " "
		if item.Done {
			mark = "✓"
		}

		text := item.Text
		if item.Done {
			text = doneStyle.Render(text)
		}

		deadline := item.DeadlineTime().Format(deadlineLayout)
		if !item.Done && item.NearDeadline(now) {
			deadline = urgentStyle.Render(deadline + " ！")
		} else {
			deadline = deadlineStyle.Render(deadline)
		}

		line := fmt.Sprintf("%s%s %s %s  %s", cursor, checkbox, mark, text, deadline)
		if item.ID == m.snap.EditingID {
			line += editingStyle.Render("  （编辑中）")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// renderFooter 渲染分页/滚动状态行
func (m *Model) renderFooter() string {
	if m.snap.ViewMode == apptodo.ViewModeInfinite {
		line := fmt.Sprintf("已显示 %d/%d 条", len(m.snap.Rendered), m.snap.FilteredTotal)
		if m.snap.Loading {
			line += " · 加载中..."
		} else if m.snap.HasMore {
			line += " · ↓ 加载更多"
		}
		return line
	}
	return fmt.Sprintf("第 %d/%d 页 · 每页 %d 条 · 共 %d 条",
		m.snap.Page, m.totalPages(), m.snap.PageSize, m.snap.FilteredTotal)
}

// renderHelp 渲染按键提示
func (m *Model) renderHelp() string {
	if m.mode != modeNormal {
		return "enter 确认 · esc 取消"
	}
	return "a 新增 · e 编辑 · d 完成 · 空格 选择 · A 全选 · x 删除 · / 搜索 · tab 切换视图 · s 页大小 · ←→ 翻页 · r 刷新 · q 退出"
}
