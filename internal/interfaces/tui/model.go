// Package tui 终端展示层：只消费 Store 的快照并把用户操作转发给 Store，
// 自身不持有任何待办状态
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	apptodo "github.com/todomate/todomate/internal/application/todo"
	"github.com/todomate/todomate/internal/domain/todo"
	"github.com/todomate/todomate/internal/infrastructure/notification"
)

// mode 界面输入模式
type mode int

const (
	modeNormal mode = iota
	modeAddText
	modeAddDeadline
	modeSearch
	modeEditText
	modeEditDeadline
)

// deadlineLayout 截止日期输入/展示格式
const deadlineLayout = "2006-01-02"

// refreshMsg Store 操作完成，需要重新取快照
type refreshMsg struct{}

// noticeMsg 一条用户可见通知
type noticeMsg notification.Notification

// Model 终端界面模型
type Model struct {
	store   *apptodo.Store
	notices *notification.ChanNotifier
	ctx     context.Context

	snap   apptodo.Snapshot
	cursor int
	mode   mode
	input  textinput.Model

	pendingText string        // 新增/编辑流程中暂存的文本
	editItem    todo.TodoItem // 正在编辑的条目副本

	status      string
	statusLevel notification.Level

	width  int
	height int
}

// NewModel 创建界面模型
func NewModel(store *apptodo.Store, notices *notification.ChanNotifier) *Model {
	input := textinput.New()
	input.CharLimit = 200

	return &Model{
		store:   store,
		notices: notices,
		ctx:     context.Background(),
		input:   input,
	}
}

// Init 挂载：初始化 Store 并开始监听通知
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.storeCmd(func() { m.store.Init(m.ctx) }),
		m.listenNotices(),
	)
}

// storeCmd 在后台执行一个 Store 操作，完成后刷新快照
func (m *Model) storeCmd(op func()) tea.Cmd {
	return func() tea.Msg {
		op()
		return refreshMsg{}
	}
}

// listenNotices 等待下一条通知
func (m *Model) listenNotices() tea.Cmd {
	return func() tea.Msg {
		return noticeMsg(<-m.notices.Notifications())
	}
}

// Update 消息处理
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshMsg:
		m.snap = m.store.Snapshot()
		m.clampCursor()
		return m, nil

	case noticeMsg:
		m.status = msg.Message
		m.statusLevel = msg.Level
		return m, m.listenNotices()

	case tea.KeyMsg:
		if m.mode == modeNormal {
			return m.updateNormal(msg)
		}
		return m.updateInput(msg)
	}

	return m, nil
}

// updateNormal 普通模式按键处理
func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "r":
		return m, m.storeCmd(func() { m.store.FetchAll(m.ctx) })

	case "a":
		m.mode = modeAddText
		m.startInput("新待办内容", "")
		return m, nil

	case "/":
		m.mode = modeSearch
		m.startInput("搜索关键字", m.snap.SearchKeyword)
		return m, nil

	case "tab":
		next := apptodo.ViewModeInfinite
		if m.snap.ViewMode == apptodo.ViewModeInfinite {
			next = apptodo.ViewModePagination
		}
		return m, m.storeCmd(func() { m.store.SetViewMode(m.ctx, next) })

	case "s":
		m.store.SetPageSize(nextPageSize(m.snap.PageSize))
		return m, m.refreshNow()

	case "left", "h":
		if m.snap.ViewMode == apptodo.ViewModePagination && m.snap.Page > 1 {
			m.store.SetPage(m.snap.Page - 1)
			return m, m.refreshNow()
		}
		return m, nil

	case "right", "l":
		if m.snap.ViewMode == apptodo.ViewModePagination && m.snap.Page < m.totalPages() {
			m.store.SetPage(m.snap.Page + 1)
			return m, m.refreshNow()
		}
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.snap.Rendered)-1 {
			m.cursor++
			return m, nil
		}
		// 滚动模式下越过末尾视为接近底部，展开下一段窗口
		if m.snap.ViewMode == apptodo.ViewModeInfinite && m.snap.HasMore {
			return m, m.storeCmd(m.store.LoadMore)
		}
		return m, nil

	case " ":
		if item, ok := m.cursorItem(); ok {
			m.store.SelectTodo(item.ID)
			return m, m.refreshNow()
		}
		return m, nil

	case "A":
		m.store.SelectAll(!m.snap.AllSelected)
		return m, m.refreshNow()

	case "d":
		if item, ok := m.cursorItem(); ok {
			updated := item
			updated.Toggle()
			return m, m.storeCmd(func() { m.store.Update(m.ctx, updated) })
		}
		return m, nil

	case "e":
		if item, ok := m.cursorItem(); ok {
			m.store.EnterEdit(item.ID)
			m.editItem = item
			m.mode = modeEditText
			m.startInput("编辑待办内容", item.Text)
			return m, m.refreshNow()
		}
		return m, nil

	case "x", "delete", "backspace":
		ids := m.snap.SelectedIDs
		if len(ids) == 0 {
			if item, ok := m.cursorItem(); ok {
				ids = []int64{item.ID}
			}
		}
		if len(ids) == 0 {
			return m, nil
		}
		return m, m.storeCmd(func() { m.store.Delete(m.ctx, ids) })
	}

	return m, nil
}

// updateInput 输入模式按键处理
func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		return m, nil

	case "enter":
		value := m.input.Value()
		switch m.mode {
		case modeSearch:
			m.mode = modeNormal
			m.input.Blur()
			m.store.SetSearchKeyword(value)
			return m, m.refreshNow()

		case modeAddText:
			m.pendingText = value
			m.mode = modeAddDeadline
			m.startInput("截止日期（YYYY-MM-DD，留空为今天）", "")
			return m, nil

		case modeAddDeadline:
			m.mode = modeNormal
			m.input.Blur()
			text := m.pendingText
			deadline := parseDeadline(value)
			return m, m.storeCmd(func() { m.store.Add(m.ctx, text, deadline) })

		case modeEditText:
			m.editItem.Text = value
			m.mode = modeEditDeadline
			m.startInput("截止日期（YYYY-MM-DD）", m.editItem.DeadlineTime().Format(deadlineLayout))
			return m, nil

		case modeEditDeadline:
			m.mode = modeNormal
			m.input.Blur()
			item := m.editItem
			if value != "" {
				item.Deadline = parseDeadline(value)
			}
			return m, m.storeCmd(func() { m.store.Update(m.ctx, item) })
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// refreshNow 纯内存状态变更后的同步刷新
func (m *Model) refreshNow() tea.Cmd {
	return func() tea.Msg { return refreshMsg{} }
}

// startInput 进入输入态
func (m *Model) startInput(placeholder, value string) {
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

// cursorItem 光标指向的条目
func (m *Model) cursorItem() (todo.TodoItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Rendered) {
		return todo.TodoItem{}, false
	}
	return m.snap.Rendered[m.cursor], true
}

// clampCursor 列表变化后收敛光标位置
func (m *Model) clampCursor() {
	if m.cursor >= len(m.snap.Rendered) {
		m.cursor = len(m.snap.Rendered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// totalPages 当前过滤结果的总页数（仅展示用，Store 不做页码收敛）
func (m *Model) totalPages() int {
	if m.snap.PageSize <= 0 {
		return 1
	}
	pages := (m.snap.FilteredTotal + m.snap.PageSize - 1) / m.snap.PageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// nextPageSize 在固定集合中循环切换页大小
func nextPageSize(current int) int {
	for i, size := range apptodo.PageSizes {
		if size == current {
			return apptodo.PageSizes[(i+1)%len(apptodo.PageSizes)]
		}
	}
	return apptodo.DefaultPageSize
}

// parseDeadline 解析截止日期输入，空串或非法输入取今天
func parseDeadline(value string) int64 {
	if value == "" {
		return time.Now().UnixMilli()
	}
	t, err := time.ParseInLocation(deadlineLayout, value, time.Local)
	if err != nil {
		return time.Now().UnixMilli()
	}
	return t.UnixMilli()
}
