package todo

import (
	"slices"

	"github.com/todomate/todomate/internal/domain/todo"
)

// Snapshot 供展示层消费的一致性状态快照
type Snapshot struct {
	Rendered      []todo.TodoItem // 过滤 + 窗口化后实际渲染的条目
	FilteredTotal int             // 过滤后的条目总数，用于计算总页数
	Loading       bool
	HasMore       bool
	Page          int
	PageSize      int
	ViewMode      ViewMode
	SelectedIDs   []int64
	EditingID     int64 // 0 表示未在编辑
	SearchKeyword string
	AllSelected   bool // 当前渲染的条目是否已全部选中
}

// Snapshot 取当前状态快照（切片为拷贝，调用方可安全持有）
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	rendered := s.renderedLocked()
	return Snapshot{
		Rendered:      rendered,
		FilteredTotal: len(filterByKeyword(s.visible, s.searchKeyword)),
		Loading:       s.loading,
		HasMore:       s.hasMore,
		Page:          s.page,
		PageSize:      s.pageSize,
		ViewMode:      s.viewMode,
		SelectedIDs:   slices.Clone(s.selectedIDs),
		EditingID:     s.editingID,
		SearchKeyword: s.searchKeyword,
		AllSelected:   allSelected(rendered, s.selectedIDs),
	}
}

// Rendered 当前实际渲染的条目
func (s *Store) Rendered() []todo.TodoItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderedLocked()
}

// renderedLocked 视图推导：先过滤、再按模式窗口化，须持锁调用
//
// 两种模式共用同一个关键字过滤；分页模式在过滤结果上切页，
// 滚动模式直接展示已展开可见列表的过滤结果。
func (s *Store) renderedLocked() []todo.TodoItem {
	filtered := filterByKeyword(s.visible, s.searchKeyword)
	if s.viewMode == ViewModePagination {
		return pageWindow(filtered, s.page, s.pageSize)
	}
	return filtered
}

// filterByKeyword 关键字过滤，返回新切片
func filterByKeyword(items []todo.TodoItem, keyword string) []todo.TodoItem {
	result := make([]todo.TodoItem, 0, len(items))
	for _, item := range items {
		if item.MatchKeyword(keyword) {
			result = append(result, item)
		}
	}
	return result
}

// pageWindow 取第 page 页（从 1 开始），越界返回空切片
func pageWindow(items []todo.TodoItem, page, pageSize int) []todo.TodoItem {
	start := (page - 1) * pageSize
	if start < 0 || start >= len(items) {
		return nil
	}
	end := min(start+pageSize, len(items))
	return slices.Clone(items[start:end])
}

// allSelected 渲染条目非空且全部在选中集合中
func allSelected(rendered []todo.TodoItem, selectedIDs []int64) bool {
	if len(rendered) == 0 {
		return false
	}
	for _, item := range rendered {
		if !slices.Contains(selectedIDs, item.ID) {
			return false
		}
	}
	return true
}
