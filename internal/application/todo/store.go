package todo

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"
	"github.com/todomate/todomate/internal/domain/todo"
	applog "github.com/todomate/todomate/internal/infrastructure/log"
)

// ViewMode 列表视图模式
type ViewMode string

const (
	// ViewModePagination 分页模式：过滤后的列表按固定页大小分页展示
	ViewModePagination ViewMode = "pagination"
	// ViewModeInfinite 无限滚动模式：列表以只增不减的窗口逐步展开
	ViewModeInfinite ViewMode = "infinite"
)

// PageSizes 可选的页大小
var PageSizes = []int{5, 10, 20}

// DefaultPageSize 默认页大小
const DefaultPageSize = 10

// Store 待办状态存储（应用服务）
//
// 持有权威的全量待办列表，与远端数据源做整体替换式的同步：
// 每次变更操作成功后重新拉取全量列表，远端永远是事实来源，
// 本地不做乐观更新。所有共享状态只通过 Store 的方法修改。
type Store struct {
	mu       sync.Mutex
	remote   RemoteSource
	notifier Notifier
	keywords KeywordStore
	logger   *slog.Logger

	all     []todo.TodoItem // 权威全量列表，按服务端返回顺序
	visible []todo.TodoItem // 可见列表：分页模式等于全量，滚动模式为只增前缀

	loading       bool
	hasMore       bool
	page          int // 从 1 开始
	pageSize      int
	viewMode      ViewMode
	selectedIDs   []int64
	editingID     int64 // 0 表示未在编辑
	searchKeyword string
}

// NewStore 创建待办状态存储
func NewStore(remote RemoteSource, notifier Notifier, keywords KeywordStore) *Store {
	return &Store{
		remote:   remote,
		notifier: notifier,
		keywords: keywords,
		logger:   applog.NewModuleLogger("application", "todo-store"),
		hasMore:  true,
		page:     1,
		pageSize: DefaultPageSize,
		viewMode: ViewModePagination,
	}
}

// Init 挂载：恢复持久化的搜索关键字，然后拉取全量列表
func (s *Store) Init(ctx context.Context) {
	if keyword, err := s.keywords.Load(); err != nil {
		s.logger.Warn("failed to restore search keyword", "error", err)
	} else if keyword != "" {
		s.mu.Lock()
		s.searchKeyword = keyword
		s.mu.Unlock()
	}
	s.FetchAll(ctx)
}

// FetchAll 从远端拉取完整待办列表并整体替换本地状态
//
// 并发的 FetchAll 不做去重和栅栏，最后返回的响应覆盖先前的结果
// （与请求发起顺序无关）。失败时保留旧数据，避免列表闪空。
func (s *Store) FetchAll(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	items, err := s.remote.FetchAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.logger.Error("failed to fetch todos", "error", err)
		s.notifier.Error("加载待办列表失败")
		return
	}

	s.all = items
	if s.viewMode == ViewModeInfinite {
		n := min(len(items), s.pageSize)
		s.visible = slices.Clone(items[:n])
		s.hasMore = len(items) > s.pageSize
	} else {
		s.visible = items
	}
}

// Add 新增待办
//
// 校验：内容去除空白后不能为空，截止日期不能早于今天零点。
// 校验失败只提示、不发请求。成功后回到第一页、清空搜索关键字并重新拉取。
func (s *Store) Add(ctx context.Context, text string, deadline int64) {
	if strings.TrimSpace(text) == "" {
		s.notifier.Warning("请输入待办内容")
		return
	}
	if deadline < startOfToday(time.Now()).UnixMilli() {
		s.notifier.Warning("不能选择过去的日期")
		return
	}

	req := CreateTodoDTO{Text: text, Done: false, Deadline: deadline}
	if err := s.remote.Create(ctx, req); err != nil {
		s.logger.Error("failed to create todo", "error", err)
		s.notifier.Error("添加待办失败")
		return
	}

	s.mu.Lock()
	s.page = 1
	s.mu.Unlock()
	s.SetSearchKeyword("")
	s.FetchAll(ctx)
	s.notifier.Success("待办已添加")
}

// Update 按 ID 整条替换待办（编辑内容/截止时间与切换完成状态共用）
// 失败时编辑态保持打开，用户可重试
func (s *Store) Update(ctx context.Context, item todo.TodoItem) {
	if err := s.remote.Update(ctx, item); err != nil {
		s.logger.Error("failed to update todo", "id", item.ID, "error", err)
		s.notifier.Error("更新待办失败")
		return
	}

	s.mu.Lock()
	if s.editingID == item.ID {
		s.editingID = 0
	}
	s.mu.Unlock()
	s.FetchAll(ctx)
	s.notifier.Success("待办已更新")
}

// Delete 并发删除一批待办
//
// 每个 ID 独立发一条删除请求，互不阻塞、互不回滚；全部结束后
// 清空选中集合、重新拉取列表，并以一条汇总通知上报成功/失败数量。
func (s *Store) Delete(ctx context.Context, ids []int64) {
	if len(ids) == 0 {
		return
	}

	p := pool.NewWithResults[bool]()
	for _, id := range ids {
		p.Go(func() bool {
			if err := s.remote.Delete(ctx, id); err != nil {
				s.logger.Warn("failed to delete todo", "id", id, "error", err)
				return false
			}
			return true
		})
	}

	succeeded := 0
	for _, ok := range p.Wait() {
		if ok {
			succeeded++
		}
	}
	failed := len(ids) - succeeded

	s.mu.Lock()
	s.selectedIDs = nil
	s.mu.Unlock()
	s.FetchAll(ctx)
	s.notifier.Info(fmt.Sprintf("删除成功 %d 个，失败 %d 个", succeeded, failed))
}

// LoadMore 滚动模式下展开下一段窗口
// 拉取中或已无更多数据时为空操作；窗口基于全量列表而非过滤结果，
// 切换关键字不会改变已展开的范围
func (s *Store) LoadMore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loading || !s.hasMore {
		return
	}

	start := len(s.visible)
	if start >= len(s.all) {
		s.hasMore = false
		return
	}

	end := min(start+s.pageSize, len(s.all))
	s.visible = append(s.visible, s.all[start:end]...)
	s.page++
	s.hasMore = end < len(s.all)
}

// SelectTodo 切换单条待办的选中状态
func (s *Store) SelectTodo(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := slices.Index(s.selectedIDs, id); i >= 0 {
		s.selectedIDs = slices.Delete(s.selectedIDs, i, i+1)
	} else {
		s.selectedIDs = append(s.selectedIDs, id)
	}
}

// SelectAll 全选/全不选
//
// 勾选时选中当前实际渲染的条目：分页模式为当前页的过滤结果，
// 滚动模式为已展开的全部过滤结果。取消勾选时清空整个选中集合。
func (s *Store) SelectAll(checked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !checked {
		s.selectedIDs = nil
		return
	}

	rendered := s.renderedLocked()
	ids := make([]int64, 0, len(rendered))
	for _, item := range rendered {
		ids = append(ids, item.ID)
	}
	s.selectedIDs = ids
}

// EnterEdit 进入编辑模式，无条件替换正在进行的编辑
// （同时最多一条处于编辑态，切换目标会静默丢弃上一条未保存的修改）
func (s *Store) EnterEdit(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = id
}

// SetViewMode 切换视图模式：回到第一页并重新拉取
func (s *Store) SetViewMode(ctx context.Context, mode ViewMode) {
	s.mu.Lock()
	if s.viewMode == mode {
		s.mu.Unlock()
		return
	}
	s.viewMode = mode
	s.page = 1
	s.mu.Unlock()
	s.FetchAll(ctx)
}

// SetPage 跳转页码（仅分页模式有意义；越界页码由展示层自行处理）
func (s *Store) SetPage(page int) {
	if page < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = page
}

// SetPageSize 修改页大小并回到第一页，只接受固定集合中的值
func (s *Store) SetPageSize(size int) {
	if !slices.Contains(PageSizes, size) {
		s.logger.Debug("ignoring unrecognized page size", "size", size)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pageSize = size
	s.page = 1
}

// SetSearchKeyword 设置搜索关键字并持久化
func (s *Store) SetSearchKeyword(keyword string) {
	s.mu.Lock()
	s.searchKeyword = keyword
	s.mu.Unlock()

	if err := s.keywords.Save(keyword); err != nil {
		s.logger.Warn("failed to persist search keyword", "error", err)
	}
}

// startOfToday 当天零点（本地时区）
func startOfToday(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
