package storage

import (
	apptodo "github.com/todomate/todomate/internal/application/todo"
)

// SearchKeywordKey 搜索关键字在设置表中的固定键名
const SearchKeywordKey = "searchKeyword"

// keywordStore 基于设置仓储的搜索关键字持久化实现
type keywordStore struct {
	settings SettingsRepository
}

// NewKeywordStore 创建搜索关键字存储
func NewKeywordStore(settings SettingsRepository) apptodo.KeywordStore {
	return &keywordStore{settings: settings}
}

// Load 恢复关键字
func (s *keywordStore) Load() (string, error) {
	return s.settings.Get(SearchKeywordKey)
}

// Save 保存关键字
func (s *keywordStore) Save(keyword string) error {
	return s.settings.Set(SearchKeywordKey, keyword)
}

// 编译时检查接口实现
var _ apptodo.KeywordStore = (*keywordStore)(nil)
