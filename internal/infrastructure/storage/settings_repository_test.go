package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestSettings(t *testing.T) SettingsRepository {
	t.Helper()

	db, err := OpenDB(filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	settings, err := NewSettingsRepository(db)
	require.NoError(t, err)
	return settings
}

func TestSettingsGetMissingKey(t *testing.T) {
	settings := setupTestSettings(t)

	// 不存在的键返回空串，不报错
	value, err := settings.Get("searchKeyword")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestSettingsSetOverwrites(t *testing.T) {
	settings := setupTestSettings(t)

	require.NoError(t, settings.Set("searchKeyword", "할일"))
	require.NoError(t, settings.Set("searchKeyword", "회의"))

	value, err := settings.Get("searchKeyword")
	require.NoError(t, err)
	assert.Equal(t, "회의", value)
}

func TestKeywordStoreFixedKey(t *testing.T) {
	settings := setupTestSettings(t)
	store := NewKeywordStore(settings)

	require.NoError(t, store.Save("할일 3"))

	// 关键字存放在固定键名下
	value, err := settings.Get(SearchKeywordKey)
	require.NoError(t, err)
	assert.Equal(t, "할일 3", value)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "할일 3", loaded)

	// 空关键字也会覆盖保存
	require.NoError(t, store.Save(""))
	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "", loaded)
}
