package storage

import (
	"database/sql"
	"fmt"
)

// SettingsRepository 键值设置仓储接口
type SettingsRepository interface {
	// Get 读取设置，不存在时返回空字符串
	Get(key string) (string, error)

	// Set 写入设置（不存在则创建）
	Set(key, value string) error
}

// settingsRepository 键值设置 SQLite 仓储实现
type settingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository 创建设置仓储实例
func NewSettingsRepository(db *sql.DB) (SettingsRepository, error) {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	if _, err := db.Exec(createTableSQL); err != nil {
		return nil, fmt.Errorf("failed to create settings table: %w", err)
	}
	return &settingsRepository{db: db}, nil
}

// Get 读取设置
func (r *settingsRepository) Get(key string) (string, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to query setting: %w", err)
	}
	return value, nil
}

// Set 写入设置
func (r *settingsRepository) Set(key, value string) error {
	_, err := r.db.Exec(
		`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}
	return nil
}
