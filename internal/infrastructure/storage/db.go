package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/todomate/todomate/internal/infrastructure/config"
	_ "modernc.org/sqlite"
)

// GetDBPath 获取服务端数据库路径
// Windows: %USERPROFILE%\.todomate\todomate.db
// macOS/Linux: ~/.todomate/todomate.db
func GetDBPath() (string, error) {
	dir, err := config.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "todomate.db"), nil
}

// GetClientDBPath 获取客户端本地数据库路径（设置项持久化）
func GetClientDBPath() (string, error) {
	dir, err := config.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "client.db"), nil
}

// OpenDB 打开指定路径的数据库连接，确保目录存在
func OpenDB(dbPath string) (*sql.DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// 测试连接
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// ProvideDB 按配置提供服务端数据库连接（wire 提供者）
func ProvideDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	dbPath := cfg.Path
	if dbPath == "" {
		var err error
		dbPath, err = GetDBPath()
		if err != nil {
			return nil, err
		}
	}
	return OpenDB(dbPath)
}
