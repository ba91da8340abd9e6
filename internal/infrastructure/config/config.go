package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Client    ClientConfig    `yaml:"client"`
	WebSocket WebSocketConfig `yaml:"websocket"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	// HTTPPort 固定端口，同时用于单例锁
	HTTPPort string `yaml:"http_port"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	// Path 服务端数据库路径，留空使用 ~/.todomate/todomate.db
	Path string `yaml:"path"`

	// ClientPath 客户端本地数据库路径（搜索关键字等设置），留空使用 ~/.todomate/client.db
	ClientPath string `yaml:"client_path"`
}

// ClientConfig 客户端配置
type ClientConfig struct {
	// BaseURL 待办服务地址
	BaseURL string `yaml:"base_url"`
}

// WebSocketConfig WebSocket 配置
type WebSocketConfig struct {
	ReadBufferSize  int `yaml:"read_buffer_size"`
	WriteBufferSize int `yaml:"write_buffer_size"`
}

// LogConfig 日志配置（支持热更新级别）
type LogConfig struct {
	Level string `yaml:"level"`
}

// NewConfig 创建配置：默认值之上叠加 ~/.todomate/config.yaml（如果存在）
func NewConfig() *Config {
	cfg := defaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		// 配置文件不存在属于正常情况，使用默认值
		return cfg
	}
	// 解析失败时保留已合并的默认值
	_ = yaml.Unmarshal(data, cfg)
	return cfg
}

// defaultConfig 默认配置
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort: ":17920",
		},
		Database: DatabaseConfig{
			Path:       "",
			ClientPath: "",
		},
		Client: ClientConfig{
			BaseURL: "http://localhost:17920",
		},
		WebSocket: WebSocketConfig{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		Log: LogConfig{
			Level: "",
		},
	}
}

// DataDir todomate 数据目录（~/.todomate）
func DataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".todomate"), nil
}

// ConfigPath 配置文件路径（~/.todomate/config.yaml）
func ConfigPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// NewServerConfig 创建服务器配置
func NewServerConfig(cfg *Config) *ServerConfig {
	return &cfg.Server
}

// NewDatabaseConfig 创建数据库配置
func NewDatabaseConfig(cfg *Config) *DatabaseConfig {
	return &cfg.Database
}

// NewClientConfig 创建客户端配置
func NewClientConfig(cfg *Config) *ClientConfig {
	return &cfg.Client
}

// NewWebSocketConfig 创建 WebSocket 配置
func NewWebSocketConfig(cfg *Config) *WebSocketConfig {
	return &cfg.WebSocket
}
