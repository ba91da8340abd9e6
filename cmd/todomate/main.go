// todomate 终端客户端：连接本地守护进程，管理待办列表
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	apptodo "github.com/todomate/todomate/internal/application/todo"
	"github.com/todomate/todomate/internal/infrastructure/api"
	"github.com/todomate/todomate/internal/infrastructure/config"
	applog "github.com/todomate/todomate/internal/infrastructure/log"
	"github.com/todomate/todomate/internal/infrastructure/notification"
	"github.com/todomate/todomate/internal/infrastructure/storage"
	"github.com/todomate/todomate/internal/interfaces/tui"
)

func main() {
	cfg := config.NewConfig()

	// 终端被界面占用，日志写入数据目录下的文件
	if err := initFileLog(); err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	logger := applog.NewModuleLogger("client", "main")

	// 客户端本地数据库：搜索关键字等设置
	clientDBPath := cfg.Database.ClientPath
	if clientDBPath == "" {
		path, err := storage.GetClientDBPath()
		if err != nil {
			logger.Error("failed to resolve client database path", "error", err)
			os.Exit(1)
		}
		clientDBPath = path
	}
	db, err := storage.OpenDB(clientDBPath)
	if err != nil {
		logger.Error("failed to open client database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	settings, err := storage.NewSettingsRepository(db)
	if err != nil {
		logger.Error("failed to init settings repository", "error", err)
		os.Exit(1)
	}

	// 组装状态存储：远端 API + 通知通道 + 关键字持久化
	client := api.NewClient(cfg.Client.BaseURL)
	notifier := notification.NewChanNotifier(0)
	store := apptodo.NewStore(client, notifier, storage.NewKeywordStore(settings))

	program := tea.NewProgram(tui.NewModel(store, notifier), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("tui exited with error", "error", err)
		os.Exit(1)
	}
}

// initFileLog 把日志输出重定向到 ~/.todomate/client.log
func initFileLog() error {
	dataDir, err := config.DataDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}
	logFile, err := os.OpenFile(filepath.Join(dataDir, "client.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	applog.InitWithWriter(nil, logFile)
	return nil
}
