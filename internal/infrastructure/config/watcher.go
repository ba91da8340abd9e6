package config

import (
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	applog "github.com/todomate/todomate/internal/infrastructure/log"
)

// Watcher 配置文件监听器：配置文件被修改时热更新日志级别
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	logger  *slog.Logger
	done    chan struct{}
}

// NewWatcher 创建配置文件监听器
// 配置文件不存在时仍监听其所在目录，等待文件被创建
func NewWatcher() (*Watcher, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher: fw,
		path:    path,
		logger:  applog.NewModuleLogger("config", "watcher"),
		done:    make(chan struct{}),
	}, nil
}

// Start 启动监听（后台 goroutine）
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	go w.run()
	return nil
}

// Stop 停止监听
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

// reload 重新读取配置并应用日志级别
func (w *Watcher) reload() {
	cfg := NewConfig()
	if cfg.Log.Level == "" {
		return
	}
	w.logger.Info("reloading log level from config", "level", cfg.Log.Level)
	applog.SetLevel(cfg.Log.Level)
}
