package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/philipparndt/hyperdisk/pkg/watcher"
	"go.uber.org/zap"
)

const reloadDebounce = 300 * time.Millisecond

// Reloader delivers the config each time its file changes and parses cleanly
type Reloader struct {
	fw *watcher.FileWatcher

	mu      sync.Mutex
	closed  bool
	updates chan Config
}

// Watch starts watching the config file at path. Invalid edits are logged
// and skipped.
func Watch(path string, logger *zap.Logger) (*Reloader, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fw, err := watcher.NewFileWatcher(reloadDebounce, watcher.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	r := &Reloader{fw: fw, updates: make(chan Config, 1)}
	err = fw.Watch([]string{path}, func(changed string) {
		cfg, err := Load(changed)
		if err != nil {
			logger.Warn("ignoring config change", zap.String("path", changed), zap.Error(err))
			return
		}
		logger.Info("config reloaded", zap.String("path", changed))
		r.publish(cfg)
	})
	if err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch config: %w", err)
	}
	fw.Start()
	return r, nil
}

// publish replaces any undelivered config with cfg
func (r *Reloader) publish(cfg Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	select {
	case <-r.updates:
	default:
	}
	r.updates <- cfg
}

// Updates returns the channel of reloaded configs. It is closed by Close.
func (r *Reloader) Updates() <-chan Config { return r.updates }

// Poll returns the latest reloaded config without blocking
func (r *Reloader) Poll() (Config, bool) {
	select {
	case cfg, ok := <-r.updates:
		return cfg, ok
	default:
		return Config{}, false
	}
}

// Close stops watching and closes the updates channel
func (r *Reloader) Close() error {
	err := r.fw.Close()

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.closed {
		r.closed = true
		close(r.updates)
	}
	return err
}
