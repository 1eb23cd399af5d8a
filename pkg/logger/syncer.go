package logger

import (
	"fmt"
	"os"
	"sync"
)

// ReopenableWriteSyncer is a zapcore.WriteSyncer backed by a file that can be
// reopened at runtime, so logrotate can rename the current file and send
// SIGHUP to get a fresh one.
type ReopenableWriteSyncer struct {
	path string

	mu   sync.Mutex
	file *os.File
}

func NewReopenableWriteSyncer(path string) (*ReopenableWriteSyncer, error) {
	ws := &ReopenableWriteSyncer{
		path: path,
	}
	if err := ws.Reload(); err != nil {
		return nil, fmt.Errorf("logger.NewReopenableWriteSyncer: %w", err)
	}
	return ws, nil
}

// Reload opens the configured path again and closes the previous handle.
func (ws *ReopenableWriteSyncer) Reload() error {
	file, err := os.OpenFile(ws.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	ws.mu.Lock()
	old := ws.file
	ws.file = file
	ws.mu.Unlock()
	if old != nil {
		return old.Close()
	}
	return nil
}

func (ws *ReopenableWriteSyncer) Write(p []byte) (int, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.file.Write(p)
}

func (ws *ReopenableWriteSyncer) Sync() error {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.file.Sync()
}

func (ws *ReopenableWriteSyncer) Close() error {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.file.Close()
}
