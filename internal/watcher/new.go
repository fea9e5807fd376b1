package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/jcamposd/apuntes-flow/internal/logger"
)

// New creates a Watcher over inboxDir dispatching to handler, with at most
// maxConcurrent files in flight.
func New(inboxDir string, handler Handler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsWatcher.Add(inboxDir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &implWatcher{
		inboxDir:  inboxDir,
		handler:   handler,
		logger:    log,
		watcher:   fsWatcher,
		semaphore: make(chan struct{}, maxConcurrent),
	}, nil
}
