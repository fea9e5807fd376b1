package watcher

import "context"

// Watcher monitors the inbox directory for newly dropped audio files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handler processes one detected audio file.
type Handler func(ctx context.Context, audioPath string) error
