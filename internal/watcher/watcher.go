package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jcamposd/apuntes-flow/internal/logger"
)

// settleDelay gives the OS time to finish writing a freshly created file
// before it is handed to the pipeline.
const settleDelay = 500 * time.Millisecond

var audioExtensions = []string{
	".mp3", ".wav", ".m4a", ".ogg", ".flac", ".aac", ".wma", ".opus",
}

type implWatcher struct {
	inboxDir  string
	handler   Handler
	logger    logger.Logger
	watcher   *fsnotify.Watcher
	semaphore chan struct{}
	wg        sync.WaitGroup
}

// Start monitors the inbox until the context is cancelled, dispatching every
// new audio file to the handler with bounded concurrency.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Vigilando la carpeta de entrada: %s", w.inboxDir)
	w.logger.Info(ctx, "Formatos soportados: %s", strings.Join(audioExtensions, ", "))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Esperando a que terminen los procesos en curso...")
			w.wg.Wait()
			w.logger.Info(ctx, "Vigilancia detenida")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isAudioFile(event.Name) {
				w.logger.Debug(ctx, "Se ignora un archivo que no es de audio: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "Nuevo audio detectado: %s", event.Name)
			time.Sleep(settleDelay)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(audioPath string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					if err := w.handler(ctx, audioPath); err != nil {
						w.logger.Error(ctx, "No se pudo procesar %s: %v", audioPath, err)
					}
				}(event.Name)
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Error del watcher: %v", err)
		}
	}
}

// Stop closes the underlying fsnotify watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range audioExtensions {
		if ext == known {
			return true
		}
	}
	return false
}
