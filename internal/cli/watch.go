package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jcamposd/apuntes-flow/internal/watcher"
	"github.com/jcamposd/apuntes-flow/internal/workflow"
)

func NewWatchCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Vigila la carpeta de entrada y procesa cada audio nuevo",
		Long: "Monitorea la carpeta configurada en watcher.inbox. Cada archivo de audio " +
			"que aparezca se transcribe y se convierte en nota; el original se mueve a " +
			"watcher.archived al terminar.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			cfg := deps.Config
			for _, dir := range []string{cfg.Watcher.Inbox, cfg.Watcher.Archived} {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("create directory %s: %w", dir, err)
				}
			}

			deps.Services.Bootstrap(ctx, cfg.Services.AutoBootstrap, nil)

			runner := workflow.New(cfg, deps.Transcriber, deps.Summarizer, deps.Logger, nil)
			handler := func(ctx context.Context, audioPath string) error {
				now := time.Now()
				_, err := runner.Run(ctx, workflow.Request{
					AudioPath: audioPath,
					ClassDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local),
				})
				if err != nil {
					return err
				}

				archived := filepath.Join(cfg.Watcher.Archived, filepath.Base(audioPath))
				if err := os.Rename(audioPath, archived); err != nil {
					deps.Logger.Warn(ctx, "No se pudo archivar %s: %v", audioPath, err)
				}
				return nil
			}

			w, err := watcher.New(cfg.Watcher.Inbox, handler, deps.Logger, cfg.Watcher.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			deps.Logger.Info(ctx, "Pulsa Ctrl+C para detener")
			if err := w.Start(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}
}
