package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jcamposd/apuntes-flow/internal/output"
	"github.com/jcamposd/apuntes-flow/internal/services"
	"github.com/jcamposd/apuntes-flow/internal/workflow"
)

func NewRunCmd(deps *Dependencies) *cobra.Command {
	var title string
	var rawDate string
	var notesRoot string
	var skipSummary bool

	cmd := &cobra.Command{
		Use:   "run <audio>",
		Short: "Transcribe una grabación y genera la nota del día",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)
			ctx := cmd.Context()

			classDate, err := parseDate(rawDate)
			if err != nil {
				return err
			}

			deps.Services.Bootstrap(ctx, deps.Config.Services.AutoBootstrap, func(s services.Status) {
				if s.Ready {
					deps.Logger.Info(ctx, "%s: %s", s.Title, s.Detail)
				} else {
					deps.Logger.Warn(ctx, "%s: %s", s.Title, s.Detail)
				}
			})

			runner := workflow.New(deps.Config, deps.Transcriber, deps.Summarizer, deps.Logger, formatter)
			result, err := runner.Run(ctx, workflow.Request{
				AudioPath:   args[0],
				Title:       title,
				ClassDate:   classDate,
				NotesRoot:   notesRoot,
				SkipSummary: skipSummary,
			})
			if err != nil {
				return err
			}

			formatter.Success(fmt.Sprintf("¡Listo! Abre Obsidian en %s para revisar tus apuntes.",
				result.NotePath))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Título o asignatura de la clase (por defecto, el nombre del archivo)")
	cmd.Flags().StringVarP(&rawDate, "date", "d", "", "Fecha de la clase en formato YYYY-MM-DD (por defecto, hoy)")
	cmd.Flags().StringVar(&notesRoot, "notes-root", "", "Carpeta donde se guardarán las notas (sobrescribe notes.root)")
	cmd.Flags().BoolVar(&skipSummary, "skip-summary", false, "No generar resumen; la nota incluirá solo la transcripción")

	return cmd
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q, se espera YYYY-MM-DD", raw)
	}
	return parsed, nil
}
