package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jcamposd/apuntes-flow/internal/notewriter"
	"github.com/jcamposd/apuntes-flow/internal/summarizer"
	"github.com/jcamposd/apuntes-flow/internal/transcriber"
)

// Run executes one transcription and note-generation pass. Summarization
// failures are downgraded to the fallback summary; every other failure is
// fatal and propagates to the caller.
func (r *implRunner) Run(ctx context.Context, req Request) (*Result, error) {
	audioPath, err := filepath.Abs(req.AudioPath)
	if err != nil {
		return nil, fmt.Errorf("resolve audio path: %w", err)
	}
	if _, err := os.Stat(audioPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAudioNotFound, audioPath)
	}

	outputRoot := req.NotesRoot
	if outputRoot == "" {
		outputRoot = r.cfg.Notes.Root
	}
	if err := os.MkdirAll(outputRoot, 0755); err != nil {
		return nil, fmt.Errorf("create notes root: %w", err)
	}

	audioName := filepath.Base(audioPath)
	finalTitle := strings.TrimSpace(req.Title)
	if finalTitle == "" {
		finalTitle = strings.TrimSuffix(audioName, filepath.Ext(audioName))
	}
	slug := Slugify(finalTitle)

	r.logger.Info(ctx, "Guardando notas en %s", outputRoot)

	r.observer.TranscriptionStarted(audioPath)
	transcription, err := r.transcriber.Transcribe(ctx, transcriber.Options{
		AudioPath:   audioPath,
		ModelSize:   r.cfg.Whisper.ModelSize,
		ComputeType: r.cfg.Whisper.ComputeType,
		Language:    r.cfg.Whisper.Language,
	})
	if err != nil {
		return nil, fmt.Errorf("transcribe %s: %w", audioName, err)
	}
	r.observer.TranscriptionFinished(transcription)

	var summary *summarizer.Summary
	if req.SkipSummary {
		r.logger.Warn(ctx, "Se omitirá la generación de resumen por petición del usuario")
		r.observer.SummarizationSkipped()
	} else {
		model := r.summaryModel()
		r.logger.Info(ctx, "Generando resumen con el modelo %s", model)
		r.observer.SummarizationStarted(model)

		summary, err = r.summarizer.Summarize(ctx, summarizer.Request{
			Transcript: transcription.Text,
			ClassDate:  req.ClassDate.Format("2006-01-02"),
			ClassTitle: finalTitle,
		})
		if err != nil {
			r.logger.Error(ctx, "No se pudo generar el resumen: %v", err)
			r.logger.Warn(ctx, "La nota se creará únicamente con la transcripción.")
			r.observer.SummarizationFailed(err)
			summary = nil
		} else {
			r.observer.SummarizationFinished(summary)
		}
	}

	if summary == nil {
		summary = summarizer.Fallback()
	}

	paths, err := notewriter.PreparePaths(outputRoot, req.ClassDate, slug)
	if err != nil {
		return nil, err
	}

	note := notewriter.Note{
		Summary:         summary,
		Segments:        transcription.Segments,
		ClassDate:       req.ClassDate,
		Title:           finalTitle,
		AudioName:       audioName,
		Language:        transcription.Language,
		DurationMinutes: transcription.Duration / 60,
	}
	if err := notewriter.WriteNote(paths, note); err != nil {
		return nil, err
	}

	if r.cfg.Notes.DocxExport {
		if docxPath, err := notewriter.ExportDocx(paths, note); err != nil {
			r.logger.Warn(ctx, "No se pudo exportar el documento docx: %v", err)
		} else {
			r.logger.Info(ctx, "Documento docx exportado en %s", docxPath)
		}
	}

	r.logger.Info(ctx, "Nota creada en %s", paths.NotePath)
	r.logger.Info(ctx, "Transcripción detallada guardada en %s", paths.TranscriptPath)
	r.observer.NoteWritten(paths)

	return &Result{
		NotePath:       paths.NotePath,
		TranscriptPath: paths.TranscriptPath,
		Summary:        summary,
		Transcription:  transcription,
	}, nil
}

func (r *implRunner) summaryModel() string {
	if r.cfg.Summarizer.Provider == "gemini" {
		return r.cfg.Gemini.Model
	}
	return r.cfg.LMStudio.Model
}
