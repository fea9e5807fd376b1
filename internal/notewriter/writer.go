package notewriter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/jcamposd/apuntes-flow/internal/summarizer"
	"github.com/jcamposd/apuntes-flow/internal/transcriber"
)

// Note carries everything needed to render the note/transcript pair.
type Note struct {
	Summary         *summarizer.Summary
	Segments        []transcriber.Segment
	ClassDate       time.Time
	Title           string
	AudioName       string
	Language        string
	DurationMinutes float64
}

const noteTemplate = `---
date: {{.DateISO}}
title: {{.Title}}
audio_source: {{.AudioName}}
language: {{.Language}}
duration_minutes: {{printf "%.2f" .DurationMinutes}}
---

# {{.Title}} ({{.DateHuman}})

## Resumen estructurado

### Avance de clase
{{.Avance}}

### Tareas asignadas
{{.Tareas}}

### Pendientes y recordatorios
{{.Pendientes}}

### Preguntas para el examen
{{.Preguntas}}

## Transcripción completa

El detalle por segmentos se encuentra en el archivo relacionado: [[{{.TranscriptRel}}]].
`

const transcriptTemplate = `# Transcripción - {{.Title}} ({{.DateHuman}})

Archivo de audio: {{.AudioName}}
Idioma detectado: {{.Language}}
Duración: {{printf "%.2f" .DurationMinutes}} minutos

{{.Table}}
`

var (
	noteTmpl       = template.Must(template.New("note").Parse(noteTemplate))
	transcriptTmpl = template.Must(template.New("transcript").Parse(transcriptTemplate))
)

// WriteNote renders both markdown documents and writes them to the given
// paths, overwriting unconditionally. The two writes are independent; if the
// second fails the first file stays on disk.
func WriteNote(paths NotePaths, note Note) error {
	dateHuman := formatDateHuman(note.ClassDate)

	var noteBuf bytes.Buffer
	err := noteTmpl.Execute(&noteBuf, map[string]any{
		"DateISO":         note.ClassDate.Format("2006-01-02"),
		"DateHuman":       dateHuman,
		"Title":           note.Title,
		"AudioName":       note.AudioName,
		"Language":        note.Language,
		"DurationMinutes": note.DurationMinutes,
		"Avance":          listToMarkdown(note.Summary.AvanceClase),
		"Tareas":          listToMarkdown(note.Summary.Tareas),
		"Pendientes":      listToMarkdown(note.Summary.Pendientes),
		"Preguntas":       listToMarkdown(note.Summary.PreguntasExamen),
		"TranscriptRel":   filepath.Base(paths.TranscriptPath),
	})
	if err != nil {
		return fmt.Errorf("render note: %w", err)
	}

	var transcriptBuf bytes.Buffer
	err = transcriptTmpl.Execute(&transcriptBuf, map[string]any{
		"DateHuman":       dateHuman,
		"Title":           note.Title,
		"AudioName":       note.AudioName,
		"Language":        note.Language,
		"DurationMinutes": note.DurationMinutes,
		"Table":           transcriber.SegmentsToMarkdown(note.Segments),
	})
	if err != nil {
		return fmt.Errorf("render transcript: %w", err)
	}

	if err := os.WriteFile(paths.NotePath, noteBuf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write note: %w", err)
	}
	if err := os.WriteFile(paths.TranscriptPath, transcriptBuf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}

	return nil
}

// listToMarkdown turns a list of items into markdown bullets, trimming and
// filtering empties. A section never renders with zero bullets.
func listToMarkdown(items []string) string {
	var cleaned []string
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			cleaned = append(cleaned, "- "+trimmed)
		}
	}
	if len(cleaned) == 0 {
		return "- (Sin información registrada)"
	}
	return strings.Join(cleaned, "\n")
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// formatDateHuman renders a date as "20 de mayo de 2024".
func formatDateHuman(d time.Time) string {
	return fmt.Sprintf("%d de %s de %d", d.Day(), spanishMonths[d.Month()-1], d.Year())
}
