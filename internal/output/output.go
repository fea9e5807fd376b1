package output

import (
	"fmt"
	"io"

	"github.com/jcamposd/apuntes-flow/internal/notewriter"
	"github.com/jcamposd/apuntes-flow/internal/summarizer"
	"github.com/jcamposd/apuntes-flow/internal/transcriber"
	"github.com/jcamposd/apuntes-flow/internal/workflow"
)

// Ensure the formatter can be plugged in as the workflow observer.
var _ workflow.Observer = (*Formatter)(nil)

// Formatter writes user-facing progress messages. It satisfies
// workflow.Observer so the CLI can surface milestones as they happen.
type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) TranscriptionStarted(audioPath string) {
	fmt.Fprintf(f.w, "🎙️  Transcribiendo %s (esto puede tardar)...\n", audioPath)
}

func (f *Formatter) TranscriptionFinished(result *transcriber.Result) {
	fmt.Fprintf(f.w, "✅ Transcripción lista: idioma %s, %.2f minutos\n", result.Language, result.Duration/60)
}

func (f *Formatter) SummarizationStarted(model string) {
	fmt.Fprintf(f.w, "🤖 Generando resumen con %s...\n", model)
}

func (f *Formatter) SummarizationSkipped() {
	fmt.Fprintf(f.w, "⏭️  Resumen omitido; la nota incluirá solo la transcripción\n")
}

func (f *Formatter) SummarizationFailed(err error) {
	fmt.Fprintf(f.w, "⚠️  No se pudo generar el resumen (%v); se usará el texto de respaldo\n", err)
}

func (f *Formatter) SummarizationFinished(summary *summarizer.Summary) {
	fmt.Fprintf(f.w, "✅ Resumen generado (%d avances, %d tareas)\n",
		len(summary.AvanceClase), len(summary.Tareas))
}

func (f *Formatter) NoteWritten(paths notewriter.NotePaths) {
	fmt.Fprintf(f.w, "📝 Nota creada: %s\n", paths.NotePath)
	fmt.Fprintf(f.w, "📄 Transcripción: %s\n", paths.TranscriptPath)
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

// ServiceCheck prints the result of one auxiliary-service check.
func (f *Formatter) ServiceCheck(title string, ready bool, detail string) {
	icon := "✅"
	if !ready {
		icon = "❌"
	}
	fmt.Fprintf(f.w, "%s %s: %s\n", icon, title, detail)
}
