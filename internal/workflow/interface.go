package workflow

import (
	"context"
	"errors"
	"time"

	"github.com/jcamposd/apuntes-flow/internal/notewriter"
	"github.com/jcamposd/apuntes-flow/internal/summarizer"
	"github.com/jcamposd/apuntes-flow/internal/transcriber"
)

// ErrAudioNotFound reports that the audio file does not exist. It is raised
// before any side effect occurs.
var ErrAudioNotFound = errors.New("el archivo de audio no existe")

// Request holds the inputs of one workflow run.
type Request struct {
	AudioPath string
	// Title is the class title; blank falls back to the audio file name.
	Title     string
	ClassDate time.Time
	// NotesRoot overrides the configured notes root when non-empty.
	NotesRoot   string
	SkipSummary bool
}

// Result describes a completed run. The markdown files on disk are the
// persistent state; this aggregate is read-only.
type Result struct {
	NotePath       string
	TranscriptPath string
	Summary        *summarizer.Summary
	Transcription  *transcriber.Result
}

// Runner sequences transcription, summarization and note materialization for
// one audio file. Runs are strictly sequential and expose no cancellation
// beyond the context passed to blocking adapter calls.
type Runner interface {
	Run(ctx context.Context, req Request) (*Result, error)
}

// Observer receives workflow milestones. The runner calls it synchronously;
// presentation layers marshal onto their own event loop if they need to.
type Observer interface {
	TranscriptionStarted(audioPath string)
	TranscriptionFinished(result *transcriber.Result)
	SummarizationStarted(model string)
	SummarizationSkipped()
	SummarizationFailed(err error)
	SummarizationFinished(summary *summarizer.Summary)
	NoteWritten(paths notewriter.NotePaths)
}

// NopObserver ignores every milestone.
type NopObserver struct{}

func (NopObserver) TranscriptionStarted(string)               {}
func (NopObserver) TranscriptionFinished(*transcriber.Result) {}
func (NopObserver) SummarizationStarted(string)               {}
func (NopObserver) SummarizationSkipped()                     {}
func (NopObserver) SummarizationFailed(error)                 {}
func (NopObserver) SummarizationFinished(*summarizer.Summary) {}
func (NopObserver) NoteWritten(notewriter.NotePaths)          {}
