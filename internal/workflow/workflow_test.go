package workflow

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/jcamposd/apuntes-flow/internal/config"
	"github.com/jcamposd/apuntes-flow/internal/logger"
	"github.com/jcamposd/apuntes-flow/internal/notewriter"
	"github.com/jcamposd/apuntes-flow/internal/summarizer"
	"github.com/jcamposd/apuntes-flow/internal/transcriber"
)

type mockTranscriber struct {
	result  *transcriber.Result
	err     error
	calls   int
	gotOpts transcriber.Options
}

func (m *mockTranscriber) Transcribe(ctx context.Context, opts transcriber.Options) (*transcriber.Result, error) {
	m.calls++
	m.gotOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

type mockSummarizer struct {
	summary *summarizer.Summary
	err     error
	calls   int
}

func (m *mockSummarizer) Summarize(ctx context.Context, req summarizer.Request) (*summarizer.Summary, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.summary, nil
}

type recordingObserver struct {
	NopObserver
	milestones []string
}

func (r *recordingObserver) TranscriptionStarted(string)               { r.record("transcription-started") }
func (r *recordingObserver) TranscriptionFinished(*transcriber.Result) { r.record("transcription-finished") }
func (r *recordingObserver) SummarizationStarted(string)               { r.record("summarization-started") }
func (r *recordingObserver) SummarizationSkipped()                     { r.record("summarization-skipped") }
func (r *recordingObserver) SummarizationFailed(error)                 { r.record("summarization-failed") }
func (r *recordingObserver) SummarizationFinished(*summarizer.Summary) { r.record("summarization-finished") }
func (r *recordingObserver) NoteWritten(notewriter.NotePaths)          { r.record("note-written") }

func (r *recordingObserver) record(m string) { r.milestones = append(r.milestones, m) }

var testDate = time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

func testTranscription() *transcriber.Result {
	return &transcriber.Result{
		Text: "Hola a todos. Hoy veremos derivadas.",
		Segments: []transcriber.Segment{
			{Start: 0, End: 4.5, Text: "Hola a todos."},
			{Start: 4.5, End: 11.25, Text: "Hoy veremos derivadas."},
		},
		Language: "es",
		Duration: 11.25,
	}
}

func testFixture(t *testing.T) (string, string, *config.Config) {
	t.Helper()
	dir := t.TempDir()
	audioPath := filepath.Join(dir, "clase-grabada.mp3")
	if err := os.WriteFile(audioPath, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}
	notesRoot := filepath.Join(dir, "notes")
	cfg := &config.Config{
		Whisper: config.WhisperConfig{
			ModelSize:   "small",
			ComputeType: "auto",
			Language:    "es",
		},
		Notes: config.NotesConfig{Root: notesRoot},
	}
	return audioPath, notesRoot, cfg
}

func TestRunSkipSummary(t *testing.T) {
	audioPath, _, cfg := testFixture(t)
	trans := &mockTranscriber{result: testTranscription()}
	summ := &mockSummarizer{summary: &summarizer.Summary{AvanceClase: []string{"nunca"}}}
	obs := &recordingObserver{}

	runner := New(cfg, trans, summ, logger.New("error"), obs)
	result, err := runner.Run(context.Background(), Request{
		AudioPath:   audioPath,
		Title:       "Historia",
		ClassDate:   testDate,
		SkipSummary: true,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if summ.calls != 0 {
		t.Errorf("summarizer called %d times, want 0", summ.calls)
	}
	if !reflect.DeepEqual(result.Summary, summarizer.Fallback()) {
		t.Errorf("Summary = %+v, want exact fallback", result.Summary)
	}

	wantMilestones := []string{
		"transcription-started", "transcription-finished",
		"summarization-skipped", "note-written",
	}
	if !reflect.DeepEqual(obs.milestones, wantMilestones) {
		t.Errorf("milestones = %v, want %v", obs.milestones, wantMilestones)
	}
}

func TestRunSummarizerFailure(t *testing.T) {
	audioPath, _, cfg := testFixture(t)
	trans := &mockTranscriber{result: testTranscription()}
	summ := &mockSummarizer{err: &summarizer.SummarizationError{Reason: "conexión rechazada"}}

	runner := New(cfg, trans, summ, logger.New("error"), nil)
	result, err := runner.Run(context.Background(), Request{
		AudioPath: audioPath,
		Title:     "Historia",
		ClassDate: testDate,
	})
	if err != nil {
		t.Fatalf("Run() error = %v, summarizer failures must not abort the workflow", err)
	}

	if summ.calls != 1 {
		t.Errorf("summarizer called %d times, want 1", summ.calls)
	}
	if !reflect.DeepEqual(result.Summary, summarizer.Fallback()) {
		t.Errorf("Summary = %+v, want exact fallback", result.Summary)
	}

	noteData, err := os.ReadFile(result.NotePath)
	if err != nil {
		t.Fatalf("note not written: %v", err)
	}
	note := string(noteData)
	if !strings.Contains(note, "### Avance de clase\n- Revisar transcripción adjunta.") {
		t.Errorf("note missing fallback bullet:\n%s", note)
	}
}

func TestRunEndToEnd(t *testing.T) {
	audioPath, notesRoot, cfg := testFixture(t)
	trans := &mockTranscriber{result: testTranscription()}
	summ := &mockSummarizer{summary: &summarizer.Summary{
		AvanceClase:     []string{"Derivadas de funciones compuestas"},
		Tareas:          []string{"Ejercicios 1 a 5"},
		Pendientes:      []string{"Traer calculadora"},
		PreguntasExamen: []string{"¿Qué es la regla de la cadena?"},
	}}

	runner := New(cfg, trans, summ, logger.New("error"), nil)
	result, err := runner.Run(context.Background(), Request{
		AudioPath: audioPath,
		Title:     "Cálculo II",
		ClassDate: testDate,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantNote := filepath.Join(notesRoot, "2024", "05", "2024-05-20-calculo-ii.md")
	wantTranscript := filepath.Join(notesRoot, "2024", "05", "transcripciones", "2024-05-20-calculo-ii-transcripcion.md")

	if result.NotePath != wantNote {
		t.Errorf("NotePath = %q, want %q", result.NotePath, wantNote)
	}
	if result.TranscriptPath != wantTranscript {
		t.Errorf("TranscriptPath = %q, want %q", result.TranscriptPath, wantTranscript)
	}

	noteData, err := os.ReadFile(wantNote)
	if err != nil {
		t.Fatalf("note not written: %v", err)
	}
	if !strings.Contains(string(noteData), "date: 2024-05-20") {
		t.Errorf("note front-matter missing date:\n%s", noteData)
	}
	if !strings.Contains(string(noteData), "- Derivadas de funciones compuestas") {
		t.Errorf("note missing summary item:\n%s", noteData)
	}
	if _, err := os.Stat(wantTranscript); err != nil {
		t.Errorf("transcript not written: %v", err)
	}

	// Configured whisper parameters are threaded through to the adapter.
	if trans.gotOpts.ModelSize != "small" || trans.gotOpts.Language != "es" {
		t.Errorf("adapter options = %+v", trans.gotOpts)
	}
}

func TestRunAudioNotFound(t *testing.T) {
	_, _, cfg := testFixture(t)
	trans := &mockTranscriber{result: testTranscription()}
	summ := &mockSummarizer{}

	runner := New(cfg, trans, summ, logger.New("error"), nil)
	_, err := runner.Run(context.Background(), Request{
		AudioPath: filepath.Join(t.TempDir(), "no-existe.mp3"),
		ClassDate: testDate,
	})

	if !errors.Is(err, ErrAudioNotFound) {
		t.Fatalf("error = %v, want ErrAudioNotFound", err)
	}
	if trans.calls != 0 || summ.calls != 0 {
		t.Error("adapters must not be called when the audio file is missing")
	}
}

func TestRunTranscriberFailureIsFatal(t *testing.T) {
	audioPath, notesRoot, cfg := testFixture(t)
	trans := &mockTranscriber{err: errors.New("modelo no encontrado")}
	summ := &mockSummarizer{}

	runner := New(cfg, trans, summ, logger.New("error"), nil)
	_, err := runner.Run(context.Background(), Request{
		AudioPath: audioPath,
		Title:     "Historia",
		ClassDate: testDate,
	})
	if err == nil {
		t.Fatal("Run() should propagate transcription failures")
	}
	if summ.calls != 0 {
		t.Error("summarizer must not run after a transcription failure")
	}
	if _, statErr := os.Stat(filepath.Join(notesRoot, "2024")); !os.IsNotExist(statErr) {
		t.Error("no note tree should exist after a transcription failure")
	}
}

func TestRunTitleFallsBackToFileName(t *testing.T) {
	audioPath, notesRoot, cfg := testFixture(t)
	trans := &mockTranscriber{result: testTranscription()}

	runner := New(cfg, trans, &mockSummarizer{}, logger.New("error"), nil)
	result, err := runner.Run(context.Background(), Request{
		AudioPath:   audioPath,
		Title:       "   ",
		ClassDate:   testDate,
		SkipSummary: true,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := filepath.Join(notesRoot, "2024", "05", "2024-05-20-clase-grabada.md")
	if result.NotePath != want {
		t.Errorf("NotePath = %q, want %q", result.NotePath, want)
	}

	noteData, _ := os.ReadFile(result.NotePath)
	if !strings.Contains(string(noteData), "title: clase-grabada") {
		t.Errorf("title not derived from file name:\n%s", noteData)
	}
}

func TestRunNotesRootOverride(t *testing.T) {
	audioPath, _, cfg := testFixture(t)
	override := filepath.Join(t.TempDir(), "otras-notas")
	trans := &mockTranscriber{result: testTranscription()}

	runner := New(cfg, trans, &mockSummarizer{}, logger.New("error"), nil)
	result, err := runner.Run(context.Background(), Request{
		AudioPath:   audioPath,
		Title:       "Historia",
		ClassDate:   testDate,
		NotesRoot:   override,
		SkipSummary: true,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.HasPrefix(result.NotePath, override) {
		t.Errorf("NotePath = %q, want under %q", result.NotePath, override)
	}
}
