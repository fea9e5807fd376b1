package transcriber

import "context"

// Segment is one timed span of transcribed speech. Times are seconds
// relative to the start of the audio, with Start <= End.
type Segment struct {
	Start float64
	End   float64
	Text  string
}

// Result is the complete output of one transcription. Text and Segments are
// independently supplied: callers must not assume Text is the join of the
// segment texts.
type Result struct {
	Text     string
	Segments []Segment
	Language string
	Duration float64
}

// Options are the per-call parameters of a transcription.
type Options struct {
	AudioPath   string
	ModelSize   string
	ComputeType string
	// Language is a hint; empty means detect inside the engine.
	Language string
}

// Transcriber converts an audio file into timestamped text. The call is
// synchronous and may block for the full duration of model inference.
type Transcriber interface {
	Transcribe(ctx context.Context, opts Options) (*Result, error)
}
