package summarizer

import "context"

// Request carries the transcript and class metadata for one summarization.
type Request struct {
	Transcript string
	// ClassDate is the class date in ISO format (YYYY-MM-DD).
	ClassDate  string
	ClassTitle string
}

// Summarizer extracts structured study items from a transcript. Failures are
// reported as *SummarizationError and are recoverable by the caller.
type Summarizer interface {
	Summarize(ctx context.Context, req Request) (*Summary, error)
}
