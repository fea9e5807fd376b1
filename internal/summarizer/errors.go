package summarizer

import "fmt"

// SummarizationError reports that no summary could be produced, with a
// human-readable cause. Callers treat every instance the same way; the cause
// only matters for logging.
type SummarizationError struct {
	Reason string
	Err    error
}

func (e *SummarizationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *SummarizationError) Unwrap() error {
	return e.Err
}
