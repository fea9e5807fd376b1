package summarizer

import (
	"encoding/json"
	"strings"
)

// Summary holds the four categorized lists of study items extracted from a
// class transcript. Empty lists are valid.
type Summary struct {
	AvanceClase     []string `json:"avance_clase"`
	Tareas          []string `json:"tareas"`
	Pendientes      []string `json:"pendientes"`
	PreguntasExamen []string `json:"preguntas_examen"`
}

// Fallback returns the fixed Summary used when summarization is skipped or
// fails: a single reminder to review the attached transcript.
func Fallback() *Summary {
	return &Summary{
		AvanceClase:     []string{"Revisar transcripción adjunta."},
		Tareas:          []string{},
		Pendientes:      []string{},
		PreguntasExamen: []string{},
	}
}

// parseSummaryJSON decodes a model response into a Summary. Models often wrap
// JSON in markdown fences; those are stripped before decoding. Missing keys
// decode as empty lists.
func parseSummaryJSON(content string) (*Summary, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var summary Summary
	if err := json.Unmarshal([]byte(content), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
