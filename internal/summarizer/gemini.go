package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/jcamposd/apuntes-flow/internal/logger"
)

type implGemini struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// NewGemini creates a Summarizer backed by the Gemini API, rotating through
// the supplied keys on quota errors.
func NewGemini(apiKeys []string, model string, log logger.Logger) Summarizer {
	return &implGemini{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}

func (s *implGemini) Summarize(ctx context.Context, req Request) (*Summary, error) {
	prompt := systemPrompt + "\n\n" + buildPrompt(req)

	content, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	summary, err := parseSummaryJSON(content)
	if err != nil {
		s.logger.Error(ctx, "No se pudo interpretar la respuesta JSON: %s", content)
		return nil, &SummarizationError{Reason: "la respuesta del modelo no es JSON válido", Err: err}
	}

	return summary, nil
}

func (s *implGemini) generate(ctx context.Context, prompt string) (string, error) {
	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Clave %d limitada por cuota, rotando...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", &SummarizationError{Reason: "error al generar contenido con Gemini", Err: err}
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", &SummarizationError{Reason: "respuesta vacía de Gemini"}
	}

	return "", &SummarizationError{Reason: "todas las claves de API agotadas", Err: lastErr}
}

func (s *implGemini) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
