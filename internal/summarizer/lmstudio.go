package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jcamposd/apuntes-flow/internal/logger"
)

const defaultTemperature = 0.2

type implLMStudio struct {
	client  *http.Client
	baseURL string
	model   string
	logger  logger.Logger
}

// NewLMStudio creates a Summarizer that talks to an OpenAI-compatible
// chat-completions endpoint such as the one LM Studio exposes.
func NewLMStudio(baseURL, model string, timeout time.Duration, log logger.Logger) Summarizer {
	return &implLMStudio{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		logger:  log,
	}
}

// chatCompletionRequest is the OpenAI /chat/completions request format.
type chatCompletionRequest struct {
	Model       string              `json:"model"`
	Messages    []chatCompletionMsg `json:"messages"`
	Temperature float64             `json:"temperature"`
	MaxTokens   int                 `json:"max_tokens"`
}

type chatCompletionMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionResponse is the OpenAI /chat/completions response format.
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (s *implLMStudio) Summarize(ctx context.Context, req Request) (*Summary, error) {
	reqBody := chatCompletionRequest{
		Model: s.model,
		Messages: []chatCompletionMsg{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(req)},
		},
		Temperature: defaultTemperature,
		MaxTokens:   800,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &SummarizationError{Reason: "no se pudo serializar la petición", Err: err}
	}

	url := s.baseURL + "/chat/completions"
	s.logger.Info(ctx, "Solicitando resumen a LM Studio en %s", url)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &SummarizationError{Reason: "no se pudo crear la petición HTTP", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, &SummarizationError{Reason: "error de conexión con LM Studio", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SummarizationError{Reason: "no se pudo leer la respuesta", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &SummarizationError{
			Reason: fmt.Sprintf("error %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var apiResp chatCompletionResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, &SummarizationError{Reason: "respuesta de LM Studio no válida", Err: err}
	}
	if len(apiResp.Choices) == 0 {
		return nil, &SummarizationError{Reason: "LM Studio no devolvió ninguna respuesta"}
	}

	content := strings.TrimSpace(apiResp.Choices[0].Message.Content)
	summary, err := parseSummaryJSON(content)
	if err != nil {
		s.logger.Error(ctx, "No se pudo interpretar la respuesta JSON: %s", content)
		return nil, &SummarizationError{Reason: "la respuesta del modelo no es JSON válido", Err: err}
	}

	return summary, nil
}
