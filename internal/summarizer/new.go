package summarizer

import (
	"fmt"
	"time"

	"github.com/jcamposd/apuntes-flow/internal/config"
	"github.com/jcamposd/apuntes-flow/internal/logger"
)

// New selects a Summarizer implementation from the configured provider.
func New(cfg *config.Config, log logger.Logger) (Summarizer, error) {
	switch cfg.Summarizer.Provider {
	case "lmstudio":
		timeout := time.Duration(cfg.LMStudio.TimeoutSeconds) * time.Second
		return NewLMStudio(cfg.LMStudio.BaseURL, cfg.LMStudio.Model, timeout, log), nil
	case "gemini":
		return NewGemini(cfg.Gemini.APIKeys, cfg.Gemini.Model, log), nil
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Summarizer.Provider)
	}
}
