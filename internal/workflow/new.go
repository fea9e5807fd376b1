package workflow

import (
	"github.com/jcamposd/apuntes-flow/internal/config"
	"github.com/jcamposd/apuntes-flow/internal/logger"
	"github.com/jcamposd/apuntes-flow/internal/summarizer"
	"github.com/jcamposd/apuntes-flow/internal/transcriber"
)

type implRunner struct {
	cfg         *config.Config
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	logger      logger.Logger
	observer    Observer
}

// New creates a Runner with the given adapters. A nil observer is replaced
// by NopObserver.
func New(
	cfg *config.Config,
	t transcriber.Transcriber,
	s summarizer.Summarizer,
	log logger.Logger,
	obs Observer,
) Runner {
	if obs == nil {
		obs = NopObserver{}
	}
	return &implRunner{
		cfg:         cfg,
		transcriber: t,
		summarizer:  s,
		logger:      log,
		observer:    obs,
	}
}
