package transcriber

import (
	"github.com/jcamposd/apuntes-flow/internal/config"
	"github.com/jcamposd/apuntes-flow/internal/logger"
	"github.com/jcamposd/apuntes-flow/pkg/executor"
)

type implTranscriber struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Transcriber backed by a local whisper.cpp binary.
func New(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
