package services

import (
	"net/http"
	osexec "os/exec"
	"time"

	"github.com/jcamposd/apuntes-flow/internal/config"
	"github.com/jcamposd/apuntes-flow/internal/logger"
	"github.com/jcamposd/apuntes-flow/pkg/executor"
)

const probeTimeout = 5 * time.Second

type implManager struct {
	cfg              *config.Config
	executor         executor.Executor
	logger           logger.Logger
	client           *http.Client
	composeCommand   []string
	waitTimeout      time.Duration
	obsidianLaunched bool
}

// New creates a Manager for the configured services.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Manager {
	return &implManager{
		cfg:            cfg,
		executor:       exec,
		logger:         log,
		client:         &http.Client{Timeout: probeTimeout},
		composeCommand: resolveComposeCommand(),
		waitTimeout:    time.Duration(cfg.Services.WaitTimeoutSeconds) * time.Second,
	}
}

// resolveComposeCommand picks the available docker compose entry point.
func resolveComposeCommand() []string {
	if _, err := osexec.LookPath("docker"); err == nil {
		return []string{"docker", "compose"}
	}
	if _, err := osexec.LookPath("docker-compose"); err == nil {
		return []string{"docker-compose"}
	}
	return nil
}
