package config

import "fmt"

type Config struct {
	Whisper    WhisperConfig    `yaml:"whisper"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	LMStudio   LMStudioConfig   `yaml:"lmstudio"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	Notes      NotesConfig      `yaml:"notes"`
	Obsidian   ObsidianConfig   `yaml:"obsidian"`
	Docker     DockerConfig     `yaml:"docker"`
	Services   ServicesConfig   `yaml:"services"`
	Watcher    WatcherConfig    `yaml:"watcher"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type WhisperConfig struct {
	BinaryPath  string `yaml:"binary_path"`
	ModelDir    string `yaml:"model_dir"`
	ModelSize   string `yaml:"model_size"`
	ComputeType string `yaml:"compute_type"`
	Language    string `yaml:"language"`
	Threads     int    `yaml:"threads"`
}

type SummarizerConfig struct {
	// Provider selects the summarization backend: "lmstudio" or "gemini".
	Provider string `yaml:"provider"`
}

type LMStudioConfig struct {
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	StartCommand   string `yaml:"start_command"`
	WorkDir        string `yaml:"workdir"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
}

type NotesConfig struct {
	Root       string `yaml:"root"`
	DocxExport bool   `yaml:"docx_export"`
}

type ObsidianConfig struct {
	Executable string `yaml:"executable"`
	AutoLaunch bool   `yaml:"auto_launch"`
}

type DockerConfig struct {
	ComposeFile string `yaml:"compose_file"`
}

type ServicesConfig struct {
	AutoBootstrap      bool `yaml:"auto_bootstrap"`
	WaitTimeoutSeconds int  `yaml:"wait_timeout_seconds"`
}

type WatcherConfig struct {
	Inbox         string `yaml:"inbox"`
	Archived      string `yaml:"archived"`
	MaxConcurrent int    `yaml:"max_concurrent"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Whisper.ModelDir == "" {
		return fmt.Errorf("whisper.model_dir is required")
	}
	if c.Notes.Root == "" {
		return fmt.Errorf("notes.root is required")
	}
	if c.Summarizer.Provider != "" &&
		c.Summarizer.Provider != "lmstudio" &&
		c.Summarizer.Provider != "gemini" {
		return fmt.Errorf("summarizer.provider must be \"lmstudio\" or \"gemini\", got %q", c.Summarizer.Provider)
	}
	if c.Summarizer.Provider == "gemini" && len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required when summarizer.provider is \"gemini\"")
	}

	if c.Whisper.ModelSize == "" {
		c.Whisper.ModelSize = "small"
	}
	if c.Whisper.ComputeType == "" {
		c.Whisper.ComputeType = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = "lmstudio"
	}
	if c.LMStudio.BaseURL == "" {
		c.LMStudio.BaseURL = "http://localhost:1234/v1"
	}
	if c.LMStudio.Model == "" {
		c.LMStudio.Model = "Meta-Llama-3-8B-Instruct"
	}
	if c.LMStudio.TimeoutSeconds == 0 {
		c.LMStudio.TimeoutSeconds = 120
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Services.WaitTimeoutSeconds == 0 {
		c.Services.WaitTimeoutSeconds = 60
	}
	if c.Watcher.Inbox == "" {
		c.Watcher.Inbox = "data/inbox"
	}
	if c.Watcher.Archived == "" {
		c.Watcher.Archived = "data/archived"
	}
	if c.Watcher.MaxConcurrent == 0 {
		c.Watcher.MaxConcurrent = 1
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
