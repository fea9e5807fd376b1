package cli

import (
	"github.com/spf13/cobra"

	"github.com/jcamposd/apuntes-flow/internal/config"
	"github.com/jcamposd/apuntes-flow/internal/logger"
	"github.com/jcamposd/apuntes-flow/internal/services"
	"github.com/jcamposd/apuntes-flow/internal/summarizer"
	"github.com/jcamposd/apuntes-flow/internal/transcriber"
	"github.com/jcamposd/apuntes-flow/internal/version"
	"github.com/jcamposd/apuntes-flow/pkg/executor"
)

// Dependencies holds everything the commands need, built once per process
// from the loaded configuration.
type Dependencies struct {
	Config      *config.Config
	Logger      logger.Logger
	Transcriber transcriber.Transcriber
	Summarizer  summarizer.Summarizer
	Services    services.Manager
}

func NewRootCmd() *cobra.Command {
	deps := &Dependencies{}
	var configPath string
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "apuntes",
		Short: "Convierte grabaciones de clase en apuntes de Obsidian",
		Long: "Transcribe el audio de una clase con Whisper, extrae elementos accionables " +
			"con un modelo de lenguaje y guarda la nota y la transcripción como archivos " +
			"Markdown enlazados dentro de tu vault.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}

			log := logger.New(cfg.Logging.Level)
			summ, err := summarizer.New(cfg, log)
			if err != nil {
				return err
			}
			exec := executor.New()

			deps.Config = cfg
			deps.Logger = log
			deps.Transcriber = transcriber.New(cfg.Whisper, exec, log)
			deps.Summarizer = summ
			deps.Services = services.New(cfg, exec, log)
			return nil
		},
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Ruta al archivo de configuración")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Nivel de logging (debug, info, warn, error)")

	rootCmd.AddCommand(NewRunCmd(deps))
	rootCmd.AddCommand(NewWatchCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}
