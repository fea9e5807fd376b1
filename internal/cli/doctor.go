package cli

import (
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/jcamposd/apuntes-flow/internal/output"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Comprueba los requisitos y servicios auxiliares",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			ok := true

			if _, err := exec.LookPath("ffmpeg"); err != nil {
				f.ServiceCheck("ffmpeg", false, "no encontrado en el PATH")
				ok = false
			} else {
				f.ServiceCheck("ffmpeg", true, "instalado")
			}

			if _, err := os.Stat(deps.Config.Whisper.BinaryPath); err != nil {
				f.ServiceCheck("whisper", false, "no se encontró "+deps.Config.Whisper.BinaryPath)
				ok = false
			} else {
				f.ServiceCheck("whisper", true, deps.Config.Whisper.BinaryPath)
			}

			for _, s := range deps.Services.Bootstrap(cmd.Context(), false, nil) {
				f.ServiceCheck(s.Title, s.Ready, s.Detail)
				if !s.Ready {
					ok = false
				}
			}

			if ok {
				f.Success("Todo listo. Ya puedes procesar tus grabaciones.")
			} else {
				f.Warning("Faltan algunos requisitos.")
			}
			return nil
		},
	}
}
