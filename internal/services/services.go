package services

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// Bootstrap checks every auxiliary service, starting the ones that are down
// when autoStart is true. Each resulting Status is also delivered to the
// callback as it is produced.
func (m *implManager) Bootstrap(ctx context.Context, autoStart bool, callback func(Status)) []Status {
	statuses := []Status{
		m.ensureVault(ctx, autoStart),
		m.ensureDocker(ctx, autoStart),
		m.ensureLMStudio(ctx, autoStart),
	}

	if callback != nil {
		for _, status := range statuses {
			callback(status)
		}
	}

	return statuses
}

func (m *implManager) ensureVault(ctx context.Context, autoStart bool) Status {
	root := m.cfg.Notes.Root
	if err := os.MkdirAll(root, 0755); err != nil {
		return Status{
			Key:    "vault",
			Title:  "Obsidian",
			Detail: fmt.Sprintf("No se pudo preparar la carpeta de notas: %v", err),
			Ready:  false,
		}
	}

	detail := "Vault preparado en " + root
	if autoStart && m.cfg.Obsidian.AutoLaunch && !m.obsidianLaunched {
		if m.openObsidian(ctx) {
			detail += " · Obsidian iniciado"
		} else {
			detail += " · Abre Obsidian manualmente si deseas visualizar las notas"
		}
	}

	return Status{Key: "vault", Title: "Obsidian", Detail: detail, Ready: true}
}

func (m *implManager) openObsidian(ctx context.Context) bool {
	executable := m.cfg.Obsidian.Executable
	if executable == "" {
		return false
	}
	if _, err := os.Stat(executable); err != nil {
		return false
	}

	if err := m.executor.Start("", executable, m.cfg.Notes.Root); err != nil {
		m.logger.Error(ctx, "No se pudo abrir Obsidian automáticamente: %v", err)
		return false
	}

	m.obsidianLaunched = true
	return true
}

func (m *implManager) ensureDocker(ctx context.Context, autoStart bool) Status {
	status := func(detail string, ready bool) Status {
		return Status{Key: "docker", Title: "Contenedores", Detail: detail, Ready: ready}
	}

	composeFile := m.cfg.Docker.ComposeFile
	if composeFile == "" {
		return status("No se configuró docker-compose; se omite este paso.", true)
	}
	if _, err := os.Stat(composeFile); err != nil {
		return status(fmt.Sprintf("No se encontró el archivo %s.", composeFile), false)
	}
	if m.composeCommand == nil {
		return status("Docker CLI no está disponible en esta máquina.", false)
	}

	if m.containersRunning(ctx, composeFile) {
		return status("Servicios en Docker activos y listos.", true)
	}
	if !autoStart {
		return status("Los contenedores no están activos. Inícialos manualmente con docker compose up -d.", false)
	}

	if !m.composeUp(ctx, composeFile) {
		return status("No se pudieron iniciar los contenedores automáticamente.", false)
	}
	if m.waitFor(ctx, func() bool { return m.containersRunning(ctx, composeFile) }) {
		return status("Contenedores levantados y ejecutándose.", true)
	}

	return status("Docker respondió pero los servicios no alcanzaron el estado 'running'.", false)
}

func (m *implManager) containersRunning(ctx context.Context, composeFile string) bool {
	args := append(m.composeCommand[1:], "-f", composeFile, "ps", "--status", "running", "-q")
	out, err := m.executor.Execute(ctx, m.composeCommand[0], args...)
	if err != nil {
		return false
	}
	return strings.TrimSpace(out) != ""
}

func (m *implManager) composeUp(ctx context.Context, composeFile string) bool {
	args := append(m.composeCommand[1:], "-f", composeFile, "up", "-d")
	if _, err := m.executor.Execute(ctx, m.composeCommand[0], args...); err != nil {
		m.logger.Error(ctx, "docker compose up falló: %v", err)
		return false
	}
	return true
}

func (m *implManager) ensureLMStudio(ctx context.Context, autoStart bool) Status {
	status := func(detail string, ready bool) Status {
		return Status{Key: "lmstudio", Title: "LM Studio", Detail: detail, Ready: ready}
	}

	if m.lmStudioReady(ctx) {
		return status("Conectado a "+m.cfg.LMStudio.BaseURL+".", true)
	}
	if !autoStart {
		return status("LM Studio no responde. Verifica que el servidor esté en ejecución.", false)
	}

	command := strings.Fields(m.cfg.LMStudio.StartCommand)
	if len(command) == 0 {
		return status("LM Studio no responde y no se configuró lmstudio.start_command.", false)
	}

	if err := m.executor.Start(m.cfg.LMStudio.WorkDir, command[0], command[1:]...); err != nil {
		m.logger.Error(ctx, "No se pudo lanzar LM Studio: %v", err)
		return status("No se pudo lanzar el comando de LM Studio.", false)
	}

	if m.waitFor(ctx, func() bool { return m.lmStudioReady(ctx) }) {
		return status("Servidor de LM Studio iniciado y disponible.", true)
	}

	return status("LM Studio se lanzó pero no respondió a tiempo.", false)
}

// lmStudioReady probes the OpenAI-compatible /models endpoint.
func (m *implManager) lmStudioReady(ctx context.Context) bool {
	url := strings.TrimSuffix(m.cfg.LMStudio.BaseURL, "/") + "/models"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// waitFor polls fn until it succeeds, the wait timeout elapses or the
// context is cancelled.
func (m *implManager) waitFor(ctx context.Context, fn func() bool) bool {
	deadline := time.Now().Add(m.waitTimeout)
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		if fn() {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}
	}
}
