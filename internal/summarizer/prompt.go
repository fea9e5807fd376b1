package summarizer

import "fmt"

const systemPrompt = "Eres un asistente pedagógico que ayuda a tomar apuntes de clases. " +
	"Analiza la transcripción literal y crea elementos accionables claros. " +
	"Responde exclusivamente en formato JSON válido con las claves: " +
	"'avance_clase', 'tareas', 'pendientes', 'preguntas_examen'. Cada clave " +
	"debe mapear a una lista de strings concretos y accionables."

const userTemplate = `Transcripción de la clase:
"""
%s
"""

Fecha de la clase: %s
Título o asignatura: %s

Devuelve un JSON con los aprendizajes, las tareas, los pendientes y posibles preguntas de examen.`

func buildPrompt(req Request) string {
	return fmt.Sprintf(userTemplate, req.Transcript, req.ClassDate, req.ClassTitle)
}
