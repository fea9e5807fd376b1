package notewriter

import (
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName     = "Times New Roman"
	bodyFontSize = 12
)

// ExportDocx renders the note's summary sections into a styled .docx next to
// the markdown note, for sharing with readers without a notes vault. Returns
// the path of the written document.
func ExportDocx(paths NotePaths, note Note) (string, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return "", err
	}

	title := note.Title + " (" + formatDateHuman(note.ClassDate) + ")"
	addStyledRun(doc.AddParagraph(""), title, true, 16)
	doc.AddParagraph("")

	sections := []struct {
		heading string
		items   []string
	}{
		{"Avance de clase", note.Summary.AvanceClase},
		{"Tareas asignadas", note.Summary.Tareas},
		{"Pendientes y recordatorios", note.Summary.Pendientes},
		{"Preguntas para el examen", note.Summary.PreguntasExamen},
	}

	for _, section := range sections {
		addStyledRun(doc.AddParagraph(""), section.heading, true, 14)
		for _, line := range strings.Split(listToMarkdown(section.items), "\n") {
			item := strings.TrimPrefix(line, "- ")
			addStyledRun(doc.AddParagraph(""), "• "+item, false, bodyFontSize)
		}
	}

	docxPath := strings.TrimSuffix(paths.NotePath, ".md") + ".docx"
	if err := doc.SaveTo(docxPath); err != nil {
		return "", err
	}
	return docxPath, nil
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
