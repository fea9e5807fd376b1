package notewriter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// NotePaths holds the two file paths generated for one class day.
type NotePaths struct {
	NotePath       string
	TranscriptPath string
}

// PreparePaths creates the year/month folder tree under notesRoot and returns
// the note and transcript paths for the given date and slug. It is idempotent:
// existing directories are left untouched and repeated calls return equal paths.
func PreparePaths(notesRoot string, classDate time.Time, slug string) (NotePaths, error) {
	monthFolder := filepath.Join(
		notesRoot,
		fmt.Sprintf("%04d", classDate.Year()),
		fmt.Sprintf("%02d", int(classDate.Month())),
	)
	transcriptsFolder := filepath.Join(monthFolder, "transcripciones")

	if err := os.MkdirAll(transcriptsFolder, 0755); err != nil {
		return NotePaths{}, fmt.Errorf("create note folders: %w", err)
	}

	dateISO := classDate.Format("2006-01-02")

	return NotePaths{
		NotePath:       filepath.Join(monthFolder, dateISO+"-"+slug+".md"),
		TranscriptPath: filepath.Join(transcriptsFolder, dateISO+"-"+slug+"-transcripcion.md"),
	}, nil
}
