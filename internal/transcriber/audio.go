package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// convertAudio normalizes any ffmpeg-readable input to 16kHz mono WAV,
// the format whisper.cpp expects. Returns the path of the temporary WAV.
func (t *implTranscriber) convertAudio(ctx context.Context, audioPath string) (string, error) {
	wavPath := strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + "_temp.wav"

	t.logger.Info(ctx, "Normalizando audio para Whisper: %s", audioPath)

	// -vn: drop any video stream
	// -ar 16000 -ac 1: 16kHz mono, what Whisper was trained on
	// -c:a pcm_s16le: uncompressed 16-bit PCM
	args := []string{
		"-i", audioPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		wavPath,
	}

	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg convert audio: %w", err)
	}

	return wavPath, nil
}

// cleanupTempFile removes a temporary file, logging instead of failing.
func (t *implTranscriber) cleanupTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		t.logger.Warn(ctx, "No se pudo eliminar el archivo temporal %s: %v", path, err)
	} else {
		t.logger.Debug(ctx, "Archivo temporal eliminado: %s", path)
	}
}
