package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Transcribe runs the whisper.cpp binary over the audio file and parses its
// JSON output. No timeout is imposed here: local inference is allowed to
// take as long as it needs.
func (t *implTranscriber) Transcribe(ctx context.Context, opts Options) (*Result, error) {
	wavPath, err := t.convertAudio(ctx, opts.AudioPath)
	if err != nil {
		return nil, err
	}
	defer t.cleanupTempFile(ctx, wavPath)

	modelPath := filepath.Join(t.cfg.ModelDir, "ggml-"+opts.ModelSize+".bin")
	outputPrefix := strings.TrimSuffix(wavPath, filepath.Ext(wavPath))

	t.logger.Info(ctx, "Iniciando transcripción con el modelo %s (%d hilos)", opts.ModelSize, t.cfg.Threads)

	// -oj: JSON output with per-segment offsets
	// -l: language hint; "auto" lets Whisper detect it
	// -bo 5: best-of beam candidates, same accuracy trade-off as the CLI default
	language := opts.Language
	if language == "" {
		language = "auto"
	}
	args := []string{
		"-m", modelPath,
		"-f", wavPath,
		"-oj",
		"-l", language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"-bo", "5",
		"--output-file", outputPrefix,
	}
	if opts.ComputeType == "cpu" {
		args = append(args, "-ng")
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	jsonPath := outputPrefix + ".json"
	defer t.cleanupTempFile(ctx, jsonPath)

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}

	result, err := parseWhisperOutput(data)
	if err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}

	t.logger.Info(ctx, "Transcripción finalizada. Idioma detectado: %s. Duración: %.2f minutos.",
		result.Language, result.Duration/60)

	return result, nil
}

// whisperOutput mirrors the JSON document written by whisper.cpp with -oj.
type whisperOutput struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

// parseWhisperOutput converts the whisper.cpp JSON document into a Result.
// Empty segments are dropped here, at the adapter boundary. Duration is taken
// from the end offset of the last segment.
func parseWhisperOutput(data []byte) (*Result, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}

	segments := make([]Segment, 0, len(out.Transcription))
	var duration float64
	var texts []string

	for _, seg := range out.Transcription {
		end := float64(seg.Offsets.To) / 1000
		if end > duration {
			duration = end
		}

		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}

		segments = append(segments, Segment{
			Start: float64(seg.Offsets.From) / 1000,
			End:   end,
			Text:  text,
		})
		texts = append(texts, text)
	}

	return &Result{
		Text:     strings.Join(texts, " "),
		Segments: segments,
		Language: out.Result.Language,
		Duration: duration,
	}, nil
}
