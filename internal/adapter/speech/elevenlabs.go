package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/yaebk/cs390-podcast/internal/domain/ports"
)

const (
	defaultBaseURL = "https://api.elevenlabs.io"
	ttsModelID     = "eleven_multilingual_v2"
)

// ElevenLabs synthesizes speech via the ElevenLabs text-to-speech API and
// saves the returned MP3 to a timestamped file.
type ElevenLabs struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	voiceID    string
	audioDir   string
	logger     ports.Logger
}

var _ ports.SpeechSynthesizer = (*ElevenLabs)(nil)

// New creates a new ElevenLabs synthesizer.
func New(apiKey, voiceID, audioDir string, timeout time.Duration, logger ports.Logger) *ElevenLabs {
	return &ElevenLabs{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		voiceID:    voiceID,
		audioDir:   audioDir,
		logger:     logger,
	}
}

// Synthesize renders the script to speech and returns the saved file path.
func (e *ElevenLabs) Synthesize(ctx context.Context, script string) (string, error) {
	payload := map[string]any{
		"text":     script,
		"model_id": ttsModelID,
		"voice_settings": map[string]any{
			"stability":        0.5,
			"similarity_boost": 0.75,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal tts payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/text-to-speech/%s", e.baseURL, e.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", e.apiKey)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	outputPath, err := e.saveAudio(resp.Body)
	if err != nil {
		return "", err
	}

	if e.logger != nil {
		e.logger.Info(ctx, "audio synthesized", "voice", e.voiceID, "file", outputPath)
	}

	return outputPath, nil
}

func (e *ElevenLabs) saveAudio(audio io.Reader) (string, error) {
	if err := os.MkdirAll(e.audioDir, 0755); err != nil {
		return "", fmt.Errorf("create audio directory: %w", err)
	}

	filename := fmt.Sprintf("briefing_%d.mp3", time.Now().UnixNano())
	outputPath := filepath.Join(e.audioDir, filename)

	out, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, audio); err != nil {
		os.Remove(outputPath)
		return "", fmt.Errorf("write audio file: %w", err)
	}

	return outputPath, nil
}
