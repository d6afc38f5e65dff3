package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config contains runtime configuration values.
type Config struct {
	NewsAPIKey       string
	OpenAIAPIKey     string
	ElevenLabsAPIKey string
	VoiceID          string
	NewsCountry      string
	NewsCategory     string
	NewsPageSize     int
	OpenAIModel      string
	ScriptFile       string
	AudioDir         string
	ScheduleCron     string
	RequestTimeout   time.Duration
}

const (
	defaultVoiceID    = "21m00Tcm4TlvDq8ikWAM" // ElevenLabs "Rachel"
	defaultCountry    = "us"
	defaultCategory   = "technology"
	defaultPageSize   = 5
	defaultModel      = "gpt-4o-mini"
	defaultScriptFile = "output/script.txt"
	defaultAudioDir   = "output/audio"
	defaultTimeout    = 60 * time.Second
)

// requiredKeys are the credentials the pipeline cannot run without.
var requiredKeys = []string{"NEWS_API_KEY", "OPENAI_API_KEY", "ELEVENLABS_API_KEY"}

// Load builds a Config from environment variables with sane defaults.
// Every missing required credential is reported in a single error so the
// process can fail before any collaborator is constructed.
func Load() (*Config, error) {
	var missing []string
	for _, key := range requiredKeys {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	cfg := &Config{
		NewsAPIKey:       os.Getenv("NEWS_API_KEY"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		ElevenLabsAPIKey: os.Getenv("ELEVENLABS_API_KEY"),
		VoiceID:          getenvDefault("ELEVENLABS_VOICE_ID", defaultVoiceID),
		NewsCountry:      getenvDefault("NEWS_COUNTRY", defaultCountry),
		NewsCategory:     getenvDefault("NEWS_CATEGORY", defaultCategory),
		NewsPageSize:     parseIntDefault("NEWS_PAGE_SIZE", defaultPageSize),
		OpenAIModel:      getenvDefault("OPENAI_MODEL", defaultModel),
		ScriptFile:       getenvDefault("SCRIPT_FILE", defaultScriptFile),
		AudioDir:         getenvDefault("AUDIO_DIR", defaultAudioDir),
		ScheduleCron:     os.Getenv("SCHEDULE_CRON"),
		RequestTimeout:   parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
	}

	if cfg.NewsPageSize <= 0 {
		cfg.NewsPageSize = defaultPageSize
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseIntDefault(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
