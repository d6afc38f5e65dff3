package di

import (
	"log/slog"
	"os"

	"github.com/yaebk/cs390-podcast/internal/adapter/news"
	"github.com/yaebk/cs390-podcast/internal/adapter/speech"
	"github.com/yaebk/cs390-podcast/internal/adapter/writing"
	"github.com/yaebk/cs390-podcast/internal/config"
	"github.com/yaebk/cs390-podcast/internal/domain/ports"
)

func provideSlogLogger() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

func provideNewsProvider(cfg *config.Config, logger ports.Logger) ports.NewsProvider {
	return news.New(cfg.NewsAPIKey, cfg.NewsCountry, cfg.NewsCategory, cfg.NewsPageSize, cfg.RequestTimeout, logger)
}

func provideScriptWriter(cfg *config.Config, logger ports.Logger) ports.ScriptWriter {
	return writing.NewOpenAIWriter(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.ScriptFile, cfg.RequestTimeout, logger)
}

func provideSpeechSynthesizer(cfg *config.Config, logger ports.Logger) ports.SpeechSynthesizer {
	return speech.New(cfg.ElevenLabsAPIKey, cfg.VoiceID, cfg.AudioDir, cfg.RequestTimeout, logger)
}

func provideSchedule(cfg *config.Config) string {
	return cfg.ScheduleCron
}
