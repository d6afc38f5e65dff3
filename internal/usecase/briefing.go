package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yaebk/cs390-podcast/internal/domain/model"
	"github.com/yaebk/cs390-podcast/internal/domain/ports"
)

// Briefing orchestrates the fetch -> script -> audio pipeline. Each stage
// feeds the next and the first failure or empty result aborts the run.
type Briefing struct {
	news   ports.NewsProvider
	writer ports.ScriptWriter
	speech ports.SpeechSynthesizer
	logger ports.Logger
}

// NewBriefing constructs a Briefing use case.
func NewBriefing(
	news ports.NewsProvider,
	writer ports.ScriptWriter,
	speech ports.SpeechSynthesizer,
	logger ports.Logger,
) *Briefing {
	return &Briefing{
		news:   news,
		writer: writer,
		speech: speech,
		logger: logger,
	}
}

// Run executes one briefing. It returns a RunResult on success; on failure
// the error describes the stage that failed and nothing downstream runs.
func (b *Briefing) Run(ctx context.Context) (*model.RunResult, error) {
	runID := uuid.NewString()
	start := time.Now()
	b.logger.Info(ctx, "starting briefing run", "runID", runID)

	articles, err := b.news.TopHeadlines(ctx)
	if err != nil {
		b.logger.Error(ctx, "failed to fetch headlines", "runID", runID, "error", err)
		return nil, fmt.Errorf("fetch headlines: %w", err)
	}
	if len(articles) == 0 {
		b.logger.Error(ctx, "no articles returned", "runID", runID)
		return nil, fmt.Errorf("no articles returned")
	}

	script, err := b.writer.Compose(ctx, articles)
	if err != nil {
		b.logger.Error(ctx, "failed to compose script", "runID", runID, "error", err)
		return nil, fmt.Errorf("compose script: %w", err)
	}
	script = strings.TrimSpace(script)
	if script == "" {
		b.logger.Error(ctx, "writer produced no script", "runID", runID)
		return nil, fmt.Errorf("writer produced no script")
	}

	audioFile, err := b.speech.Synthesize(ctx, script)
	if err != nil {
		b.logger.Error(ctx, "failed to generate audio", "runID", runID, "error", err)
		return nil, fmt.Errorf("failed to generate audio: %w", err)
	}
	if audioFile == "" {
		b.logger.Error(ctx, "synthesizer produced no audio", "runID", runID)
		return nil, fmt.Errorf("synthesizer produced no audio")
	}

	result := &model.RunResult{
		RunID:         runID,
		Success:       true,
		ArticlesCount: len(articles),
		Script:        script,
		ScriptLength:  len(script),
		AudioFile:     audioFile,
	}

	b.logger.Info(ctx, "briefing run completed",
		"runID", runID,
		"articles", result.ArticlesCount,
		"scriptLength", result.ScriptLength,
		"audioFile", result.AudioFile,
		"duration", time.Since(start))

	return result, nil
}
