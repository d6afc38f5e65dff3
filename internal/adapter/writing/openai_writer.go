package writing

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/yaebk/cs390-podcast/internal/domain/model"
	"github.com/yaebk/cs390-podcast/internal/domain/ports"
)

// Sampling parameters are fixed: the briefing format is the same every run.
const (
	scriptTemperature = 0.7
	scriptMaxTokens   = 900
)

const systemPrompt = "You are the writer for a short daily audio news briefing. " +
	"Turn the provided headlines into a flowing spoken-word script. " +
	"Plain prose only, no markdown, no stage directions, under three minutes when read aloud."

// OpenAIWriter composes briefing scripts with the OpenAI chat-completion API
// and persists each script to a side file.
type OpenAIWriter struct {
	client     *openai.Client
	model      string
	scriptFile string
	logger     ports.Logger
}

var _ ports.ScriptWriter = (*OpenAIWriter)(nil)

// NewOpenAIWriter constructs an OpenAIWriter.
func NewOpenAIWriter(apiKey, model, scriptFile string, timeout time.Duration, logger ports.Logger) *OpenAIWriter {
	cfg := openai.DefaultConfig(apiKey)
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &OpenAIWriter{
		client:     openai.NewClientWithConfig(cfg),
		model:      model,
		scriptFile: scriptFile,
		logger:     logger,
	}
}

// Compose generates a spoken-word script from the given headlines.
func (w *OpenAIWriter) Compose(ctx context.Context, articles []model.Article) (string, error) {
	if len(articles) == 0 {
		return "", fmt.Errorf("no articles to compose from")
	}

	prompt := buildPrompt(articles)

	resp, err := w.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: w.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: scriptTemperature,
		MaxTokens:   scriptMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	script := strings.TrimSpace(resp.Choices[0].Message.Content)
	if script == "" {
		return "", fmt.Errorf("chat completion returned empty text")
	}

	if err := w.saveScript(script); err != nil {
		return "", err
	}

	if w.logger != nil {
		w.logger.Info(ctx, "script composed",
			"model", w.model,
			"articles", len(articles),
			"scriptLength", len(script),
			"file", w.scriptFile)
	}

	return script, nil
}

func buildPrompt(articles []model.Article) string {
	var builder strings.Builder
	builder.WriteString("Today's headlines:\n\n")

	for i, article := range articles {
		builder.WriteString(fmt.Sprintf("%d. %s", i+1, article.Title))
		if article.Source != "" {
			builder.WriteString(fmt.Sprintf(" (%s)", article.Source))
		}
		builder.WriteRune('\n')
		if article.Description != "" {
			builder.WriteString("   ")
			builder.WriteString(article.Description)
			builder.WriteRune('\n')
		}
	}

	builder.WriteString("\nWrite the briefing script covering every headline above.\n")
	return builder.String()
}

func (w *OpenAIWriter) saveScript(script string) error {
	if dir := filepath.Dir(w.scriptFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create script directory: %w", err)
		}
	}

	if err := os.WriteFile(w.scriptFile, []byte(script), 0644); err != nil {
		return fmt.Errorf("write script file: %w", err)
	}
	return nil
}
