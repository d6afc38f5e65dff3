package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/yaebk/cs390-podcast/internal/domain/model"
)

type fakeNews struct {
	articles []model.Article
	err      error
	calls    int
}

func (f *fakeNews) TopHeadlines(ctx context.Context) ([]model.Article, error) {
	f.calls++
	return f.articles, f.err
}

type fakeWriter struct {
	script      string
	err         error
	calls       int
	gotArticles []model.Article
}

func (f *fakeWriter) Compose(ctx context.Context, articles []model.Article) (string, error) {
	f.calls++
	f.gotArticles = articles
	return f.script, f.err
}

type fakeSpeech struct {
	path      string
	err       error
	calls     int
	gotScript string
}

func (f *fakeSpeech) Synthesize(ctx context.Context, script string) (string, error) {
	f.calls++
	f.gotScript = script
	return f.path, f.err
}

type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...any) {}

func errContains(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error containing %q, got nil", want)
	}
	if !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error containing %q, got %q", want, err.Error())
	}
}

func TestRunSuccess(t *testing.T) {
	news := &fakeNews{articles: []model.Article{{Title: "A"}, {Title: "B"}}}
	writer := &fakeWriter{script: "Good morning, here is the news."}
	speech := &fakeSpeech{path: "output/audio/briefing_1.mp3"}

	briefing := NewBriefing(news, writer, speech, nopLogger{})

	result, err := briefing.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Success {
		t.Error("expected Success to be true")
	}
	if result.ArticlesCount != 2 {
		t.Errorf("expected ArticlesCount 2, got %d", result.ArticlesCount)
	}
	if result.Script != writer.script {
		t.Errorf("expected script %q, got %q", writer.script, result.Script)
	}
	if result.ScriptLength != len(writer.script) {
		t.Errorf("expected ScriptLength %d, got %d", len(writer.script), result.ScriptLength)
	}
	if result.AudioFile != speech.path {
		t.Errorf("expected AudioFile %q, got %q", speech.path, result.AudioFile)
	}
	if result.RunID == "" {
		t.Error("expected a non-empty RunID")
	}

	if len(writer.gotArticles) != 2 || writer.gotArticles[0].Title != "A" || writer.gotArticles[1].Title != "B" {
		t.Errorf("writer received wrong articles: %+v", writer.gotArticles)
	}
	if speech.gotScript != writer.script {
		t.Errorf("synthesizer received wrong script: %q", speech.gotScript)
	}
}

func TestRunNoArticles(t *testing.T) {
	news := &fakeNews{articles: nil}
	writer := &fakeWriter{script: "unused"}
	speech := &fakeSpeech{path: "unused"}

	briefing := NewBriefing(news, writer, speech, nopLogger{})

	_, err := briefing.Run(context.Background())
	errContains(t, err, "no articles")

	if writer.calls != 0 {
		t.Errorf("writer should not be invoked, got %d calls", writer.calls)
	}
	if speech.calls != 0 {
		t.Errorf("synthesizer should not be invoked, got %d calls", speech.calls)
	}
}

func TestRunFetchError(t *testing.T) {
	news := &fakeNews{err: context.DeadlineExceeded}
	writer := &fakeWriter{}
	speech := &fakeSpeech{}

	briefing := NewBriefing(news, writer, speech, nopLogger{})

	_, err := briefing.Run(context.Background())
	errContains(t, err, "fetch headlines")

	if writer.calls != 0 {
		t.Errorf("writer should not be invoked, got %d calls", writer.calls)
	}
}

func TestRunEmptyScript(t *testing.T) {
	news := &fakeNews{articles: []model.Article{{Title: "A"}}}
	writer := &fakeWriter{script: "  \n\t "}
	speech := &fakeSpeech{path: "unused"}

	briefing := NewBriefing(news, writer, speech, nopLogger{})

	_, err := briefing.Run(context.Background())
	errContains(t, err, "no script")

	if speech.calls != 0 {
		t.Errorf("synthesizer should not be invoked, got %d calls", speech.calls)
	}
}

func TestRunWriterError(t *testing.T) {
	news := &fakeNews{articles: []model.Article{{Title: "A"}}}
	writer := &fakeWriter{err: context.Canceled}
	speech := &fakeSpeech{}

	briefing := NewBriefing(news, writer, speech, nopLogger{})

	_, err := briefing.Run(context.Background())
	errContains(t, err, "compose script")

	if speech.calls != 0 {
		t.Errorf("synthesizer should not be invoked, got %d calls", speech.calls)
	}
}

func TestRunSpeechError(t *testing.T) {
	news := &fakeNews{articles: []model.Article{{Title: "A"}}}
	writer := &fakeWriter{script: "script"}
	speech := &fakeSpeech{err: context.Canceled}

	briefing := NewBriefing(news, writer, speech, nopLogger{})

	_, err := briefing.Run(context.Background())
	errContains(t, err, "failed to generate audio")
}

func TestRunEmptyAudioPath(t *testing.T) {
	news := &fakeNews{articles: []model.Article{{Title: "A"}}}
	writer := &fakeWriter{script: "script"}
	speech := &fakeSpeech{path: ""}

	briefing := NewBriefing(news, writer, speech, nopLogger{})

	_, err := briefing.Run(context.Background())
	errContains(t, err, "no audio")
}
