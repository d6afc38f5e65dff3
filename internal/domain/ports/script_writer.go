package ports

import (
	"context"

	"github.com/yaebk/cs390-podcast/internal/domain/model"
)

// ScriptWriter turns a batch of headlines into a spoken-word briefing script.
type ScriptWriter interface {
	Compose(ctx context.Context, articles []model.Article) (string, error)
}
