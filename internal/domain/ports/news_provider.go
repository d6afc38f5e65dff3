package ports

import (
	"context"

	"github.com/yaebk/cs390-podcast/internal/domain/model"
)

// NewsProvider fetches the current top headlines.
type NewsProvider interface {
	TopHeadlines(ctx context.Context) ([]model.Article, error)
}
