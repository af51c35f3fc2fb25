package ports

import (
	"context"

	"github.com/rbacdash/rbac-api/internal/core/domain"
)

// ArticleRepository stores the demo article collection.
type ArticleRepository interface {
	ListAll(ctx context.Context) ([]domain.Article, error)
	Insert(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, id string) (*domain.Article, error)
}
