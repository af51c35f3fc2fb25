package ports

import (
	"context"

	"github.com/rbacdash/rbac-api/internal/core/domain"
)

type ArticleService interface {
	ListArticles(ctx context.Context, viewer *domain.User) ([]domain.Article, error)
	CreateArticle(ctx context.Context, author *domain.User, title, content string) (*domain.Article, error)
	DeleteArticle(ctx context.Context, actor *domain.User, id string) (*domain.Article, error)
}
