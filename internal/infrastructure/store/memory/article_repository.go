// Package memory holds the in-process article store. Articles live in a
// mutex-guarded slice, matching the demo scope of the article endpoints.
package memory

import (
	"context"
	"sync"

	"github.com/rbacdash/rbac-api/internal/core/domain"
)

// SeedArticles returns the demo articles present at startup.
func SeedArticles() []domain.Article {
	return []domain.Article{
		{ID: "1", Title: "First Article", Content: "Sample content", Author: "System"},
		{ID: "2", Title: "Second Article", Content: "More content", Author: "System"},
	}
}

type ArticleRepository struct {
	mu       sync.RWMutex
	articles []domain.Article
}

func NewArticleRepository(seed []domain.Article) *ArticleRepository {
	return &ArticleRepository{articles: append([]domain.Article(nil), seed...)}
}

func (r *ArticleRepository) ListAll(_ context.Context) ([]domain.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Article(nil), r.articles...), nil
}

func (r *ArticleRepository) Insert(_ context.Context, article *domain.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.articles = append(r.articles, *article)
	return nil
}

func (r *ArticleRepository) Delete(_ context.Context, id string) (*domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.articles {
		if r.articles[i].ID == id {
			deleted := r.articles[i]
			r.articles = append(r.articles[:i], r.articles[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, domain.ErrArticleNotFound
}
