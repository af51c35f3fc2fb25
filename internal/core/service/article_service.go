package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rbacdash/rbac-api/internal/core/domain"
	"github.com/rbacdash/rbac-api/internal/core/ports"
)

// ArticleService implements the article CRUD operations with activity
// recording as a side effect of each successful call.
type ArticleService struct {
	articles ports.ArticleRepository
	activity ports.ActivityService
	clock    Clock
}

func NewArticleService(articles ports.ArticleRepository, activity ports.ActivityService, clock Clock) *ArticleService {
	if clock == nil {
		clock = systemClock{}
	}
	return &ArticleService{articles: articles, activity: activity, clock: clock}
}

func (s *ArticleService) ListArticles(ctx context.Context, viewer *domain.User) ([]domain.Article, error) {
	articles, err := s.articles.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	s.activity.Record(ctx, viewer.ID, viewer.Name, domain.ActionViewArticles, map[string]any{
		"count": len(articles),
	})

	return articles, nil
}

func (s *ArticleService) CreateArticle(ctx context.Context, author *domain.User, title, content string) (*domain.Article, error) {
	article := &domain.Article{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Author:    author.Email,
		CreatedAt: s.clock.Now().UTC(),
	}

	if err := s.articles.Insert(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.activity.Record(ctx, author.ID, author.Name, domain.ActionCreateArticle, map[string]any{
		"article_id": article.ID,
		"title":      article.Title,
	})

	return article, nil
}

func (s *ArticleService) DeleteArticle(ctx context.Context, actor *domain.User, id string) (*domain.Article, error) {
	deleted, err := s.articles.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor.ID, actor.Name, domain.ActionDeleteArticle, map[string]any{
		"article_id": deleted.ID,
		"title":      deleted.Title,
	})

	return deleted, nil
}
