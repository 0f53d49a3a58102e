package mock

import (
	"context"

	"github.com/fwojciec/newsdoc"
)

// Compile-time interface verification.
var (
	_ newsdoc.ArticleWriter  = (*ArticleWriter)(nil)
	_ newsdoc.ArticleService = (*ArticleService)(nil)
)

// ArticleWriter is a mock implementation of newsdoc.ArticleWriter.
type ArticleWriter struct {
	WriteArticleFn func(ctx context.Context, article *newsdoc.Article) (string, error)
}

func (w *ArticleWriter) WriteArticle(ctx context.Context, article *newsdoc.Article) (string, error) {
	return w.WriteArticleFn(ctx, article)
}

// ArticleService is a mock implementation of newsdoc.ArticleService.
type ArticleService struct {
	CreateArticleFn   func(ctx context.Context, article *newsdoc.Article) error
	FindArticleByIDFn func(ctx context.Context, id string) (*newsdoc.Article, error)
	FindArticlesFn    func(ctx context.Context, filter newsdoc.ArticleFilter) ([]*newsdoc.Article, error)
	DeleteArticleFn   func(ctx context.Context, id string) error
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *newsdoc.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*newsdoc.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter newsdoc.ArticleFilter) ([]*newsdoc.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	return s.DeleteArticleFn(ctx, id)
}
