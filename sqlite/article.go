package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/newsdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ newsdoc.ArticleService = (*ArticleService)(nil)

// ArticleService implements newsdoc.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// CreateArticle stores the article and its paragraphs in one transaction.
// ID, ContentHash and FetchedAt are assigned here.
func (s *ArticleService) CreateArticle(ctx context.Context, article *newsdoc.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	article.FetchedAt = time.Now().UTC()
	article.ContentHash = hashContent(article.Paragraphs)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO articles (id, url, content_hash, fetched_at)
		VALUES (?, ?, ?, ?)
	`, article.ID, article.URL, article.ContentHash, formatTime(article.FetchedAt)); err != nil {
		return err
	}

	for i, p := range article.Paragraphs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO paragraphs (article_id, position, text) VALUES (?, ?, ?)
		`, article.ID, i, p); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*newsdoc.Article, error) {
	var article newsdoc.Article
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, content_hash, fetched_at
		FROM articles
		WHERE id = ?
	`, id).Scan(&article.ID, &article.URL, &article.ContentHash, &fetchedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, newsdoc.Errorf(newsdoc.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}

	if article.FetchedAt, err = parseTime(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}
	if article.Paragraphs, err = s.findParagraphs(ctx, article.ID); err != nil {
		return nil, err
	}
	return &article, nil
}

// FindArticles retrieves articles matching the filter, newest first.
func (s *ArticleService) FindArticles(ctx context.Context, filter newsdoc.ArticleFilter) ([]*newsdoc.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, content_hash, fetched_at FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	articles, err := s.scanArticles(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}

	// Paragraphs are loaded after the article rows are closed; the pool
	// holds a single connection.
	for _, a := range articles {
		if a.Paragraphs, err = s.findParagraphs(ctx, a.ID); err != nil {
			return nil, err
		}
	}
	return articles, nil
}

func (s *ArticleService) scanArticles(ctx context.Context, query string, args ...any) ([]*newsdoc.Article, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*newsdoc.Article
	for rows.Next() {
		var a newsdoc.Article
		var fetchedAt string

		if err := rows.Scan(&a.ID, &a.URL, &a.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}
		if a.FetchedAt, err = parseTime(fetchedAt, "fetched_at"); err != nil {
			return nil, err
		}
		articles = append(articles, &a)
	}
	return articles, rows.Err()
}

func (s *ArticleService) findParagraphs(ctx context.Context, articleID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT text FROM paragraphs WHERE article_id = ? ORDER BY position ASC
	`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paragraphs []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paragraphs = append(paragraphs, p)
	}
	return paragraphs, rows.Err()
}

// DeleteArticle permanently removes an article. Paragraphs go with it
// through the foreign key cascade.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return newsdoc.Errorf(newsdoc.ENOTFOUND, "article not found")
	}

	return nil
}
