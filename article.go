package newsdoc

import (
	"context"
	"time"
)

// Response is the raw result of retrieving a page.
type Response struct {
	Body       []byte
	StatusCode int
}

// Fetcher retrieves raw page content.
type Fetcher interface {
	// Fetch performs a single request and returns the body and status code.
	// A non-200 status is not an error at this level; interpreting it is up
	// to the caller. Errors are reserved for transport failures.
	Fetch(ctx context.Context, url string) (*Response, error)
}

// Scraper extracts the readable text of an article.
type Scraper interface {
	// Parse fetches url and returns the title followed by the ordered
	// paragraphs. It returns a *FetchError for a non-200 status and
	// ENOTFOUND when the page has no title element. No partial results
	// are returned.
	Parse(ctx context.Context, url string) ([]string, error)
}

// Article is an extracted article.
type Article struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Paragraphs  []string  `json:"paragraphs"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Title returns the article title, the first paragraph.
func (a *Article) Title() string {
	if len(a.Paragraphs) == 0 {
		return ""
	}
	return a.Paragraphs[0]
}

// Body returns the paragraphs following the title.
func (a *Article) Body() []string {
	if len(a.Paragraphs) < 2 {
		return nil
	}
	return a.Paragraphs[1:]
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	if a.Title() == "" {
		return Errorf(EINVALID, "article title required")
	}
	return nil
}

// ArticleWriter persists a formatted article and reports where it went.
type ArticleWriter interface {
	WriteArticle(ctx context.Context, article *Article) (path string, err error)
}

// ArticleService represents a service for managing archived articles.
type ArticleService interface {
	// CreateArticle archives a new article.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by ID.
	// Returns ENOTFOUND if article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles retrieves articles matching the filter, newest first.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// DeleteArticle permanently removes an article and its paragraphs.
	// Returns ENOTFOUND if article does not exist.
	DeleteArticle(ctx context.Context, id string) error
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
