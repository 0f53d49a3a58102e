package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/newsdoc"
)

// Ensure Writer implements newsdoc.ArticleWriter at compile time.
var _ newsdoc.ArticleWriter = (*Writer)(nil)

// Writer writes articles as wrapped plain text files below a base directory.
type Writer struct {
	baseDir string
	config  *newsdoc.Config
}

// NewWriter creates a new Writer that writes to baseDir using the
// formatting settings of cfg.
func NewWriter(baseDir string, cfg *newsdoc.Config) *Writer {
	return &Writer{baseDir: baseDir, config: cfg}
}

// Path returns where an article fetched from rawURL would be written.
func (w *Writer) Path(rawURL string) string {
	return filepath.Join(w.baseDir, URLToPath(rawURL, w.config.DefaultFileName, w.config.FileExtension))
}

// Render returns the formatted text of an article.
func (w *Writer) Render(article *newsdoc.Article) string {
	return Format(article.Paragraphs, w.config.CharactersPerLine, w.config.ParagraphsIndent)
}

// WriteArticle writes the article to disk, creating parent directories,
// and returns the file path.
func (w *Writer) WriteArticle(ctx context.Context, article *newsdoc.Article) (string, error) {
	if err := article.Validate(); err != nil {
		return "", err
	}

	fullPath := w.Path(article.URL)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(fullPath, []byte(w.Render(article)), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
