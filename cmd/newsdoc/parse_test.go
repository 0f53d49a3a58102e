package main_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/newsdoc"
	"github.com/fwojciec/newsdoc/batch"
	main "github.com/fwojciec/newsdoc/cmd/newsdoc"
	"github.com/fwojciec/newsdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
		Config: newsdoc.DefaultConfig(),
	}
}

func newRunner(parse func(ctx context.Context, url string) ([]string, error)) *batch.Runner {
	return &batch.Runner{
		Scraper:     &mock.Scraper{ParseFn: parse},
		RetryDelays: []time.Duration{},
	}
}

func TestParseCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes article and archives it", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Runner = newRunner(func(context.Context, string) ([]string, error) {
			return []string{"Title", "Body."}, nil
		})

		var written, archived *newsdoc.Article
		deps.Writer = &mock.ArticleWriter{
			WriteArticleFn: func(_ context.Context, a *newsdoc.Article) (string, error) {
				written = a
				return filepath.Join("news", "story.txt"), nil
			},
		}
		deps.Articles = &mock.ArticleService{
			CreateArticleFn: func(_ context.Context, a *newsdoc.Article) error {
				archived = a
				return nil
			},
		}

		cmd := &main.ParseCmd{URLs: []string{"https://news.example.com/news/story.html"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, written)
		assert.Equal(t, []string{"Title", "Body."}, written.Paragraphs)
		assert.Same(t, written, archived)
		assert.Equal(t, "Article saved to: ."+string(filepath.Separator)+filepath.Join("news", "story.txt")+"\n", stdout.String())
	})

	t.Run("prints formatted text with --stdout", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Runner = newRunner(func(context.Context, string) ([]string, error) {
			return []string{"Title", "Body."}, nil
		})

		cmd := &main.ParseCmd{URLs: []string{"https://news.example.com/a"}, Stdout: true, NoArchive: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Title\n\nBody.\n", stdout.String())
	})

	t.Run("reports fetch error and continues", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Runner = newRunner(func(_ context.Context, url string) ([]string, error) {
			if url == "https://news.example.com/gone" {
				return nil, &newsdoc.FetchError{URL: url, StatusCode: 404}
			}
			return []string{"Title"}, nil
		})

		cmd := &main.ParseCmd{
			URLs:      []string{"https://news.example.com/gone", "https://news.example.com/ok"},
			Stdout:    true,
			NoArchive: true,
		}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2")
		assert.Contains(t, stderr.String(), "invalid URL or website is unreachable (status code: 404)")
		assert.Equal(t, "Title\n", stdout.String())
	})

	t.Run("archive failure is not fatal", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Runner = newRunner(func(context.Context, string) ([]string, error) {
			return []string{"Title"}, nil
		})
		deps.Articles = &mock.ArticleService{
			CreateArticleFn: func(context.Context, *newsdoc.Article) error {
				return errors.New("disk full")
			},
		}

		cmd := &main.ParseCmd{URLs: []string{"https://news.example.com/a"}, Stdout: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "disk full")
	})

	t.Run("skips duplicate URLs", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Runner = newRunner(func(context.Context, string) ([]string, error) {
			return []string{"Title"}, nil
		})

		cmd := &main.ParseCmd{
			URLs:      []string{"https://news.example.com/a", "https://news.example.com/a"},
			Stdout:    true,
			NoArchive: true,
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Title\n", stdout.String())
		assert.Contains(t, stderr.String(), "skipping duplicate URL")
	})
}
