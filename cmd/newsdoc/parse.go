package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/newsdoc"
	"github.com/fwojciec/newsdoc/fs"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	results, err := deps.Runner.Run(deps.Ctx, c.URLs, nil)
	if err != nil {
		return err
	}

	var failed int
	for _, res := range results {
		if res.Skipped {
			fmt.Fprintf(deps.Stderr, "skipping duplicate URL: %s\n", res.URL)
			continue
		}
		if res.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", res.URL, message(res.Err))
			continue
		}

		article := &newsdoc.Article{URL: res.URL, Paragraphs: res.Paragraphs}

		if c.Stdout {
			fmt.Fprintln(deps.Stdout, fs.Format(article.Paragraphs, deps.Config.CharactersPerLine, deps.Config.ParagraphsIndent))
		} else {
			path, err := deps.Writer.WriteArticle(deps.Ctx, article)
			if err != nil {
				failed++
				fmt.Fprintf(deps.Stderr, "error: %s: %s\n", res.URL, err)
				continue
			}
			fmt.Fprintf(deps.Stdout, "Article saved to: %s\n", displayPath(path))
		}

		if !c.NoArchive && deps.Articles != nil {
			if err := deps.Articles.CreateArticle(deps.Ctx, article); err != nil {
				deps.Logger.Warn("archive article", "url", res.URL, "err", err)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d articles failed", failed, len(c.URLs))
	}
	return nil
}

// message renders a per-URL failure for the user. Transport errors keep
// their full text since there is no friendlier description.
func message(err error) string {
	if newsdoc.ErrorCode(err) == newsdoc.EINTERNAL {
		return err.Error()
	}
	return newsdoc.ErrorMessage(err)
}

// displayPath prefixes relative paths with "./".
func displayPath(path string) string {
	if filepath.IsAbs(path) || strings.HasPrefix(path, ".") {
		return path
	}
	return "." + string(filepath.Separator) + path
}
