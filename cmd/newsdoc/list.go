package main

import (
	"fmt"

	"github.com/fwojciec/newsdoc"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := newsdoc.ArticleFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsdoc.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles archived. Use 'newsdoc parse' to add one.")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n     %s\n", a.ID, a.FetchedAt.Format("2006-01-02 15:04"), a.Title(), a.URL)
	}

	return nil
}
