package main

import (
	"fmt"

	"github.com/fwojciec/newsdoc"
	"github.com/fwojciec/newsdoc/fs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.FindArticleByID(deps.Ctx, c.ID)
	if err != nil {
		if newsdoc.ErrorCode(err) == newsdoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'newsdoc list' to see archived articles.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsdoc.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, fs.Format(article.Paragraphs, deps.Config.CharactersPerLine, deps.Config.ParagraphsIndent))
	return nil
}

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Articles.DeleteArticle(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted article %s\n", c.ID)
	return nil
}
