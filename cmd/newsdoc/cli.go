package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/newsdoc"
	"github.com/fwojciec/newsdoc/batch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Config   *newsdoc.Config
	Runner   *batch.Runner
	Writer   newsdoc.ArticleWriter
	Articles newsdoc.ArticleService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `default:"config.json" help:"Path to the extraction config (JSON or YAML)"`
	DB      string `name:"db" env:"NEWSDOC_DB" help:"Path to the article archive database"`
	Verbose bool   `short:"v" help:"Log every request"`

	Parse  ParseCmd  `cmd:"" help:"Extract articles and save them as text files"`
	List   ListCmd   `cmd:"" help:"List archived articles"`
	Show   ShowCmd   `cmd:"" help:"Print an archived article"`
	Delete DeleteCmd `cmd:"" help:"Delete an archived article"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	URLs        []string      `arg:"" name:"urls" help:"Article URLs"`
	Output      string        `short:"o" default:"." help:"Directory to write article files to"`
	Stdout      bool          `help:"Print articles instead of writing files"`
	NoArchive   bool          `help:"Do not store articles in the database"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	RPS         float64       `name:"rps" default:"1" help:"Requests per second per site"`
	Timeout     time.Duration `default:"10s" help:"Per-request timeout"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL   string `help:"Only list articles fetched from this URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of articles"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Article ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Article ID"`
}
