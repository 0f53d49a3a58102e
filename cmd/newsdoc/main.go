package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/newsdoc/batch"
	"github.com/fwojciec/newsdoc/config"
	"github.com/fwojciec/newsdoc/fs"
	nhttp "github.com/fwojciec/newsdoc/http"
	"github.com/fwojciec/newsdoc/scrape"
	nslog "github.com/fwojciec/newsdoc/slog"
	"github.com/fwojciec/newsdoc/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when --db is not given. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newsdoc"),
		kong.Description("Extract the readable text of news articles."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newsdoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	cfg, err := config.LoadOrDefault(cli.Config)
	if err != nil {
		// A missing file at the default location is the normal case.
		if errors.Is(err, iofs.ErrNotExist) {
			logger.Debug("config not found, using defaults", "path", cli.Config)
		} else {
			logger.Warn("invalid config, using defaults", "path", cli.Config, "err", err)
		}
	}
	deps.Config = cfg

	dbPath := m.DBPath
	if cli.DB != "" {
		dbPath = cli.DB
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		_ = os.MkdirAll(dir, 0755)
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set NEWSDOC_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	deps.Articles = sqlite.NewArticleService(m.DB)

	if strings.HasPrefix(kongCtx.Command(), "parse") {
		fetcher := nslog.NewLoggingFetcher(
			nhttp.NewFetcher(nhttp.WithTimeout(cli.Parse.Timeout)),
			logger,
		)
		scraper := nslog.NewLoggingScraper(scrape.NewScraper(fetcher, scrape.WithConfig(cfg)), logger)

		deps.Runner = &batch.Runner{
			Scraper:     scraper,
			Limiter:     batch.NewDomainLimiter(cli.Parse.RPS),
			Concurrency: cli.Parse.Concurrency,
		}
		deps.Writer = nslog.NewLoggingWriter(fs.NewWriter(cli.Parse.Output, cfg), logger)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("NEWSDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "newsdoc.db"
	}
	return filepath.Join(home, ".newsdoc", "newsdoc.db")
}
