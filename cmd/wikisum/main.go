package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wikisum"
	"github.com/fwojciec/wikisum/fs"
	"github.com/fwojciec/wikisum/goquery"
	wikihttp "github.com/fwojciec/wikisum/http"
	"github.com/fwojciec/wikisum/lingua"
	"github.com/fwojciec/wikisum/rod"
	"github.com/fwojciec/wikisum/scan"
	wslog "github.com/fwojciec/wikisum/slog"
	"github.com/fwojciec/wikisum/stopwords"
	"github.com/google/uuid"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if wikisum.ErrorCode(err) != wikisum.EINTERNAL {
			fmt.Fprintln(os.Stderr, "Error:", wikisum.ErrorMessage(err))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher, if set, replaces the HTTP and browser fetchers.
	// Set before calling Run().
	Fetcher wikisum.Fetcher

	// APIEndpoint, if set, overrides the MediaWiki API URL of every wiki.
	APIEndpoint string

	// RetryDelays overrides the backoff between fetch attempts.
	RetryDelays []time.Duration
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wikisum"),
		kong.Description("Summarize the sections of a Wikipedia article: most frequent words and hyperlinks"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())

	var opts []stopwords.Option
	if cli.Languages != "" {
		table, err := stopwords.LoadTable(cli.Languages)
		if err != nil {
			return err
		}
		opts = append(opts, stopwords.WithTable(table))
	}
	words := stopwords.NewService(opts...)

	fetcher, err := m.newFetcher(cli, stderr, logger)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	var f wikisum.Fetcher = wslog.NewLoggingFetcher(fetcher, logger)
	if cli.RPS > 0 {
		f = scan.NewLimitedFetcher(f, scan.NewDomainLimiter(cli.RPS))
	}
	if cli.Retries {
		f = scan.NewRetryFetcher(f, m.RetryDelays, func(msg string, args ...any) {
			logger.Warn(msg, args...)
		})
	}

	scanner := &scan.Scanner{
		Source:      wslog.NewLoggingArticleSource(m.newSource(cli.Mode, f), logger),
		Stopwords:   wslog.NewLoggingStopwordService(words, logger),
		Concurrency: cli.Parallel,
	}
	if cli.Distinct {
		scanner.TieMode = wikisum.TieDistinct
	}
	if cli.DetectLanguage {
		detector, err := lingua.NewDetector(words.Languages())
		if err != nil {
			return err
		}
		scanner.Detector = wslog.NewLoggingLanguageDetector(detector, logger)
	}

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  logger,
		Scanner: scanner,
	}

	if cli.Output != "" {
		deps.Store = fs.NewFileStore(
			filepath.Dir(cli.Output),
			filepath.Base(cli.Output),
			formatExt(cli.Format),
			encodeReport(cli.Format),
		)
	}

	cmd := &SummarizeCmd{
		URLs:   cli.URLs,
		Format: cli.Format,
	}

	return cmd.Run(deps)
}

func (m *Main) newFetcher(cli *CLI, stderr io.Writer, logger *slog.Logger) (wikisum.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}

	if cli.Mode == "web" && (cli.Browser || cli.Stealth) {
		opts := []rod.Option{
			rod.WithFetchTimeout(cli.Timeout),
			rod.WithBrowserRecycling(cli.Recycle),
			rod.WithRecycleNotify(func(pages int64) {
				logger.Info("browser restarted", "rendered", pages)
			}),
		}
		if cli.Stealth {
			opts = append(opts, rod.WithStealth())
		}
		f, err := rod.NewFetcher(opts...)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return f, nil
	}

	return wikihttp.NewFetcher(wikihttp.WithTimeout(cli.Timeout)), nil
}

func (m *Main) newSource(mode string, f wikisum.Fetcher) wikisum.ArticleSource {
	if mode == "web" {
		return &scan.WebSource{Fetcher: f, Extractor: goquery.NewExtractor()}
	}

	var opts []wikihttp.MediaWikiOption
	if m.APIEndpoint != "" {
		opts = append(opts, wikihttp.WithEndpoint(m.APIEndpoint))
	}
	wiki := wikihttp.NewMediaWiki(f, opts...)
	if mode == "sections" {
		return wikihttp.NewSectionSource(wiki)
	}
	return wikihttp.NewPageSource(wiki)
}
