package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/wikisum"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Scanner Scanner

	// Store, if set, receives reports instead of Stdout.
	Store wikisum.ReportStore
}

// Scanner produces the report for one article.
type Scanner interface {
	Scan(ctx context.Context, ref wikisum.PageRef) (*wikisum.Report, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URLs []string `arg:"" name:"url" help:"Wikipedia article URL(s), e.g. https://en.wikipedia.org/wiki/Rome"`

	Mode     string        `short:"m" enum:"page,sections,web" default:"page" env:"WIKISUM_MODE" help:"How to read the article: page (one API request), sections (one API request per section) or web (rendered page)"`
	Browser  bool          `short:"b" env:"WIKISUM_BROWSER" help:"Render the page in headless Chrome (web mode only)"`
	Stealth  bool          `env:"WIKISUM_STEALTH" help:"Hide browser automation markers (implies --browser)"`
	Recycle  int64         `name:"recycle-after" default:"75" env:"WIKISUM_RECYCLE_AFTER" help:"Restart the browser after this many rendered articles (0 never restarts)"`
	Timeout  time.Duration `short:"t" default:"10s" env:"WIKISUM_TIMEOUT" help:"Timeout per request"`
	RPS      float64       `name:"rps" default:"5" env:"WIKISUM_RPS" help:"Maximum requests per second per wiki"`
	Retries  bool          `default:"true" negatable:"" env:"WIKISUM_RETRIES" help:"Retry transient fetch failures"`
	Parallel int           `short:"c" name:"concurrency" default:"1" env:"WIKISUM_CONCURRENCY" help:"Sections summarized in parallel"`

	Distinct       bool   `env:"WIKISUM_DISTINCT" help:"List each most frequent word once"`
	DetectLanguage bool   `name:"detect-language" env:"WIKISUM_DETECT_LANGUAGE" help:"Detect the language of pages whose wiki has no stop-word corpus"`
	Languages      string `type:"path" env:"WIKISUM_LANGUAGES" help:"YAML file mapping language codes to stop-word corpora"`

	Format  string `short:"f" enum:"text,json,yaml" default:"text" env:"WIKISUM_FORMAT" help:"Output format: text, json or yaml"`
	Output  string `short:"o" type:"path" env:"WIKISUM_OUTPUT" help:"Write one report file per article into this directory (replaced on success)"`
	Verbose bool   `short:"v" env:"WIKISUM_VERBOSE" help:"Log every request"`
}

// SummarizeCmd summarizes each article in turn.
type SummarizeCmd struct {
	URLs   []string
	Format string
}
