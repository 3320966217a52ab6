// Package rod implements wikisum.Fetcher with headless Chrome, for pages
// that must be rendered before their article body is complete.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/wikisum"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// DefaultFetchTimeout bounds one page render.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements wikisum.Fetcher at compile time.
var _ wikisum.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager     *BrowserManager
	managerOpts []ManagerOption
	timeout     time.Duration
	stealth     bool
	closed      atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page render timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithStealth opens pages with evasions applied so the browser is harder
// to tell apart from an interactive one.
func WithStealth() Option {
	return func(f *Fetcher) {
		f.stealth = true
		f.managerOpts = append(f.managerOpts, WithAutomationHidden())
	}
}

// WithBrowserRecycling replaces the browser after n rendered articles.
// Zero or less keeps one browser for the whole run.
func WithBrowserRecycling(n int64) Option {
	return func(f *Fetcher) {
		f.managerOpts = append(f.managerOpts, WithMaxPages(n))
	}
}

// WithRecycleNotify calls fn after each browser replacement with the number
// of articles the old browser rendered.
func WithRecycleNotify(fn func(pages int64)) Option {
	return func(f *Fetcher) {
		f.managerOpts = append(f.managerOpts, WithRecycleHook(fn))
	}
}

// NewFetcher launches a headless browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	m, err := NewBrowserManager(f.managerOpts...)
	if err != nil {
		return nil, err
	}
	f.manager = m
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", wikisum.Errorf(wikisum.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.openPage()
	if err != nil {
		return "", err
	}
	defer page.Close()
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}
	f.manager.IncrementPageCount()

	return html, nil
}

func (f *Fetcher) openPage() (*rod.Page, error) {
	browser := f.manager.Browser()
	if browser == nil {
		return nil, wikisum.Errorf(wikisum.EINVALID, "fetcher is closed")
	}
	if f.stealth {
		return stealth.Page(browser)
	}
	return browser.Page(proto.TargetCreateTarget{})
}

// LauncherPID returns the process ID of the browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}
