package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of rendered articles after which the browser
// is replaced.
const DefaultMaxPages = 75

// session is one running Chrome process and the connection to it.
type session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

func (s *session) close() error {
	if s == nil {
		return nil
	}
	err := s.browser.Close()
	s.launcher.Kill()
	return err
}

// BrowserManager owns the Chrome session used for web-mode articles and
// replaces it once a page budget is spent, since a long multi-article run
// otherwise grows Chrome's memory without bound.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	maxPages  int64
	hideBot   bool
	onRecycle func(pages int64)

	mu       sync.Mutex
	current  *session
	rendered atomic.Int64
	closed   atomic.Bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets how many articles are rendered before the browser is
// replaced. Zero or less disables recycling.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// WithAutomationHidden launches Chrome without the blink automation
// feature flag that pages use to detect headless clients.
func WithAutomationHidden() ManagerOption {
	return func(bm *BrowserManager) {
		bm.hideBot = true
	}
}

// WithRecycleHook registers fn to be called after each browser replacement
// with the number of articles the old browser rendered.
func WithRecycleHook(fn func(pages int64)) ManagerOption {
	return func(bm *BrowserManager) {
		bm.onRecycle = fn
	}
}

// NewBrowserManager starts a headless browser.
// Close must be called when the BrowserManager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(bm)
	}

	s, err := bm.start()
	if err != nil {
		return nil, err
	}
	bm.current = s
	return bm, nil
}

// Browser returns the browser to open the next article in. When the page
// budget is spent a fresh browser is started first; if that fails the old
// one keeps serving.
func (bm *BrowserManager) Browser() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.maxPages > 0 && bm.rendered.Load() >= bm.maxPages {
		if next, err := bm.start(); err == nil {
			pages := bm.rendered.Swap(0)
			_ = bm.current.close()
			bm.current = next
			if bm.onRecycle != nil {
				bm.onRecycle(pages)
			}
		}
	}

	if bm.current == nil {
		return nil
	}
	return bm.current.browser
}

// IncrementPageCount records one rendered article.
func (bm *BrowserManager) IncrementPageCount() {
	bm.rendered.Add(1)
}

// Close stops the browser. Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	if !bm.closed.CompareAndSwap(false, true) {
		return nil
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()

	err := bm.current.close()
	bm.current = nil
	return err
}

// LauncherPID returns the process ID of the browser launcher, or 0 once
// closed.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.current == nil {
		return 0
	}
	return bm.current.launcher.PID()
}

func (bm *BrowserManager) start() (*session, error) {
	l := launcher.New().
		Headless(true).
		Leakless(true).
		Set("disable-gpu").
		Set("disable-dev-shm-usage").
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding")
	if bm.hideBot {
		l = l.Set("disable-blink-features", "AutomationControlled")
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chrome: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}

	return &session{browser: browser, launcher: l}, nil
}
