package browser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/chromedp"
)

// Session is the surface the scraper needs from a live browser tab.
// Implemented by ChromeSession; tests supply fakes.
type Session interface {
	Navigate(url string) error
	WaitVisible(selector string, timeout time.Duration) error
	PageHTML() (string, error)
	Click(selector string) error
}

// ChromeSession drives an already-running Chrome instance over its
// remote debugging endpoint. The browser is never launched or closed by
// this process; Close only disconnects.
type ChromeSession struct {
	ctx     context.Context
	cancels []context.CancelFunc
}

// Connect attaches to the Chrome remote debugging endpoint
// (host:port). Connectivity is verified immediately so a dead endpoint
// fails the run up front.
func Connect(ctx context.Context, debugAddress string) (*ChromeSession, error) {
	allocCtx, allocCancel := chromedp.NewRemoteAllocator(ctx, "http://"+debugAddress)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("failed to connect to Chrome at %s: %w", debugAddress, err)
	}

	slog.Info("Connected to Chrome session", "address", debugAddress)

	return &ChromeSession{
		ctx:     browserCtx,
		cancels: []context.CancelFunc{browserCancel, allocCancel},
	}, nil
}

func (s *ChromeSession) Navigate(url string) error {
	if err := chromedp.Run(s.ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

func (s *ChromeSession) WaitVisible(selector string, timeout time.Duration) error {
	timeoutCtx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()

	if err := chromedp.Run(timeoutCtx, chromedp.WaitVisible(selector, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("element %s not visible: %w", selector, err)
	}
	return nil
}

func (s *ChromeSession) PageHTML() (string, error) {
	var html string
	if err := chromedp.Run(s.ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("failed to read page HTML: %w", err)
	}
	return html, nil
}

func (s *ChromeSession) Click(selector string) error {
	err := chromedp.Run(s.ctx,
		chromedp.ScrollIntoView(selector, chromedp.ByQuery),
		chromedp.Click(selector, chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("failed to click %s: %w", selector, err)
	}
	return nil
}

// Close disconnects from the debugging session, leaving Chrome running
func (s *ChromeSession) Close() {
	for _, cancel := range s.cancels {
		cancel()
	}
}
