package scraper

import "context"

//go:generate mockgen -source=browser.go -destination=../mock/browser_mock.go -package=mock

// Launcher starts one isolated headless-browser process per call. No
// browser is ever shared across requests: a hung session can only take its
// own scrape down with it.
type Launcher interface {
	Launch(ctx context.Context) (Browser, error)
}

// Browser is one running headless-browser process.
type Browser interface {
	// NewPage opens a fresh page (tab) in the browser.
	NewPage(ctx context.Context) (Page, error)

	// Close tears the whole browser process down. Safe to call after a
	// strategy has been abandoned mid-flight: in-page work is not awaited.
	Close() error
}

// Page is the driving handle an automation strategy works with. All
// methods honor ctx cancellation by abandoning the in-flight operation;
// they do not forcibly stop the underlying page work.
type Page interface {
	Navigate(ctx context.Context, url string) error

	// WaitReady blocks until the page has settled after navigation.
	WaitReady(ctx context.Context) error

	Fill(ctx context.Context, selector, value string) error
	Click(ctx context.Context, selector string) error
	Text(ctx context.Context, selector string) (string, error)

	// Evaluate runs a JavaScript expression in the page and unmarshals
	// the result into out (a non-nil pointer).
	Evaluate(ctx context.Context, expression string, out any) error

	Close() error
}
