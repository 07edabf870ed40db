package scraper

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"

	"github.com/MKhiriev/bank-feed/internal/config"
)

// chromedpLauncher implements [Launcher] over the Chrome DevTools Protocol.
// Every Launch spawns its own browser process via a dedicated exec
// allocator, so no state leaks between scrapes.
type chromedpLauncher struct {
	execPath string
}

// NewChromedpLauncher constructs the production [Launcher]. cfg.ExecPath
// optionally pins the browser binary; otherwise chromedp resolves a system
// default.
func NewChromedpLauncher(cfg config.Scraper) Launcher {
	return &chromedpLauncher{execPath: cfg.ExecPath}
}

func (l *chromedpLauncher) Launch(ctx context.Context) (Browser, error) {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	if l.execPath != "" {
		opts = append(opts, chromedp.ExecPath(l.execPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Run with no actions forces the browser process to start now, so a
	// missing binary fails here instead of on the first page action.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("start browser: %w", err)
	}

	return &chromedpBrowser{
		ctx:           browserCtx,
		browserCancel: browserCancel,
		allocCancel:   allocCancel,
	}, nil
}

type chromedpBrowser struct {
	ctx           context.Context
	browserCancel context.CancelFunc
	allocCancel   context.CancelFunc
}

func (b *chromedpBrowser) NewPage(ctx context.Context) (Page, error) {
	if err := b.ctx.Err(); err != nil {
		return nil, fmt.Errorf("browser closed: %w", err)
	}

	tabCtx, tabCancel := chromedp.NewContext(b.ctx)
	return &chromedpPage{ctx: tabCtx, cancel: tabCancel}, nil
}

func (b *chromedpBrowser) Close() error {
	b.browserCancel()
	b.allocCancel()
	return nil
}

type chromedpPage struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func (p *chromedpPage) Navigate(ctx context.Context, url string) error {
	return p.run(ctx, chromedp.Navigate(url))
}

func (p *chromedpPage) WaitReady(ctx context.Context) error {
	return p.run(ctx, chromedp.WaitReady("body"))
}

func (p *chromedpPage) Fill(ctx context.Context, selector, value string) error {
	return p.run(ctx, chromedp.SendKeys(selector, value))
}

func (p *chromedpPage) Click(ctx context.Context, selector string) error {
	return p.run(ctx, chromedp.Click(selector))
}

func (p *chromedpPage) Text(ctx context.Context, selector string) (string, error) {
	var out string
	err := p.run(ctx, chromedp.Text(selector, &out))
	return out, err
}

func (p *chromedpPage) Evaluate(ctx context.Context, expression string, out any) error {
	return p.run(ctx, chromedp.Evaluate(expression, out))
}

func (p *chromedpPage) Close() error {
	p.cancel()
	return nil
}

// run executes actions on the tab context while honoring the caller's ctx:
// when ctx dies first the in-flight CDP call is abandoned, not killed —
// closing the page/browser handles is what actually stops the work.
func (p *chromedpPage) run(ctx context.Context, actions ...chromedp.Action) error {
	done := make(chan error, 1)
	go func() {
		done <- chromedp.Run(p.ctx, actions...)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
