package resume2pdf

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/resumekit/go-resume2pdf/internal/fileutil"
)

// chromedpConverter converts HTML to PDF using a chromedp-driven browser.
// It requires an installed Chrome/Chromium; unlike the rod backend it never
// downloads one, which suits locked-down environments.
type chromedpConverter struct {
	timeout time.Duration

	mu            sync.Mutex
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
}

// newChromedpConverter creates a chromedpConverter with the given timeout.
// The browser process is started lazily on first conversion.
func newChromedpConverter(timeout time.Duration) *chromedpConverter {
	return &chromedpConverter{timeout: timeout}
}

// ensureBrowser starts the exec allocator and browser context once.
func (c *chromedpConverter) ensureBrowser() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.browserCtx != nil {
		return nil
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("no-first-run", true),
	)
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(bin))
	}
	if os.Getenv("CI") == "true" {
		allocOpts = append(allocOpts, chromedp.Flag("no-sandbox", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start the browser eagerly so errors surface here, not mid-print.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	c.allocCancel = allocCancel
	c.browserCtx = browserCtx
	c.browserCancel = browserCancel
	return nil
}

// ToPDF writes the HTML to a temp file, navigates a fresh tab to it, and
// prints to PDF on US Letter paper with the requested margins.
func (c *chromedpConverter) ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if err := c.ensureBrowser(); err != nil {
		return nil, err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	tabCtx, tabCancel := chromedp.NewContext(c.browserCtx)
	defer tabCancel()

	// Tie tab lifetime to the caller's context.
	go func() {
		select {
		case <-ctx.Done():
			tabCancel()
		case <-tabCtx.Done():
		}
	}()

	margin := marginOrDefault(opts)
	var buf []byte
	err = chromedp.Run(tabCtx,
		chromedp.Navigate("file://"+tmpPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			buf, _, printErr = page.PrintToPDF().
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithMarginTop(margin).
				WithMarginBottom(margin).
				WithMarginLeft(margin).
				WithMarginRight(margin).
				WithPrintBackground(true).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return buf, nil
}

// Close shuts down the browser process. Idempotent.
func (c *chromedpConverter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.browserCancel != nil {
		c.browserCancel()
		c.browserCancel = nil
	}
	if c.allocCancel != nil {
		c.allocCancel()
		c.allocCancel = nil
	}
	c.browserCtx = nil
	return nil
}
