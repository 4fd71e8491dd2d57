package render

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultPDFTimeout bounds a single print-to-PDF run. Rendering is local, so
// this mostly guards against a wedged browser process.
const DefaultPDFTimeout = 30 * time.Second

// PDFGenerator produces PDF bytes from rendered HTML.
type PDFGenerator interface {
	Generate(ctx context.Context, html string) ([]byte, error)
}

// ChromePDFGenerator renders HTML to PDF with a headless Chrome instance.
// Requires Chrome/Chromium to be installed on the system.
type ChromePDFGenerator struct {
	Timeout time.Duration
}

// NewChromePDFGenerator returns a generator with the default timeout.
func NewChromePDFGenerator() *ChromePDFGenerator {
	return &ChromePDFGenerator{Timeout: DefaultPDFTimeout}
}

// Generate loads the HTML in a fresh headless browser context and prints it
// to an A4 PDF.
func (g *ChromePDFGenerator) Generate(ctx context.Context, html string) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := g.Timeout
	if timeout <= 0 {
		timeout = DefaultPDFTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("data:text/html,"+url.PathEscape(html)),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}

	return pdf, nil
}
