package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const (
	defaultRasterTimeout = 30 * time.Second
	// Oversampling factor for print sharpness.
	defaultRasterScale = 2.0
)

// Rasterizer turns a markup fragment into a PNG bitmap.
type Rasterizer interface {
	Rasterize(ctx context.Context, html string) ([]byte, error)
}

// ChromeRasterizer renders markup with headless Chrome over the DevTools
// protocol.
type ChromeRasterizer struct {
	Timeout   time.Duration
	Scale     float64
	NoSandbox bool
}

func (c *ChromeRasterizer) Rasterize(ctx context.Context, html string) ([]byte, error) {
	timeout := c.Timeout
	if timeout == 0 {
		timeout = defaultRasterTimeout
	}
	scale := c.Scale
	if scale == 0 {
		scale = defaultRasterScale
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true), // Important for Docker
		chromedp.Flag("font-render-hinting", "none"),
	)
	if c.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	var png []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(renderWidth, 1000, chromedp.EmulateScale(scale)),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.FullScreenshot(&png, 100),
	)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("rasterization timed out after %v: %w", timeout, err)
		}
		return nil, err
	}

	if len(png) == 0 {
		return nil, errors.New("rasterizer produced an empty bitmap")
	}

	return png, nil
}
