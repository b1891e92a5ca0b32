// Package rod adapts go-rod to the browser ports used by the Odoo helpers.
package rod

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"net/url"
	"strings"
	"sync"
	"time"

	"odoo-steps/pkg/browser"
	"odoo-steps/pkg/locator"

	"github.com/disintegration/imaging"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultSlowMotion = 500 * time.Millisecond
	maxScreenshotW    = 1024
)

var _ browser.Page = (*PageAdapter)(nil)

type BrowserConfig struct {
	Headless   bool
	SlowMotion time.Duration
	Timeout    time.Duration
	NoSandbox  bool
	DevTools   bool
	// DisableSecurityFeatures turns off web security and allows mixed
	// content. Only for local test instances.
	DisableSecurityFeatures bool
}

func DefaultConfig() BrowserConfig {
	return BrowserConfig{
		Headless:   false,
		SlowMotion: defaultSlowMotion,
		Timeout:    defaultTimeout,
	}
}

// BrowserAdapter owns a launched Chrome process and one page on it.
type BrowserAdapter struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *PageAdapter

	mu     sync.Mutex
	closed bool
}

// NewBrowserAdapter launches a browser and opens about:blank. Helpers never
// call it; it exists for the smoke runner and integration tests.
func NewBrowserAdapter(ctx context.Context, cfg BrowserConfig) (*BrowserAdapter, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	l := launcher.New().
		Context(ctx).
		Headless(cfg.Headless).
		Devtools(cfg.DevTools).
		NoSandbox(cfg.NoSandbox).
		Delete("use-mock-keychain")
	if cfg.DisableSecurityFeatures {
		l = l.Set("disable-web-security").
			Set("allow-running-insecure-content")
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	b := rod.New().
		Context(ctx).
		ControlURL(controlURL).
		SlowMotion(cfg.SlowMotion)
	if err := b.Connect(); err != nil {
		l.Kill()
		l.Cleanup()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	p, err := b.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = b.Close()
		l.Kill()
		l.Cleanup()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	return &BrowserAdapter{
		browser:  b,
		launcher: l,
		page:     NewPageAdapter(p, cfg.Timeout),
	}, nil
}

func (b *BrowserAdapter) Page() *PageAdapter {
	return b.page
}

func (b *BrowserAdapter) IsReady() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.closed && b.browser != nil && b.page != nil
}

func (b *BrowserAdapter) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true

	if b.browser != nil {
		_ = b.browser.Close()
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher.Cleanup()
	}
}

// PageAdapter implements browser.Page over a caller-owned *rod.Page.
type PageAdapter struct {
	page    *rod.Page
	timeout time.Duration
}

// NewPageAdapter wraps an existing rod page. timeout is used for page loads.
func NewPageAdapter(p *rod.Page, timeout time.Duration) *PageAdapter {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &PageAdapter{page: p, timeout: timeout}
}

func (a *PageAdapter) Rod() *rod.Page {
	return a.page
}

func (a *PageAdapter) Navigate(ctx context.Context, rawURL string) error {
	if err := validateURL(rawURL); err != nil {
		return err
	}

	p := a.page.Context(ctx).Timeout(a.timeout)
	defer p.CancelTimeout()

	if err := p.Navigate(rawURL); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	if err := p.WaitLoad(); err != nil {
		return fmt.Errorf("wait load failed: %w", err)
	}
	return nil
}

func (a *PageAdapter) Find(ctx context.Context, loc locator.Locator, ready locator.Readiness, timeout time.Duration) (browser.Element, error) {
	if strings.TrimSpace(loc.Query) == "" {
		return nil, fmt.Errorf("%w: empty query", browser.ErrInvalidSelector)
	}
	if timeout <= 0 {
		timeout = a.timeout
	}

	p := a.page.Context(ctx).Timeout(timeout)
	defer p.CancelTimeout()

	el, err := query(p, loc)
	if err == nil {
		err = waitReady(el, ready)
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &browser.LocatorTimeoutError{
				Locator:   loc,
				Readiness: ready,
				Timeout:   timeout,
				Err:       err,
			}
		}
		return nil, fmt.Errorf("element not found: %s: %w", loc, err)
	}

	// The element leaves the wait deadline behind. Callers bound the action
	// through the ctx they pass to Element methods.
	return &elementAdapter{el: el.Context(ctx)}, nil
}

func (a *PageAdapter) FindAll(ctx context.Context, loc locator.Locator) ([]browser.Element, error) {
	if strings.TrimSpace(loc.Query) == "" {
		return nil, fmt.Errorf("%w: empty query", browser.ErrInvalidSelector)
	}

	p := a.page.Context(ctx)

	var (
		els rod.Elements
		err error
	)
	switch loc.Strategy {
	case locator.CSS:
		els, err = p.Elements(loc.Query)
	default:
		els, err = p.ElementsX(loc.Query)
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %s: %w", loc, err)
	}

	result := make([]browser.Element, 0, len(els))
	for _, el := range els {
		result = append(result, &elementAdapter{el: el})
	}
	return result, nil
}

func (a *PageAdapter) HTML(ctx context.Context) (string, error) {
	html, err := a.page.Context(ctx).HTML()
	if err != nil {
		return "", fmt.Errorf("failed to get HTML: %w", err)
	}
	return html, nil
}

func (a *PageAdapter) Screenshot(ctx context.Context) (*browser.Screenshot, error) {
	imgBytes, err := a.page.Context(ctx).Screenshot(true, &proto.PageCaptureScreenshot{
		Format:  proto.PageCaptureScreenshotFormatJpeg,
		Quality: gson.Int(80),
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	if img.Bounds().Dx() > maxScreenshotW {
		img = imaging.Resize(img, maxScreenshotW, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 75}); err != nil {
		return nil, fmt.Errorf("jpeg encode failed: %w", err)
	}

	return &browser.Screenshot{
		Data:   buf.Bytes(),
		Format: "jpeg",
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}, nil
}

func (a *PageAdapter) CurrentURL() string {
	info, err := a.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

func query(p *rod.Page, loc locator.Locator) (*rod.Element, error) {
	switch loc.Strategy {
	case locator.CSS:
		return p.Element(loc.Query)
	case locator.XPath:
		return p.ElementX(loc.Query)
	default:
		return nil, fmt.Errorf("%w: unknown strategy %s", browser.ErrInvalidSelector, loc.Strategy)
	}
}

// waitReady blocks on the element's context, which carries the page timeout.
func waitReady(el *rod.Element, ready locator.Readiness) error {
	switch ready {
	case locator.Present:
		return nil
	case locator.Visible:
		return el.WaitVisible()
	case locator.Clickable:
		if err := el.WaitVisible(); err != nil {
			return err
		}
		if err := el.WaitEnabled(); err != nil {
			return err
		}
		// A node under an overlay (blockUI, modal backdrop) is not clickable.
		_, err := el.WaitInteractable()
		return err
	default:
		return fmt.Errorf("unknown readiness %s", ready)
	}
}

func validateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return fmt.Errorf("%w: empty", browser.ErrInvalidURL)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", browser.ErrInvalidURL, err)
	}
	switch u.Scheme {
	case "http", "https", "about":
		return nil
	default:
		return fmt.Errorf("%w: unsupported scheme %q", browser.ErrInvalidURL, u.Scheme)
	}
}
