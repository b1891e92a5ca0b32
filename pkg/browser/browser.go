// Package browser declares the narrow driver surface the Odoo helpers need.
// The go-rod adapter in pkg/browser/rod implements it; tests mock it.
package browser

import (
	"context"
	"time"

	"odoo-steps/pkg/locator"
)

// Page is a live, navigable document owned by the caller.
type Page interface {
	Navigate(ctx context.Context, url string) error

	// Find polls until loc resolves to a node satisfying ready, or fails
	// with *LocatorTimeoutError once timeout elapses.
	Find(ctx context.Context, loc locator.Locator, ready locator.Readiness, timeout time.Duration) (Element, error)

	// FindAll queries once, without waiting. Nodes come back in document order.
	FindAll(ctx context.Context, loc locator.Locator) ([]Element, error)

	HTML(ctx context.Context) (string, error)
	Screenshot(ctx context.Context) (*Screenshot, error)
	CurrentURL() string
}

// Element is a resolved node, valid for the duration of one helper call.
type Element interface {
	Click(ctx context.Context) error
	Input(ctx context.Context, text string) error
	Type(ctx context.Context, text string) error
	Press(ctx context.Context, key Key) error
	SelectByText(ctx context.Context, text string) error
	Submit(ctx context.Context) error
	Text(ctx context.Context) (string, error)
}

type Key string

const (
	KeyTab   Key = "Tab"
	KeyEnter Key = "Enter"
)

type Screenshot struct {
	Data   []byte
	Format string
	Width  int
	Height int
}
