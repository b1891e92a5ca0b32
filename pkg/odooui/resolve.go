package odooui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"odoo-steps/pkg/browser"
	"odoo-steps/pkg/locator"

	"go.uber.org/zap"
)

// Action is the terminal step performed on a resolved element.
type Action func(ctx context.Context, el browser.Element) error

func Click() Action {
	return func(ctx context.Context, el browser.Element) error {
		return el.Click(ctx)
	}
}

func SendText(text string) Action {
	return func(ctx context.Context, el browser.Element) error {
		return el.Input(ctx, text)
	}
}

func ReadText(dst *string) Action {
	return func(ctx context.Context, el browser.Element) error {
		text, err := el.Text(ctx)
		if err != nil {
			return err
		}
		*dst = text
		return nil
	}
}

// NoAction only asserts that the wait succeeded.
func NoAction() Action {
	return func(context.Context, browser.Element) error { return nil }
}

// ResolveAndAct waits up to timeout for loc to resolve to an element meeting
// ready, then runs act on it exactly once. The action gets its own deadline
// of timeout, so a node that never accepts the action cannot hang the call.
// A timeout of zero uses the session default.
//
// When nothing matches in time, or the action runs out of time, the error
// satisfies errors.Is(err, browser.ErrLocatorTimeout).
func ResolveAndAct(ctx context.Context, s *Session, loc locator.Locator, ready locator.Readiness, timeout time.Duration, act Action) error {
	if ctx == nil {
		ctx = context.Background()
	}
	timeout = s.timeoutOr(timeout)

	el, err := resolve(ctx, s, loc, ready, timeout)
	if err != nil {
		return err
	}
	if act == nil {
		return nil
	}

	actx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := act(actx, el); err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			err = &browser.LocatorTimeoutError{Locator: loc, Readiness: ready, Timeout: timeout, Err: err}
		}
		return fmt.Errorf("act on %s: %w", loc, err)
	}
	return nil
}

// Exists reports whether loc resolves within timeout. Only a locator timeout
// becomes false; any other failure is returned.
func Exists(ctx context.Context, s *Session, loc locator.Locator, ready locator.Readiness, timeout time.Duration) (bool, error) {
	_, err := resolve(ctx, s, loc, ready, timeout)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, browser.ErrLocatorTimeout):
		return false, nil
	default:
		return false, err
	}
}

// ReadAll queries loc once, without waiting, and returns each node's visible
// text in document order. No match yields an empty slice.
func ReadAll(ctx context.Context, s *Session, loc locator.Locator) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	els, err := s.Page.FindAll(ctx, loc)
	if err != nil {
		return nil, err
	}

	texts := make([]string, 0, len(els))
	for i, el := range els {
		text, err := el.Text(ctx)
		if err != nil {
			return nil, fmt.Errorf("read row %d of %s: %w", i+1, loc, err)
		}
		texts = append(texts, text)
	}
	return texts, nil
}

func resolve(ctx context.Context, s *Session, loc locator.Locator, ready locator.Readiness, timeout time.Duration) (browser.Element, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	timeout = s.timeoutOr(timeout)

	log := s.log().With(
		zap.Stringer("locator", loc),
		zap.Stringer("readiness", ready),
		zap.Duration("timeout", timeout),
	)
	log.Debug("resolving element")

	el, err := s.Page.Find(ctx, loc, ready, timeout)
	if err != nil {
		log.Debug("element not resolved", zap.Error(err))
		return nil, err
	}
	return el, nil
}
