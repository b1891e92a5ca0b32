package browser

import (
	"errors"
	"fmt"
	"time"

	"odoo-steps/pkg/locator"
)

var (
	ErrLocatorTimeout  = errors.New("locator timeout")
	ErrInvalidURL      = errors.New("invalid URL")
	ErrInvalidSelector = errors.New("invalid selector")
	ErrNoForm          = errors.New("element is not inside a form")
	ErrNoOption        = errors.New("no option with that text")
)

// LocatorTimeoutError reports that no node satisfied the readiness predicate
// before the deadline.
type LocatorTimeoutError struct {
	Locator   locator.Locator
	Readiness locator.Readiness
	Timeout   time.Duration
	Err       error
}

func (e *LocatorTimeoutError) Error() string {
	msg := fmt.Sprintf("locator timeout: no %s element for %s within %s", e.Readiness, e.Locator, e.Timeout)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LocatorTimeoutError) Is(target error) bool {
	return target == ErrLocatorTimeout
}

func (e *LocatorTimeoutError) Unwrap() error {
	return e.Err
}
