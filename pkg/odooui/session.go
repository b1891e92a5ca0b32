// Package odooui provides step helpers for UI tests against the Odoo 14 web
// client: login, menu navigation, form fields, tabs, tree views and module
// switching.
//
// Every helper builds one structural query, waits a bounded time for the
// node to be ready and performs a single action on it:
//
//	s := odooui.NewSession(page, odooui.Credentials{
//		BaseURL:  "http://localhost:8069",
//		Username: "admin",
//		Password: "admin",
//	}, logger)
//
//	if err := odooui.Login(ctx, s); err != nil {
//		return err
//	}
//	if err := odooui.NavigateMenu(ctx, s, "Sales", "Orders"); err != nil {
//		return err
//	}
//
// A Session is not safe for concurrent use. The browser behind it belongs to
// the caller and is never opened or closed here.
package odooui

import (
	"time"

	"odoo-steps/pkg/browser"

	"go.uber.org/zap"
)

//go:generate mockgen -package=odooui -destination=mock_browser_test.go odoo-steps/pkg/browser Page,Element

const defaultTimeout = 5 * time.Second

// Credentials are consulted by Login only. Per-call options override them.
type Credentials struct {
	BaseURL  string
	Username string
	Password string
}

type Session struct {
	Page        browser.Page
	Credentials Credentials
	Logger      *zap.Logger
	// DefaultTimeout bounds waits whose caller passed no timeout.
	DefaultTimeout time.Duration
}

func NewSession(page browser.Page, creds Credentials, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		Page:           page,
		Credentials:    creds,
		Logger:         logger,
		DefaultTimeout: defaultTimeout,
	}
}

func (s *Session) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *Session) timeoutOr(d time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	if s.DefaultTimeout > 0 {
		return s.DefaultTimeout
	}
	return defaultTimeout
}

// Option adjusts a single helper call.
type Option func(*callOptions)

type callOptions struct {
	timeout  time.Duration
	baseURL  *string
	username *string
	password *string
}

func newCallOptions(def time.Duration, opts []Option) callOptions {
	o := callOptions{timeout: def}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTimeout replaces the helper's default wait.
func WithTimeout(d time.Duration) Option {
	return func(o *callOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

func WithBaseURL(u string) Option {
	return func(o *callOptions) { o.baseURL = &u }
}

func WithUsername(u string) Option {
	return func(o *callOptions) { o.username = &u }
}

func WithPassword(p string) Option {
	return func(o *callOptions) { o.password = &p }
}
