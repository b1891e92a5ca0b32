package odooui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"odoo-steps/pkg/browser"
	"odoo-steps/pkg/locator"

	"go.uber.org/zap"
)

var ErrMissingBaseURL = errors.New("odoo base URL is not set")

// Login opens <base>/web, fills the login form and submits it once.
// WithBaseURL, WithUsername and WithPassword override the session
// credentials for this call.
func Login(ctx context.Context, s *Session, opts ...Option) error {
	if ctx == nil {
		ctx = context.Background()
	}
	o := newCallOptions(formTimeout, opts)

	creds := s.Credentials
	if o.baseURL != nil {
		creds.BaseURL = *o.baseURL
	}
	if o.username != nil {
		creds.Username = *o.username
	}
	if o.password != nil {
		creds.Password = *o.password
	}

	base := strings.TrimRight(strings.TrimSpace(creds.BaseURL), "/")
	if base == "" {
		return ErrMissingBaseURL
	}

	s.log().Debug("logging in", zap.String("url", base), zap.String("username", creds.Username))

	if err := s.Page.Navigate(ctx, base+"/web"); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := ResolveAndAct(ctx, s, loginFieldLocator, locator.Present, o.timeout, SendText(creds.Username)); err != nil {
		return fmt.Errorf("login: username: %w", err)
	}

	submit := func(ctx context.Context, el browser.Element) error {
		if err := el.Input(ctx, creds.Password); err != nil {
			return err
		}
		if err := el.Submit(ctx); err != nil {
			return fmt.Errorf("submit: %w", err)
		}
		return nil
	}
	if err := ResolveAndAct(ctx, s, passwdFieldLocator, locator.Present, o.timeout, submit); err != nil {
		return fmt.Errorf("login: password: %w", err)
	}
	return nil
}
