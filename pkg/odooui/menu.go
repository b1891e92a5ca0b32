package odooui

import (
	"context"
	"fmt"
	"time"

	"odoo-steps/pkg/locator"
)

const menuTimeout = 3 * time.Second

// ClickMenuItem clicks the top bar menu whose text contains menuText.
func ClickMenuItem(ctx context.Context, s *Session, menuText string, opts ...Option) error {
	o := newCallOptions(menuTimeout, opts)
	if err := ResolveAndAct(ctx, s, menuItemLocator(menuText), locator.Clickable, o.timeout, Click()); err != nil {
		return fmt.Errorf("click menu %q: %w", menuText, err)
	}
	return nil
}

// NavigateMenu opens menuText and clicks submenuText in its dropdown. A
// menu click is not undone when the submenu is missing.
func NavigateMenu(ctx context.Context, s *Session, menuText, submenuText string, opts ...Option) error {
	if err := ClickMenuItem(ctx, s, menuText, opts...); err != nil {
		return err
	}
	return clickSubmenuItem(ctx, s, submenuText, opts...)
}

func clickSubmenuItem(ctx context.Context, s *Session, submenuText string, opts ...Option) error {
	o := newCallOptions(menuTimeout, opts)
	if err := ResolveAndAct(ctx, s, submenuItemLocator(submenuText), locator.Clickable, o.timeout, Click()); err != nil {
		return fmt.Errorf("click submenu %q: %w", submenuText, err)
	}
	return nil
}
