package odooui

import (
	"context"
	"fmt"
	"time"

	"odoo-steps/pkg/browser"
	"odoo-steps/pkg/locator"
)

const (
	formTimeout     = 5 * time.Second
	readonlyTimeout = 1 * time.Second
)

// SetTextField types value into the input whose name contains fieldName.
func SetTextField(ctx context.Context, s *Session, fieldName, value string, opts ...Option) error {
	o := newCallOptions(formTimeout, opts)
	if err := ResolveAndAct(ctx, s, textFieldLocator(fieldName), locator.Present, o.timeout, SendText(value)); err != nil {
		return fmt.Errorf("set text field %q: %w", fieldName, err)
	}
	return nil
}

// SetSelectField picks the option with the given visible text in the select
// whose name contains selectName.
func SetSelectField(ctx context.Context, s *Session, selectName, option string, opts ...Option) error {
	o := newCallOptions(formTimeout, opts)
	act := func(ctx context.Context, el browser.Element) error {
		return el.SelectByText(ctx, option)
	}
	if err := ResolveAndAct(ctx, s, selectFieldLocator(selectName), locator.Present, o.timeout, act); err != nil {
		return fmt.Errorf("set select field %q: %w", selectName, err)
	}
	return nil
}

// SetAutocompleteField fills a many2one/many2many/one2many widget: it types
// chars into the field's input and presses Tab to accept the first
// highlighted suggestion.
func SetAutocompleteField(ctx context.Context, s *Session, fieldName, chars string, opts ...Option) error {
	o := newCallOptions(formTimeout, opts)
	act := func(ctx context.Context, el browser.Element) error {
		if err := el.Click(ctx); err != nil {
			return err
		}
		if err := el.Type(ctx, chars); err != nil {
			return err
		}
		return el.Press(ctx, browser.KeyTab)
	}
	if err := ResolveAndAct(ctx, s, autocompleteLocator(fieldName), locator.Clickable, o.timeout, act); err != nil {
		return fmt.Errorf("set autocomplete field %q: %w", fieldName, err)
	}
	return nil
}

// SelectDropdownItem clicks an entry of the currently open dropdown menu.
func SelectDropdownItem(ctx context.Context, s *Session, optionText string, opts ...Option) error {
	o := newCallOptions(formTimeout, opts)
	if err := ResolveAndAct(ctx, s, dropdownItemLocator(optionText), locator.Present, o.timeout, Click()); err != nil {
		return fmt.Errorf("select dropdown item %q: %w", optionText, err)
	}
	return nil
}

// ClickButton clicks a button, or a span inside one, whose text contains
// buttonText.
func ClickButton(ctx context.Context, s *Session, buttonText string, opts ...Option) error {
	o := newCallOptions(formTimeout, opts)
	if err := ResolveAndAct(ctx, s, buttonLocator(buttonText), locator.Present, o.timeout, Click()); err != nil {
		return fmt.Errorf("click button %q: %w", buttonText, err)
	}
	return nil
}

// SwitchFormTab activates a notebook page of the current form view.
func SwitchFormTab(ctx context.Context, s *Session, tabName string, opts ...Option) error {
	o := newCallOptions(formTimeout, opts)
	if err := ResolveAndAct(ctx, s, formTabLocator(tabName), locator.Visible, o.timeout, Click()); err != nil {
		return fmt.Errorf("switch form tab %q: %w", tabName, err)
	}
	return nil
}

// EnsureReadonlyMode fails unless the form shows its Edit button and the
// readonly container is visible. The two waits are bounded independently.
func EnsureReadonlyMode(ctx context.Context, s *Session, opts ...Option) error {
	o := newCallOptions(readonlyTimeout, opts)
	if err := ResolveAndAct(ctx, s, editButtonLocator, locator.Present, o.timeout, NoAction()); err != nil {
		return fmt.Errorf("ensure readonly mode: %w", err)
	}
	if err := ResolveAndAct(ctx, s, readonlyFormLocator, locator.Visible, o.timeout, NoAction()); err != nil {
		return fmt.Errorf("ensure readonly mode: %w", err)
	}
	return nil
}

// ClickSmartButton clicks the element matched by an opaque CSS selector,
// typically one of the stat buttons of a form's button box.
func ClickSmartButton(ctx context.Context, s *Session, cssSelector string, opts ...Option) error {
	o := newCallOptions(formTimeout, opts)
	if err := ResolveAndAct(ctx, s, locator.CSSSelector(cssSelector), locator.Clickable, o.timeout, Click()); err != nil {
		return fmt.Errorf("click smart button %q: %w", cssSelector, err)
	}
	return nil
}
