package rod

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"odoo-steps/pkg/browser"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/proto"
)

var _ browser.Element = (*elementAdapter)(nil)

type elementAdapter struct {
	el *rod.Element
}

func (e *elementAdapter) Click(ctx context.Context) error {
	if err := e.el.Context(ctx).Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click failed: %w", err)
	}
	return nil
}

func (e *elementAdapter) Input(ctx context.Context, text string) error {
	if err := e.el.Context(ctx).Input(text); err != nil {
		return fmt.Errorf("input failed: %w", err)
	}
	return nil
}

// Type sends one key event per rune so autocomplete widgets see real
// keystrokes instead of a single input event.
func (e *elementAdapter) Type(ctx context.Context, text string) error {
	keys := make([]input.Key, 0, len(text))
	for _, r := range text {
		keys = append(keys, input.Key(r))
	}
	if err := e.el.Context(ctx).Type(keys...); err != nil {
		return fmt.Errorf("type failed: %w", err)
	}
	return nil
}

func (e *elementAdapter) Press(ctx context.Context, key browser.Key) error {
	k, ok := keyMap[key]
	if !ok {
		return fmt.Errorf("unsupported key %q", key)
	}
	if err := e.el.Context(ctx).Type(k); err != nil {
		return fmt.Errorf("press %s failed: %w", key, err)
	}
	return nil
}

// SelectByText picks the option whose visible text equals text, ignoring
// surrounding whitespace. Options that merely contain text do not match.
func (e *elementAdapter) SelectByText(ctx context.Context, text string) error {
	exact := `^\s*` + regexp.QuoteMeta(strings.TrimSpace(text)) + `\s*$`
	err := e.el.Context(ctx).Select([]string{exact}, true, rod.SelectorTypeRegex)
	if err == nil {
		return nil
	}
	var notFound *rod.ElementNotFoundError
	if errors.As(err, &notFound) {
		return fmt.Errorf("%w: %q", browser.ErrNoOption, text)
	}
	return fmt.Errorf("select %q failed: %w", text, err)
}

// Submit submits the form that owns the element, like pressing Enter in it.
func (e *elementAdapter) Submit(ctx context.Context) error {
	res, err := e.el.Context(ctx).Eval(`() => {
		const form = this.form || this.closest('form');
		if (!form) return false;
		if (form.requestSubmit) form.requestSubmit(); else form.submit();
		return true;
	}`)
	if err != nil {
		return fmt.Errorf("submit failed: %w", err)
	}
	if !res.Value.Bool() {
		return browser.ErrNoForm
	}
	return nil
}

func (e *elementAdapter) Text(ctx context.Context) (string, error) {
	text, err := e.el.Context(ctx).Text()
	if err != nil {
		return "", fmt.Errorf("read text failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

var keyMap = map[browser.Key]input.Key{
	browser.KeyTab:   input.Tab,
	browser.KeyEnter: input.Enter,
}
