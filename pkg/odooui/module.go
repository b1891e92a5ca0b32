package odooui

import (
	"context"
	"fmt"
	"time"

	"odoo-steps/pkg/locator"

	"go.uber.org/zap"
)

const (
	appIconTimeout        = 1 * time.Second
	drawerTimeout         = 1 * time.Second
	moduleFallbackTimeout = 3 * time.Second
)

type SwitchState int

const (
	TryDirect SwitchState = iota
	TryDrawer
	TryDirectAgain
	TryDropdownFallback
	Found
	Failed
)

func (s SwitchState) String() string {
	switch s {
	case TryDirect:
		return "try-direct"
	case TryDrawer:
		return "try-drawer"
	case TryDirectAgain:
		return "try-direct-again"
	case TryDropdownFallback:
		return "try-dropdown-fallback"
	case Found:
		return "found"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("switch-state(%d)", int(s))
	}
}

// SwitchModule opens the app named module from the home menu, the apps
// drawer, or, failing both, the entry of the apps dropdown whose
// data-menu-xmlid contains module.
//
// Only the last tier can fail the call. WithTimeout applies to that tier;
// the probes before it keep their short waits.
func SwitchModule(ctx context.Context, s *Session, module string, opts ...Option) error {
	_, err := SwitchModuleTraced(ctx, s, module, opts...)
	return err
}

// SwitchModuleTraced is SwitchModule that also returns every state the
// switch went through, ending in Found or Failed.
func SwitchModuleTraced(ctx context.Context, s *Session, module string, opts ...Option) ([]SwitchState, error) {
	o := newCallOptions(moduleFallbackTimeout, opts)
	m := &moduleSwitch{
		s:        s,
		module:   module,
		fallback: o.timeout,
		log:      s.log().With(zap.String("module", module)),
	}
	err := m.run(ctx)
	return m.trace, err
}

type moduleSwitch struct {
	s        *Session
	module   string
	fallback time.Duration
	log      *zap.Logger

	trace []SwitchState
	err   error
}

func (m *moduleSwitch) run(ctx context.Context) error {
	state := TryDirect
	for {
		m.trace = append(m.trace, state)
		m.log.Debug("module switch", zap.Stringer("state", state))

		switch state {
		case TryDirect:
			state = m.next(m.clickAppIcon(ctx), Found, TryDrawer)
		case TryDrawer:
			m.openDrawer(ctx)
			state = TryDirectAgain
		case TryDirectAgain:
			state = m.next(m.clickAppIcon(ctx), Found, TryDropdownFallback)
		case TryDropdownFallback:
			if err := ResolveAndAct(ctx, m.s, moduleDropdownLocator(m.module), locator.Clickable, m.fallback, Click()); err != nil {
				m.err = fmt.Errorf("switch module %q: %w", m.module, err)
				state = Failed
			} else {
				state = Found
			}
		case Found:
			return nil
		case Failed:
			return m.err
		default:
			return fmt.Errorf("switch module %q: unexpected state %s", m.module, state)
		}
	}
}

func (m *moduleSwitch) next(ok bool, onOK, onFail SwitchState) SwitchState {
	if ok {
		return onOK
	}
	return onFail
}

// clickAppIcon swallows every failure; absence here is expected.
func (m *moduleSwitch) clickAppIcon(ctx context.Context) bool {
	err := ResolveAndAct(ctx, m.s, appIconLocator(m.module), locator.Clickable, appIconTimeout, Click())
	if err != nil {
		m.log.Debug("app icon not clicked", zap.Error(err))
		return false
	}
	return true
}

func (m *moduleSwitch) openDrawer(ctx context.Context) {
	err := ResolveAndAct(ctx, m.s, drawerToggleLocator, locator.Clickable, drawerTimeout, Click())
	if err != nil {
		m.log.Debug("drawer not opened", zap.Error(err))
	}
}
