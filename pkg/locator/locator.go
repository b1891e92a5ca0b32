// Package locator builds the structural queries used to find nodes in the
// Odoo web client.
//
// Caller text never reaches a query unescaped: every template goes through
// Literal, which renders any Go string as a valid XPath 1.0 string literal.
package locator

import (
	"fmt"
	"strings"
)

type Strategy int

const (
	XPath Strategy = iota
	CSS
)

func (s Strategy) String() string {
	switch s {
	case XPath:
		return "xpath"
	case CSS:
		return "css"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Locator is a query identifying zero or more nodes of the current document.
type Locator struct {
	Strategy Strategy
	Query    string
}

func (l Locator) String() string {
	return l.Strategy.String() + "=" + l.Query
}

// Readiness is the condition a resolved node must satisfy before an action
// runs. Each value implies the ones before it.
type Readiness int

const (
	Present Readiness = iota
	Visible
	Clickable
)

func (r Readiness) String() string {
	switch r {
	case Present:
		return "present"
	case Visible:
		return "visible"
	case Clickable:
		return "clickable"
	default:
		return fmt.Sprintf("readiness(%d)", int(r))
	}
}

// X returns an XPath locator. Use Xf when caller text is involved.
func X(query string) Locator {
	return Locator{Strategy: XPath, Query: query}
}

// CSSSelector wraps an opaque CSS selector supplied by the caller.
func CSSSelector(selector string) Locator {
	return Locator{Strategy: CSS, Query: strings.TrimSpace(selector)}
}

// Xf formats an XPath template. Every argument is rendered with Literal, so
// templates must use %s where a string literal belongs, without quotes:
//
//	Xf("//input[@name=%s]", name)
func Xf(template string, args ...string) Locator {
	lits := make([]any, len(args))
	for i, a := range args {
		lits[i] = Literal(a)
	}
	return X(fmt.Sprintf(template, lits...))
}

// Literal renders s as an XPath 1.0 string literal.
//
// XPath 1.0 has no escape sequences, so a string holding both quote kinds is
// split on single quotes and rebuilt with concat().
func Literal(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}

	parts := strings.Split(s, "'")
	var b strings.Builder
	b.WriteString("concat(")
	for i, p := range parts {
		if i > 0 {
			b.WriteString(`, "'", `)
		}
		b.WriteString("'")
		b.WriteString(p)
		b.WriteString("'")
	}
	b.WriteString(")")
	return b.String()
}
