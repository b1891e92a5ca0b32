// Package htmlclean strips a DOM snapshot down to the markup that matters
// when reading why a locator did not match: structure, classes, names and
// data attributes survive, scripts and styling do not.
package htmlclean

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

type Config struct {
	// DropTags are removed together with their subtree.
	DropTags []string
	// DropAttrs are removed by exact name. Event handlers (on*) always go.
	DropAttrs []string
	// CollapseClasses mark nodes the web client keeps in the DOM but hides.
	// Such a node keeps its own tag and attributes, loses its children and
	// is tagged data-snapshot="collapsed".
	CollapseClasses []string
	MaxOutputSize   int
	// KeepAttr, when set, is consulted before the built-in rules.
	KeepAttr func(attr html.Attribute) bool
}

// DefaultConfig is tuned for the Odoo 14 web client.
var DefaultConfig = Config{
	DropTags: []string{
		"script", "style", "noscript", "svg", "iframe",
		"link", "meta", "head", "title", "template",
	},
	DropAttrs: []string{
		"style", "srcset", "sizes", "loading", "decoding", "fetchpriority",
		"tabindex", "autocomplete", "spellcheck",
	},
	CollapseClasses: []string{"o_invisible_modifier", "o_hidden", "d-none"},
	MaxOutputSize:   512_000,
}

const truncatedNotice = "\n<!-- snapshot truncated -->"

// Clean parses rawHTML and returns the cleaned <body>. Input that does not
// parse, or has no body, comes back unchanged.
func Clean(rawHTML string, cfg *Config) string {
	if cfg == nil {
		cfg = &DefaultConfig
	}

	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return rawHTML
	}
	body := findBody(doc)
	if body == nil {
		return rawHTML
	}

	c := newCleaner(cfg)
	body.Attr = c.attrs(body.Attr)
	c.prune(body)

	var sb strings.Builder
	_ = html.Render(&sb, body)
	return truncate(sb.String(), cfg.MaxOutputSize)
}

type cleaner struct {
	keepAttr  func(html.Attribute) bool
	dropTags  map[string]bool
	dropAttrs map[string]bool
	collapse  map[string]bool
}

func newCleaner(cfg *Config) *cleaner {
	return &cleaner{
		keepAttr:  cfg.KeepAttr,
		dropTags:  set(cfg.DropTags),
		dropAttrs: set(cfg.DropAttrs),
		collapse:  set(cfg.CollapseClasses),
	}
}

func (c *cleaner) prune(n *html.Node) {
	var next *html.Node
	for child := n.FirstChild; child != nil; child = next {
		next = child.NextSibling

		switch {
		case child.Type == html.CommentNode:
			n.RemoveChild(child)
		case child.Type != html.ElementNode:
		case c.dropTags[child.Data]:
			n.RemoveChild(child)
		case c.collapsed(child):
			child.Attr = append(c.attrs(child.Attr), html.Attribute{Key: "data-snapshot", Val: "collapsed"})
			for child.FirstChild != nil {
				child.RemoveChild(child.FirstChild)
			}
		default:
			child.Attr = c.attrs(child.Attr)
			c.prune(child)
		}
	}
}

func (c *cleaner) collapsed(n *html.Node) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, class := range strings.Fields(a.Val) {
			if c.collapse[class] {
				return true
			}
		}
	}
	return false
}

// attrs filters in place.
func (c *cleaner) attrs(in []html.Attribute) []html.Attribute {
	out := in[:0]
	for _, a := range in {
		switch {
		case c.keepAttr != nil && c.keepAttr(a):
		case strings.HasPrefix(a.Key, "on"), c.dropAttrs[a.Key]:
			continue
		}
		out = append(out, a)
	}
	return out
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

// truncate cuts s to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + truncatedNotice
}

func set(items []string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, it := range items {
		m[it] = true
	}
	return m
}
