package odooui

import (
	"context"
	"fmt"
	"time"

	"odoo-steps/pkg/locator"
)

const treeHeaderTimeout = 10 * time.Second

// FirstFieldsFromTreeView returns the text of the second cell of every row
// of the current list view, in row order. The first cell is the selection
// checkbox. The table is read immediately, without waiting.
func FirstFieldsFromTreeView(ctx context.Context, s *Session) ([]string, error) {
	texts, err := ReadAll(ctx, s, treeFirstFields)
	if err != nil {
		return nil, fmt.Errorf("read tree view: %w", err)
	}
	return texts, nil
}

// IsTreeViewByColumnName reports whether the current view is a list view
// whose second column header contains columnName. A header that never shows
// up within the wait is false, not an error.
func IsTreeViewByColumnName(ctx context.Context, s *Session, columnName string, opts ...Option) (bool, error) {
	o := newCallOptions(treeHeaderTimeout, opts)
	ok, err := Exists(ctx, s, columnHeaderLocator(columnName), locator.Present, o.timeout)
	if err != nil {
		return false, fmt.Errorf("is tree view by column %q: %w", columnName, err)
	}
	return ok, nil
}
