package odooui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"odoo-steps/internal/fsname"
	"odoo-steps/pkg/browser/htmlclean"

	"go.uber.org/zap"
)

// Capture lists the files written by CaptureFailure. A path is empty when
// that part could not be captured.
type Capture struct {
	ScreenshotPath string
	HTMLPath       string
}

// CaptureFailure saves a screenshot and a cleaned DOM snapshot of the
// current page under dir, named <timestamp>_<name>. It is meant for the
// after-step hook of a failed scenario and keeps going when one part fails.
func CaptureFailure(ctx context.Context, s *Session, dir, name string) (Capture, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Capture{}, fmt.Errorf("create capture dir: %w", err)
	}

	base := fsname.Timestamped(dir, name, "step", time.Now())
	log := s.log().With(zap.String("capture", base), zap.String("url", s.Page.CurrentURL()))

	var (
		c    Capture
		errs []error
	)

	if shot, err := s.Page.Screenshot(ctx); err != nil {
		errs = append(errs, err)
	} else {
		path := base + "." + shot.Format
		if err := os.WriteFile(path, shot.Data, 0o644); err != nil {
			errs = append(errs, fmt.Errorf("write screenshot: %w", err))
		} else {
			c.ScreenshotPath = path
		}
	}

	if raw, err := s.Page.HTML(ctx); err != nil {
		errs = append(errs, err)
	} else {
		path := base + ".html"
		if err := os.WriteFile(path, []byte(htmlclean.Clean(raw, nil)), 0o644); err != nil {
			errs = append(errs, fmt.Errorf("write html: %w", err))
		} else {
			c.HTMLPath = path
		}
	}

	err := errors.Join(errs...)
	if err != nil {
		log.Warn("failure capture incomplete", zap.Error(err))
	} else {
		log.Info("failure captured")
	}
	return c, err
}
