package di

import (
	"context"
	"fmt"

	"odoo-steps/internal/infrastructure/logger"
	"odoo-steps/pkg/browser/rod"
	"odoo-steps/pkg/env"
	"odoo-steps/pkg/odooui"

	"go.uber.org/zap"
)

type Container struct {
	Settings env.Settings
	Logger   *zap.Logger
	LogPath  string
	Browser  *rod.BrowserAdapter
	Session  *odooui.Session
}

type Config struct {
	Settings env.Settings
	LogDir   string
	RunName  string
}

func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	log, logPath, err := logger.New(cfg.Settings.LogLevel, cfg.LogDir, cfg.RunName)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	browserCfg := rod.DefaultConfig()
	browserCfg.Headless = cfg.Settings.Headless
	browserCfg.SlowMotion = cfg.Settings.SlowMotion
	browserCfg.Timeout = cfg.Settings.Timeout
	b, err := rod.NewBrowserAdapter(ctx, browserCfg)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("failed to create browser: %w", err)
	}

	session := odooui.NewSession(b.Page(), odooui.Credentials{
		BaseURL:  cfg.Settings.URL,
		Username: cfg.Settings.Username,
		Password: cfg.Settings.Password,
	}, log)
	// ODOO_TIMEOUT_MS bounds page loads and any wait called without its own
	// timeout. Helpers with a fixed default keep it.
	if cfg.Settings.Timeout > 0 {
		session.DefaultTimeout = cfg.Settings.Timeout
	}

	return &Container{
		Settings: cfg.Settings,
		Logger:   log,
		LogPath:  logPath,
		Browser:  b,
		Session:  session,
	}, nil
}

func (c *Container) Close() {
	if c.Browser != nil {
		c.Browser.Close()
	}
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
}
