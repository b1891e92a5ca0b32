// Command odoo-smoke logs into an Odoo instance and walks a few screens, as
// a quick check that an instance and the step helpers agree on the markup.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"odoo-steps/internal/di"
	"odoo-steps/pkg/env"
	"odoo-steps/pkg/odooui"

	"go.uber.org/zap"
)

func main() {
	var (
		module   = flag.String("module", "", "module to switch to after login, e.g. sale")
		menu     = flag.String("menu", "", "menu path to open, e.g. Sales/Orders")
		column   = flag.String("column", "", "expected second column of the resulting list view")
		headless = flag.Bool("headless", true, "run the browser headless")
		envDir   = flag.String("env-dir", ".", "directory holding .env files")
		logDir   = flag.String("log-dir", "log", "directory for JSON run logs, empty to disable")
		capture  = flag.String("capture-dir", "failures", "directory for failure screenshots")
	)
	flag.Parse()

	envService, err := env.NewEnvService(*envDir)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}
	settings := envService.Settings()
	settings.Headless = *headless

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	container, err := di.NewContainer(ctx, di.Config{
		Settings: settings,
		LogDir:   *logDir,
		RunName:  "smoke_" + *module,
	})
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer container.Close()

	logger := container.Logger.With(zap.String("url", settings.URL), zap.String("app_env", envService.AppEnv()))

	if err := run(ctx, container.Session, *module, *menu, *column); err != nil {
		logger.Error("smoke run failed", zap.Error(err))
		if c, cerr := odooui.CaptureFailure(ctx, container.Session, *capture, "smoke"); cerr == nil {
			logger.Info("failure captured", zap.String("screenshot", c.ScreenshotPath), zap.String("html", c.HTMLPath))
		}
		container.Close()
		os.Exit(1)
	}
	logger.Info("smoke run passed", zap.String("log", container.LogPath))
}

func run(ctx context.Context, s *odooui.Session, module, menu, column string) error {
	if err := odooui.Login(ctx, s); err != nil {
		return err
	}

	if module != "" {
		trace, err := odooui.SwitchModuleTraced(ctx, s, module)
		s.Logger.Info("module switch", zap.String("module", module), zap.Any("trace", traceNames(trace)))
		if err != nil {
			return err
		}
	}

	if menu != "" {
		parts := strings.SplitN(menu, "/", 2)
		if len(parts) != 2 {
			return fmt.Errorf("menu %q: want Menu/Submenu", menu)
		}
		if err := odooui.NavigateMenu(ctx, s, parts[0], parts[1]); err != nil {
			return err
		}
	}

	if column != "" {
		ok, err := odooui.IsTreeViewByColumnName(ctx, s, column)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no list view with second column %q", column)
		}
		rows, err := odooui.FirstFieldsFromTreeView(ctx, s)
		if err != nil {
			return err
		}
		for _, r := range rows {
			fmt.Println(r)
		}
	}
	return nil
}

func traceNames(trace []odooui.SwitchState) []string {
	names := make([]string, len(trace))
	for i, st := range trace {
		names[i] = st.String()
	}
	return names
}
