package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderprocessing/cmd"
	httpadapter "orderprocessing/internal/adapters/in/http"
	"orderprocessing/internal/adapters/out/postgres"
	"orderprocessing/internal/pkg/logging"
	"orderprocessing/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run returns only after the scheduled jobs have been stopped.
func run() error {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(os.Stdout, configs.LogLevel, configs.LogFormat)

	db, err := postgres.Open(configs.DSN())
	if err != nil {
		return err
	}
	if err = postgres.Migrate(db); err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		return fmt.Errorf("build application: %w", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cmd.ServeHTTP(ctx, newWebServer(app), fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort), shutdownTimeout)
}

func newWebServer(app *cmd.CompositionRoot) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	server := httpadapter.NewServer(
		app.CreateProcessUserOrdersCommandHandler(),
		app.CreateGetUserOrdersQueryHandler(),
	)
	server.Register(e, metrics.Handler(app.MetricsRegistry()))

	return e
}
