// Package server initializes and runs the rashii application server. It
// wires configuration, storage, services, and the HTTP surface, and handles
// graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rashii/rashii/internal/logging"
	"github.com/rashii/rashii/internal/server/config"
	"github.com/rashii/rashii/internal/server/email"
	"github.com/rashii/rashii/internal/server/repositories/repomanager"
	"github.com/rashii/rashii/internal/server/services"
	"github.com/rashii/rashii/internal/server/users"
	"github.com/rashii/rashii/internal/server/web"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	web    *web.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	repos, err := repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	registry := users.NewRegistry(cfg.Users)
	sender := email.NewResendSender(cfg.ResendAPIKey)

	webServer := web.NewServer(web.Deps{
		Config:    cfg,
		Logger:    logger,
		Registry:  registry,
		DB:        repos.Conn(),
		Auth:      services.NewAuthService(registry),
		Promises:  services.NewPromiseService(repos.Promises()),
		Reminders: services.NewReminderService(repos.Reminders()),
		Credits:   services.NewCreditService(repos.Credits(), registry),
		Notes:     services.NewNoteService(repos.Notes()),
		Stats: services.NewStatsService(
			repos.Promises(), repos.Reminders(), repos.Credits(), repos.Notes(), logger),
		Dispatch: services.NewDispatchService(
			repos.Reminders(), sender, logger, cfg.EmailFrom, cfg.EmailTo),
	})

	return &App{config: cfg, logger: logger, repos: repos, web: webServer}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.web.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "closing db", "err", err)
	}
}
