package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/employee-portal/internal/config"
	"github.com/cmlabs-hris/employee-portal/internal/handler/web"
	"github.com/cmlabs-hris/employee-portal/internal/pkg/apiclient"
	"github.com/cmlabs-hris/employee-portal/internal/pkg/cron"
	"github.com/cmlabs-hris/employee-portal/internal/pkg/logger"
	"github.com/cmlabs-hris/employee-portal/internal/portal"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "portal:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidatePortal(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log := logger.New(os.Stdout, "employee-portal", cfg.App.Env, cfg.SlogLevel())
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := apiclient.New(cfg.Portal.APIBaseURL, time.Duration(cfg.Portal.APITimeoutSeconds)*time.Second)
	sessions := web.NewSessionStore(
		func() *portal.Page { return portal.NewPage(client) },
		time.Duration(cfg.Portal.SessionIdleMinutes)*time.Minute,
	)

	scheduler := cron.NewScheduler()
	if err := scheduler.AddJob("evict-idle-sessions", cfg.Portal.SessionEvictSchedule, sessions.Evict); err != nil {
		return err
	}
	if err := scheduler.Start(ctx); err != nil {
		return err
	}
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Portal.Port),
		Handler:           web.NewRouter(log, web.NewPortalHandler(sessions)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Portal listening", "addr", srv.Addr, "api_base_url", cfg.Portal.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		slog.Info("Shutting down portal")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
