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
	appHTTP "github.com/cmlabs-hris/employee-portal/internal/handler/http"
	"github.com/cmlabs-hris/employee-portal/internal/pkg/database"
	"github.com/cmlabs-hris/employee-portal/internal/pkg/logger"
	"github.com/cmlabs-hris/employee-portal/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/employee-portal/internal/service/attendance"
	employeeService "github.com/cmlabs-hris/employee-portal/internal/service/employee"
	statisticsService "github.com/cmlabs-hris/employee-portal/internal/service/statistics"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "api:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateAPI(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log := logger.New(os.Stdout, "employee-api", cfg.App.Env, cfg.SlogLevel())
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	statisticsRepo := postgresql.NewStatisticsRepository(db)

	withTx := func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, fn)
	}

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(withTx, attendanceRepo)
	statisticsSvc := statisticsService.NewStatisticsService(statisticsRepo)

	router := appHTTP.NewRouter(
		log,
		cfg.App.CORSAllowedOrigins,
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewStatisticsHandler(statisticsSvc),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("API server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		slog.Info("Shutting down API server")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
