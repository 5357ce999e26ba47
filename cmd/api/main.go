package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"esupport-inventory/internal/config"
	"esupport-inventory/internal/database"
	"esupport-inventory/internal/handler"
	"esupport-inventory/internal/logger"
	"esupport-inventory/internal/notification"
	"esupport-inventory/internal/report"
	"esupport-inventory/internal/repository"
	"esupport-inventory/internal/router"
	"esupport-inventory/internal/service"
	notificationadapter "esupport-inventory/internal/service/notification"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	db, err := database.InitDB(cfg, zl)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			zl.Warn("failed to close database", zap.Error(err))
		}
	}()

	companyRepo := repository.NewCompanyRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	computerRepo := repository.NewComputerRepository(db)
	serviceActionRepo := repository.NewServiceActionRepository(db)

	notifier := notificationadapter.NewServiceAdapter(notification.NewNotifier(cfg.Notification, zl))

	h := handler.NewAdminHandler(handler.Dependencies{
		Companies:      service.NewCompanyService(companyRepo, zl),
		Employees:      service.NewEmployeeService(employeeRepo, companyRepo, zl),
		Computers:      service.NewComputerService(computerRepo, companyRepo, employeeRepo, zl),
		ServiceActions: service.NewServiceActionService(serviceActionRepo, computerRepo, notifier, zl),
		Report:         report.NewQuery(repository.NewReportRepository(db), zl),
	}, cfg.Admin, zl)

	server := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Port),
		Handler:        router.NewRouter(h, cfg, zl),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		zl.Info("starting server",
			zap.Int("port", cfg.Port),
			zap.Int("rate_limit_rps", cfg.Security.RateLimitRPS),
			zap.Int("rate_limit_burst", cfg.Security.RateLimitBurst),
			zap.Bool("cors", cfg.Security.EnableCORS),
			zap.Duration("request_timeout", cfg.Security.RequestTimeout),
			zap.Bool("notifications", cfg.Notification.Enabled()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-done:
	}

	zl.Info("server is shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Security.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zl.Error("server forced to shutdown", zap.Error(err))
		return nil
	}
	zl.Info("server exited gracefully")
	return nil
}
