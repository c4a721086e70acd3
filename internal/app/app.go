package app

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

	"github.com/Ares-Judda/Wang-Api/internal/config"
	"github.com/Ares-Judda/Wang-Api/internal/database"
	"github.com/Ares-Judda/Wang-Api/internal/handler"
	"github.com/Ares-Judda/Wang-Api/internal/middleware"
	"github.com/Ares-Judda/Wang-Api/internal/repository"
	"github.com/Ares-Judda/Wang-Api/internal/router"
	"github.com/Ares-Judda/Wang-Api/internal/service"
	"github.com/Ares-Judda/Wang-Api/internal/storage"
)

type App struct {
	server *http.Server
	db     *database.DB
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	uploads, err := storage.NewUploadStore(cfg.UploadRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize upload store: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	pool := db.Pool
	identityRepo := repository.NewIdentityRepository(pool)
	propertyRepo := repository.NewPropertyRepository(pool)
	faqRepo := repository.NewFAQRepository(pool)
	contractRepo := repository.NewContractRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	slog.Info("database ready")

	authService, err := service.NewAuthService(identityRepo,
		cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	userService := service.NewUserService(identityRepo)
	propertyService := service.NewPropertyService(propertyRepo)
	faqService := service.NewFAQService(faqRepo)
	rentalService := service.NewRentalService(contractRepo, paymentRepo)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	appRouter := router.New(cfg, authMiddleware, router.Handlers{
		Auth:     handler.NewAuthHandler(authService, uploads, cfg.MaxUploadSize),
		User:     handler.NewUserHandler(userService),
		Property: handler.NewPropertyHandler(propertyService, uploads, cfg.MaxUploadSize),
		FAQ:      handler.NewFAQHandler(faqService),
		Rental:   handler.NewRentalHandler(rentalService),
		Docs:     handler.NewDocsHandler(cfg.OpenAPIPath),
	}, uploads.Root(), db.Health)

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{server: server, db: db}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.db.Close()
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	a.db.Close()
	slog.Info("server stopped")
	return nil
}
