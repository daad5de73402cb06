package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alazar/finance-backend/internal/core/services"
	"github.com/alazar/finance-backend/internal/handlers"
	"github.com/alazar/finance-backend/internal/middleware"
	"github.com/alazar/finance-backend/internal/platform/config"
	"github.com/alazar/finance-backend/internal/platform/logging"
	"github.com/alazar/finance-backend/internal/repositories/jsonfile"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.Setup(cfg.IsProduction)

	docRepo := jsonfile.NewDocumentRepository(cfg.DataDir, logger)
	authRepo := jsonfile.NewAuthRepository(cfg.DataDir, logger)
	tokenRepo := jsonfile.NewTokenRepository(cfg.DataDir, logger)

	// Initialize the credential on first run and self-heal a corrupted
	// hash before the first login arrives.
	if _, err := authRepo.Load(context.Background()); err != nil {
		logger.Error("Failed to initialize auth record", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svc := services.NewContainer(docRepo, authRepo, tokenRepo)

	backups := services.NewBackupService(cfg.DataDir, cfg.BackupKeep, logger)
	if err := backups.Start(cfg.BackupSchedule); err != nil {
		logger.Error("Failed to start backup scheduler", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer backups.Stop()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.Metrics())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The front-end is served from another origin; mirror the legacy
	// allow-all CORS contract.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Authorization"},
		AllowCredentials: false,
	}))

	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		logger.Error("Invalid login rate limit", slog.String("error", err.Error()))
		os.Exit(1)
	}
	loginLimiter := limiter.New(memory.NewStore(), rate)

	handlers.RegisterRoutes(r, svc, middleware.RateLimit(loginLimiter))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		err := serve(srv, cfg, logger)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", slog.String("error", err.Error()))
	}
}

// serve starts HTTPS when the key and cert exist, falling back to plain
// HTTP for development otherwise.
func serve(srv *http.Server, cfg *config.Config, logger *slog.Logger) error {
	if fileExists(cfg.SSLKeyPath) && fileExists(cfg.SSLCertPath) {
		logger.Info("Server starting with TLS",
			slog.String("port", cfg.Port),
			slog.String("cert", cfg.SSLCertPath),
		)
		return srv.ListenAndServeTLS(cfg.SSLCertPath, cfg.SSLKeyPath)
	}

	logger.Warn("SSL certificates not found, starting plain HTTP server",
		slog.String("key", cfg.SSLKeyPath),
		slog.String("cert", cfg.SSLCertPath),
	)
	logger.Info("Server starting", slog.String("port", cfg.Port))
	return srv.ListenAndServe()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
