package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/openhired/jobboard/internal/config"
	"github.com/openhired/jobboard/internal/database"
	"github.com/openhired/jobboard/internal/dtos"
	"github.com/openhired/jobboard/internal/handlers"
	"github.com/openhired/jobboard/internal/httpapi"
	"github.com/openhired/jobboard/internal/mailer"
	"github.com/openhired/jobboard/internal/middleware"
	"github.com/openhired/jobboard/internal/repository"
	"github.com/openhired/jobboard/internal/services"
	"github.com/openhired/jobboard/internal/telemetry"
	"github.com/openhired/jobboard/internal/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := newLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("init telemetry", zap.Error(err))
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	logger.Info("database ready")

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Fatal("create upload dir", zap.Error(err))
	}

	if err := dtos.RegisterValidators(); err != nil {
		logger.Fatal("register validators", zap.Error(err))
	}

	users := repository.NewUserRepository(db)
	companies := repository.NewCompanyRepository(db)
	jobs := repository.NewJobRepository(db)
	applications := repository.NewApplicationRepository(db)

	tokens := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	mail := mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)

	userService := services.NewUserService(users, mail, tokens, logger)
	companyService := services.NewCompanyService(companies, jobs, applications, mail, logger)
	jobService := services.NewJobService(jobs, companies, applications, mail, logger)

	userHandler := handlers.NewUserHandler(userService, logger)
	companyHandler := handlers.NewCompanyHandler(companyService, logger)
	jobHandler := handlers.NewJobHandler(jobService, cfg.UploadDir, logger)

	auth := middleware.NewAuth(tokens, users)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPM)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpapi.NewRouter(cfg, logger, auth, rateLimiter, userHandler, companyHandler, jobHandler)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if err := tel.Shutdown(shutdownCtx); err != nil {
		logger.Error("telemetry shutdown", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
