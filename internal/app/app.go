package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"

	"github.com/AdityaRaghav22/GYM-SAAS/database"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/auth"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/config"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/email"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/handlers"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/lifecycle"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/logger"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/middleware"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/repositories"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/routes"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/services"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/validator"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	logger.Info("connecting to database", "driver", cfg.Database.Driver)
	clock := clockwork.NewRealClock()
	gormDB, err := database.Open(cfg, clock)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(gormDB); err != nil {
			logger.Fatal("failed to migrate database", "error", err)
		}
		logger.Info("database schema migrated")
	}

	policy := PolicyFromConfig(cfg)
	serviceContainer := services.NewServiceContainer(policy, clock)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var worker *workers.MembershipWorker
	if cfg.Membership.SweepEnabled {
		worker = workers.NewMembershipWorker(
			gormDB,
			serviceContainer.MembershipService,
			repositories.NewGymRepository(),
			newMailer(cfg),
			policy,
			clock,
			cfg.Membership.SweepBatchSize,
		)
		if err := worker.Start(cfg.Membership.SweepSchedule); err != nil {
			logger.Fatal("failed to schedule membership sweep", "error", err)
		}
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           SetupRouter(cfg, gormDB, serviceContainer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	if worker != nil {
		worker.Stop(shutdownCtx)
	}
}

func PolicyFromConfig(cfg *config.Config) lifecycle.Policy {
	return lifecycle.NewPolicy(
		cfg.Membership.GraceDays,
		cfg.Membership.CancelGuardDays,
		cfg.Membership.MaxFutureStartDays,
	)
}

// SetupRouter builds the gin engine with middleware, handlers and routes.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, serviceContainer *services.ServiceContainer) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	appHandlers := initializeHandlers(serviceContainer)
	ginRouter := initializeGinRouter(gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers, auth.Config{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
	}, gormDB)

	return ginRouter
}

func initializeHandlers(s *services.ServiceContainer) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		GymHandler:        handlers.NewGymHandler(baseHandler, s.GymService),
		MemberHandler:     handlers.NewMemberHandler(baseHandler, s.MemberService, s.MembershipService, s.PaymentService),
		PlanHandler:       handlers.NewPlanHandler(baseHandler, s.PlanService, s.PaymentService),
		MembershipHandler: handlers.NewMembershipHandler(baseHandler, s.MembershipService, s.PaymentService),
		PaymentHandler:    handlers.NewPaymentHandler(baseHandler, s.PaymentService),
		AnalyticsHandler:  handlers.NewAnalyticsHandler(baseHandler, s.AnalyticsService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func newMailer(cfg *config.Config) email.Provider {
	if !cfg.Email.Enabled {
		logger.Info("email disabled, expiry digests will not be sent")
		return email.NoopProvider{}
	}

	provider := email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err := provider.Validate(); err != nil {
		logger.Warn("invalid email configuration, digests disabled", "error", err)
		return email.NoopProvider{}
	}
	return provider
}
