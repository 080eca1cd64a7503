package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventregistration/config"
	_ "eventregistration/docs"
	"eventregistration/internal/adapters/auth"
	"eventregistration/internal/adapters/email"
	httpx "eventregistration/internal/delivery/http"
	"eventregistration/internal/delivery/http/controllers"
	"eventregistration/internal/delivery/http/middleware"
	"eventregistration/internal/repository/postgres"
	"eventregistration/internal/services"
	"eventregistration/migrations"
)

// @title Event Registration API
// @version 1.0
// @description Event type configuration management and registration messaging.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin JWT.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log := config.NewLogger(cfg.Environment)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	pingCtx, cancelPing := context.WithTimeout(context.Background(), cfg.ContextTimeout)
	if err := db.PingContext(pingCtx); err != nil {
		log.Warn("database not reachable at startup", "err", err)
	}
	cancelPing()
	if cfg.AutoMigrate {
		if err := postgres.Migrate(db, migrations.FS, log); err != nil {
			log.Error("migrate database", "err", err)
			os.Exit(1)
		}
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, log)
	if err != nil {
		log.Error("create mailer", "err", err)
		os.Exit(1)
	}

	// Repositories
	eventTypeRepo := postgres.NewEventTypeConfigRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	collectionRepo := postgres.NewTemplateCollectionRepository(db)
	actionRepo := postgres.NewActionConfigRepository(db)

	// Services
	metrics := services.NewDispatchMetrics(prometheus.DefaultRegisterer)
	courier := services.NewCourierManager(email.NewTemplateRenderer(), mailer, log, metrics)
	eventManager := services.NewEventManager(eventRepo, cfg.Email.DefaultReplyTo, cfg.EventMetaCacheTTL)
	messageAction := services.NewMessageAction(collectionRepo, actionRepo, eventManager, courier, log, metrics)
	actionService := services.NewMessageActionService(messageAction, actionRepo, collectionRepo, registrationRepo, cfg.ContextTimeout)
	eventTypeService := services.NewEventTypeConfigService(eventTypeRepo, log, cfg.ContextTimeout)

	// HTTP
	router := httpx.NewRouter(
		controllers.NewEventTypeConfigController(log, eventTypeService),
		controllers.NewActionController(log, actionService),
		middleware.RequireAuth(auth.NewJWTVerifier(cfg.JWTSecret), log),
		promhttp.Handler(),
	)
	handler := middleware.LoggingMiddleware(log, middleware.CORS(cfg.CORSAllowedOrigins, router))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.ContextTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.Port, "env", cfg.Environment, "email_provider", cfg.Email.Provider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "err", err)
		return
	}
	log.Info("shutdown complete")
}
