// cmd/intake-server/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"waitlist-service/internal/common/aws"
	"waitlist-service/internal/common/config"
	"waitlist-service/internal/common/database"
	"waitlist-service/internal/common/logger"
	"waitlist-service/internal/common/observability"
	"waitlist-service/internal/intake/appid"
	"waitlist-service/internal/intake/export"
	"waitlist-service/internal/intake/notifier"
	"waitlist-service/internal/intake/ratelimit"
	"waitlist-service/internal/intake/recorder"
	"waitlist-service/internal/intake/relay"
	"waitlist-service/internal/server"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting intake server...")

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var rdb *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rdb, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return rdb.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer rdb.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init AWS notification clients ---
	var sesClient notifier.SESService
	var snsClient notifier.SNSService
	if cfg.Notifications.Email.Enabled {
		client, err := aws.NewSESClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("SES client initialization failed", zap.Error(err))
		}
		sesClient = client
	}
	if cfg.Notifications.SMS.Enabled {
		client, err := aws.NewSNSClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("SNS client initialization failed", zap.Error(err))
		}
		snsClient = client
	}

	// --- Recording surface ---
	surface := recorder.NewPostgresSurface(pg.GetDB())
	if err := surface.EnsureHeader(ctx); err != nil {
		zapLog.Fatal("recording surface initialization failed", zap.Error(err))
	}

	// --- Handlers ---
	var limiter *ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		limiter = ratelimit.New(rdb.GetClient(), cfg.RateLimit.Limit, time.Duration(cfg.RateLimit.Window)*time.Second)
	}

	relayHandler := relay.NewHandler(&relay.Config{
		RecorderURL: cfg.Relay.RecorderURL,
		Timeout:     config.GetDuration(cfg.Relay.Timeout),
	}, limiter, log)

	notifierService := notifier.NewService(&notifier.Config{
		EmailEnabled: cfg.Notifications.Email.Enabled,
		SMSEnabled:   cfg.Notifications.SMS.Enabled,
		FromEmail:    cfg.Notifications.Email.FromEmail,
		AdminEmail:   cfg.Club.AdminEmail,
		AdminPhone:   cfg.Club.AdminPhone,
		ClubName:     cfg.Club.Name,
		Tagline:      cfg.Club.Tagline,
		MaxMembers:   cfg.Club.MaxMembers,
		ResponseTime: cfg.Club.ResponseTime,
		Timeout:      config.GetDuration(cfg.Recorder.Timeout),
	}, sesClient, snsClient, log)

	recorderHandler := recorder.NewHandler(&recorder.Config{
		StrictSchema: cfg.Recorder.StrictSchema,
		Timeout:      config.GetDuration(cfg.Recorder.Timeout),
	}, surface, appid.NewGenerator(cfg.Club.IDPrefix), notifierService, log)

	exportHandler := export.NewHandler(&cfg.Export, surface, log)

	srv := server.New(&cfg.Server, server.Handlers{
		Relay:    relayHandler.Handle,
		Recorder: recorderHandler.Handle,
		Export:   exportHandler.Handle,
	}, obs, pg, rdb, log)

	go func() {
		if err := srv.Start(); err != nil {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("server shutdown error", zap.Error(err))
	}

	zapLog.Info("Intake server stopped gracefully")
}
