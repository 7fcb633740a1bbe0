package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"qr-dine/internal/config"
	"qr-dine/internal/connections/database"
	"qr-dine/internal/connections/rabbitmq"
	"qr-dine/internal/logger"
	"qr-dine/internal/notifier"
	"qr-dine/internal/repository"
	"qr-dine/internal/server"
	"qr-dine/internal/service"
)

func main() {
	mode := flag.String("mode", "server", "server | kitchen-notifier")
	prefetch := flag.Int("prefetch", 1, "kitchen-notifier: RabbitMQ prefetch")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch *mode {
	case "server":
		if err := runServer(ctx, cfg, log); err != nil {
			log.Fatal("server failed", zap.Error(err))
		}
	case "kitchen-notifier":
		if err := runNotifier(ctx, cfg, log, *prefetch); err != nil {
			log.Fatal("kitchen notifier failed", zap.Error(err))
		}
	default:
		fmt.Fprintln(os.Stderr, "--mode must be server or kitchen-notifier")
		os.Exit(2)
	}
}

func runServer(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()
	log.Info("postgres connected")

	// The kitchen fan-out is optional outside production: without a
	// broker orders are still taken, just not pushed to the kitchen.
	var queueClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		qc, err := rabbitmq.Dial(cfg.RabbitMQURL)
		if err == nil {
			err = qc.DeclareTopology()
		}
		switch {
		case err != nil && cfg.Env == "production":
			return fmt.Errorf("rabbitmq setup failed: %w", err)
		case err != nil:
			log.Warn("rabbitmq setup failed; continuing without kitchen fan-out", zap.Error(err))
		default:
			queueClient = qc
			defer qc.Close()
			log.Info("rabbitmq connected", zap.String("queue", rabbitmq.KitchenQueue))
		}
	}

	var publisher service.OrderPublisher
	if queueClient != nil {
		publisher = queueClient
	}

	svc := service.New(service.Deps{
		Repo:      repository.New(pool),
		Publisher: publisher,
		Logger:    log,
		JWTSecret: cfg.JWTSecret,
	})

	srv := server.New(cfg.HTTPAddr, server.NewRouter(svc, log, cfg))
	log.Info("service started", zap.String("addr", cfg.HTTPAddr))
	return srv.Run(ctx)
}

func runNotifier(ctx context.Context, cfg config.Config, log *zap.Logger, prefetch int) error {
	if cfg.RabbitMQURL == "" {
		return errors.New("RABBITMQ_URL is required for the kitchen notifier")
	}

	qc, err := rabbitmq.Dial(cfg.RabbitMQURL)
	if err != nil {
		return err
	}
	defer qc.Close()
	if err := qc.DeclareTopology(); err != nil {
		return err
	}

	return notifier.Run(ctx, qc, log, prefetch)
}
