package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/thirdparty/mailer"
	"github.com/muhammadheryan/storefront/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

// notifier drains the low stock alert queue into email.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, "storefront-notifier", cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	notifier := mailer.NewClient(cfg.Mail)

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		newAlertHandler(notifier))
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done, err := consumer.Start(ctx)
	if err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("notifier running")

	if err := waitForStop(ctx, done); err != nil {
		logger.Error("notifier lost its subscription", zap.Error(err))
		consumer.Close()
		logger.Close()
		os.Exit(1)
	}
	logger.Info("notifier stopped")
}

// waitForStop blocks until a signal (nil) or until the consumer gives up.
func waitForStop(ctx context.Context, done <-chan error) error {
	select {
	case <-ctx.Done():
		return nil
	case err, ok := <-done:
		if !ok {
			return nil
		}
		return err
	}
}
