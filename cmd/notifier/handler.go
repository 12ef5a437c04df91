package main

import (
	"context"
	"errors"

	"github.com/muhammadheryan/storefront/thirdparty/mailer"
	"github.com/muhammadheryan/storefront/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

// newAlertHandler sends each alert as one email. An unconfigured mailbox is
// not retryable, so those messages are acknowledged and dropped.
func newAlertHandler(notifier mailer.Notifier) rabbitmq.AlertHandler {
	return func(ctx context.Context, msg rabbitmq.LowStockAlertMessage) error {
		err := notifier.SendLowStockAlert(ctx, msg.Items)
		if errors.Is(err, mailer.ErrNotConfigured) {
			logger.Warn("[AlertHandler] dropping alert", zap.String("source", msg.Source), zap.String("error", err.Error()))
			return nil
		}
		return err
	}
}
