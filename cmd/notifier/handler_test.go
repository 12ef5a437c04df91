package main

import (
	"context"
	"errors"
	"testing"

	mailermock "github.com/muhammadheryan/storefront/mocks/thirdparty/mailer"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/thirdparty/mailer"
	"github.com/muhammadheryan/storefront/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestAlertHandler(t *testing.T) {
	logger.Set(zap.NewNop())
	items := []model.LowStockItem{{ID: "i-1", Title: "Door gasket", Quantity: 1, ReorderPoint: 3}}
	msg := rabbitmq.LowStockAlertMessage{Items: items, Source: "digest"}

	tests := []struct {
		name    string
		sendErr error
		wantErr bool
	}{
		{name: "delivered"},
		{name: "mailbox not configured is dropped", sendErr: mailer.ErrNotConfigured},
		{name: "api failure requeues", sendErr: errors.New("mail api returned 503"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := mailermock.NewNotifier(t)
			notifier.On("SendLowStockAlert", mock.Anything, items).Return(tt.sendErr)

			err := newAlertHandler(notifier)(context.Background(), msg)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestWaitForStop(t *testing.T) {
	t.Run("lost subscription", func(t *testing.T) {
		done := make(chan error, 1)
		done <- rabbitmq.ErrDeliveryClosed

		assert.ErrorIs(t, waitForStop(context.Background(), done), rabbitmq.ErrDeliveryClosed)
	})

	t.Run("signal", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.NoError(t, waitForStop(ctx, make(chan error)))
	})

	t.Run("consumer finished cleanly", func(t *testing.T) {
		done := make(chan error)
		close(done)

		assert.NoError(t, waitForStop(context.Background(), done))
	})
}
