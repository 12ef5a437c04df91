package logger_test

import (
	"testing"

	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	require.NoError(t, logger.Init("production", "storefront-api", "warn"))
	assert.False(t, logger.Get().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Get().Core().Enabled(zapcore.WarnLevel))

	require.NoError(t, logger.Init("development", "storefront-api", ""))
	assert.True(t, logger.Get().Core().Enabled(zapcore.DebugLevel))

	assert.Error(t, logger.Init("production", "storefront-api", "chatty"))
}

func TestHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(zap.NewNop()) })

	logger.Info("[PlaceOrder] order placed", zap.String("order_number", "ORD-20240115-0001"))
	logger.Warn("[RateLimit] limiter unavailable")
	logger.Error("[Restock] increment", zap.String("error", "deadlock"))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "ORD-20240115-0001", entries[0].ContextMap()["order_number"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "[Restock] increment", entries[2].Message)
}
