package logger_test

import (
	"testing"

	"ordering/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Run("builds development logger", func(t *testing.T) {
		l, err := logger.New("debug", "local")

		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zap.DebugLevel))
	})

	t.Run("builds production logger at requested level", func(t *testing.T) {
		l, err := logger.New("warn", logger.EnvProduction)

		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zap.InfoLevel))
		assert.True(t, l.Core().Enabled(zap.WarnLevel))
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := logger.New("loud", "local")

		require.Error(t, err)
	})
}

func TestComponent(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	logger.Component(zap.New(core), "reconcile_job").Info("tick")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "reconcile_job", logs.All()[0].ContextMap()["component"])
}
