package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// syncBuffer adapts bytes.Buffer to zapcore.WriteSyncer for test capture.
type syncBuffer struct {
	bytes.Buffer
}

func (s *syncBuffer) Sync() error { return nil }

func TestInitialize(t *testing.T) {
	t.Run("ConsoleOutput", func(t *testing.T) {
		ResetForTest()
		defer ResetForTest()

		buf := &syncBuffer{}
		cfg := DefaultLoggerConfig()
		cfg.Level = "debug"
		Initialize(cfg, zapcore.Lock(buf))

		logger := GetLogger()
		require.NotNil(t, logger)
		logger.Info("movement synthesized")

		assert.Contains(t, buf.String(), "movement synthesized")
		assert.Contains(t, buf.String(), "neuromotor")
	})

	t.Run("JSONFormat", func(t *testing.T) {
		ResetForTest()
		defer ResetForTest()

		buf := &syncBuffer{}
		cfg := DefaultLoggerConfig()
		cfg.Format = "json"
		Initialize(cfg, zapcore.Lock(buf))

		GetLogger().Info("hello")
		assert.Contains(t, buf.String(), `"msg":"hello"`)
	})

	t.Run("InvalidLevelFallsBackToInfo", func(t *testing.T) {
		ResetForTest()
		defer ResetForTest()

		buf := &syncBuffer{}
		cfg := DefaultLoggerConfig()
		cfg.Level = "not-a-level"
		Initialize(cfg, zapcore.Lock(buf))

		GetLogger().Debug("should be suppressed")
		GetLogger().Info("should appear")

		assert.NotContains(t, buf.String(), "should be suppressed")
		assert.Contains(t, buf.String(), "should appear")
	})

	t.Run("SecondInitializeIsNoOp", func(t *testing.T) {
		ResetForTest()
		defer ResetForTest()

		first := &syncBuffer{}
		second := &syncBuffer{}
		Initialize(DefaultLoggerConfig(), zapcore.Lock(first))
		Initialize(DefaultLoggerConfig(), zapcore.Lock(second))

		GetLogger().Info("routed to first")
		assert.Contains(t, first.String(), "routed to first")
		assert.Empty(t, second.String())
	})
}

func TestGetLogger_FallbackBeforeInitialize(t *testing.T) {
	ResetForTest()
	defer ResetForTest()

	logger := GetLogger()
	require.NotNil(t, logger)
	assert.NotPanics(t, func() { logger.Info("fallback works") })
}

func TestSync(t *testing.T) {
	t.Run("UninitializedIsNoOp", func(t *testing.T) {
		ResetForTest()
		defer ResetForTest()
		assert.NotPanics(t, Sync)
	})

	t.Run("InitializedSyncs", func(t *testing.T) {
		ResetForTest()
		defer ResetForTest()

		Initialize(DefaultLoggerConfig(), zapcore.Lock(&syncBuffer{}))
		assert.NotPanics(t, Sync)
	})
}
