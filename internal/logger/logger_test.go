package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaultLoggerIsNop(t *testing.T) {
	require.NotNil(t, Logger)
	assert.False(t, Logger.Desugar().Core().Enabled(zap.ErrorLevel))
}

func TestInitialize(t *testing.T) {
	t.Cleanup(func() {
		Logger = zap.NewNop().Sugar()
		JSONOutput = false
	})

	require.NoError(t, Initialize(false, false))
	assert.False(t, JSONOutput)
	assert.True(t, Logger.Desugar().Core().Enabled(zap.InfoLevel))
	assert.False(t, Logger.Desugar().Core().Enabled(zap.DebugLevel))

	require.NoError(t, Initialize(true, true))
	assert.True(t, JSONOutput)
	assert.True(t, Logger.Desugar().Core().Enabled(zap.DebugLevel))
}
