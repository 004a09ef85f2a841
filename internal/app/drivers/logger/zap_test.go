package logger

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func newLoggerConfigs(env, level, version string) (*config.DriverConfig, *config.InternalConfig) {
	driverConfig := &config.DriverConfig{}
	driverConfig.Logger.Level = level
	driverConfig.Logger.OutputFileName = "app.log"
	driverConfig.Logger.OutputErrorFileName = "app-error.log"

	internalConfig := &config.InternalConfig{}
	internalConfig.App.Env = env
	internalConfig.App.Version = version
	return driverConfig, internalConfig
}

func TestNewZapConfig(t *testing.T) {
	t.Run("Lines carry the service identity", func(t *testing.T) {
		cfg := newZapConfig(newLoggerConfigs("staging", "warn", "1.4.0"))

		assert.Equal(t, constvars.AppServiceName, cfg.InitialFields[constvars.LoggingServiceKey])
		assert.Equal(t, "staging", cfg.InitialFields[constvars.LoggingEnvKey])
		assert.Equal(t, "1.4.0", cfg.InitialFields[constvars.LoggingVersionKey])
		assert.Equal(t, zapcore.WarnLevel, cfg.Level.Level())
		assert.Equal(t, "json", cfg.Encoding)
	})

	t.Run("Empty version is omitted", func(t *testing.T) {
		cfg := newZapConfig(newLoggerConfigs("development", "debug", ""))

		_, ok := cfg.InitialFields[constvars.LoggingVersionKey]
		assert.False(t, ok)
		assert.Equal(t, zapcore.DebugLevel, cfg.Level.Level())
	})

	t.Run("Development logs to stdout without sampling", func(t *testing.T) {
		cfg := newZapConfig(newLoggerConfigs("development", "info", ""))

		assert.True(t, cfg.Development)
		assert.Nil(t, cfg.Sampling)
		assert.Equal(t, []string{"stdout"}, cfg.OutputPaths)
		assert.Equal(t, []string{"stderr"}, cfg.ErrorOutputPaths)
	})

	t.Run("Production logs to the configured files with sampling", func(t *testing.T) {
		cfg := newZapConfig(newLoggerConfigs("production", "info", "2.0.0"))

		assert.False(t, cfg.Development)
		require.NotNil(t, cfg.Sampling)
		assert.Equal(t, []string{"app.log"}, cfg.OutputPaths)
		assert.Equal(t, []string{"stderr", "app-error.log"}, cfg.ErrorOutputPaths)
	})

	t.Run("Unknown level falls back to info", func(t *testing.T) {
		cfg := newZapConfig(newLoggerConfigs("development", "verbose", ""))

		assert.Equal(t, zapcore.InfoLevel, cfg.Level.Level())
	})
}
