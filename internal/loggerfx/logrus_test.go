package loggerfx

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxevent"
)

func TestConfigureLogger(t *testing.T) {
	logger := logrus.New()

	v := viper.New()
	v.Set(ConfigLogLevel, "debug")
	v.Set(ConfigLogFormat, "JSON")

	require.NoError(t, ConfigureLogger(logger, v))

	assert.Equal(t, logrus.DebugLevel, logger.Level)
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestConfigureLogger_Defaults(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.TraceLevel)

	require.NoError(t, ConfigureLogger(logger, viper.New()))

	assert.Equal(t, logrus.InfoLevel, logger.Level)
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestConfigureLogger_Failure(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{"unknown level", "loud", "text"},
		{"unknown format", "info", "yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := logrus.New()
			logger.SetLevel(logrus.WarnLevel)

			v := viper.New()
			v.Set(ConfigLogLevel, tt.level)
			v.Set(ConfigLogFormat, tt.format)

			assert.Error(t, ConfigureLogger(logger, v))
			assert.Equal(t, logrus.WarnLevel, logger.Level)
		})
	}
}

func TestEventLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	l := EventLogger(logger)

	l.LogEvent(&fxevent.Provided{ConstructorName: "configfx.PFlags()"})
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)

	l.LogEvent(&fxevent.Invoked{FunctionName: "loggerfx.ConfigureLogger()", Err: errors.New("boom")})
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "loggerfx.ConfigureLogger()", hook.LastEntry().Data["function"])

	hook.Reset()
	l.LogEvent(&fxevent.OnStopExecuted{FunctionName: "close"})
	assert.Nil(t, hook.LastEntry())
}
