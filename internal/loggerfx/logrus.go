package loggerfx

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	ConfigLogLevel  = "log.level"
	ConfigLogFormat = "log.format"

	FormatText = "text"
	FormatJSON = "json"
)

// Logger is shared by main so that failures to build the fx graph are still
// logged before the configured logger exists.
var logger = logrus.New()

func Logger() *logrus.Logger {
	return logger
}

// ConfigureLogger applies level and format settings. Unknown values abort
// startup: a run must not proceed with settings it silently ignored.
func ConfigureLogger(logger *logrus.Logger, v *viper.Viper) error {
	level := logrus.InfoLevel
	if s := v.GetString(ConfigLogLevel); s != "" {
		parsed, err := logrus.ParseLevel(s)
		if err != nil {
			return errors.Wrap(err, "Unable to configure logger")
		}
		level = parsed
	}

	var formatter logrus.Formatter
	switch format := strings.ToLower(v.GetString(ConfigLogFormat)); format {
	case "", FormatText:
		formatter = &logrus.TextFormatter{}
	case FormatJSON:
		formatter = &logrus.JSONFormatter{}
	default:
		return errors.Errorf("Unable to configure logger: unknown log format %q", format)
	}

	logger.SetLevel(level)
	logger.SetFormatter(formatter)

	return nil
}
