package configfx

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/yurykabanov/fsgc/pkg/config"
)

const (
	EnvPrefix = "fsgc"

	ConfigPath      = "config"
	ConfigLogLevel  = "log.level"
	ConfigLogFormat = "log.format"
)

// ViperProvider resolves process level settings from flags and environment.
// The rules file itself is not read through viper: viper lower-cases keys and
// splits them on dots, which would mangle glob patterns.
func ViperProvider(flagSet *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		ConfigPath:      FlagConfig,
		ConfigLogLevel:  FlagLogLevel,
		ConfigLogFormat: FlagLogFormat,
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flagSet.Lookup(flag)); err != nil {
			return nil, err
		}
	}

	if err := v.BindEnv(ConfigPath, "FSGC_CONFIG_PATH"); err != nil {
		return nil, err
	}

	if flagSet.NArg() > 1 {
		return nil, errors.Errorf("Expected at most one config path, got %d arguments", flagSet.NArg())
	}
	if flagSet.NArg() == 1 {
		v.Set(ConfigPath, flagSet.Arg(0))
	}

	return v, nil
}

// ConfigProvider loads the rules file. Any error here is fatal: nothing must
// be deleted with a configuration we could not fully understand.
func ConfigProvider(v *viper.Viper, logger *logrus.Logger) (*config.Config, error) {
	path := v.GetString(ConfigPath)

	logger.WithField("path", path).Debug("Reading config file")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	logger.WithField("targets", len(cfg.Targets)).Debug("Config loaded")

	return cfg, nil
}
