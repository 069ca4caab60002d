package configfx

import (
	"os"
	"runtime"

	"github.com/spf13/pflag"
)

const (
	FlagConfig    = "config"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
)

func DefaultConfigFile() string {
	if runtime.GOOS == "windows" {
		return `C:\programdata\.fsgc.toml`
	}
	return "/etc/fsgc/fsgc.toml"
}

func PFlags() (*pflag.FlagSet, error) {
	return ParseFlags(os.Args[0], os.Args[1:])
}

// ParseFlags accepts the config path either as --config or as the only
// positional argument.
func ParseFlags(name string, args []string) (*pflag.FlagSet, error) {
	fs := pflag.NewFlagSet(name, pflag.ExitOnError)

	fs.StringP(FlagConfig, "c", DefaultConfigFile(), "The path of the config file in TOML format (env FSGC_CONFIG_PATH)")
	fs.String(FlagLogLevel, "info", "Log level: debug, info, warn, error")
	fs.String(FlagLogFormat, "text", "Log format: text or json")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return fs, nil
}
