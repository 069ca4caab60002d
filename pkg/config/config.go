package config

import (
	"io/ioutil"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	DefaultHeader      = "---[%x %X]---"
	DefaultErrorPrefix = "\terror: "
)

type Options struct {
	// Report destination, stderr when empty
	LogFile string `toml:"log-file"`

	// Truncate the report file on start instead of appending to it
	OverwriteLogs bool `toml:"overwrite-logs"`

	// strftime pattern written once per run
	Header string `toml:"header"`

	ErrorPrefix string `toml:"error-prefix"`

	// Rotation of the report file, in megabytes; 0 means 100
	LogMaxSize    int `toml:"log-max-size"`
	LogMaxBackups int `toml:"log-max-backups"`

	// Prometheus textfile written after every run, disabled when empty
	MetricsFile string `toml:"metrics-file"`
}

func DefaultOptions() Options {
	return Options{
		Header:      DefaultHeader,
		ErrorPrefix: DefaultErrorPrefix,
	}
}

type Target struct {
	Pattern string
	Rule    RuleSpec
}

type Config struct {
	Options Options

	// In the order they appear in the file
	Targets []Target
}

type file struct {
	Options Options                `toml:"options"`
	Rules   map[string]interface{} `toml:"rules"`
}

func Load(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to read %s", path)
	}

	return Parse(string(data))
}

func Parse(data string) (*Config, error) {
	f := file{Options: DefaultOptions()}

	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, errors.Wrap(err, "Malformed TOML file")
	}

	// rule bodies validate their own fields
	for _, key := range md.Undecoded() {
		if len(key) > 0 && key[0] == "rules" {
			continue
		}
		return nil, errors.Errorf("Unknown field %q", key.String())
	}

	if f.Options.LogMaxSize < 0 || f.Options.LogMaxBackups < 0 {
		return nil, errors.New("Log rotation limits must not be negative")
	}

	config := &Config{Options: f.Options}
	seen := make(map[string]bool, len(f.Rules))

	// dotted keys like `foo.log = "1d"` only show up as deeper keys
	for _, key := range md.Keys() {
		if len(key) < 2 || key[0] != "rules" || seen[key[1]] {
			continue
		}

		pattern := key[1]
		seen[pattern] = true

		var rule RuleSpec
		if err := rule.UnmarshalTOML(f.Rules[pattern]); err != nil {
			return nil, errors.Wrapf(err, "Invalid rule for %q", pattern)
		}

		config.Targets = append(config.Targets, Target{Pattern: pattern, Rule: rule})
	}

	if len(seen) != len(f.Rules) {
		return nil, errors.Errorf("Unable to order rules: %d decoded, %d found", len(f.Rules), len(seen))
	}

	return config, nil
}
