package domainfx

import (
	"github.com/yurykabanov/fsgc/pkg/config"
	"github.com/yurykabanov/fsgc/pkg/domain"
	"github.com/yurykabanov/fsgc/pkg/fsys"
)

func Filesystem() domain.Filesystem {
	return fsys.New()
}

// LoadTargets builds one target per configured rule, keeping the order of
// the config file.
func LoadTargets(cfg *config.Config, fs domain.Filesystem) []*domain.Target {
	targets := make([]*domain.Target, 0, len(cfg.Targets))

	for _, t := range cfg.Targets {
		targets = append(targets, domain.NewTarget(t.Pattern, t.Rule.Rule(), fs))
	}

	return targets
}
