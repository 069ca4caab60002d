package metricsfx

import (
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(TextfileConfigProvider),
	fx.Provide(TextfileRecorder),
)
