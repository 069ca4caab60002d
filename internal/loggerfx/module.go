package loggerfx

import (
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(Logger),
	fx.WithLogger(EventLogger),
	fx.Invoke(ConfigureLogger),
)
