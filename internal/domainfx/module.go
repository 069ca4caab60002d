package domainfx

import (
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(Filesystem),
	fx.Provide(LoadTargets),
	fx.Provide(ReportSinkConfigProvider),
	fx.Provide(OpenReportSink),
	fx.Invoke(CloseReportSink),
	fx.Provide(Reporter),
	fx.Provide(Collector),
)
