package appcontext

import (
	"context"

	"github.com/sirupsen/logrus"
)

type contextId int

const (
	runIdKeyId contextId = iota
	patternKeyId
)

func WithRunId(ctx context.Context, runId string) context.Context {
	return context.WithValue(ctx, runIdKeyId, runId)
}

func WithPattern(ctx context.Context, pattern string) context.Context {
	return context.WithValue(ctx, patternKeyId, pattern)
}

func RunIdFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	runId, _ := ctx.Value(runIdKeyId).(string)
	return runId
}

func LoggerFromContext(logger logrus.FieldLogger, ctx context.Context) logrus.FieldLogger {
	if ctx == nil {
		return logger
	}

	result := logger

	if ctxRunId, ok := ctx.Value(runIdKeyId).(string); ok && ctxRunId != "" {
		result = result.WithField("run_id", ctxRunId)
	}

	if ctxPattern, ok := ctx.Value(patternKeyId).(string); ok && ctxPattern != "" {
		result = result.WithField("pattern", ctxPattern)
	}

	return result
}
