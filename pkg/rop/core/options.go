package core

import (
	"context"
	"runtime"

	"go.uber.org/zap"
)

type OptionKey string

const (
	WorkerOptionKey OptionKey = "worker_options"
	LoggerOptionKey OptionKey = "logger_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

type LoggerOptions struct {
	Logger *zap.Logger
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

// DefaultWorkers is used when no worker options are set.
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

// Logger returns the context logger, or a no-op logger.
func Logger(ctx context.Context) *zap.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return zap.NewNop()
}
