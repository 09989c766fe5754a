package log

import (
	"context"

	"github.com/on-the-ground/effect_ive_stream/effects"
	"github.com/on-the-ground/effect_ive_stream/effects/binding"
	"github.com/on-the-ground/effect_ive_stream/effects/configkeys"
	effectmodel "github.com/on-the-ground/effect_ive_stream/effects/internal/model"
	"go.uber.org/zap"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

// LogPayload is the payload structure for logging effect.
// It contains the log level, message string, and optional structured fields.
type LogPayload struct {
	Level   LogLevel
	Message string
	Fields  map[string]interface{}
}

// WithZapLogEffectHandler registers a fire-and-forget log effect handler using zap.Logger.
// The returned context includes the handler under the EffectLog enum.
// Logs are written by a single worker in the order they were performed.
// A bufferSize below 1 is read from the binding effect
// (configkeys.ConfigEffectLogHandlerBufferSize), defaulting to 1.
// The teardown function syncs the logger; the context it returns should be used afterwards.
func WithZapLogEffectHandler(
	ctx context.Context,
	bufferSize int,
	logger *zap.Logger,
) (context.Context, func() context.Context) {
	if bufferSize <= 0 {
		bufferSize = 1
		if n, err := binding.GetOrDefault(ctx, configkeys.ConfigEffectLogHandlerBufferSize, 1); err == nil {
			bufferSize = n
		}
	}
	return effects.WithFireAndForgetEffectHandler(
		ctx,
		bufferSize,
		effectmodel.EffectLog,
		func(ctx context.Context, payload LogPayload) {
			fields := make([]zap.Field, 0, len(payload.Fields))
			for k, v := range payload.Fields {
				fields = append(fields, zap.Any(k, v))
			}

			switch payload.Level {
			case LogInfo:
				logger.Info(payload.Message, fields...)
			case LogWarn:
				logger.Warn(payload.Message, fields...)
			case LogError:
				logger.Error(payload.Message, fields...)
			case LogDebug:
				logger.Debug(payload.Message, fields...)
			default:
				logger.Info(payload.Message, fields...)
			}
		},
		func() {
			// stdout and stderr report EINVAL on sync; nothing is lost
			_ = logger.Sync()
		},
	)
}

// LogEff performs a fire-and-forget log effect using the EffectLog handler in the context.
// It panics when no log handler is registered.
func LogEff(ctx context.Context, level LogLevel, msg string, fields map[string]interface{}) {
	_ = effects.FireAndForgetEffect(ctx, effectmodel.EffectLog, LogPayload{
		Level:   level,
		Message: msg,
		Fields:  fields,
	})
}

// TryLogEff is LogEff for code that may run without a log handler.
// The error wraps effects.ErrNoEffectHandler in that case.
func TryLogEff(ctx context.Context, level LogLevel, msg string, fields map[string]interface{}) error {
	return effects.TryFireAndForgetEffect(ctx, effectmodel.EffectLog, LogPayload{
		Level:   level,
		Message: msg,
		Fields:  fields,
	})
}
