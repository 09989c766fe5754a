package effectmodel

import "errors"

type EffectEnum string

const (
	EffectLog     EffectEnum = "effect_ive_stream_effect_enum_log"
	EffectBinding EffectEnum = "effect_ive_stream_effect_enum_binding"
	EffectLineIO  EffectEnum = "effect_ive_stream_effect_enum_lineio"
)

var (
	// ErrNoEffectHandler is returned when no handler is registered for an effect in the context.
	ErrNoEffectHandler = errors.New("no effect handler registered")

	// ErrHandlerClosed is returned when an effect is performed on a handler that has been torn down.
	ErrHandlerClosed = errors.New("effect handler closed")
)

type EffectScopeConfig struct {
	BufferSize int // default: 1
	NumWorkers int // default: 1
}

func NewEffectScopeConfig(bufferSize int, numWorkers int) EffectScopeConfig {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return EffectScopeConfig{
		BufferSize: bufferSize,
		NumWorkers: numWorkers,
	}
}

type Partitionable interface {
	PartitionKey() string
}
