package configkeys

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigEffectPrefix = ConfigPrefix + delimiter + "effect"

	ConfigEffectBindingPrefix = ConfigEffectPrefix + delimiter + "binding"

	ConfigEffectBindingHandlerPrefix     = ConfigEffectBindingPrefix + delimiter + "handler"
	ConfigEffectBindingHandlerBufferSize = ConfigEffectBindingHandlerPrefix + delimiter + "buffer_size"
	ConfigEffectBindingHandlerNumWorkers = ConfigEffectBindingHandlerPrefix + delimiter + "num_workers"

	ConfigEffectLogPrefix = ConfigEffectPrefix + delimiter + "log"

	ConfigEffectLogHandlerPrefix     = ConfigEffectLogPrefix + delimiter + "handler"
	ConfigEffectLogHandlerBufferSize = ConfigEffectLogHandlerPrefix + delimiter + "buffer_size"

	ConfigEffectLineIOPrefix = ConfigEffectPrefix + delimiter + "lineio"

	ConfigEffectLineIOHandlerPrefix     = ConfigEffectLineIOPrefix + delimiter + "handler"
	ConfigEffectLineIOHandlerBufferSize = ConfigEffectLineIOHandlerPrefix + delimiter + "buffer_size"
	// ConfigEffectLineIOMaxLineSize bounds the length of a single input line in bytes.
	ConfigEffectLineIOMaxLineSize = ConfigEffectLineIOPrefix + delimiter + "max_line_size"
	// ConfigEffectLineIOWriteAttempts bounds the retries of a short write.
	ConfigEffectLineIOWriteAttempts = ConfigEffectLineIOPrefix + delimiter + "write_attempts"
)
