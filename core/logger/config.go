package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"debug"`
	// Format is the log encoding (console, json).
	Format string `mapstructure:"format" default:"console"`
}
