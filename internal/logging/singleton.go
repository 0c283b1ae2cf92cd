package logging

import "sync"

var (
	instance *Logger
	mu       sync.Mutex
)

// InitLogger initializes the global logger with the given configuration.
// Subsequent calls replace the previous instance.
func InitLogger(config *Config) error {
	mu.Lock()
	defer mu.Unlock()

	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	if instance != nil {
		instance.Close()
	}
	instance = logger
	return nil
}

// GetGlobalLogger returns the singleton logger instance.
// If InitLogger was never called, a default file-less configuration is used
// so library code and tests can always log.
func GetGlobalLogger() *Logger {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		logger, err := NewLogger(&Config{
			File:       "./logs/avers.log",
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     7,
		})
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
		instance = logger
	}

	return instance
}
