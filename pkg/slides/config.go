package slides

import (
	"sync"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration options for the slides library
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// MaxGroupDepth limits group nesting when building the shape tree of a
	// parsed slide, guarding against degenerate documents
	MaxGroupDepth int `envconfig:"MAX_GROUP_DEPTH" default:"100"`
	// StrictMode makes the deep copy of a group fail on unsupported shape
	// kinds instead of skipping them with a warning
	StrictMode bool `envconfig:"STRICT_MODE" default:"false"`
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	// Initialize global config from environment on first use
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:      "info",
		MaxGroupDepth: 100,
		StrictMode:    false,
	}
}

// ConfigFromEnvironment creates a configuration from SLIDES_* environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()
	if err := envconfig.Process("slides", config); err != nil {
		// Malformed environment values fall back to defaults
		return DefaultConfig()
	}
	return config
}

// GetGlobalConfig returns the current global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()
	if globalConfig == nil {
		return DefaultConfig()
	}
	return globalConfig
}

// SetGlobalConfig replaces the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	defer globalConfigMutex.Unlock()
	globalConfig = config
}
