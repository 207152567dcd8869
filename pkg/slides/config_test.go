package slides

import (
	"os"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.LogLevel != "info" {
		t.Errorf("DefaultConfig LogLevel = %s, want info", config.LogLevel)
	}

	if config.MaxGroupDepth != 100 {
		t.Errorf("DefaultConfig MaxGroupDepth = %d, want 100", config.MaxGroupDepth)
	}

	if config.StrictMode {
		t.Errorf("DefaultConfig StrictMode = true, want false")
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		check   func(t *testing.T, config *Config)
	}{
		{
			name: "log level",
			envVars: map[string]string{
				"SLIDES_LOG_LEVEL": "debug",
			},
			check: func(t *testing.T, config *Config) {
				if config.LogLevel != "debug" {
					t.Errorf("LogLevel = %s, want debug", config.LogLevel)
				}
			},
		},
		{
			name: "max group depth",
			envVars: map[string]string{
				"SLIDES_MAX_GROUP_DEPTH": "20",
			},
			check: func(t *testing.T, config *Config) {
				if config.MaxGroupDepth != 20 {
					t.Errorf("MaxGroupDepth = %d, want 20", config.MaxGroupDepth)
				}
			},
		},
		{
			name: "strict mode",
			envVars: map[string]string{
				"SLIDES_STRICT_MODE": "true",
			},
			check: func(t *testing.T, config *Config) {
				if !config.StrictMode {
					t.Errorf("StrictMode = false, want true")
				}
			},
		},
		{
			name:    "defaults without environment",
			envVars: map[string]string{},
			check: func(t *testing.T, config *Config) {
				if config.LogLevel != "info" || config.MaxGroupDepth != 100 || config.StrictMode {
					t.Errorf("unexpected non-default config: %+v", config)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				os.Setenv(key, value)
				defer os.Unsetenv(key)
			}

			config := ConfigFromEnvironment()
			tt.check(t, config)
		})
	}
}

func TestConfigFromEnvironmentInvalidValue(t *testing.T) {
	os.Setenv("SLIDES_MAX_GROUP_DEPTH", "not a number")
	defer os.Unsetenv("SLIDES_MAX_GROUP_DEPTH")

	config := ConfigFromEnvironment()
	if config.MaxGroupDepth != 100 {
		t.Errorf("MaxGroupDepth = %d, want fallback to default 100", config.MaxGroupDepth)
	}
}

func TestSetGlobalConfig(t *testing.T) {
	original := GetGlobalConfig()
	defer SetGlobalConfig(original)

	custom := &Config{LogLevel: "error", MaxGroupDepth: 5, StrictMode: true}
	SetGlobalConfig(custom)

	got := GetGlobalConfig()
	if got.MaxGroupDepth != 5 || !got.StrictMode {
		t.Errorf("GetGlobalConfig = %+v, want %+v", got, custom)
	}
}
