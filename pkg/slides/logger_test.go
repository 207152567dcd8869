package slides

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name           string
		level          LogLevel
		setupFunc      func(*Logger)
		expectedOutput []string
		notExpected    []string
	}{
		{
			name:  "debug level shows all messages",
			level: LogDebug,
			setupFunc: func(l *Logger) {
				l.Debug("debug message")
				l.Info("info message")
				l.Warn("warn message")
				l.Error("error message")
			},
			expectedOutput: []string{
				"[DEBUG]", "debug message",
				"[INFO]", "info message",
				"[WARN]", "warn message",
				"[ERROR]", "error message",
			},
		},
		{
			name:  "info level hides debug messages",
			level: LogInfo,
			setupFunc: func(l *Logger) {
				l.Debug("debug message")
				l.Info("info message")
			},
			expectedOutput: []string{"[INFO]", "info message"},
			notExpected:    []string{"[DEBUG]", "debug message"},
		},
		{
			name:  "warn level shows only warnings and errors",
			level: LogWarn,
			setupFunc: func(l *Logger) {
				l.Info("info message")
				l.Warn("warn message")
				l.Error("error message")
			},
			expectedOutput: []string{"[WARN]", "[ERROR]"},
			notExpected:    []string{"[INFO]"},
		},
		{
			name:  "off level shows nothing",
			level: LogOff,
			setupFunc: func(l *Logger) {
				l.Debug("debug message")
				l.Error("error message")
			},
			notExpected: []string{"[DEBUG]", "[ERROR]", "message"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.level)
			tt.setupFunc(logger)

			output := buf.String()
			for _, expected := range tt.expectedOutput {
				if !strings.Contains(output, expected) {
					t.Errorf("output missing %q:\n%s", expected, output)
				}
			}
			for _, notExpected := range tt.notExpected {
				if strings.Contains(output, notExpected) {
					t.Errorf("output unexpectedly contains %q:\n%s", notExpected, output)
				}
			}
		})
	}
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogInfo)

	logger.WithField("part", "ppt/slides/slide1.xml").Info("parsed slide")

	output := buf.String()
	if !strings.Contains(output, "part=ppt/slides/slide1.xml") {
		t.Errorf("output missing field: %s", output)
	}
	if !strings.Contains(output, "parsed slide") {
		t.Errorf("output missing message: %s", output)
	}

	// The original logger must not have gained the field.
	buf.Reset()
	logger.Info("plain message")
	if strings.Contains(buf.String(), "part=") {
		t.Errorf("WithField mutated the parent logger: %s", buf.String())
	}
}

func TestLoggerWithFieldsMulti(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogInfo).WithFields(Fields{
		"shape": "grpSp",
		"id":    7,
	})

	logger.Info("removed")

	output := buf.String()
	if !strings.Contains(output, "shape=grpSp") || !strings.Contains(output, "id=7") {
		t.Errorf("output missing fields: %s", output)
	}
}

func TestLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogError)

	logger.Info("hidden")
	logger.SetLevel(LogInfo)
	logger.Info("visible")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("message logged below threshold: %s", output)
	}
	if !strings.Contains(output, "visible") {
		t.Errorf("message missing after SetLevel: %s", output)
	}
}

func TestLoggerNilWriter(t *testing.T) {
	logger := NewLogger(nil, LogDebug)
	// Must not panic.
	logger.Info("goes nowhere")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", LogDebug},
		{"info", LogInfo},
		{"warn", LogWarn},
		{"error", LogError},
		{"off", LogOff},
		{"bogus", LogInfo},
		{"", LogInfo},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.input); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LogDebug, "DEBUG"},
		{LogInfo, "INFO"},
		{LogWarn, "WARN"},
		{LogError, "ERROR"},
		{LogOff, "OFF"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
