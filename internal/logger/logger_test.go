package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
		AddSource:   false,
	}

	InitLoggerWithWriter(config, &buf)

	Info("plot planted", "plot_id", 3, "crop", "maize")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if logEntry["service"] != "test-service" {
		t.Errorf("Expected service=test-service, got %v", logEntry["service"])
	}
	if logEntry["version"] != "1.0.0" {
		t.Errorf("Expected version=1.0.0, got %v", logEntry["version"])
	}
	if logEntry["environment"] != "test" {
		t.Errorf("Expected environment=test, got %v", logEntry["environment"])
	}
	if logEntry["msg"] != "plot planted" {
		t.Errorf("Expected msg='plot planted', got %v", logEntry["msg"])
	}
	if logEntry["level"] != "INFO" {
		t.Errorf("Expected level=INFO, got %v", logEntry["level"])
	}
	if logEntry["crop"] != "maize" {
		t.Errorf("Expected crop=maize, got %v", logEntry["crop"])
	}
	if logEntry["plot_id"] != float64(3) {
		t.Errorf("Expected plot_id=3, got %v", logEntry["plot_id"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(NewConfig("warn", "text", "test-service", "dev", "test", false), &buf)

	Info("should be dropped")
	Warn("should be kept")

	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Errorf("Info message logged at warn level: %s", out)
	}
	if !strings.Contains(out, "should be kept") {
		t.Errorf("Warn message missing: %s", out)
	}
}

func TestRequestIDContext(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(NewConfig("info", "json", "test-service", "dev", "test", false), &buf)

	ctx := WithRequestID(context.Background(), "test-req-123")

	if requestID := GetRequestID(ctx); requestID != "test-req-123" {
		t.Errorf("Expected request_id=test-req-123, got %s", requestID)
	}

	FromContext(ctx).Info("scoped")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if logEntry["request_id"] != "test-req-123" {
		t.Errorf("Expected request_id in log entry, got %v", logEntry["request_id"])
	}

	if id := GetRequestID(context.Background()); id != "" {
		t.Errorf("Expected empty request id, got %s", id)
	}
}

func TestGenerateRequestID(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	if a == "" || a == b {
		t.Errorf("Expected distinct non-empty ids, got %q and %q", a, b)
	}
}

func TestLogLevelParsing(t *testing.T) {
	cases := map[string]string{
		"debug":   "DEBUG",
		"INFO":    "INFO",
		"warning": "WARN",
		"error":   "ERROR",
		"bogus":   "INFO",
	}
	for in, want := range cases {
		if got := (Config{Level: in}).LogLevel().String(); got != want {
			t.Errorf("LogLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestConfigDefaults(t *testing.T) {
	config := DefaultConfig()

	if config.ServiceName != DefaultServiceName {
		t.Errorf("Expected service name %s, got %s", DefaultServiceName, config.ServiceName)
	}
	if config.Level == "" {
		t.Error("Expected non-empty log level")
	}
	if config.Format == "" {
		t.Error("Expected non-empty format")
	}
}

func TestProductionConfig(t *testing.T) {
	config := ProductionConfig()

	if config.Format != "json" {
		t.Errorf("Expected JSON format in prod, got %s", config.Format)
	}
	if config.Level != "info" {
		t.Errorf("Expected info level in prod, got %s", config.Level)
	}
	if config.Environment != "prod" {
		t.Errorf("Expected prod environment, got %s", config.Environment)
	}
	if config.AddSource {
		t.Error("Expected AddSource=false in production")
	}
}

func TestDevelopmentConfig(t *testing.T) {
	config := DevelopmentConfig()

	if config.Format != "text" {
		t.Errorf("Expected text format in dev, got %s", config.Format)
	}
	if config.Level != "debug" {
		t.Errorf("Expected debug level in dev, got %s", config.Level)
	}
	if !config.AddSource {
		t.Error("Expected AddSource=true in development")
	}
}
