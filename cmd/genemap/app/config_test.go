package app

import (
	"os"
	"testing"

	"github.com/neurocrista/genemap/pkg/constants"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	// Verify defaults are set
	// Note: LogLevel may be empty (triggers precedence logic in logger.go)
	// LogFormat should have a default
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
	if config.CacheDir == "" {
		t.Error("CacheDir not set to default")
	}
	if config.StorePath == "" {
		t.Error("StorePath not set to default")
	}
}

// TestConfig_Defaults verifies the documented default paths.
func TestConfig_Defaults(t *testing.T) {
	// Save original env
	oldCache := os.Getenv("CACHE_DIR")
	oldStore := os.Getenv("STORE_PATH")
	defer func() {
		os.Setenv("CACHE_DIR", oldCache)
		os.Setenv("STORE_PATH", oldStore)
	}()

	os.Unsetenv("CACHE_DIR")
	os.Unsetenv("STORE_PATH")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.CacheDir != constants.DefaultCacheDir {
		t.Errorf("CacheDir = %s, want %s", config.CacheDir, constants.DefaultCacheDir)
	}
	if config.StorePath != constants.DefaultSnapshotDB {
		t.Errorf("StorePath = %s, want %s", config.StorePath, constants.DefaultSnapshotDB)
	}
}

// TestConfig_EnvironmentVariables verifies environment variable loading.
func TestConfig_EnvironmentVariables(t *testing.T) {
	// Save original env
	oldVerbose := os.Getenv("VERBOSE")
	oldOutput := os.Getenv("OUTPUT")
	defer func() {
		os.Setenv("VERBOSE", oldVerbose)
		os.Setenv("OUTPUT", oldOutput)
	}()

	// Set test environment variables
	os.Setenv("VERBOSE", "true")
	os.Setenv("OUTPUT", "json")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if !config.Verbose {
		t.Error("VERBOSE environment variable not loaded")
	}
	if config.Output != "json" {
		t.Errorf("OUTPUT = %s, want json", config.Output)
	}
}

// TestConfig_Paths verifies cache dir and store path configuration.
func TestConfig_Paths(t *testing.T) {
	// Save original env
	oldCache := os.Getenv("CACHE_DIR")
	oldStore := os.Getenv("STORE_PATH")
	defer func() {
		os.Setenv("CACHE_DIR", oldCache)
		os.Setenv("STORE_PATH", oldStore)
	}()

	// Set test values
	os.Setenv("CACHE_DIR", "/tmp/genemap-cache")
	os.Setenv("STORE_PATH", "/tmp/genemap.db")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.CacheDir != "/tmp/genemap-cache" {
		t.Errorf("CacheDir = %s, want /tmp/genemap-cache", config.CacheDir)
	}
	if config.StorePath != "/tmp/genemap.db" {
		t.Errorf("StorePath = %s, want /tmp/genemap.db", config.StorePath)
	}
}

// TestConfig_Concurrency verifies merge worker configuration.
func TestConfig_Concurrency(t *testing.T) {
	// Save original env
	oldConcurrency := os.Getenv("CONCURRENCY")
	defer os.Setenv("CONCURRENCY", oldConcurrency)

	os.Setenv("CONCURRENCY", "8")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.Concurrency != 8 {
		t.Errorf("Concurrency = %d, want 8", config.Concurrency)
	}
}

// TestConfig_BooleanFlags verifies boolean flag parsing.
func TestConfig_BooleanFlags(t *testing.T) {
	tests := []struct {
		name     string
		envVar   string
		envValue string
		check    func(*Config) bool
		want     bool
	}{
		{
			name:     "NoColor",
			envVar:   "NO_COLOR",
			envValue: "1",
			check:    func(c *Config) bool { return c.NoColor },
			want:     true,
		},
		{
			name:     "Quiet",
			envVar:   "QUIET",
			envValue: "true",
			check:    func(c *Config) bool { return c.Quiet },
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Save and restore env
			old := os.Getenv(tt.envVar)
			defer os.Setenv(tt.envVar, old)

			os.Setenv(tt.envVar, tt.envValue)

			config, err := LoadConfig()
			if err != nil {
				t.Fatalf("LoadConfig() failed: %v", err)
			}

			got := tt.check(config)
			if got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

// TestConfig_LoggingOptions verifies logging configuration.
func TestConfig_LoggingOptions(t *testing.T) {
	// Save original env
	oldLevel := os.Getenv("LOG_LEVEL")
	oldFormat := os.Getenv("LOG_FORMAT")
	oldOutput := os.Getenv("LOG_OUTPUT")
	defer func() {
		os.Setenv("LOG_LEVEL", oldLevel)
		os.Setenv("LOG_FORMAT", oldFormat)
		os.Setenv("LOG_OUTPUT", oldOutput)
	}()

	// Set test values
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	os.Setenv("LOG_OUTPUT", "stdout")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", config.LogLevel)
	}
	if config.LogFormat != "json" {
		t.Errorf("LogFormat = %s, want json", config.LogFormat)
	}
	if config.LogOutput != "stdout" {
		t.Errorf("LogOutput = %s, want stdout", config.LogOutput)
	}
}

// TestConfig_UpdateFromFlags verifies flag values take precedence.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{
		Output:   "table",
		LogLevel: "info",
	}

	config.UpdateFromFlags(true, false, true, "yaml", "debug")

	if !config.Verbose {
		t.Error("Verbose not updated from flags")
	}
	if !config.NoColor {
		t.Error("NoColor not updated from flags")
	}
	if config.Output != "yaml" {
		t.Errorf("Output = %s, want yaml", config.Output)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", config.LogLevel)
	}

	// Empty flag values leave existing settings alone
	config.UpdateFromFlags(false, false, false, "", "")
	if config.Output != "yaml" {
		t.Errorf("empty output flag overwrote Output, got %s", config.Output)
	}
	if config.LogLevel != "debug" {
		t.Errorf("empty log-level flag overwrote LogLevel, got %s", config.LogLevel)
	}
}
