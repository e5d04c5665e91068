package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("VITRINE_SERVER_PORT")
		os.Unsetenv("VITRINE_SERVER_ENVIRONMENT")
		os.Unsetenv("VITRINE_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("VITRINE_CATALOG_BASE_URL")
		os.Unsetenv("VITRINE_CATALOG_TIMEOUT")
		os.Unsetenv("VITRINE_CATALOG_RETRY_COUNT")
		os.Unsetenv("VITRINE_CATALOG_REQUESTS_PER_SECOND")
		os.Unsetenv("VITRINE_CACHE_TYPE")
		os.Unsetenv("VITRINE_CACHE_REDIS_URL")
		os.Unsetenv("VITRINE_CACHE_TTL")
		os.Unsetenv("VITRINE_RATELIMIT_PER_IP")
		os.Unsetenv("VITRINE_NAVIGATION_TRANSITION_DELAY")
		os.Unsetenv("VITRINE_LOG_LEVEL")
		os.Unsetenv("VITRINE_LOG_FORMAT")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Catalog.BaseURL != "http://localhost:5000" {
			t.Errorf("Catalog.BaseURL = %s, want http://localhost:5000", cfg.Catalog.BaseURL)
		}
		if cfg.Catalog.Timeout != 10*time.Second {
			t.Errorf("Catalog.Timeout = %v, want 10s", cfg.Catalog.Timeout)
		}
		if cfg.Catalog.RetryCount != 2 {
			t.Errorf("Catalog.RetryCount = %d, want 2", cfg.Catalog.RetryCount)
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != 5*time.Minute {
			t.Errorf("Cache.TTL = %v, want 5m", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 120 {
			t.Errorf("RateLimit.PerIP = %d, want 120", cfg.RateLimit.PerIP)
		}
		if cfg.Navigation.TransitionDelay != 200*time.Millisecond {
			t.Errorf("Navigation.TransitionDelay = %v, want 200ms", cfg.Navigation.TransitionDelay)
		}
		if cfg.Log.Level != "info" {
			t.Errorf("Log.Level = %s, want info", cfg.Log.Level)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("VITRINE_SERVER_PORT", "9090")
		os.Setenv("VITRINE_SERVER_ENVIRONMENT", "production")
		os.Setenv("VITRINE_CATALOG_BASE_URL", "https://catalogo.example.com")
		os.Setenv("VITRINE_CATALOG_TIMEOUT", "3s")
		os.Setenv("VITRINE_CATALOG_RETRY_COUNT", "5")
		os.Setenv("VITRINE_CACHE_TYPE", "redis")
		os.Setenv("VITRINE_CACHE_REDIS_URL", "redis://localhost:6379/0")
		os.Setenv("VITRINE_CACHE_TTL", "1h")
		os.Setenv("VITRINE_RATELIMIT_PER_IP", "30")
		os.Setenv("VITRINE_NAVIGATION_TRANSITION_DELAY", "350ms")
		os.Setenv("VITRINE_LOG_LEVEL", "debug")
		os.Setenv("VITRINE_LOG_FORMAT", "json")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Catalog.BaseURL != "https://catalogo.example.com" {
			t.Errorf("Catalog.BaseURL = %s, want https://catalogo.example.com", cfg.Catalog.BaseURL)
		}
		if cfg.Catalog.Timeout != 3*time.Second {
			t.Errorf("Catalog.Timeout = %v, want 3s", cfg.Catalog.Timeout)
		}
		if cfg.Catalog.RetryCount != 5 {
			t.Errorf("Catalog.RetryCount = %d, want 5", cfg.Catalog.RetryCount)
		}
		if cfg.Cache.Type != "redis" {
			t.Errorf("Cache.Type = %s, want redis", cfg.Cache.Type)
		}
		if cfg.Cache.RedisURL != "redis://localhost:6379/0" {
			t.Errorf("Cache.RedisURL = %s, want redis://localhost:6379/0", cfg.Cache.RedisURL)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 30 {
			t.Errorf("RateLimit.PerIP = %d, want 30", cfg.RateLimit.PerIP)
		}
		if cfg.Navigation.TransitionDelay != 350*time.Millisecond {
			t.Errorf("Navigation.TransitionDelay = %v, want 350ms", cfg.Navigation.TransitionDelay)
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("Log.Level = %s, want debug", cfg.Log.Level)
		}
		if cfg.Log.Format != "json" {
			t.Errorf("Log.Format = %s, want json", cfg.Log.Format)
		}
	})

	t.Run("fails validation for invalid cache type", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("VITRINE_CACHE_TYPE", "invalid")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for invalid cache type")
		}
	})

	t.Run("fails validation when redis URL missing for redis cache", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("VITRINE_CACHE_TYPE", "redis")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing Redis URL")
		}
		if err != nil && err.Error() != "invalid configuration: redis URL is required when cache type is 'redis'" {
			t.Errorf("Load() error = %v, want 'redis URL is required'", err)
		}
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("returns nil when .env file doesn't exist", func(t *testing.T) {
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)

		tempDir := t.TempDir()
		os.Chdir(tempDir)

		err := loadEnvFile()
		if err != nil {
			t.Errorf("loadEnvFile() error = %v, want nil when file doesn't exist", err)
		}
	})

	t.Run("loads variables from .env file", func(t *testing.T) {
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)

		tempDir := t.TempDir()
		os.Chdir(tempDir)

		envContent := `
# Comment line
VITRINE_TEST_VAR_1=value1
VITRINE_TEST_VAR_2=value2

# Another comment
VITRINE_TEST_VAR_3=value3
`
		if err := os.WriteFile(".env", []byte(envContent), 0644); err != nil {
			t.Fatalf("Failed to create test .env file: %v", err)
		}

		os.Unsetenv("VITRINE_TEST_VAR_1")
		os.Unsetenv("VITRINE_TEST_VAR_2")
		os.Unsetenv("VITRINE_TEST_VAR_3")

		if err := loadEnvFile(); err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}

		if os.Getenv("VITRINE_TEST_VAR_1") != "value1" {
			t.Errorf("VITRINE_TEST_VAR_1 = %s, want value1", os.Getenv("VITRINE_TEST_VAR_1"))
		}
		if os.Getenv("VITRINE_TEST_VAR_2") != "value2" {
			t.Errorf("VITRINE_TEST_VAR_2 = %s, want value2", os.Getenv("VITRINE_TEST_VAR_2"))
		}
		if os.Getenv("VITRINE_TEST_VAR_3") != "value3" {
			t.Errorf("VITRINE_TEST_VAR_3 = %s, want value3", os.Getenv("VITRINE_TEST_VAR_3"))
		}

		os.Unsetenv("VITRINE_TEST_VAR_1")
		os.Unsetenv("VITRINE_TEST_VAR_2")
		os.Unsetenv("VITRINE_TEST_VAR_3")
	})

	t.Run("doesn't override existing environment variables", func(t *testing.T) {
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)

		tempDir := t.TempDir()
		os.Chdir(tempDir)

		os.Setenv("VITRINE_TEST_OVERRIDE", "existing-value")

		if err := os.WriteFile(".env", []byte("VITRINE_TEST_OVERRIDE=new-value"), 0644); err != nil {
			t.Fatalf("Failed to create test .env file: %v", err)
		}

		if err := loadEnvFile(); err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}

		if os.Getenv("VITRINE_TEST_OVERRIDE") != "existing-value" {
			t.Errorf("VITRINE_TEST_OVERRIDE = %s, want existing-value (should not override)", os.Getenv("VITRINE_TEST_OVERRIDE"))
		}

		os.Unsetenv("VITRINE_TEST_OVERRIDE")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Catalog: CatalogConfig{BaseURL: "http://localhost:5000"},
			Cache:   CacheConfig{Type: "memory"},
			Log:     LogConfig{Level: "info", Format: "text"},
		}
	}

	t.Run("validates successfully with all required fields", func(t *testing.T) {
		if err := validate(valid()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("fails when base URL is empty", func(t *testing.T) {
		cfg := valid()
		cfg.Catalog.BaseURL = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for empty base URL")
		}
	})

	t.Run("fails for invalid cache type", func(t *testing.T) {
		cfg := valid()
		cfg.Cache.Type = "invalid-type"
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for invalid cache type")
		}
	})

	t.Run("validates redis cache type with URL", func(t *testing.T) {
		cfg := valid()
		cfg.Cache = CacheConfig{Type: "redis", RedisURL: "redis://localhost:6379"}
		if err := validate(cfg); err != nil {
			t.Errorf("validate() error = %v, want nil for valid redis config", err)
		}
	})

	t.Run("fails for negative transition delay", func(t *testing.T) {
		cfg := valid()
		cfg.Navigation.TransitionDelay = -time.Millisecond
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for negative delay")
		}
	})

	t.Run("fails for negative per-IP limit", func(t *testing.T) {
		cfg := valid()
		cfg.RateLimit.PerIP = -1
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for negative rate limit")
		}
	})

	t.Run("fails for unknown log format", func(t *testing.T) {
		cfg := valid()
		cfg.Log.Format = "xml"
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for unknown log format")
		}
	})
}
