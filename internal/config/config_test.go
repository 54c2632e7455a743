package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that all default values load correctly with only
// the required upstream variables set.
func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)
	setRequiredEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	// Server defaults
	assert.Equal(t, 8080, cfg.Server.Port, "default server port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "30s", cfg.Server.WriteTimeout.String(), "default write timeout")

	// Upstream defaults
	assert.Equal(t, "5s", cfg.Upstream.RequestTimeout.String(), "default request timeout")
	assert.Equal(t, "500ms", cfg.Upstream.PollInterval.String(), "default poll interval")
	assert.Equal(t, 10, cfg.Upstream.PollMaxAttempts, "default poll max attempts")

	// Cache defaults
	assert.Equal(t, "10m0s", cfg.Cache.TTL.String(), "default cache TTL")

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")

	// App defaults
	assert.Equal(t, "development", cfg.App.Env, "default app environment")
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)
	setRequiredEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_PORT":                "3000",
		"SERVER_READ_TIMEOUT":        "30s",
		"SERVER_WRITE_TIMEOUT":       "1m",
		"UPSTREAM_REQUEST_TIMEOUT":   "3s",
		"UPSTREAM_POLL_INTERVAL":     "250ms",
		"UPSTREAM_POLL_MAX_ATTEMPTS": "20",
		"CACHE_TTL":                  "5m",
		"LOG_LEVEL":                  "debug",
		"LOG_FORMAT":                 "console",
		"APP_ENV":                    "production",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "30s", cfg.Server.ReadTimeout.String())
	assert.Equal(t, "1m0s", cfg.Server.WriteTimeout.String())
	assert.Equal(t, "3s", cfg.Upstream.RequestTimeout.String())
	assert.Equal(t, "250ms", cfg.Upstream.PollInterval.String())
	assert.Equal(t, 20, cfg.Upstream.PollMaxAttempts)
	assert.Equal(t, "5m0s", cfg.Cache.TTL.String())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "production", cfg.App.Env)
}

// TestLoad_MissingRequiredUpstream tests that missing upstream settings fail loading.
func TestLoad_MissingRequiredUpstream(t *testing.T) {
	tests := []string{
		"UPSTREAM_PRICE_JOB_URL",
		"UPSTREAM_STATIC_INFO_URL",
		"UPSTREAM_PARTNER_ID",
	}

	for _, missing := range tests {
		t.Run(missing, func(t *testing.T) {
			clearEnvVars(t)
			setRequiredEnvVars(t)
			os.Unsetenv(missing)

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Validation_PortRange tests port validation boundaries.
func TestLoad_Validation_PortRange(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
	}{
		{"valid port 1", "1", false},
		{"valid port 8080", "8080", false},
		{"valid port 65535", "65535", false},
		{"invalid port 0", "0", true},
		{"invalid port negative", "-1", true},
		{"invalid port too high", "65536", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setRequiredEnvVars(t)
			setEnvVars(t, map[string]string{"SERVER_PORT": tt.port})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "SERVER_PORT must be between 1 and 65535")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_PositiveDurations tests that durations must be positive.
func TestLoad_Validation_PositiveDurations(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		errMsg string
	}{
		{"zero read timeout", "SERVER_READ_TIMEOUT", "0s", "SERVER_READ_TIMEOUT must be positive"},
		{"negative write timeout", "SERVER_WRITE_TIMEOUT", "-1s", "SERVER_WRITE_TIMEOUT must be positive"},
		{"zero request timeout", "UPSTREAM_REQUEST_TIMEOUT", "0s", "UPSTREAM_REQUEST_TIMEOUT must be positive"},
		{"zero poll interval", "UPSTREAM_POLL_INTERVAL", "0s", "UPSTREAM_POLL_INTERVAL must be positive"},
		{"zero cache ttl", "CACHE_TTL", "0s", "CACHE_TTL must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setRequiredEnvVars(t)
			setEnvVars(t, map[string]string{tt.envVar: tt.value})

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Validation_PollAttempts tests the polling budget lower bound.
func TestLoad_Validation_PollAttempts(t *testing.T) {
	clearEnvVars(t)
	setRequiredEnvVars(t)
	setEnvVars(t, map[string]string{"UPSTREAM_POLL_MAX_ATTEMPTS": "0"})

	cfg, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UPSTREAM_POLL_MAX_ATTEMPTS must be at least 1")
	assert.Nil(t, cfg)
}

// TestLoad_Validation_UpstreamURLs tests upstream endpoint validation.
func TestLoad_Validation_UpstreamURLs(t *testing.T) {
	tests := []struct {
		name    string
		envVar  string
		value   string
		wantErr bool
	}{
		{"valid https", "UPSTREAM_PRICE_JOB_URL", "https://supplier.example/api/prices", false},
		{"valid http", "UPSTREAM_STATIC_INFO_URL", "http://supplier.example/api/static", false},
		{"relative path", "UPSTREAM_PRICE_JOB_URL", "/api/prices", true},
		{"wrong scheme", "UPSTREAM_STATIC_INFO_URL", "ftp://supplier.example/static", true},
		{"missing host", "UPSTREAM_PRICE_JOB_URL", "https://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setRequiredEnvVars(t)
			setEnvVars(t, map[string]string{tt.envVar: tt.value})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.envVar)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_LogLevel tests log level validation.
func TestLoad_Validation_LogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"valid debug", "debug", false},
		{"valid info", "info", false},
		{"valid warn", "warn", false},
		{"valid error", "error", false},
		{"invalid trace", "trace", true},
		{"invalid random", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setRequiredEnvVars(t)
			setEnvVars(t, map[string]string{"LOG_LEVEL": tt.level})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_LogFormat tests log format validation.
func TestLoad_Validation_LogFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid json", "json", false},
		{"valid console", "console", false},
		{"invalid text", "text", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setRequiredEnvVars(t)
			setEnvVars(t, map[string]string{"LOG_FORMAT": tt.format})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_FORMAT must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_AppEnv tests app environment validation.
func TestLoad_Validation_AppEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		wantErr bool
	}{
		{"valid development", "development", false},
		{"valid staging", "staging", false},
		{"valid production", "production", false},
		{"invalid local", "local", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setRequiredEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "APP_ENV must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestMustLoad_Success tests MustLoad with valid config.
func TestMustLoad_Success(t *testing.T) {
	clearEnvVars(t)
	setRequiredEnvVars(t)

	assert.NotPanics(t, func() {
		cfg := MustLoad()
		assert.NotNil(t, cfg)
	})
}

// TestMustLoad_Panic tests MustLoad panics on invalid config.
func TestMustLoad_Panic(t *testing.T) {
	clearEnvVars(t)
	setRequiredEnvVars(t)
	setEnvVars(t, map[string]string{"SERVER_PORT": "0"})

	assert.Panics(t, func() {
		MustLoad()
	})
}

// TestConfig_IsDevelopment tests the IsDevelopment helper method.
func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		env      string
		expected bool
	}{
		{"development", true},
		{"staging", false},
		{"production", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			clearEnvVars(t)
			setRequiredEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.IsDevelopment())
		})
	}
}

// TestConfig_IsProduction tests the IsProduction helper method.
func TestConfig_IsProduction(t *testing.T) {
	tests := []struct {
		env      string
		expected bool
	}{
		{"development", false},
		{"staging", false},
		{"production", true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			clearEnvVars(t)
			setRequiredEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.IsProduction())
		})
	}
}

// Helper functions

// clearEnvVars clears all config-related environment variables.
func clearEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"SERVER_PORT",
		"SERVER_READ_TIMEOUT",
		"SERVER_WRITE_TIMEOUT",
		"UPSTREAM_PRICE_JOB_URL",
		"UPSTREAM_STATIC_INFO_URL",
		"UPSTREAM_PARTNER_ID",
		"UPSTREAM_REQUEST_TIMEOUT",
		"UPSTREAM_POLL_INTERVAL",
		"UPSTREAM_POLL_MAX_ATTEMPTS",
		"CACHE_TTL",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"APP_ENV",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

// setRequiredEnvVars sets the upstream settings that have no defaults.
func setRequiredEnvVars(t *testing.T) {
	t.Helper()
	setEnvVars(t, map[string]string{
		"UPSTREAM_PRICE_JOB_URL":   "https://supplier.example/api/prices",
		"UPSTREAM_STATIC_INFO_URL": "https://supplier.example/api/static",
		"UPSTREAM_PARTNER_ID":      "partner-42",
	})
}

// setEnvVars sets multiple environment variables.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		os.Setenv(k, v)
	}
}
