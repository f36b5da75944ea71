package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigToml = `
[development]
environment = "development"
host = "localhost"
port = 9000
log_level = "trace"
log_to_stdout = true
postgres_host = "localhost"
postgres_port = "5432"
postgres_db_name = "fitquest"
redis_host = "localhost"
redis_port = "6379"
login_rate_limit_allowed_per_min = 10
meal_gen_base_url = "http://localhost:9900"

[production]
environment = "production"
host = "0.0.0.0"
port = 8080
log_level = "info"
logs_path = "/var/log/fitquest/service.log"
sentry_enabled = true
postgres_host = "db"
postgres_port = "5432"
postgres_db_name = "fitquest"
redis_host = "redis"
redis_port = "6379"
prometheus_metrics_host = "0.0.0.0"
prometheus_metrics_port = "2112"
login_rate_limit_allowed_per_min = 5
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigToml), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTestConfig(t)

	dev, err := Load("development", path)
	require.NoError(t, err)
	assert.Equal(t, 9000, dev.Port)
	assert.Equal(t, "trace", dev.LogLevel)
	assert.True(t, dev.LogToStdout)
	assert.Equal(t, "http://localhost:9900", dev.MealGenBaseURL)

	prod, err := Load("prod", path)
	require.NoError(t, err)
	assert.Equal(t, 8080, prod.Port)
	assert.True(t, prod.SentryEnabled)
	assert.Equal(t, "2112", prod.PrometheusMetricsPort)
}

func TestLoad_errors(t *testing.T) {
	path := writeTestConfig(t)

	_, err := Load("staging", path)
	assert.Error(t, err)

	_, err = Load("dev", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
