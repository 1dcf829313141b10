package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
read_timeout = 10
write_timeout = 15

[database]
host = "localhost"
port = 5432
user = "bewanted"
password = "secret"
dbname = "bewanted"
sslmode = "disable"

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "bewanted"

[notifier]
url = "http://localhost:8090"
timeout = 5

[admin]
token = "t0ken"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "host=localhost port=5432 user=bewanted password=secret dbname=bewanted sslmode=disable",
		cfg.Database.DSN())
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "http://localhost:8090", cfg.Notifier.URL)
	assert.Equal(t, "t0ken", cfg.Admin.Token)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080

[database]
host = "localhost"
dbname = "bewanted"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
