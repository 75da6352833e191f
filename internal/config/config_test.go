package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
port = 5432
user = "charter"
dbname = "charter"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, SourcePostgres, cfg.Catalog.Source)
	assert.Equal(t, 12, cfg.Catalog.ItemsPerPage)
	assert.Equal(t, 60, cfg.Catalog.MaxPerPage)
	assert.Equal(t, 365, cfg.Booking.AdvanceDays)
	assert.Equal(t, "charter.events", cfg.Broker.Exchange)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "charter", Password: "pw", DBName: "charter", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=charter password=pw dbname=charter sslmode=disable", d.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("ADMIN_TOKEN", "admin")
	t.Setenv("LOG_LEVEL", "debug")

	path := writeConfig(t, `
[database]
password = "from-file"
port = 5432

[admin]
token = "from-file"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Admin.Token)
	assert.Equal(t, "debug", cfg.Logs.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"dataset without path", "[catalog]\nsource = \"dataset\"\n"},
		{"unknown source", "[catalog]\nsource = \"redis\"\n"},
		{"page size over max", "[catalog]\nitems_per_page = 100\nmax_per_page = 50\n"},
		{"negative notice", "[booking]\nmin_notice_hours = -1\n"},
		{"broker without url", "[broker]\nenabled = true\n"},
		{"bad port", "[server]\nhttp_port = 70000\n"},
		{"malformed toml", "[server\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
