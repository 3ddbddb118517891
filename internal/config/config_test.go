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

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.internal"
port = 5432
user = "reservations"
password = "secret"
dbname = "reservations"

[booking]
availability_window_days = 30
seed_capacity_per_slot = 4
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 30, cfg.Booking.AvailabilityWindowDays)
	assert.Equal(t, 4, cfg.Booking.SeedCapacityPerSlot)

	// Незаполненные поля получают дефолты
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "reservations"
dbname = "reservations"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 60, cfg.Booking.AvailabilityWindowDays)
	assert.Equal(t, 10, cfg.Booking.SeedCapacityPerSlot)
	assert.Equal(t, "reservation-service", cfg.Metrics.ServiceName)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing host",
			content: `
[database]
user = "reservations"
dbname = "reservations"
`,
		},
		{
			name: "missing user",
			content: `
[database]
host = "localhost"
dbname = "reservations"
`,
		},
		{
			name: "missing dbname",
			content: `
[database]
host = "localhost"
user = "reservations"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "reservations",
		Password: "secret",
		DBName:   "reservations",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=reservations password=secret dbname=reservations sslmode=disable",
		cfg.DSN())
}
