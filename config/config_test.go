package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todoitems.toml")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.NoError(t, err)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
addr = ":9090"

[store]
driver = "postgres"
dsn = "host=localhost dbname=todos sslmode=disable"
`)
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "host=localhost dbname=todos sslmode=disable", cfg.Store.DSN)
}

func TestDatabaseURLOverridesDSN(t *testing.T) {
	path := writeConfig(t, `
[store]
driver = "postgres"
dsn = "host=filehost"
`)
	t.Setenv("DATABASE_URL", "host=envhost")

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "host=envhost", cfg.Store.DSN)
}

func TestPostgresRequiresDSN(t *testing.T) {
	path := writeConfig(t, `
[store]
driver = "postgres"
`)
	t.Setenv("DATABASE_URL", "")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestUnknownDriverRejected(t *testing.T) {
	path := writeConfig(t, `
[store]
driver = "redis"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestMalformedFileRejected(t *testing.T) {
	path := writeConfig(t, `addr = [not toml`)

	_, err := Load(path)
	assert.Error(t, err)
}
