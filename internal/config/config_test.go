package config_test

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"tgpost_go/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	c := qt.New(t)
	t.Setenv("PORT", "")

	cfg, err := config.Load("", nil)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.Server.Port, qt.Equals, "8080")
	c.Assert(cfg.Server.Mode, qt.Equals, "release")
	c.Assert(cfg.Database.Driver, qt.Equals, "postgres")
	c.Assert(cfg.Database.MaxOpenConns, qt.Equals, 10)
	c.Assert(cfg.Admin.Title, qt.Equals, "Каналы телеграм")
	c.Assert(cfg.Admin.Username, qt.Equals, "")
}

func TestLoadFromFile(t *testing.T) {
	c := qt.New(t)
	t.Setenv("PORT", "")

	path := filepath.Join(t.TempDir(), "tgpost.yaml")
	content := `
server:
  port: "9000"
database:
  driver: sqlite
  dsn: /tmp/tgpost.db
admin:
  username: admin
  password: secret
`
	c.Assert(os.WriteFile(path, []byte(content), 0o600), qt.IsNil)

	cfg, err := config.Load(path, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.Server.Port, qt.Equals, "9000")
	c.Assert(cfg.Database.Driver, qt.Equals, "sqlite")
	c.Assert(cfg.Database.DSN, qt.Equals, "/tmp/tgpost.db")
	c.Assert(cfg.Admin.Username, qt.Equals, "admin")
	c.Assert(cfg.Admin.Password, qt.Equals, "secret")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	c := qt.New(t)

	path := filepath.Join(t.TempDir(), "tgpost.yaml")
	c.Assert(os.WriteFile(path, []byte("database:\n  driver: sqlite\n  dsn: file.db\n"), 0o600), qt.IsNil)

	t.Setenv("TGPOST_DATABASE_DSN", "env.db")
	t.Setenv("PORT", "7070")

	cfg, err := config.Load(path, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.Database.DSN, qt.Equals, "env.db")
	c.Assert(cfg.Server.Port, qt.Equals, "7070")
}

func TestLoadOverridesWin(t *testing.T) {
	c := qt.New(t)
	t.Setenv("TGPOST_DATABASE_DRIVER", "mysql")

	cfg, err := config.Load("", map[string]string{
		"database.driver": "pgx",
		"database.dsn":    "",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.Database.Driver, qt.Equals, "pgx")
	c.Assert(cfg.Database.DSN, qt.Not(qt.Equals), "")
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	c := qt.New(t)
	t.Setenv("TGPOST_DATABASE_DRIVER", "oracle")

	_, err := config.Load("", nil)
	c.Assert(err, qt.ErrorMatches, `unsupported database driver "oracle"`)
}

func TestLoadMissingFile(t *testing.T) {
	c := qt.New(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	c.Assert(err, qt.ErrorMatches, "read config .*")
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	c := qt.New(t)
	t.Setenv("TGPOST_SERVER_MODE", "production")

	_, err := config.Load("", nil)
	c.Assert(err, qt.ErrorMatches, `server.mode must be debug, release or test, got "production"`)
}
