package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jrazmi/taskboard/app/taskboard/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("TBTEST")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != ":8080" || cfg.Server.ApiRoute != "/api/v1" {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Seed.URL != "https://jsonplaceholder.typicode.com/todos" || cfg.Seed.Limit != 20 || cfg.Seed.Timeout != 10*time.Second {
		t.Errorf("seed = %+v", cfg.Seed)
	}
	if cfg.Seed.Disabled {
		t.Error("seed disabled by default")
	}
	if cfg.Log.Level != "INFO" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taskboard.yaml")
	doc := `
server:
  port: ":9000"
  shutdown_timeout: 5s
seed:
  url: http://localhost:1234/todos
  limit: 5
log:
  level: DEBUG
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TBTEST_CONFIG_FILE", path)
	t.Setenv("TBTEST_SEED_LIMIT", "7")
	t.Setenv("TBTEST_SEED_DISABLED", "true")

	cfg, err := config.Load("TBTEST")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != ":9000" || cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("file values lost: %+v", cfg.Server)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("default not applied: read timeout = %v", cfg.Server.ReadTimeout)
	}
	if cfg.Seed.URL != "http://localhost:1234/todos" {
		t.Errorf("seed url = %q", cfg.Seed.URL)
	}
	if cfg.Seed.Limit != 7 {
		t.Errorf("env did not override file: limit = %d", cfg.Seed.Limit)
	}
	if !cfg.Seed.Disabled {
		t.Error("seed not disabled")
	}
	if cfg.Log.Level != "DEBUG" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("TBTEST_CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := config.Load("TBTEST"); err == nil {
		t.Fatal("expected an error")
	}
}
