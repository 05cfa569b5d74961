package config

import (
	"os"
	"testing"
)

// chdir switches to dir for the duration of the test and restores the
// previous working directory on cleanup (stand-in for t.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}

func TestInitConfig_DefaultsWhenNoConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := InitConfig()

	if cfg.Host != "0.0.0.0" {
		t.Fatalf("want default host 0.0.0.0, got %q", cfg.Host)
	}
	if cfg.Port != 3000 {
		t.Fatalf("want default port 3000, got %d", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("want default log level info, got %q", cfg.LogLevel)
	}
}

func TestInitConfig_PortEnvOverridesDefault(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "8080")

	cfg := InitConfig()

	if cfg.Port != 8080 {
		t.Fatalf("PORT env should override the default, got %d", cfg.Port)
	}
}

func TestInitConfig_ReadsConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	content := `{"host": "127.0.0.1", "port": 4000, "log_level": "debug"}`
	if err := os.WriteFile("app_config", []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg := InitConfig()

	if cfg.Host != "127.0.0.1" {
		t.Fatalf("want host from file, got %q", cfg.Host)
	}
	if cfg.Port != 4000 {
		t.Fatalf("want port from file, got %d", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("want log level from file, got %q", cfg.LogLevel)
	}
}
