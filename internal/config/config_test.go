package config

import (
	"os"
	"testing"
)

// chdir is a Go 1.21-compatible stand-in for testing.T.Chdir (Go 1.24+):
// it changes the working directory and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"POSIXLY_CORRECT", "GETTEXT_LANGUAGE", "LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG",
		"RESGEN_LOG_LEVEL", "RESGEN_ON_DUPLICATE", "RESGEN_USE_FUZZY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_defaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	cfg := Load()
	if !cfg.PosixlyCorrect {
		t.Error("PosixlyCorrect should default to true")
	}
	if cfg.Language != "en" || cfg.LogLevel != "info" || cfg.OnDuplicate != "overwrite" || cfg.UseFuzzy {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_environment(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("POSIXLY_CORRECT", "false")
	t.Setenv("LANGUAGE", "de_DE:fr")
	t.Setenv("LANG", "es_ES.UTF-8")
	t.Setenv("RESGEN_ON_DUPLICATE", "skip")
	t.Setenv("RESGEN_USE_FUZZY", "1")
	cfg := Load()
	if cfg.PosixlyCorrect {
		t.Error("PosixlyCorrect should be false")
	}
	if cfg.Language != "de_DE" {
		t.Errorf("Language = %q", cfg.Language)
	}
	if cfg.OnDuplicate != "skip" || !cfg.UseFuzzy {
		t.Errorf("cfg = %+v", cfg)
	}
	g := cfg.Getopt()
	if g.StrictPOSIX || g.MessageLanguage() != "de" {
		t.Errorf("Getopt() = %+v, language %q", g, g.MessageLanguage())
	}
}

func TestGetEnvBool_unparsableFallsBack(t *testing.T) {
	t.Setenv("POSIXLY_CORRECT", "perhaps")
	if !getEnvBool("POSIXLY_CORRECT", true) {
		t.Error("unparsable value should use the fallback")
	}
}
