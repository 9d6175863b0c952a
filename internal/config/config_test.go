package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pmed/yas/errors"
	"github.com/pmed/yas/header"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Format != header.FormatBinary {
		t.Fatalf("unexpected format: %v", cfg.Format)
	}
	if cfg.Mode != header.WithHeader {
		t.Fatalf("unexpected mode: %v", cfg.Mode)
	}
	if cfg.Color != ColorAuto {
		t.Fatalf("unexpected color: %q", cfg.Color)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Development {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yasinfo.toml")
	body := `
format = "text"
no_header = true
color = "never"

[log]
level = "debug"
development = true
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Format != header.FormatText {
		t.Fatalf("unexpected format: %v", cfg.Format)
	}
	if cfg.Mode != header.NoHeader {
		t.Fatalf("unexpected mode: %v", cfg.Mode)
	}
	if cfg.Color != ColorNever {
		t.Fatalf("unexpected color: %q", cfg.Color)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.Development {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
}

func TestDecodeKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`format = "json"`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := Default()
	want.Format = header.FormatJSON
	if cfg != want {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
}

func TestDecodeRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown format", `format = "xml"`},
		{"unknown color", `color = "sometimes"`},
		{"unknown key", `compression = "xz"`},
		{"malformed toml", `format = `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.body))
			if !errors.Is(err, errors.ErrInvalidInput) {
				t.Fatalf("error = %v, want invalid input", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrIO) {
		t.Fatalf("error = %v, want io", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want not-exist cause", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvFormat:   " Text ",
		EnvNoHeader: "true",
		EnvLogLevel: "error",
		EnvNoColor:  "1",
	}
	cfg := Default()
	if err := cfg.ApplyEnv(func(k string) string { return env[k] }); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if cfg.Format != header.FormatText || cfg.Mode != header.NoHeader {
		t.Fatalf("unexpected format/mode: %v/%v", cfg.Format, cfg.Mode)
	}
	if cfg.Log.Level != "error" || cfg.Color != ColorNever {
		t.Fatalf("unexpected level/color: %q/%q", cfg.Log.Level, cfg.Color)
	}
}

func TestApplyEnvEmptyIsNoop(t *testing.T) {
	cfg := Default()
	if err := cfg.ApplyEnv(func(string) string { return "" }); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestApplyEnvRejectsBadBool(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(func(k string) string {
		if k == EnvNoHeader {
			return "maybe"
		}
		return ""
	})
	if !errors.Is(err, errors.ErrInvalidInput) {
		t.Fatalf("error = %v, want invalid input", err)
	}
	if !strings.Contains(err.Error(), EnvNoHeader) {
		t.Fatalf("error %q does not name the variable", err)
	}
}
