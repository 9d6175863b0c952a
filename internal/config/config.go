// Package config loads yasinfo settings from a TOML file and the environment.
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/pmed/yas/errors"
	"github.com/pmed/yas/header"
)

const (
	EnvFormat   = "YAS_FORMAT"
	EnvNoHeader = "YAS_NO_HEADER"
	EnvLogLevel = "YAS_LOG_LEVEL"
	EnvNoColor  = "YAS_NO_COLOR"
)

// ColorMode controls styled terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

type Log struct {
	Level       string
	Development bool
}

type Config struct {
	Format header.Format
	Mode   header.Mode
	Color  ColorMode
	Log    Log
}

func Default() Config {
	return Config{
		Format: header.FormatBinary,
		Mode:   header.WithHeader,
		Color:  ColorAuto,
		Log: Log{
			Level: "warn",
		},
	}
}

type fileConfig struct {
	Format   string  `toml:"format"`
	NoHeader bool    `toml:"no_header"`
	Color    string  `toml:"color"`
	Log      fileLog `toml:"log"`
}

type fileLog struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// Load reads path on top of Default. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.New(errors.PhaseConfig, errors.KindIO).
			Cause(err).
			Detail("open %s", path).
			Build()
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads TOML from r on top of Default.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return Config{}, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Cause(err).
			Detail("decode config").
			Build()
	}

	if meta.IsDefined("format") {
		f, err := header.ParseFormat(raw.Format)
		if err != nil {
			return Config{}, err
		}
		cfg.Format = f
	}

	if meta.IsDefined("no_header") {
		cfg.Mode = modeFor(raw.NoHeader)
	}

	if meta.IsDefined("color") {
		c, err := parseColor(raw.Color)
		if err != nil {
			return Config{}, err
		}
		cfg.Color = c
	}

	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
	}

	if meta.IsDefined("log", "development") {
		cfg.Log.Development = raw.Log.Development
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.InvalidInput(errors.PhaseConfig,
			fmt.Sprintf("unknown config key %q", undecoded[0].String()))
	}

	return cfg, nil
}

// ApplyEnv overrides cfg with any YAS_* variables returned by getenv.
// Empty variables are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if raw := strings.TrimSpace(getenv(EnvFormat)); raw != "" {
		f, err := header.ParseFormat(raw)
		if err != nil {
			return err
		}
		c.Format = f
	}
	if v, ok, err := parseBool(EnvNoHeader, getenv(EnvNoHeader)); err != nil {
		return err
	} else if ok {
		c.Mode = modeFor(v)
	}
	if raw := strings.TrimSpace(getenv(EnvLogLevel)); raw != "" {
		c.Log.Level = raw
	}
	if v, ok, err := parseBool(EnvNoColor, getenv(EnvNoColor)); err != nil {
		return err
	} else if ok && v {
		c.Color = ColorNever
	}
	return nil
}

func modeFor(noHeader bool) header.Mode {
	if noHeader {
		return header.NoHeader
	}
	return header.WithHeader
}

func parseColor(raw string) (ColorMode, error) {
	switch c := ColorMode(strings.ToLower(strings.TrimSpace(raw))); c {
	case ColorAuto, ColorAlways, ColorNever:
		return c, nil
	}
	return "", errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("unknown color mode %q", raw))
}

func parseBool(name, raw string) (bool, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Cause(err).
			Detail("%s=%q", name, raw).
			Build()
	}
	return v, true, nil
}
