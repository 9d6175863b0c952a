package main

import (
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/pmed/yas/archive"
	"github.com/pmed/yas/internal/config"
	"github.com/pmed/yas/internal/logging"
)

// env is bound into every command's Run method.
type env struct {
	cfg    config.Config
	log    *zap.Logger
	out    io.Writer
	styles styles
}

func newEnv(g *Globals, out io.Writer, getenv func(string) string) (*env, error) {
	cfg := config.Default()
	if g.Config != "" {
		loaded, err := config.Load(g.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.NoColor {
		cfg.Color = config.ColorNever
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	archive.SetLogger(log)

	return &env{
		cfg:    cfg,
		log:    log,
		out:    out,
		styles: newStyles(useColor(cfg.Color, out)),
	}, nil
}

func (e *env) close() {
	_ = e.log.Sync()
}

func useColor(mode config.ColorMode, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
