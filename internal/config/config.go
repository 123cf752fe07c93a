// Package config loads and saves the pegsolitaire TOML configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
)

const (
	SolverRecursive = "recursive"
	SolverStack     = "stack"
)

// Config is the whole configuration file.
type Config struct {
	Log      LogConfig      `toml:"log"`
	Server   ServerConfig   `toml:"server"`
	Solver   SolverConfig   `toml:"solver"`
	Patterns PatternsConfig `toml:"patterns"`
}

type LogConfig struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

type ServerConfig struct {
	Addr              string `toml:"addr"`
	ReadHeaderTimeout string `toml:"read_header_timeout"`
}

type SolverConfig struct {
	Kind    string `toml:"kind"`
	Workers int    `toml:"workers"`
	Queue   int    `toml:"queue"`
	// Timeout bounds a single search; empty or "0" disables it.
	Timeout string `toml:"timeout"`
}

type PatternsConfig struct {
	// Dir holds extra *.toml and *.yaml pattern files.
	Dir    string               `toml:"dir,omitempty"`
	Custom []domain.PatternSpec `toml:"custom,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Server: ServerConfig{Addr: ":8080", ReadHeaderTimeout: "5s"},
		Solver: SolverConfig{Kind: SolverRecursive, Workers: 2, Queue: 16, Timeout: "30s"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults; a
// named file that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", filepath.Base(path))
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", filepath.Base(path))
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "failed to create config directory")
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) Validate() error {
	if _, err := c.Log.ZapLevel(); err != nil {
		return err
	}
	if _, err := parseDuration(c.Server.ReadHeaderTimeout); err != nil {
		return errors.Wrap(err, "server.read_header_timeout")
	}
	switch strings.ToLower(c.Solver.Kind) {
	case SolverRecursive, SolverStack:
	default:
		return errors.Errorf("solver.kind: unknown solver %q", c.Solver.Kind)
	}
	if c.Solver.Workers < 1 {
		return errors.Errorf("solver.workers: need at least 1, got %d", c.Solver.Workers)
	}
	if c.Solver.Queue < 0 {
		return errors.Errorf("solver.queue: negative size %d", c.Solver.Queue)
	}
	if _, err := parseDuration(c.Solver.Timeout); err != nil {
		return errors.Wrap(err, "solver.timeout")
	}
	seen := make(map[string]bool)
	for i, p := range c.Patterns.Custom {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return errors.Errorf("patterns.custom[%d]: missing name", i)
		}
		if seen[strings.ToLower(name)] {
			return errors.Errorf("patterns.custom[%d]: duplicate name %q", i, name)
		}
		seen[strings.ToLower(name)] = true
		if _, err := p.Shape.Build(); err != nil {
			return errors.Wrapf(err, "patterns.custom[%d] %q", i, name)
		}
	}
	return nil
}

// ZapLevel parses the configured level; empty means info.
func (l LogConfig) ZapLevel() (zapcore.Level, error) {
	if l.Level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return lvl, errors.Wrap(err, "log.level")
	}
	return lvl, nil
}

func (s ServerConfig) HeaderTimeout() time.Duration {
	d, _ := parseDuration(s.ReadHeaderTimeout)
	return d
}

func (s SolverConfig) SolveTimeout() time.Duration {
	d, _ := parseDuration(s.Timeout)
	return d
}

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, errors.Errorf("negative duration %s", s)
	}
	return d, nil
}
