// Package config holds the defaults for a gosensors run, optionally loaded
// from a TOML file.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/philipparndt/gosensors/pkg/filter"
)

// Config is the file schema. Fields omitted from the file keep their
// defaults.
type Config struct {
	CutBottom     float64  `toml:"cut_bottom"`
	Skip          int      `toml:"skip"`
	Transform     string   `toml:"transform"`
	LogLevel      string   `toml:"log_level"`
	WatchDebounce Duration `toml:"watch_debounce"`
}

// Duration is a time.Duration written as a string like "250ms"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in defaults
func Default() *Config {
	return &Config{
		CutBottom:     filter.DefaultCutFraction,
		Skip:          1,
		LogLevel:      logrus.InfoLevel.String(),
		WatchDebounce: Duration{250 * time.Millisecond},
	}
}

// Load reads a TOML config file over the defaults. A relative transform path
// is resolved against the directory of the config file.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in config %s", undecoded[0].String(), path)
	}
	if cfg.Transform != "" && !filepath.IsAbs(cfg.Transform) {
		cfg.Transform = filepath.Join(filepath.Dir(path), cfg.Transform)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if err := filter.ValidateFraction(c.CutBottom); err != nil {
		return err
	}
	if err := filter.ValidateSkip(c.Skip); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.WatchDebounce.Duration < 0 {
		return fmt.Errorf("watch_debounce must not be negative")
	}
	return nil
}

// Level returns the parsed log level
func (c *Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}

// Write stores the config as TOML
func (c *Config) Write(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
