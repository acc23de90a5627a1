// Package config loads the apsp command's YAML configuration.
//
// A missing key keeps its default; unknown keys are rejected. Flags given
// on the command line override whatever the file sets.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/apsp/apsp"
	"github.com/katalvlaran/apsp/reader"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Log formats.
const (
	LogConsole = "console"
	LogJSON    = "json"
)

// ErrInvalid indicates a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full set of tunables of the apsp command.
type Config struct {
	Selection   string `yaml:"selection"`
	Workers     int    `yaml:"workers"`
	Format      string `yaml:"format"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	StrictInput bool   `yaml:"strict_input"`
	Verify      bool   `yaml:"verify"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Selection: apsp.SelectionScan.String(),
		Workers:   1,
		Format:    FormatText,
		LogLevel:  zerolog.WarnLevel.String(),
		LogFormat: LogConsole,
	}
}

// Load reads path on top of Default and validates the result. An empty
// path returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Decode unmarshals YAML into cfg, rejecting unknown keys. An empty
// document leaves cfg untouched.
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	if _, err := apsp.ParseSelection(c.Selection); err != nil {
		return fmt.Errorf("%w: selection %q", ErrInvalid, c.Selection)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d < 1", ErrInvalid, c.Workers)
	}
	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("%w: format %q", ErrInvalid, c.Format)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	if c.LogFormat != LogConsole && c.LogFormat != LogJSON {
		return fmt.Errorf("%w: log_format %q", ErrInvalid, c.LogFormat)
	}

	return nil
}

// ComputeOptions translates the engine settings. Call Validate first.
func (c Config) ComputeOptions() []apsp.Option {
	sel, _ := apsp.ParseSelection(c.Selection)

	return []apsp.Option{apsp.WithSelection(sel), apsp.WithWorkers(max(c.Workers, 1))}
}

// ReaderOptions translates the input settings.
func (c Config) ReaderOptions() []reader.Option {
	if c.StrictInput {
		return []reader.Option{reader.WithStrict()}
	}

	return nil
}

// Logger builds the command logger writing to w.
func (c Config) Logger(w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		lvl = zerolog.WarnLevel
	}
	if c.LogFormat == LogConsole {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
