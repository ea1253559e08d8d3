package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pthm/hxtodo/lib/store"
	"gopkg.in/yaml.v3"
)

// Transports the server can run on.
const (
	transportStd  = "std"
	transportEcho = "echo"
	transportChi  = "chi"
)

// Config is the serve command's configuration file.
//
//	log_level: debug
//	log_format: json
//	transport: chi
//	metrics: true
//	seed:
//	  - id: 0
//	    text: buy milk
type Config struct {
	LogLevel  string       `yaml:"log_level"`
	LogFormat string       `yaml:"log_format"`
	Transport string       `yaml:"transport"`
	Metrics   bool         `yaml:"metrics"`
	Seed      []SeedRecord `yaml:"seed"`
}

// SeedRecord is a record created at startup.
type SeedRecord struct {
	ID   uint64 `yaml:"id"`
	Text string `yaml:"text"`
}

func defaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Transport: transportStd,
	}
}

// loadConfig reads path over the defaults. An empty path or an empty file
// yields the defaults. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	switch c.Transport {
	case transportStd, transportEcho, transportChi:
	default:
		return fmt.Errorf("transport must be std, echo or chi, got %q", c.Transport)
	}
	return nil
}

func (c Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// records converts the seed list for store.New.
func (c Config) records() []store.Record {
	out := make([]store.Record, len(c.Seed))
	for i, s := range c.Seed {
		out[i] = store.Record{ID: s.ID, Text: s.Text}
	}
	return out
}

// newLogger builds the process logger described by c.
func newLogger(c Config, w io.Writer) (*slog.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
