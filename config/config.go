// Package config loads drawd settings from an optional YAML file and DRAWD_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"go-canvas/domain/canvas"
)

const envPrefix = "DRAWD_"

type Config struct {
	Env      string `yaml:"env"`
	HTTPAddr string `yaml:"http_addr"`
	LogLevel string `yaml:"log_level"`

	DefaultWidth    int32 `yaml:"default_width"`
	DefaultHeight   int32 `yaml:"default_height"`
	MaxMessageBytes int   `yaml:"max_message_bytes"`

	CORSAllow       []string      `yaml:"cors_allow"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type TracingConfig struct {
	Endpoint     string  `yaml:"endpoint"`
	Insecure     bool    `yaml:"insecure"`
	SamplingRate float64 `yaml:"sampling_rate"`
}

func Default() Config {
	return Config{
		Env:             "dev",
		HTTPAddr:        "127.0.0.1:7878",
		DefaultWidth:    50,
		DefaultHeight:   50,
		MaxMessageBytes: 4 << 20,
		CORSAllow:       []string{"http://localhost:5173"},
		ShutdownTimeout: 10 * time.Second,
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Tracing: TracingConfig{SamplingRate: 1.0},
	}
}

// Load reads .env (if present), then path (if non-empty), then DRAWD_*
// overrides, and validates the result.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("config: ignoring .env", "error", err)
	}

	cfg := Default()
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := decodeYAML(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(strings.NewReader(os.ExpandEnv(string(data))))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(envPrefix + key)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("ENV"); ok {
		cfg.Env = v
	}
	if v, ok := get("HTTP_ADDR"); ok {
		cfg.HTTPAddr = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := get("CORS_ALLOW"); ok {
		cfg.CORSAllow = splitCSV(v)
	}
	if v, ok := get("TRACING_ENDPOINT"); ok {
		cfg.Tracing.Endpoint = v
	}
	if v, ok := get("METRICS_PATH"); ok {
		cfg.Metrics.Path = v
	}

	ints := []struct {
		key string
		set func(int64)
		bit int
	}{
		{"DEFAULT_WIDTH", func(n int64) { cfg.DefaultWidth = int32(n) }, 32},
		{"DEFAULT_HEIGHT", func(n int64) { cfg.DefaultHeight = int32(n) }, 32},
		{"MAX_MESSAGE_BYTES", func(n int64) { cfg.MaxMessageBytes = int(n) }, 64},
	}
	for _, field := range ints {
		v, ok := get(field.key)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(v, 10, field.bit)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, field.key, err)
		}
		field.set(n)
	}

	if v, ok := get("METRICS_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sMETRICS_ENABLED: %w", envPrefix, err)
		}
		cfg.Metrics.Enabled = b
	}
	if v, ok := get("TRACING_INSECURE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sTRACING_INSECURE: %w", envPrefix, err)
		}
		cfg.Tracing.Insecure = b
	}
	if v, ok := get("SHUTDOWN_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sSHUTDOWN_TIMEOUT: %w", envPrefix, err)
		}
		cfg.ShutdownTimeout = d
	}
	return nil
}

// Validate checks the settings that would otherwise fail at first use.
func (c Config) Validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return errors.New("config: http_addr is required")
	}
	if _, err := canvas.Blank(c.DefaultWidth, c.DefaultHeight); err != nil {
		return fmt.Errorf("config: default room size: %w", err)
	}
	if c.MaxMessageBytes < 0 {
		return fmt.Errorf("config: max_message_bytes must not be negative, got %d", c.MaxMessageBytes)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("config: metrics.path must start with /, got %q", c.Metrics.Path)
	}
	if c.Tracing.SamplingRate < 0 || c.Tracing.SamplingRate > 1 {
		return fmt.Errorf("config: tracing.sampling_rate must be within [0,1], got %v", c.Tracing.SamplingRate)
	}
	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("config: shutdown_timeout must not be negative")
	}
	return nil
}

// splitCSV trims and filters a comma-separated list
func splitCSV(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
