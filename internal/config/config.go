// Package config loads the dollcode CLI configuration.
//
// Configuration is read from a single YAML file specified by:
//   - the --config flag passed to the command, or
//   - the DOLLCODE_CONFIG environment variable.
//
// Without either, Default is used. Command line flags override file values.
//
// Example:
//
//	segment_mode: delimited
//	log_level: debug
//	max_input: 4096
//	pack:
//	  compression: zstd
//	  byte_order: big
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/dollcode/adapter"
	"github.com/arloliu/dollcode/format"
	"github.com/arloliu/dollcode/pack"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "DOLLCODE_CONFIG"

// Byte orders accepted by PackConfig.ByteOrder.
const (
	ByteOrderLittle = "little"
	ByteOrderBig    = "big"
)

// Config is the CLI configuration.
type Config struct {
	// SegmentMode is the text segment convention, "fixed" or "delimited".
	SegmentMode string `yaml:"segment_mode"`

	// LogLevel is the slog level name: debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// MaxInput is the per-input limit in runes.
	MaxInput int `yaml:"max_input"`

	// Pack configures the binary pack output.
	Pack PackConfig `yaml:"pack"`
}

// PackConfig configures the pack encoder.
type PackConfig struct {
	// Compression is one of none, zstd, s2, lz4.
	Compression string `yaml:"compression"`

	// ByteOrder is "little" or "big".
	ByteOrder string `yaml:"byte_order"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		SegmentMode: format.SegmentFixed.String(),
		LogLevel:    "info",
		MaxInput:    adapter.DefaultMaxInput,
		Pack: PackConfig{
			Compression: format.CompressionNone.String(),
			ByteOrder:   ByteOrderLittle,
		},
	}
}

// Load loads the file named by DOLLCODE_CONFIG, or returns Default when it is unset.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}

	return LoadFile(path)
}

// LoadFile loads and validates the configuration at path.
//
// Fields missing from the file keep their default values. Unknown fields are
// rejected.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML data over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, ok := format.ParseSegmentMode(c.SegmentMode); !ok {
		return fmt.Errorf("invalid segment_mode %q", c.SegmentMode)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	if c.MaxInput <= 0 {
		return fmt.Errorf("max_input must be positive, got %d", c.MaxInput)
	}

	if _, ok := format.ParseCompressionType(c.Pack.Compression); !ok {
		return fmt.Errorf("invalid pack.compression %q", c.Pack.Compression)
	}

	if c.Pack.ByteOrder != ByteOrderLittle && c.Pack.ByteOrder != ByteOrderBig {
		return fmt.Errorf("invalid pack.byte_order %q", c.Pack.ByteOrder)
	}

	return nil
}

// Level returns LogLevel as a slog.Level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}

	return level, nil
}

// ConverterOptions returns the adapter options described by c.
func (c *Config) ConverterOptions() []adapter.ConverterOption {
	mode, _ := format.ParseSegmentMode(c.SegmentMode)

	return []adapter.ConverterOption{
		adapter.WithSegmentMode(mode),
		adapter.WithMaxInput(c.MaxInput),
	}
}

// EncoderOptions returns the pack options described by c.
func (c *Config) EncoderOptions() []pack.EncoderOption {
	compression, _ := format.ParseCompressionType(c.Pack.Compression)

	opts := []pack.EncoderOption{pack.WithCompression(compression)}
	if c.Pack.ByteOrder == ByteOrderBig {
		opts = append(opts, pack.WithBigEndian())
	} else {
		opts = append(opts, pack.WithLittleEndian())
	}

	return opts
}
