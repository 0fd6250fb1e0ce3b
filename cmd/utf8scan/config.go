package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/utf8scan/errors"
)

// Config holds defaults for the command. Flags given on the command line
// override values read from a config file.
type Config struct {
	Format        string `yaml:"format"`
	Names         bool   `yaml:"names"`
	MaxCodepoints int    `yaml:"max_codepoints"`
	MemoryExport  string `yaml:"memory_export"`
	Verbose       bool   `yaml:"verbose"`
}

func defaultConfig() Config {
	return Config{
		Format:       "text",
		MemoryExport: "memory",
	}
}

// loadConfig reads a YAML config file on top of the defaults. An empty path
// returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(errors.PhaseConfig, errors.KindNotFound, err, "open config")
	}
	defer f.Close()

	if err := decodeConfig(f, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decodeConfig(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "parse config")
	}
	return cfg.validate()
}

func (c Config) validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return errors.InvalidInput(errors.PhaseConfig, []string{"format"}, fmt.Sprintf("unknown format %q", c.Format))
	}
	if c.MaxCodepoints < 0 {
		return errors.InvalidInput(errors.PhaseConfig, []string{"max_codepoints"}, "must not be negative")
	}
	if c.MemoryExport == "" {
		return errors.InvalidInput(errors.PhaseConfig, []string{"memory_export"}, "must not be empty")
	}
	return nil
}
