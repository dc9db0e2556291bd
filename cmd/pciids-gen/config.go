package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultInput   = "data/pci.ids"
	defaultOutput  = "pkg/pciids/pciids_gen.go"
	defaultPackage = "pciids"
)

// Config holds generator settings. Any field may come from the YAML config
// file; flags given on the command line take precedence.
type Config struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Package  string `yaml:"package"`
	Snapshot string `yaml:"snapshot"` // optional CBOR snapshot path
}

// ParseConfig parses a YAML config. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadConfig loads and parses a YAML config from a file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseConfig(data)
}

// merge overlays the non-empty fields of o onto c.
func (c *Config) merge(o Config) {
	if o.Input != "" {
		c.Input = o.Input
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.Package != "" {
		c.Package = o.Package
	}
	if o.Snapshot != "" {
		c.Snapshot = o.Snapshot
	}
}

func (c *Config) applyDefaults() {
	if c.Input == "" {
		c.Input = defaultInput
	}
	if c.Output == "" {
		c.Output = defaultOutput
	}
	if c.Package == "" {
		c.Package = defaultPackage
	}
}
