// Package config reads unionc.yaml, the optional configuration for the unionc compiler.
//
// Example:
//
//	output: _union.go
//	visitors: true
//	header: |
//	  Copyright 2026 The Authors.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the name unionc looks for next to a .union file.
const FileName = "unionc.yaml"

// DefaultOutput is the suffix of generated files when none is configured.
const DefaultOutput = "_union.go"

// Config is the unionc configuration.
type Config struct {
	// Output is appended to the .union file's base name to name the generated file.
	// Defaults to DefaultOutput.
	Output string `yaml:"output,omitempty"`

	// Visitors controls generation of the {{Name}}Visitor types. Defaults to true.
	Visitors *bool `yaml:"visitors,omitempty"`

	// Header is written as comment lines at the top of every generated file, before the
	// "Code generated" line.
	Header string `yaml:"header,omitempty"`
}

// Default returns the configuration used when there is no unionc.yaml.
func Default() *Config {
	c := &Config{}
	c.setDefaults()
	return c
}

// GenerateVisitors reports whether visitor types should be generated.
func (c *Config) GenerateVisitors() bool {
	return c.Visitors == nil || *c.Visitors
}

// HeaderLines returns Header split into lines, with trailing blank lines removed.
func (c *Config) HeaderLines() []string {
	h := strings.TrimRight(c.Header, "\n ")
	if h == "" {
		return nil
	}
	return strings.Split(h, "\n")
}

// OutputPath returns the path of the file generated for the .union file at path.
func (c *Config) OutputPath(path string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return base + c.Output
}

// Parse parses unionc.yaml content. path is only used in error messages.
func Parse(data []byte, path string) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := c.validate(path); err != nil {
		return nil, err
	}
	c.setDefaults()
	return &c, nil
}

// Load reads the config at path from fsys. If the file does not exist, Default() is
// returned.
func Load(fsys fs.ReadFileFS, path string) (*Config, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data, path)
}

func (c *Config) validate(path string) error {
	if c.Output == "" {
		return nil
	}
	if strings.ContainsAny(c.Output, `/\`) {
		return fmt.Errorf("%s: output %q must be a file name suffix, not a path", path, c.Output)
	}
	if !strings.HasSuffix(c.Output, ".go") {
		return fmt.Errorf("%s: output %q must end in .go", path, c.Output)
	}
	if strings.HasSuffix(c.Output, "_test.go") {
		return fmt.Errorf("%s: output %q would generate a test file", path, c.Output)
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
}
