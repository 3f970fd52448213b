package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultConfigFile is picked up from the working directory when no
// -config flag is given.
const defaultConfigFile = "repogen.yaml"

// fileConfig is the YAML configuration of a generation run. Command-line
// flags override file values.
type fileConfig struct {
	Patterns []string `yaml:"patterns"`
	Names    []string `yaml:"names"`
	Target   string   `yaml:"target"`
	Registry string   `yaml:"registry"`
	Header   string   `yaml:"header"`
	Workers  int      `yaml:"workers"`
}

// loadFileConfig reads the config file at path, falling back to
// repogen.yaml in the working directory. A missing default file yields an
// empty config; a missing explicit file is an error.
func loadFileConfig(path string) (*fileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return &fileConfig{}, nil
	}
	if err != nil {
		return nil, err
	}
	cfg := &fileConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// merge overlays non-zero values from other onto c.
func (c *fileConfig) merge(other fileConfig) {
	if len(other.Patterns) > 0 {
		c.Patterns = other.Patterns
	}
	if len(other.Names) > 0 {
		c.Names = other.Names
	}
	if other.Target != "" {
		c.Target = other.Target
	}
	if other.Registry != "" {
		c.Registry = other.Registry
	}
	if other.Header != "" {
		c.Header = other.Header
	}
	if other.Workers > 0 {
		c.Workers = other.Workers
	}
}
