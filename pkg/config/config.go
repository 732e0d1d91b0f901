// Package config loads the optional YAML configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file consulted in the working directory when no
// explicit path is given.
const DefaultFile = "voxstitch.yaml"

// Config holds the file-backed defaults for a run. Command-line flags take
// precedence over every field here; none of these can alter which files
// qualify for stitching or the output document format.
type Config struct {
	LogLevel  string `yaml:"log_level"` // zap level: debug, info, warn or error
	Clipboard bool   `yaml:"clipboard"` // copy the stitched document to the clipboard
	Manifest  string `yaml:"manifest"`  // manifest path; empty disables the manifest
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{LogLevel: "info"}
}

// Load reads the YAML config at path. An empty path means the implicit
// DefaultFile lookup: when that file does not exist the built-in defaults are
// returned without error. An explicit path must exist and parse.
func Load(path string) (Config, error) {
	implicit := path == ""
	if implicit {
		path = DefaultFile
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if implicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}
