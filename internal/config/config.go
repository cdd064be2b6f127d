// Package config loads the optional partialgen.yaml settings file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config filename looked up in the working directory.
const DefaultFile = "partialgen.yaml"

// Config holds generator settings.
type Config struct {
	// Packages are the package patterns to scan (go/packages syntax).
	Packages []string `yaml:"packages"`
	// Suffix is appended to generated filenames.
	Suffix string `yaml:"suffix"`
	// OptionalImport is the import path of the presence-container package
	// referenced by generated code.
	OptionalImport string `yaml:"optionalImport"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Packages:       []string{"./..."},
		Suffix:         "_partial.go",
		OptionalImport: "partial-generator/optional",
	}
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config, applying defaults for unset fields.
func Parse(data []byte) (Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()

	if len(cfg.Packages) == 0 {
		cfg.Packages = def.Packages
	}

	if cfg.Suffix == "" {
		cfg.Suffix = def.Suffix
	}

	if cfg.OptionalImport == "" {
		cfg.OptionalImport = def.OptionalImport
	}
}
