package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config captures user-level settings stored in .quip/config.yaml.
//
// Example YAML:
//
//	provider: openai
//	model: gpt-5
//	model_verbosity: low
//
// Zero-value Config is invalid – use Default() when no config file is
// found.
//
// NOTE: keep field tags in sync with YAML when extending this struct.
type Config struct {
	Provider string `yaml:"provider"`

	// Model is the concrete model identifier requests are sent to.
	Model string `yaml:"model"`

	// ModelVerbosity is nil when the model_verbosity key is absent from the
	// file. Absence is distinct from an invalid value: the former falls back
	// to DefaultVerbosity at request-build time (for models that honor the
	// knob), the latter fails Load.
	ModelVerbosity *Verbosity `yaml:"model_verbosity,omitempty"`

	Logging `yaml:"logging"`
}

// Logging captures logging-specific settings.
type Logging struct {
	Level                string `yaml:"level"`
	RequestResponseDebug bool   `yaml:"request-response-debug"`
}

// defaultProvider is used when no configuration file exists or the provider
// key is empty. The value must always map to a known provider in the llm
// dispatcher.
const defaultProvider = "openai"

// defaultModel is used when no configuration file exists or the model key is
// empty.
const defaultModel = "gpt-5"

// relPath is the config file location relative to the project root.
const relPath = ".quip/config.yaml"

// Default returns a Config populated with hard-coded defaults. It should
// be used whenever .quip/config.yaml is missing.
func Default() *Config {
	return &Config{
		Provider: defaultProvider,
		Model:    defaultModel,
		Logging: Logging{
			Level:                "info",
			RequestResponseDebug: false,
		},
	}
}

// Load reads .quip/config.yaml located under projectRoot. When the file
// does not exist the function returns Default() with a nil error so the
// caller can proceed transparently. Any other I/O or unmarshalling error
// is propagated – including an invalid model_verbosity token.
func Load(projectRoot string) (*Config, error) {
	if projectRoot == "" {
		return nil, fmt.Errorf("projectRoot must not be empty")
	}
	return LoadFS(os.DirFS(projectRoot))
}

// LoadFS performs the same operation as Load but works directly on an
// fs.FS. This facilitates unit-testing with fstest.MapFS.
func LoadFS(fsys fs.FS) (*Config, error) {
	data, err := fs.ReadFile(fsys, relPath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file – fall back to defaults.
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", relPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", relPath, err)
	}

	// Basic sanity check – default when keys are empty.
	if cfg.Provider == "" {
		cfg.Provider = defaultProvider
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	return &cfg, nil
}

// Save writes cfg to .quip/config.yaml under projectRoot, creating the
// .quip directory when needed.
func Save(projectRoot string, cfg *Config) error {
	if projectRoot == "" {
		return fmt.Errorf("projectRoot must not be empty")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	target := filepath.Join(projectRoot, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(target), err)
	}
	return os.WriteFile(target, data, 0o644)
}
