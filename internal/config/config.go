// Package config provides reading and validation of trellis site
// configuration. A site is configured by a single trellis.yaml in the
// project root: directory settings plus the ordered list of extension
// activations the host applies at boot.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// DefaultPath is the config file looked for in the project root.
const DefaultPath = "trellis.yaml"

// Directory defaults applied when not configured.
const (
	DefaultSourceDir = "source"
	DefaultBuildDir  = "build"
	DefaultCSSDir    = "stylesheets"
	DefaultJSDir     = "javascripts"
	DefaultImagesDir = "images"
)

// Settings is the host configuration read handle handed to every extension
// instance. Named directories cover the common cases; Data carries free-form
// keys for config-surface operations that need to publish values to later
// phases.
type Settings struct {
	SourceDir string `yaml:"source,omitempty"`
	BuildDir  string `yaml:"build,omitempty"`
	CSSDir    string `yaml:"css_dir,omitempty"`
	JSDir     string `yaml:"js_dir,omitempty"`
	ImagesDir string `yaml:"images_dir,omitempty"`

	Data map[string]any `yaml:"data,omitempty"`
}

// Get returns a free-form setting by key.
func (s *Settings) Get(key string) (any, bool) {
	v, ok := s.Data[key]
	return v, ok
}

// Set stores a free-form setting. Extensions writing here during the
// configuration phases make the value visible to every later subscriber.
func (s *Settings) Set(key string, value any) {
	if s.Data == nil {
		s.Data = make(map[string]any)
	}
	s.Data[key] = value
}

// Clone returns a deep copy of the settings. The Data map is copied too, so
// writes through the clone never reach the original.
func (s *Settings) Clone() *Settings {
	out := *s
	if s.Data != nil {
		out.Data = make(map[string]any, len(s.Data))
		for k, v := range s.Data {
			out.Data[k] = v
		}
	}
	return &out
}

// applyDefaults fills unset directories with their conventional values.
func (s *Settings) applyDefaults() {
	if s.SourceDir == "" {
		s.SourceDir = DefaultSourceDir
	}
	if s.BuildDir == "" {
		s.BuildDir = DefaultBuildDir
	}
	if s.CSSDir == "" {
		s.CSSDir = DefaultCSSDir
	}
	if s.JSDir == "" {
		s.JSDir = DefaultJSDir
	}
	if s.ImagesDir == "" {
		s.ImagesDir = DefaultImagesDir
	}
}

// Activation is one declarative extension activation: the registered name
// plus option overrides merged over the extension's schema defaults.
type Activation struct {
	Name    string         `yaml:"name"`
	Options map[string]any `yaml:"options,omitempty"`
}

// Config is the full site configuration.
type Config struct {
	Settings   Settings     `yaml:"settings,omitempty"`
	Extensions []Activation `yaml:"extensions,omitempty"`
}

// Default returns a configuration with conventional directories and no
// extension activations.
func Default() *Config {
	cfg := &Config{}
	cfg.Settings.applyDefaults()
	return cfg
}

// Load reads configuration from path. A missing file yields the defaults,
// so a bare site builds without any configuration present.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w", path, err)
	}
	cfg.Settings.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the configuration for values the host cannot work with.
func (c *Config) Validate() error {
	if c.Settings.SourceDir == c.Settings.BuildDir {
		return fmt.Errorf("%w: source and build directories must differ, both are %q",
			ErrInvalidValue, c.Settings.SourceDir)
	}
	for i, act := range c.Extensions {
		if act.Name == "" {
			return fmt.Errorf("%w: extensions[%d] has no name", ErrInvalidValue, i)
		}
	}
	return nil
}
