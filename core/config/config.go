package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tristendillon/dtsgen/core/errors"
	"github.com/tristendillon/dtsgen/core/logger"
	"gopkg.in/yaml.v3"
)

const FileName = "dtsgen.yaml"

type ErrorPolicy string

const (
	// Continue logs a failed descriptor and moves on to the next one.
	Continue ErrorPolicy = "continue"
	// Halt stops the run at the first failed descriptor.
	Halt ErrorPolicy = "halt"
)

type Config struct {
	Source            string      `yaml:"source"`
	DescriptorSuffix  string      `yaml:"descriptor_suffix"`
	DeclarationSuffix string      `yaml:"declaration_suffix"`
	OnError           ErrorPolicy `yaml:"on_error"`
	Exclude           []string    `yaml:"exclude"`
	Watch             Watch       `yaml:"watch"`
}

type Watch struct {
	Debounce time.Duration `yaml:"debounce"`
}

func Default() *Config {
	return &Config{
		Source:            filepath.Join("JvTypeGen", "output", "json"),
		DescriptorSuffix:  ".json",
		DeclarationSuffix: ".d.ts",
		OnError:           Continue,
		Exclude:           []string{},
		Watch: Watch{
			Debounce: 500 * time.Millisecond,
		},
	}
}

// Load reads dtsgen.yaml from the working directory.
func Load() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working dir: %w", err)
	}
	return LoadFrom(wd)
}

// LoadFrom reads dtsgen.yaml from dir, falling back to Default when the file
// does not exist. Keys missing from the file keep their default values.
func LoadFrom(dir string) (*Config, error) {
	filePath := filepath.Join(dir, FileName)
	if _, err := os.Stat(filePath); err != nil {
		logger.Debug("No config file found, using default config")
		return Default(), nil
	}
	return LoadFile(filePath)
}

func LoadFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.IO(err, "failed to read config file %s", filePath)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse yaml in %s", filePath)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", filePath)
	}

	logger.Debug("Config file found: %s", filePath)
	logger.Debug("Config: %+v", *cfg)
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Source == "" {
		return errors.New("source must not be empty")
	}
	if c.DescriptorSuffix == "" || c.DeclarationSuffix == "" {
		return errors.New("descriptor_suffix and declaration_suffix must not be empty")
	}
	if c.DescriptorSuffix == c.DeclarationSuffix {
		return errors.WithHint(
			errors.Newf("descriptor_suffix and declaration_suffix are both %q", c.DescriptorSuffix),
			"generated files would overwrite their descriptors")
	}
	switch c.OnError {
	case Continue, Halt:
	default:
		return errors.Newf("on_error must be %q or %q, got %q", Continue, Halt, c.OnError)
	}
	if c.Watch.Debounce < 0 {
		return errors.New("watch.debounce must not be negative")
	}
	return nil
}

// OutputPath maps a descriptor path to its sibling declaration path.
func (c *Config) OutputPath(descriptorPath string) string {
	return strings.TrimSuffix(descriptorPath, c.DescriptorSuffix) + c.DeclarationSuffix
}

func (c *Config) IsDescriptor(path string) bool {
	return strings.HasSuffix(path, c.DescriptorSuffix)
}
