package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/olivier-w/springconv/internal/spring"
	"gopkg.in/yaml.v3"
)

// EnvPath overrides the config file location.
const EnvPath = "SPRINGCONV_CONFIG"

// Config holds the startup state of the converter form.
type Config struct {
	InputMode       spring.InputMode
	OutputGroup     spring.OutputGroup
	Response        float64
	DampingFraction float64
	Duration        float64
	Bounce          float64
}

type fileConfig struct {
	InputMode       string   `yaml:"input_mode"`
	OutputGroup     string   `yaml:"output_group"`
	Response        *float64 `yaml:"response"`
	DampingFraction *float64 `yaml:"damping_fraction"`
	Duration        *float64 `yaml:"duration"`
	Bounce          *float64 `yaml:"bounce"`
}

// Default returns the values the form starts with when no config exists.
func Default() Config {
	return Config{
		InputMode:       spring.ResponseDamping,
		OutputGroup:     spring.Android,
		Response:        0.3,
		DampingFraction: 0.7,
		Duration:        0.29,
		Bounce:          0.3,
	}
}

// Path returns the config file path, honouring EnvPath.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "springconv", "config.yaml")
}

// Load reads the config at path. A missing file yields Default with no error.
// On any other failure Default is returned together with the error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}
	parsed, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return parsed, nil
}

// Parse decodes YAML config data over Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	mode, err := spring.ParseInputMode(fc.InputMode)
	if err != nil {
		return cfg, err
	}
	group, err := spring.ParseOutputGroup(fc.OutputGroup)
	if err != nil {
		return cfg, err
	}
	cfg.InputMode = mode
	cfg.OutputGroup = group

	setIf(&cfg.Response, fc.Response)
	setIf(&cfg.DampingFraction, fc.DampingFraction)
	setIf(&cfg.Duration, fc.Duration)
	setIf(&cfg.Bounce, fc.Bounce)
	return cfg, nil
}

// Inputs returns the two configured values for the configured input mode.
func (c Config) Inputs() (float64, float64) {
	if c.InputMode == spring.DurationBounceMode {
		return c.Duration, c.Bounce
	}
	return c.Response, c.DampingFraction
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
