package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all wallarea configuration.
type Config struct {
	// Calculation and result formatting
	Calculator CalculatorConfig `yaml:"calculator"`

	// Terminal form
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// CalculatorConfig configures the calculation core and how results are shown.
type CalculatorConfig struct {
	Unit      string `yaml:"unit"`      // length unit label, e.g. "m"
	Precision int    `yaml:"precision"` // decimals shown in results (0-10)

	// Reject openings whose combined width exceeds the total wall length.
	CheckOpeningWidth bool `yaml:"check_opening_width"`
}

// UIConfig configures the terminal form.
type UIConfig struct {
	Theme     string `yaml:"theme"` // auto, light, dark
	AltScreen bool   `yaml:"alt_screen"`
}

// ValidThemes lists the accepted ui.theme values.
var ValidThemes = []string{"auto", "light", "dark"}

// MaxPrecision bounds calculator.precision.
const MaxPrecision = 10

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Calculator: CalculatorConfig{
			Unit:              "m",
			Precision:         2,
			CheckOpeningWidth: false,
		},

		UI: UIConfig{
			Theme:     "auto",
			AltScreen: true,
		},

		Logging: LoggingConfig{
			Level:     "info",
			Format:    "json",
			DebugMode: false,
		},
	}
}

// DefaultDir returns ~/.wallarea, falling back to ./.wallarea.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wallarea"
	}
	return filepath.Join(home, ".wallarea")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the defaults.
// Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
// Malformed values are ignored.
func (c *Config) applyEnvOverrides() {
	if theme := os.Getenv("WALLAREA_THEME"); theme != "" {
		c.UI.Theme = strings.ToLower(theme)
	}
	if level := os.Getenv("WALLAREA_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
	if v := os.Getenv("WALLAREA_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.DebugMode = b
		}
	}
	if v := os.Getenv("WALLAREA_CHECK_OPENING_WIDTH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Calculator.CheckOpeningWidth = b
		}
	}
	if v := os.Getenv("WALLAREA_PRECISION"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Calculator.Precision = p
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Calculator.Precision < 0 || c.Calculator.Precision > MaxPrecision {
		return fmt.Errorf("invalid calculator precision: %d (valid: 0-%d)", c.Calculator.Precision, MaxPrecision)
	}
	if strings.TrimSpace(c.Calculator.Unit) == "" {
		return fmt.Errorf("calculator unit must not be empty")
	}
	if !slices.Contains(ValidThemes, c.UI.Theme) {
		return fmt.Errorf("invalid ui theme: %s (valid: %v)", c.UI.Theme, ValidThemes)
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return nil
}
