package config

import (
	"fmt"
	"os"

	"PriceSlider/internal/dataset"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. PRICESLIDER_STEP.
const EnvPrefix = "PRICESLIDER"

// Config holds all application configuration.
type Config struct {
	Slider struct {
		Dataset      []int   `yaml:"dataset"`
		DatasetFile  string  `yaml:"dataset_file"`
		MinValue     float64 `yaml:"min_value"`
		Step         float64 `yaml:"step"`
		Quantization *bool   `yaml:"quantization"`
		MinDistance  float64 `yaml:"min_distance"`
		MaxDistance  float64 `yaml:"max_distance"` // 0 means unlimited
		TickCount    int     `yaml:"tick_count"`   // 0 means one per bucket
	} `yaml:"slider"`
	Appearance struct {
		TrackColor        string  `yaml:"track_color"`
		HighlightColor    string  `yaml:"highlight_color"`
		InitialColor      string  `yaml:"initial_color"`
		HandleColor       string  `yaml:"handle_color"`
		HandleDiameter    float64 `yaml:"handle_diameter"`
		HandleBorderWidth float64 `yaml:"handle_border_width"`
		LineHeight        float64 `yaml:"line_height"`
	} `yaml:"appearance"`
	Layout struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"layout"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// EnvOverrides are read from PRICESLIDER_* variables. Unset variables leave
// the file value alone.
type EnvOverrides struct {
	Dataset      *string  `envconfig:"DATASET"`
	DatasetFile  *string  `envconfig:"DATASET_FILE"`
	Step         *float64 `envconfig:"STEP"`
	Quantization *bool    `envconfig:"QUANTIZATION"`
	MinDistance  *float64 `envconfig:"MIN_DISTANCE"`
	MaxDistance  *float64 `envconfig:"MAX_DISTANCE"`
	TickCount    *int     `envconfig:"TICK_COUNT"`
	Width        *float64 `envconfig:"WIDTH"`
	Height       *float64 `envconfig:"HEIGHT"`
	LogLevel     *string  `envconfig:"LOG_LEVEL"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	var env EnvOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.apply(env); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) apply(env EnvOverrides) error {
	if env.Dataset != nil {
		values, err := dataset.Parse(*env.Dataset)
		if err != nil {
			return fmt.Errorf("parse %s_DATASET: %w", EnvPrefix, err)
		}
		c.Slider.Dataset = values
	}
	if env.DatasetFile != nil {
		c.Slider.DatasetFile = *env.DatasetFile
	}
	if env.Step != nil {
		c.Slider.Step = *env.Step
	}
	if env.Quantization != nil {
		c.Slider.Quantization = env.Quantization
	}
	if env.MinDistance != nil {
		c.Slider.MinDistance = *env.MinDistance
	}
	if env.MaxDistance != nil {
		c.Slider.MaxDistance = *env.MaxDistance
	}
	if env.TickCount != nil {
		c.Slider.TickCount = *env.TickCount
	}
	if env.Width != nil {
		c.Layout.Width = *env.Width
	}
	if env.Height != nil {
		c.Layout.Height = *env.Height
	}
	if env.LogLevel != nil {
		c.Log.Level = *env.LogLevel
	}
	return nil
}

func (c *Config) applyDefaults() {
	if len(c.Slider.Dataset) == 0 && c.Slider.DatasetFile == "" {
		c.Slider.Dataset = dataset.Default()
	}
	if c.Slider.Step == 0 {
		c.Slider.Step = 20
	}
	if c.Slider.Quantization == nil {
		on := true
		c.Slider.Quantization = &on
	}
	if c.Appearance.TrackColor == "" {
		c.Appearance.TrackColor = "darkgray"
	}
	if c.Appearance.HighlightColor == "" {
		c.Appearance.HighlightColor = "red"
	}
	if c.Appearance.HandleColor == "" {
		c.Appearance.HandleColor = "white"
	}
	if c.Appearance.HandleDiameter == 0 {
		c.Appearance.HandleDiameter = 25
	}
	if c.Appearance.LineHeight == 0 {
		c.Appearance.LineHeight = 2
	}
	if c.Layout.Width == 0 {
		c.Layout.Width = 343
	}
	if c.Layout.Height == 0 {
		c.Layout.Height = 65
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// QuantizationEnabled reports the effective quantization flag.
func (c *Config) QuantizationEnabled() bool {
	return c.Slider.Quantization == nil || *c.Slider.Quantization
}

// DatasetProvider returns where the buckets come from: the dataset file when
// one is configured, otherwise the inline list.
func (c *Config) DatasetProvider() dataset.Provider {
	if c.Slider.DatasetFile != "" {
		return &dataset.File{Path: c.Slider.DatasetFile}
	}
	return &dataset.Static{Values: c.Slider.Dataset}
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if c.Slider.DatasetFile == "" {
		if err := dataset.Validate(c.Slider.Dataset); err != nil {
			return fmt.Errorf("slider.dataset: %w", err)
		}
	}
	if c.Slider.Step <= 0 {
		return fmt.Errorf("slider.step must be positive")
	}
	if c.Slider.MinDistance < 0 {
		return fmt.Errorf("slider.min_distance must not be negative")
	}
	if c.Slider.MaxDistance < 0 {
		return fmt.Errorf("slider.max_distance must not be negative")
	}
	if c.Slider.MaxDistance > 0 && c.Slider.MaxDistance < c.Slider.MinDistance {
		return fmt.Errorf("slider.max_distance must not be below slider.min_distance")
	}
	if c.Slider.TickCount < 0 {
		return fmt.Errorf("slider.tick_count must not be negative")
	}
	if c.Layout.Width <= 0 || c.Layout.Height <= 0 {
		return fmt.Errorf("layout.width and layout.height must be positive")
	}
	if c.Appearance.HandleDiameter <= 0 {
		return fmt.Errorf("appearance.handle_diameter must be positive")
	}
	return nil
}
