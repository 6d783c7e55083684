package config

import (
	"os"
	"path/filepath"
	"testing"

	"PriceSlider/internal/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, dataset.Default(), cfg.Slider.Dataset)
	assert.Equal(t, 20.0, cfg.Slider.Step)
	assert.True(t, cfg.QuantizationEnabled())
	assert.Equal(t, 0.0, cfg.Slider.MaxDistance)
	assert.Equal(t, 343.0, cfg.Layout.Width)
	assert.Equal(t, 65.0, cfg.Layout.Height)
	assert.Equal(t, 25.0, cfg.Appearance.HandleDiameter)
	assert.Equal(t, 2.0, cfg.Appearance.LineHeight)
	assert.Equal(t, "darkgray", cfg.Appearance.TrackColor)
	assert.Equal(t, "red", cfg.Appearance.HighlightColor)
	assert.Equal(t, "white", cfg.Appearance.HandleColor)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "config.yaml", `
slider:
  dataset: [10, 20, 30]
  step: 5
  quantization: false
  min_distance: 5
  max_distance: 10
  tick_count: 4
appearance:
  initial_color: gray
layout:
  width: 400
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []int{10, 20, 30}, cfg.Slider.Dataset)
	assert.Equal(t, 5.0, cfg.Slider.Step)
	assert.False(t, cfg.QuantizationEnabled())
	assert.Equal(t, 5.0, cfg.Slider.MinDistance)
	assert.Equal(t, 10.0, cfg.Slider.MaxDistance)
	assert.Equal(t, 4, cfg.Slider.TickCount)
	assert.Equal(t, "gray", cfg.Appearance.InitialColor)
	assert.Equal(t, 400.0, cfg.Layout.Width)
	assert.Equal(t, 65.0, cfg.Layout.Height)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "slider: [unclosed")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "config.yaml", "slider:\n  step: 5\n")
	t.Setenv("PRICESLIDER_DATASET", "1,2,3,4")
	t.Setenv("PRICESLIDER_STEP", "10")
	t.Setenv("PRICESLIDER_QUANTIZATION", "false")
	t.Setenv("PRICESLIDER_MIN_DISTANCE", "10")
	t.Setenv("PRICESLIDER_MAX_DISTANCE", "20")
	t.Setenv("PRICESLIDER_TICK_COUNT", "3")
	t.Setenv("PRICESLIDER_WIDTH", "500")
	t.Setenv("PRICESLIDER_HEIGHT", "80")
	t.Setenv("PRICESLIDER_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4}, cfg.Slider.Dataset)
	assert.Equal(t, 10.0, cfg.Slider.Step)
	assert.False(t, cfg.QuantizationEnabled())
	assert.Equal(t, 10.0, cfg.Slider.MinDistance)
	assert.Equal(t, 20.0, cfg.Slider.MaxDistance)
	assert.Equal(t, 3, cfg.Slider.TickCount)
	assert.Equal(t, 500.0, cfg.Layout.Width)
	assert.Equal(t, 80.0, cfg.Layout.Height)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_BadEnvDataset(t *testing.T) {
	t.Setenv("PRICESLIDER_DATASET", "5,1")
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, dataset.ErrUnordered)
}

func TestLoad_BadEnvNumber(t *testing.T) {
	t.Setenv("PRICESLIDER_STEP", "twenty")
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read environment")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"unordered dataset", func(c *Config) { c.Slider.Dataset = []int{3, 2} }, "slider.dataset"},
		{"negative step", func(c *Config) { c.Slider.Step = -1 }, "slider.step must be positive"},
		{"negative min distance", func(c *Config) { c.Slider.MinDistance = -1 }, "slider.min_distance"},
		{"negative max distance", func(c *Config) { c.Slider.MaxDistance = -1 }, "slider.max_distance must not be negative"},
		{"max below min", func(c *Config) { c.Slider.MinDistance = 40; c.Slider.MaxDistance = 20 }, "below slider.min_distance"},
		{"negative tick count", func(c *Config) { c.Slider.TickCount = -2 }, "slider.tick_count"},
		{"zero width", func(c *Config) { c.Layout.Width = 0 }, "layout.width"},
		{"zero handle", func(c *Config) { c.Appearance.HandleDiameter = 0 }, "appearance.handle_diameter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
			require.NoError(t, err)
			tt.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDatasetProvider(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	values, err := cfg.DatasetProvider().Load()
	require.NoError(t, err)
	assert.Equal(t, dataset.Default(), values)

	cfg.Slider.DatasetFile = writeFile(t, "buckets.yaml", "[1, 2]\n")
	p := cfg.DatasetProvider()
	assert.Equal(t, "file", p.Name())
	values, err = p.Load()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, values)
}

func TestLoadDotEnv(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	path := writeFile(t, ".env", "PRICESLIDER_TICK_COUNT=6\n")
	t.Setenv("PRICESLIDER_TICK_COUNT", "")
	os.Unsetenv("PRICESLIDER_TICK_COUNT")
	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "6", os.Getenv("PRICESLIDER_TICK_COUNT"))

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Slider.TickCount)
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	path := writeFile(t, ".env", "PRICESLIDER_LOG_LEVEL=debug\n")
	t.Setenv("PRICESLIDER_LOG_LEVEL", "error")
	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "error", os.Getenv("PRICESLIDER_LOG_LEVEL"))
}
