package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 0.55, cfg.Cropper.TopFraction)
	assert.Equal(t, "assets/PetUwrite transparent.png", cfg.Paths.Input)
	assert.Equal(t, "assets/PetUwrite icon only.png", cfg.Paths.Output)
	assert.Equal(t, "default", cfg.Output.CompressionLevel)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromFilePartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cropper": {"top_fraction": 0.4}}`), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 0.4, cfg.Cropper.TopFraction)
	assert.Equal(t, DefaultInputPath, cfg.Paths.Input)
	assert.Equal(t, DefaultOutputPath, cfg.Paths.Output)
}

func TestLoadFromFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFromFile(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "failed to read config file")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = LoadFromFile(bad)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Cropper.TopFraction = 0.6
	cfg.Paths.Input = "in.png"
	cfg.Output.CompressionLevel = "best"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestResolveExplicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"paths": {"output": "out.png"}}`), 0o644))

	cfg, from, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, path, from)
	assert.Equal(t, "out.png", cfg.Paths.Output)

	_, _, err = Resolve(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestResolveFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, from, err := Resolve("")
	require.NoError(t, err)
	assert.Empty(t, from)
	assert.Equal(t, Default(), cfg)
}

func TestResolveUserConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, (&Config{
		Cropper: CropperConfig{TopFraction: 0.7},
		Paths:   PathsConfig{Input: "a.png", Output: "b.png"},
	}).SaveToFile(GetConfigPath()))

	cfg, from, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, GetConfigPath(), from)
	assert.Equal(t, 0.7, cfg.Cropper.TopFraction)
	assert.Equal(t, "a.png", cfg.Paths.Input)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{name: "zero fraction", mutate: func(c *Config) { c.Cropper.TopFraction = 0 }, errMsg: "top_fraction"},
		{name: "fraction above one", mutate: func(c *Config) { c.Cropper.TopFraction = 1.2 }, errMsg: "top_fraction"},
		{name: "empty input", mutate: func(c *Config) { c.Paths.Input = "" }, errMsg: "paths.input"},
		{name: "empty output", mutate: func(c *Config) { c.Paths.Output = "" }, errMsg: "paths.output"},
		{name: "bad compression", mutate: func(c *Config) { c.Output.CompressionLevel = "ultra" }, errMsg: "compression_level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.errMsg)
		})
	}

	full := Default()
	full.Cropper.TopFraction = 1
	assert.NoError(t, full.Validate())
}
