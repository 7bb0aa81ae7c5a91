package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	neuromotor "github.com/xkilldash9x/neuromotor"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, neuromotor.DefaultConfig(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	t.Run("NestedOverrideApplies", func(t *testing.T) {
		cfg, err := Load(map[string]any{
			"noise": map[string]any{
				"sample_rate":      120.0,
				"tremor_frequency": 9.0,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 120.0, cfg.Noise.SampleRate)
		assert.Equal(t, 9.0, cfg.Noise.TremorFrequency)

		// Untouched keys keep their defaults.
		d := neuromotor.DefaultConfig()
		assert.Equal(t, d.Noise.NoiseCoefficient, cfg.Noise.NoiseCoefficient)
		assert.Equal(t, d.Fitts, cfg.Fitts)
	})

	t.Run("TopLevelOverride", func(t *testing.T) {
		cfg, err := Load(map[string]any{"velocity_asymmetry": 0.45})
		require.NoError(t, err)
		assert.Equal(t, 0.45, cfg.VelocityAsymmetry)
	})

	t.Run("InvalidOverrideRejected", func(t *testing.T) {
		_, err := Load(map[string]any{
			"noise": map[string]any{"sample_rate": -1.0},
		})
		assert.Error(t, err)
	})

	t.Run("InvalidAsymmetryRejected", func(t *testing.T) {
		_, err := Load(map[string]any{"velocity_asymmetry": 2.0})
		assert.Error(t, err)
	})
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("NEUROMOTOR_NOISE_SAMPLE_RATE", "90")
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 90.0, cfg.Noise.SampleRate)
}

func TestLoad_EnvironmentBeatsOverrides(t *testing.T) {
	t.Setenv("NEUROMOTOR_NOISE_SAMPLE_RATE", "90")
	cfg, err := Load(map[string]any{
		"noise": map[string]any{"sample_rate": 120.0},
	})
	require.NoError(t, err)
	assert.Equal(t, 90.0, cfg.Noise.SampleRate)
}
