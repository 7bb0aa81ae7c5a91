// Package config assembles engine parameters from defaults, environment
// variables and programmatic overrides. There is deliberately no file
// loading here; embedding applications own their config files and hand
// overrides in as a map.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	neuromotor "github.com/xkilldash9x/neuromotor"
)

const envPrefix = "NEUROMOTOR"

// Load builds a validated engine configuration. Precedence, lowest to
// highest: built-in defaults, the overrides map (nested keys, e.g.
// "noise" -> "sample_rate"), then NEUROMOTOR_* environment variables.
func Load(overrides map[string]any) (neuromotor.Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(overrides) > 0 {
		if err := v.MergeConfigMap(overrides); err != nil {
			return neuromotor.Config{}, fmt.Errorf("config: merging overrides: %w", err)
		}
	}

	cfg := neuromotor.DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return neuromotor.Config{}, fmt.Errorf("config: unmarshaling: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return neuromotor.Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := neuromotor.DefaultConfig()

	v.SetDefault("velocity_asymmetry", d.VelocityAsymmetry)
	v.SetDefault("endpoint_correlation", d.EndpointCorrelation)

	v.SetDefault("fitts.a_mean", d.Fitts.AMean)
	v.SetDefault("fitts.a_std_dev", d.Fitts.AStdDev)
	v.SetDefault("fitts.b_mean", d.Fitts.BMean)
	v.SetDefault("fitts.b_std_dev", d.Fitts.BStdDev)
	v.SetDefault("fitts.a_floor", d.Fitts.AFloor)
	v.SetDefault("fitts.b_floor", d.Fitts.BFloor)
	v.SetDefault("fitts.max_throughput", d.Fitts.MaxThroughput)
	v.SetDefault("fitts.error_rate", d.Fitts.ErrorRate)

	v.SetDefault("planner.single_movement_threshold", d.Planner.SingleMovementThreshold)
	v.SetDefault("planner.primary_coverage_mean", d.Planner.PrimaryCoverageMean)
	v.SetDefault("planner.primary_coverage_std_dev", d.Planner.PrimaryCoverageStdDev)
	v.SetDefault("planner.primary_coverage_min", d.Planner.PrimaryCoverageMin)
	v.SetDefault("planner.primary_coverage_max", d.Planner.PrimaryCoverageMax)
	v.SetDefault("planner.primary_lateral_ratio", d.Planner.PrimaryLateralRatio)
	v.SetDefault("planner.primary_fraction_min", d.Planner.PrimaryFractionMin)
	v.SetDefault("planner.primary_fraction_max", d.Planner.PrimaryFractionMax)
	v.SetDefault("planner.correction_gain_mean", d.Planner.CorrectionGainMean)
	v.SetDefault("planner.correction_gain_std_dev", d.Planner.CorrectionGainStdDev)
	v.SetDefault("planner.correction_gain_min", d.Planner.CorrectionGainMin)
	v.SetDefault("planner.correction_gain_max", d.Planner.CorrectionGainMax)
	v.SetDefault("planner.correction_lateral_ratio", d.Planner.CorrectionLateralRatio)
	v.SetDefault("planner.correction_fraction_min", d.Planner.CorrectionFractionMin)
	v.SetDefault("planner.correction_fraction_max", d.Planner.CorrectionFractionMax)
	v.SetDefault("planner.correction_probability", d.Planner.CorrectionProbability)
	v.SetDefault("planner.max_corrections", d.Planner.MaxCorrections)
	v.SetDefault("planner.residual_width_ratio", d.Planner.ResidualWidthRatio)
	v.SetDefault("planner.min_remaining_fraction", d.Planner.MinRemainingFraction)
	v.SetDefault("planner.final_touch_threshold", d.Planner.FinalTouchThreshold)

	v.SetDefault("path.midpoint_deviation", d.Path.MidpointDeviation)
	v.SetDefault("path.perturbation_scale", d.Path.PerturbationScale)
	v.SetDefault("path.straight_threshold", d.Path.StraightThreshold)

	v.SetDefault("noise.noise_coefficient", d.Noise.NoiseCoefficient)
	v.SetDefault("noise.tremor_frequency", d.Noise.TremorFrequency)
	v.SetDefault("noise.tremor_bandwidth", d.Noise.TremorBandwidth)
	v.SetDefault("noise.tremor_amplitude", d.Noise.TremorAmplitude)
	v.SetDefault("noise.drift_amplitude", d.Noise.DriftAmplitude)
	v.SetDefault("noise.drift_frequency", d.Noise.DriftFrequency)
	v.SetDefault("noise.sample_rate", d.Noise.SampleRate)

	v.SetDefault("click.hold_mu", d.Click.HoldMu)
	v.SetDefault("click.hold_sigma", d.Click.HoldSigma)
	v.SetDefault("click.hold_min_ms", d.Click.HoldMin)
	v.SetDefault("click.hold_max_ms", d.Click.HoldMax)
	v.SetDefault("click.dwell_mu", d.Click.DwellMu)
	v.SetDefault("click.dwell_sigma", d.Click.DwellSigma)
	v.SetDefault("click.dwell_min_ms", d.Click.DwellMin)
	v.SetDefault("click.dwell_max_ms", d.Click.DwellMax)
}
