// config.go
package neuromotor

import "fmt"

// Config holds every parameter of the synthesis pipeline. It is assembled
// once, validated at construction, and never mutated afterwards.
type Config struct {
	Fitts   FittsParams   `mapstructure:"fitts"`
	Planner PlannerParams `mapstructure:"planner"`
	Path    PathParams    `mapstructure:"path"`
	Noise   NoiseConfig   `mapstructure:"noise"`
	Click   ClickParams   `mapstructure:"click"`
	// VelocityAsymmetry is the time fraction of the velocity peak within a
	// movement. Human reaching peaks before the midpoint.
	VelocityAsymmetry float64 `mapstructure:"velocity_asymmetry"`
	// EndpointCorrelation couples the horizontal and vertical scatter of
	// the aim point.
	EndpointCorrelation float64 `mapstructure:"endpoint_correlation"`
}

// DefaultConfig returns a configuration representing an average user on a
// desktop pointing device.
func DefaultConfig() Config {
	return Config{
		Fitts:               DefaultFittsParams(),
		Planner:             DefaultPlannerParams(),
		Path:                DefaultPathParams(),
		Noise:               DefaultNoiseConfig(),
		Click:               DefaultClickParams(),
		VelocityAsymmetry:   0.42,
		EndpointCorrelation: 0.0,
	}
}

// Validate rejects configurations that would make the pipeline degenerate.
// All violations are reported eagerly here so synthesis never has to error
// on well-formed numeric input.
func (c Config) Validate() error {
	if c.Noise.SampleRate <= 0 {
		return fmt.Errorf("config: sample rate %v must be positive", c.Noise.SampleRate)
	}
	if c.VelocityAsymmetry <= 0 || c.VelocityAsymmetry >= 1 {
		return fmt.Errorf("config: velocity asymmetry %v must be in (0, 1)", c.VelocityAsymmetry)
	}
	if c.EndpointCorrelation < -1 || c.EndpointCorrelation > 1 {
		return fmt.Errorf("config: endpoint correlation %v must be in [-1, 1]", c.EndpointCorrelation)
	}
	if c.Fitts.AStdDev < 0 || c.Fitts.BStdDev < 0 {
		return fmt.Errorf("config: fitts coefficient deviations must be non-negative")
	}
	if c.Fitts.MaxThroughput <= 0 {
		return fmt.Errorf("config: max throughput %v must be positive", c.Fitts.MaxThroughput)
	}
	if c.Planner.PrimaryCoverageStdDev < 0 || c.Planner.CorrectionGainStdDev < 0 {
		return fmt.Errorf("config: planner deviations must be non-negative")
	}
	if c.Planner.MaxCorrections < 0 {
		return fmt.Errorf("config: max corrections %d must be non-negative", c.Planner.MaxCorrections)
	}
	if c.Path.MidpointDeviation < 0 || c.Path.PerturbationScale < 0 {
		return fmt.Errorf("config: path deviations must be non-negative")
	}
	if c.Noise.NoiseCoefficient < 0 || c.Noise.TremorAmplitude < 0 || c.Noise.DriftAmplitude < 0 {
		return fmt.Errorf("config: noise amplitudes must be non-negative")
	}
	if c.Noise.TremorBandwidth <= 0 {
		return fmt.Errorf("config: tremor bandwidth %v must be positive", c.Noise.TremorBandwidth)
	}
	if c.Click.HoldSigma < 0 || c.Click.DwellSigma < 0 {
		return fmt.Errorf("config: click timing sigmas must be non-negative")
	}
	if c.Click.HoldMin >= c.Click.HoldMax {
		return fmt.Errorf("config: click hold bounds [%v, %v] are inverted", c.Click.HoldMin, c.Click.HoldMax)
	}
	if c.Click.DwellMin >= c.Click.DwellMax {
		return fmt.Errorf("config: dwell bounds [%v, %v] are inverted", c.Click.DwellMin, c.Click.DwellMax)
	}
	return nil
}
