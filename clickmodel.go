// clickmodel.go
package neuromotor

import "time"

// ClickParams parameterizes click hold and post-movement dwell durations.
// The mu/sigma pairs are the underlying normal parameters of log-normal
// draws in milliseconds; the bounds clamp the samples.
type ClickParams struct {
	HoldMu      float64 `mapstructure:"hold_mu"`
	HoldSigma   float64 `mapstructure:"hold_sigma"`
	HoldMin     float64 `mapstructure:"hold_min_ms"`
	HoldMax     float64 `mapstructure:"hold_max_ms"`
	DwellMu     float64 `mapstructure:"dwell_mu"`
	DwellSigma  float64 `mapstructure:"dwell_sigma"`
	DwellMin    float64 `mapstructure:"dwell_min_ms"`
	DwellMax    float64 `mapstructure:"dwell_max_ms"`
}

// DefaultClickParams returns hold times centered near 100 ms and dwell
// times centered near 245 ms.
func DefaultClickParams() ClickParams {
	return ClickParams{
		HoldMu:     4.6,
		HoldSigma:  0.25,
		HoldMin:    50,
		HoldMax:    350,
		DwellMu:    5.5,
		DwellSigma: 0.3,
		DwellMin:   100,
		DwellMax:   800,
	}
}

// ClickModel draws button hold and verification dwell durations.
type ClickModel struct {
	params  ClickParams
	sampler *Sampler
}

// NewClickModel builds a click timing model over the given sampler.
func NewClickModel(params ClickParams, sampler *Sampler) *ClickModel {
	return &ClickModel{params: params, sampler: sampler}
}

// ClickDuration draws the press-to-release hold time for a single click.
func (c *ClickModel) ClickDuration() time.Duration {
	ms := clamp(c.sampler.LogNormal(c.params.HoldMu, c.params.HoldSigma),
		c.params.HoldMin, c.params.HoldMax)
	return time.Duration(ms * float64(time.Millisecond))
}

// VerificationDwell draws the pause after a movement lands, while the
// landing position is visually confirmed before the next action.
func (c *ClickModel) VerificationDwell() time.Duration {
	ms := clamp(c.sampler.LogNormal(c.params.DwellMu, c.params.DwellSigma),
		c.params.DwellMin, c.params.DwellMax)
	return time.Duration(ms * float64(time.Millisecond))
}
