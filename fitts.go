// fitts.go
package neuromotor

import "math"

// effectiveWidthDivisor converts a nominal target width into the effective
// width of a 4% error-rate pointing task (4.133 = 2 * 2.0665, the 96%
// two-sided z-range of a unit Gaussian).
const effectiveWidthDivisor = 4.133

// FittsParams parameterizes the speed/accuracy timing model. Coefficient
// means and deviations are in seconds and seconds-per-bit.
type FittsParams struct {
	AMean      float64 `mapstructure:"a_mean"`
	AStdDev    float64 `mapstructure:"a_std_dev"`
	BMean      float64 `mapstructure:"b_mean"`
	BStdDev    float64 `mapstructure:"b_std_dev"`
	AFloor     float64 `mapstructure:"a_floor"`
	BFloor     float64 `mapstructure:"b_floor"`
	// MaxThroughput caps performance in bits per second. Movement times
	// are floored so implied throughput never exceeds it.
	MaxThroughput float64 `mapstructure:"max_throughput"`
	// ErrorRate is the nominal miss probability of the aim-point model.
	ErrorRate float64 `mapstructure:"error_rate"`
}

// DefaultFittsParams returns coefficients for an average adult on a
// desktop pointing device.
func DefaultFittsParams() FittsParams {
	return FittsParams{
		AMean:         0.300,
		AStdDev:       0.050,
		BMean:         0.100,
		BStdDev:       0.010,
		AFloor:        0.150,
		BFloor:        0.060,
		MaxThroughput: 12.0,
		ErrorRate:     0.04,
	}
}

// FittsModel produces per-movement timing from per-draw coefficients.
type FittsModel struct {
	params  FittsParams
	sampler *Sampler
}

// NewFittsModel builds a timing model over the given sampler.
func NewFittsModel(params FittsParams, sampler *Sampler) *FittsModel {
	return &FittsModel{params: params, sampler: sampler}
}

// IndexOfDifficulty computes the Shannon form ID = log2(2d/w) in bits. A
// non-positive width is treated as 1 px, and a non-positive distance
// yields the 0.5 bit sentinel so downstream timing stays non-degenerate.
func IndexOfDifficulty(distance, width float64) float64 {
	if width <= 0 {
		width = 1
	}
	if distance <= 0 {
		return 0.5
	}
	return math.Log2(2 * distance / width)
}

// EffectiveWidth converts nominal target width to the effective width used
// for endpoint scatter. A non-positive width is treated as 1 px.
func EffectiveWidth(width float64) float64 {
	if width <= 0 {
		width = 1
	}
	return width / effectiveWidthDivisor
}

// SampleCoefficients draws the per-movement intercept and slope, floored
// so that no draw implies superhuman readiness or transmission speed.
func (m *FittsModel) SampleCoefficients() (a, b float64) {
	a = math.Max(m.params.AFloor, m.sampler.Normal(m.params.AMean, m.params.AStdDev))
	b = math.Max(m.params.BFloor, m.sampler.Normal(m.params.BMean, m.params.BStdDev))
	return a, b
}

// MovementTime draws coefficients and returns the movement time in seconds
// for a task of the given distance and width.
func (m *FittsModel) MovementTime(distance, width float64) float64 {
	a, b := m.SampleCoefficients()
	return m.MovementTimeWith(a, b, distance, width)
}

// MovementTimeWith computes mt = a + b*ID with fixed coefficients, floored
// at the throughput ceiling ID/MaxThroughput.
func (m *FittsModel) MovementTimeWith(a, b, distance, width float64) float64 {
	id := IndexOfDifficulty(distance, width)
	mt := a + b*id
	if m.params.MaxThroughput > 0 {
		if floor := id / m.params.MaxThroughput; mt < floor {
			mt = floor
		}
	}
	return mt
}

// Throughput computes ID/mt in bits per second. A non-positive duration
// returns +Inf, which always fails the plausibility check.
func Throughput(distance, width, duration float64) float64 {
	if duration <= 0 {
		return math.Inf(1)
	}
	return IndexOfDifficulty(distance, width) / duration
}

// throughputTolerance absorbs the float rounding of mt = ID/MaxThroughput
// and the nanosecond truncation of sample timestamps, so a movement timed
// exactly at the floor is not rejected over a rounding residue.
const throughputTolerance = 1e-6

// ValidateHumanPlausible reports whether an observed movement stays under
// the throughput ceiling.
func (m *FittsModel) ValidateHumanPlausible(distance, width, duration float64) bool {
	return Throughput(distance, width, duration) <= m.params.MaxThroughput*(1+throughputTolerance)
}
