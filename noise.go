// noise.go
package neuromotor

import (
	"math"

	"github.com/aquilax/go-perlin"
	"gonum.org/v1/gonum/stat"
)

// noiseFloor is the minimum jitter standard deviation in pixels, applied
// even when the pointer is nearly stationary.
const noiseFloor = 0.1

// NoiseConfig parameterizes the neuromotor noise channels layered onto a
// clean trajectory.
type NoiseConfig struct {
	// NoiseCoefficient scales signal-dependent jitter with instantaneous
	// speed in px/s.
	NoiseCoefficient float64 `mapstructure:"noise_coefficient"`
	// TremorFrequency and TremorBandwidth place the physiological tremor
	// band, nominally 8-12 Hz.
	TremorFrequency float64 `mapstructure:"tremor_frequency"`
	TremorBandwidth float64 `mapstructure:"tremor_bandwidth"`
	// TremorAmplitude is the target standard deviation of the tremor
	// channel in pixels.
	TremorAmplitude float64 `mapstructure:"tremor_amplitude"`
	// DriftAmplitude and DriftFrequency shape the slow Perlin wander in
	// pixels and Hz.
	DriftAmplitude float64 `mapstructure:"drift_amplitude"`
	DriftFrequency float64 `mapstructure:"drift_frequency"`
	// SampleRate is the trajectory sampling rate in Hz.
	SampleRate float64 `mapstructure:"sample_rate"`
}

// DefaultNoiseConfig returns noise levels calibrated so that a synthesized
// movement stays within human plausibility bands.
func DefaultNoiseConfig() NoiseConfig {
	return NoiseConfig{
		NoiseCoefficient: 0.002,
		TremorFrequency:  10.0,
		TremorBandwidth:  2.0,
		TremorAmplitude:  0.3,
		DriftAmplitude:   0.5,
		DriftFrequency:   0.8,
		SampleRate:       60.0,
	}
}

// NeuromotorNoise layers signal-dependent jitter, band-limited tremor and
// slow positional drift onto trajectory coordinates.
type NeuromotorNoise struct {
	config  NoiseConfig
	sampler *Sampler
	driftX  *perlin.Perlin
	driftY  *perlin.Perlin
}

// NewNeuromotorNoise builds a noise synthesizer over the given sampler.
// The drift generators derive their seeds from the sampler so a fixed
// seed reproduces the drift too.
func NewNeuromotorNoise(config NoiseConfig, sampler *Sampler) *NeuromotorNoise {
	seed := sampler.Int63()
	return &NeuromotorNoise{
		config:  config,
		sampler: sampler,
		driftX:  perlin.NewPerlin(2, 2, 3, seed),
		driftY:  perlin.NewPerlin(2, 2, 3, seed+1),
	}
}

// SignalDependentNoise draws a jitter offset whose standard deviation
// grows with instantaneous speed, floored at a small stationary jitter.
func (n *NeuromotorNoise) SignalDependentNoise(velocity float64) float64 {
	sigma := math.Max(noiseFloor, n.config.NoiseCoefficient*math.Abs(velocity))
	return n.sampler.Normal(0, sigma)
}

// GenerateTremor produces a band-limited tremor signal of length count,
// rescaled to the configured amplitude. The band-pass runs forward and
// backward so the tremor adds no phase lag. If the configured band cannot
// be realized at the sample rate, the tremor degrades to attenuated white
// noise rather than failing the movement.
func (n *NeuromotorNoise) GenerateTremor(count int) []float64 {
	if count <= 0 {
		return nil
	}
	white := make([]float64, count)
	for i := range white {
		white[i] = n.sampler.Normal(0, 1)
	}
	if count < 4 {
		return make([]float64, count)
	}

	low := n.config.TremorFrequency - n.config.TremorBandwidth
	high := n.config.TremorFrequency + n.config.TremorBandwidth
	filter, err := NewBandPassFilter(low, high, n.config.SampleRate)
	if err != nil {
		for i := range white {
			white[i] *= 0.1
		}
		return white
	}
	tremor := filter.ApplyForwardBackward(white)

	if sd := stat.StdDev(tremor, nil); sd > 1e-12 {
		scale := n.config.TremorAmplitude / sd
		for i := range tremor {
			tremor[i] *= scale
		}
	}
	return tremor
}

// AddNoise returns noisy copies of the coordinate slices. Each axis gets
// independent signal-dependent jitter and an independent tremor stream,
// plus a shared-timebase Perlin drift. Inputs are not modified.
func (n *NeuromotorNoise) AddNoise(xs, ys, velocities []float64) (noisyX, noisyY []float64) {
	count := len(xs)
	noisyX = make([]float64, count)
	noisyY = make([]float64, count)
	tremorX := n.GenerateTremor(count)
	tremorY := n.GenerateTremor(count)

	dt := 0.0
	if n.config.SampleRate > 0 {
		dt = n.config.DriftFrequency / n.config.SampleRate
	}
	for i := 0; i < count; i++ {
		v := 0.0
		if i < len(velocities) {
			v = velocities[i]
		}
		t := float64(i) * dt
		noisyX[i] = xs[i] + n.SignalDependentNoise(v) + tremorX[i] +
			n.config.DriftAmplitude*n.driftX.Noise1D(t)
		noisyY[i] = ys[i] + n.SignalDependentNoise(v) + tremorY[i] +
			n.config.DriftAmplitude*n.driftY.Noise1D(t)
	}
	return noisyX, noisyY
}
