// filter.go
package neuromotor

import (
	"fmt"
	"math"
)

// BandPassFilter is a second-order (biquad) band-pass section in direct
// form I, with coefficients normalized by a0.
type BandPassFilter struct {
	b0, b1, b2 float64
	a1, a2     float64
}

// NewBandPassFilter designs a constant-peak-gain band-pass for the band
// [low, high] Hz at the given sample rate. Band edges are clamped into
// (0.01, 0.99) of the Nyquist frequency; a band that is degenerate after
// clamping is rejected with an error.
func NewBandPassFilter(low, high, sampleRate float64) (*BandPassFilter, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("band-pass design: sample rate %v is not positive", sampleRate)
	}
	nyquist := sampleRate / 2
	low = clamp(low, 0.01*nyquist, 0.99*nyquist)
	high = clamp(high, 0.01*nyquist, 0.99*nyquist)
	if high-low < 1e-9 {
		return nil, fmt.Errorf("band-pass design: degenerate band [%v, %v] Hz at %v Hz", low, high, sampleRate)
	}

	f0 := math.Sqrt(low * high)
	q := f0 / (high - low)
	w0 := 2 * math.Pi * f0 / sampleRate
	alpha := math.Sin(w0) / (2 * q)

	a0 := 1 + alpha
	return &BandPassFilter{
		b0: alpha / a0,
		b1: 0,
		b2: -alpha / a0,
		a1: -2 * math.Cos(w0) / a0,
		a2: (1 - alpha) / a0,
	}, nil
}

// Apply runs the filter over the signal once, forward, from zero initial
// state. The input is not modified.
func (f *BandPassFilter) Apply(signal []float64) []float64 {
	out := make([]float64, len(signal))
	var x1, x2, y1, y2 float64
	for i, x := range signal {
		y := f.b0*x + f.b1*x1 + f.b2*x2 - f.a1*y1 - f.a2*y2
		x2, x1 = x1, x
		y2, y1 = y1, y
		out[i] = y
	}
	return out
}

// ApplyForwardBackward runs the filter forward and then backward over the
// signal, cancelling the phase delay. The effective magnitude response is
// squared, which sharpens the band edges.
func (f *BandPassFilter) ApplyForwardBackward(signal []float64) []float64 {
	forward := f.Apply(signal)
	reverse(forward)
	backward := f.Apply(forward)
	reverse(backward)
	return backward
}

func reverse(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
