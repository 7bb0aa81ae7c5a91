// path.go
package neuromotor

import "math"

// PathParams parameterizes the spatial shape of a movement segment.
type PathParams struct {
	// MidpointDeviation scales the curvature bow as a fraction of segment
	// length.
	MidpointDeviation float64 `mapstructure:"midpoint_deviation"`
	// PerturbationScale scales the smoothed micro-jitter as a fraction of
	// segment length.
	PerturbationScale float64 `mapstructure:"perturbation_scale"`
	// StraightThreshold is the segment length in pixels below which no
	// curvature is applied.
	StraightThreshold float64 `mapstructure:"straight_threshold"`
}

// DefaultPathParams returns curvature constants matching observed human
// pointing paths.
func DefaultPathParams() PathParams {
	return PathParams{
		MidpointDeviation: 0.06,
		PerturbationScale: 0.004,
		StraightThreshold: 5.0,
	}
}

// PathGenerator produces curved 2D paths between segment endpoints.
type PathGenerator struct {
	params  PathParams
	sampler *Sampler
}

// NewPathGenerator builds a path generator over the given sampler.
func NewPathGenerator(params PathParams, sampler *Sampler) *PathGenerator {
	return &PathGenerator{params: params, sampler: sampler}
}

// GenerateCurvedPath returns n points from start to end with a symmetric
// perpendicular bow and a low-frequency micro-perturbation. Segments
// shorter than the straight threshold, or requests for fewer than 3
// points, fall back to straight interpolation. The first and last points
// are exactly start and end.
func (g *PathGenerator) GenerateCurvedPath(start, end Vector2D, n int) []Vector2D {
	if n < 2 {
		n = 2
	}
	distance := start.Dist(end)
	if distance < g.params.StraightThreshold || n < 3 {
		return straightPath(start, end, n)
	}

	// Bow magnitude scales with segment length; direction of the bow is a
	// coin flip along the chord's perpendicular.
	md := g.params.MidpointDeviation * distance
	bow := math.Abs(g.sampler.Normal(md, 0.4*md))
	bow = clamp(bow, 0.02*distance, 0.15*distance)
	if g.sampler.Bernoulli(0.5) {
		bow = -bow
	}
	perp := end.Sub(start).Normalize().Perp()

	// Micro-perturbation: white noise smoothed with a short moving
	// average, pinned to zero at both endpoints.
	jitter := make([]float64, n)
	sigma := g.params.PerturbationScale * distance
	for i := range jitter {
		jitter[i] = g.sampler.Normal(0, sigma)
	}
	jitter = movingAverage(jitter, 5)
	jitter[0], jitter[n-1] = 0, 0

	path := make([]Vector2D, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		lateral := 4*t*(1-t)*bow + jitter[i]
		path[i] = start.Lerp(end, t).Add(perp.Mul(lateral))
	}
	path[0], path[n-1] = start, end
	return path
}

func straightPath(start, end Vector2D, n int) []Vector2D {
	path := make([]Vector2D, n)
	for i := 0; i < n; i++ {
		path[i] = start.Lerp(end, float64(i)/float64(n-1))
	}
	return path
}

// movingAverage smooths values with a centered window, treating samples
// outside the slice as zero.
func movingAverage(values []float64, window int) []float64 {
	if window < 2 || len(values) == 0 {
		return values
	}
	half := window / 2
	out := make([]float64, len(values))
	for i := range values {
		sum := 0.0
		for j := i - half; j <= i+half; j++ {
			if j >= 0 && j < len(values) {
				sum += values[j]
			}
		}
		out[i] = sum / float64(window)
	}
	return out
}

// StraightnessIndex is the ratio of chord length to traveled path length.
// A perfectly straight path scores 1.0; degenerate paths (fewer than two
// points or zero travel) also score 1.0.
func StraightnessIndex(path []Vector2D) float64 {
	if len(path) < 2 {
		return 1.0
	}
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += path[i].Dist(path[i-1])
	}
	if total < 1e-9 {
		return 1.0
	}
	return path[0].Dist(path[len(path)-1]) / total
}

// PathRMSE is the root-mean-square perpendicular deviation of the path
// from its chord, in pixels.
func PathRMSE(path []Vector2D) float64 {
	if len(path) < 2 {
		return 0
	}
	chord := path[len(path)-1].Sub(path[0])
	mag := chord.Mag()
	if mag < 1e-9 {
		return 0
	}
	perp := chord.Normalize().Perp()
	sum := 0.0
	for _, p := range path {
		d := p.Sub(path[0]).Dot(perp)
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(path)))
}
