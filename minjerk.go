// minjerk.go
package neuromotor

import "math"

// MinJerkProfile evaluates the normalized minimum-jerk position profile
// s(t) = 10t^3 - 15t^4 + 6t^5 with an optional velocity-peak asymmetry.
// Asymmetry is the time fraction at which the velocity peak occurs; 0.5 is
// the symmetric profile, human reaching peaks earlier (around 0.40-0.45).
type MinJerkProfile struct {
	Asymmetry float64
}

// warpTime remaps normalized time so the symmetric profile's midpoint
// velocity peak lands at the configured asymmetry fraction.
func (m MinJerkProfile) warpTime(t float64) float64 {
	a := m.Asymmetry
	if math.Abs(a-0.5) < 0.01 || a <= 0 || a >= 1 {
		return t
	}
	if a < 0.5 {
		return math.Pow(t, math.Log(0.5)/math.Log(a))
	}
	return 1 - math.Pow(1-t, math.Log(0.5)/math.Log(1-a))
}

// Position returns the normalized displacement s(t) for t in [0, 1].
// Inputs outside the interval clamp to its endpoints.
func (m MinJerkProfile) Position(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	t = m.warpTime(t)
	t3 := t * t * t
	return 10*t3 - 15*t3*t + 6*t3*t*t
}

// Velocity returns the normalized velocity ds/dt of the unwarped profile at
// warped time, which preserves the peak location under the time warp.
func (m MinJerkProfile) Velocity(t float64) float64 {
	if t <= 0 || t >= 1 {
		return 0
	}
	t = m.warpTime(t)
	t2 := t * t
	return 30*t2 - 60*t2*t + 30*t2*t2
}

// MotionProfile is a sampled normalized movement: times in seconds,
// positions in [0, 1], velocities in normalized units per second.
type MotionProfile struct {
	Times      []float64
	Positions  []float64
	Velocities []float64
}

// GenerateProfile samples the profile over the given duration at the given
// rate in Hz. At least two samples are always produced; a non-positive
// duration yields the completed-movement pair (position 1, velocity 0).
func (m MinJerkProfile) GenerateProfile(duration, sampleRate float64) MotionProfile {
	if duration <= 0 {
		return MotionProfile{
			Times:      []float64{0, 0},
			Positions:  []float64{1, 1},
			Velocities: []float64{0, 0},
		}
	}
	n := int(duration * sampleRate)
	if n < 2 {
		n = 2
	}
	p := MotionProfile{
		Times:      make([]float64, n),
		Positions:  make([]float64, n),
		Velocities: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		tau := float64(i) / float64(n-1)
		p.Times[i] = tau * duration
		p.Positions[i] = m.Position(tau)
		// Normalized-time velocity scaled to per-second units.
		p.Velocities[i] = m.Velocity(tau) / duration
	}
	return p
}
