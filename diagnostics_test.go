// diagnostics_test.go
package neuromotor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDiagnostics() *Diagnostics {
	return NewDiagnostics(newTestFitts(1))
}

// minJerkLine builds a noiseless straight movement with a minimum-jerk
// time course, the canonical too-perfect trajectory.
func minJerkLine(start, end Vector2D, duration float64, count int) (xs, ys, times []float64) {
	profile := MinJerkProfile{Asymmetry: 0.5}
	xs = make([]float64, count)
	ys = make([]float64, count)
	times = make([]float64, count)
	for i := 0; i < count; i++ {
		tau := float64(i) / float64(count-1)
		s := profile.Position(tau)
		p := start.Lerp(end, s)
		xs[i], ys[i], times[i] = p.X, p.Y, tau*duration
	}
	return xs, ys, times
}

func TestDiagnostics_Analyze(t *testing.T) {
	start := Vector2D{X: 100, Y: 100}
	end := Vector2D{X: 700, Y: 500}

	t.Run("PerfectlyStraightMovementIsFlagged", func(t *testing.T) {
		xs, ys, times := minJerkLine(start, end, 0.8, 48)
		report := newTestDiagnostics().Analyze(xs, ys, times, 50)

		assert.InDelta(t, 1.0, report.Straightness, 1e-9)
		assert.False(t, report.StraightnessValid)
		assert.False(t, report.OverallValid)

		// The time course itself is human: peak near the middle, sane
		// throughput.
		assert.True(t, report.PeakTimingValid)
		assert.True(t, report.ThroughputValid)
	})

	t.Run("MetricValues", func(t *testing.T) {
		xs, ys, times := minJerkLine(start, end, 0.8, 48)
		report := newTestDiagnostics().Analyze(xs, ys, times, 50)

		assert.InDelta(t, 721.11, report.Distance, 0.01)
		assert.InDelta(t, 0.8, report.Duration, 1e-9)
		assert.InDelta(t, IndexOfDifficulty(report.Distance, 50)/0.8, report.Throughput, 1e-6)
		assert.InDelta(t, 0.0, report.PathRMSE, 1e-9)
		assert.False(t, report.PathRMSEValid)
		assert.Greater(t, report.PeakVelocity, 0.0)
	})

	t.Run("SuperhumanSpeedIsFlagged", func(t *testing.T) {
		xs, ys, times := minJerkLine(start, end, 0.05, 48)
		report := newTestDiagnostics().Analyze(xs, ys, times, 50)
		assert.False(t, report.ThroughputValid)
		assert.False(t, report.OverallValid)
	})

	t.Run("ConstantVelocityPeaksAtStart", func(t *testing.T) {
		count := 40
		xs := make([]float64, count)
		ys := make([]float64, count)
		times := make([]float64, count)
		for i := range xs {
			xs[i] = float64(i) * 10
			times[i] = float64(i) * 0.02
		}
		report := newTestDiagnostics().Analyze(xs, ys, times, 50)
		assert.Equal(t, 0.0, report.PeakTiming)
		assert.False(t, report.PeakTimingValid)
	})

	t.Run("InputsNotModified", func(t *testing.T) {
		xs, ys, times := minJerkLine(start, end, 0.8, 48)
		xsCopy := append([]float64(nil), xs...)
		ysCopy := append([]float64(nil), ys...)
		timesCopy := append([]float64(nil), times...)

		newTestDiagnostics().Analyze(xs, ys, times, 50)
		assert.Equal(t, xsCopy, xs)
		assert.Equal(t, ysCopy, ys)
		assert.Equal(t, timesCopy, times)
	})

	t.Run("TooFewSamples", func(t *testing.T) {
		report := newTestDiagnostics().Analyze([]float64{1}, []float64{1}, []float64{0}, 50)
		assert.False(t, report.OverallValid)
		assert.Equal(t, 0.0, report.Distance)
	})

	t.Run("RepeatedTimestampsGuarded", func(t *testing.T) {
		xs := []float64{0, 10, 20}
		ys := []float64{0, 0, 0}
		times := []float64{0, 0.5, 0.5}
		var report DiagnosticsReport
		require.NotPanics(t, func() {
			report = newTestDiagnostics().Analyze(xs, ys, times, 50)
		})
		assert.False(t, report.OverallValid)
	})
}
