// diagnostics.go
package neuromotor

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Validity bands for human pointing movements.
const (
	straightnessMin = 0.75
	straightnessMax = 0.98
	pathRMSEMin     = 5.0
	pathRMSEMax     = 40.0
	peakTimingMin   = 0.30
	peakTimingMax   = 0.55
)

// DiagnosticsReport summarizes a trajectory against the statistical bands
// of real human pointing movements.
type DiagnosticsReport struct {
	Distance          float64 `json:"distance"`
	Duration          float64 `json:"duration"`
	Throughput        float64 `json:"throughput"`
	ThroughputValid   bool    `json:"throughput_valid"`
	Straightness      float64 `json:"straightness"`
	StraightnessValid bool    `json:"straightness_valid"`
	PathRMSE          float64 `json:"path_rmse"`
	PathRMSEValid     bool    `json:"path_rmse_valid"`
	PeakVelocity      float64 `json:"peak_velocity"`
	PeakTiming        float64 `json:"peak_timing"`
	PeakTimingValid   bool    `json:"peak_timing_valid"`
	OverallValid      bool    `json:"overall_valid"`
}

// Diagnostics analyzes synthesized trajectories for plausibility.
type Diagnostics struct {
	fitts *FittsModel
}

// NewDiagnostics builds a diagnostics analyzer sharing the engine's
// throughput ceiling.
func NewDiagnostics(fitts *FittsModel) *Diagnostics {
	return &Diagnostics{fitts: fitts}
}

// Analyze computes the diagnostics report for a trajectory given as
// parallel coordinate and time slices, against a target of the given
// width. It is pure: inputs are never modified and no randomness is
// consumed. OverallValid conjoins the throughput, straightness and
// peak-timing checks; the RMSE band is reported but advisory, since
// short movements legitimately fall under its floor.
func (d *Diagnostics) Analyze(xs, ys, times []float64, width float64) DiagnosticsReport {
	var report DiagnosticsReport
	count := len(xs)
	if count < 2 || len(ys) < count || len(times) < count {
		return report
	}

	path := make([]Vector2D, count)
	for i := 0; i < count; i++ {
		path[i] = Vector2D{X: xs[i], Y: ys[i]}
	}

	report.Distance = path[0].Dist(path[count-1])
	report.Duration = times[count-1] - times[0]

	report.Throughput = Throughput(report.Distance, width, report.Duration)
	report.ThroughputValid = d.fitts.ValidateHumanPlausible(report.Distance, width, report.Duration)

	report.Straightness = StraightnessIndex(path)
	report.StraightnessValid = report.Straightness >= straightnessMin &&
		report.Straightness <= straightnessMax

	report.PathRMSE = PathRMSE(path)
	report.PathRMSEValid = report.PathRMSE >= pathRMSEMin && report.PathRMSE <= pathRMSEMax

	// Finite-difference speed series, guarded against repeated timestamps.
	velocities := make([]float64, count-1)
	for i := 1; i < count; i++ {
		dt := times[i] - times[i-1]
		velocities[i-1] = path[i].Dist(path[i-1]) / (math.Abs(dt) + 1e-6)
	}
	peakIdx := floats.MaxIdx(velocities)
	report.PeakVelocity = velocities[peakIdx]
	report.PeakTiming = float64(peakIdx) / float64(len(velocities))
	report.PeakTimingValid = report.PeakTiming >= peakTimingMin &&
		report.PeakTiming <= peakTimingMax

	report.OverallValid = report.ThroughputValid &&
		report.StraightnessValid &&
		report.PeakTimingValid
	return report
}
