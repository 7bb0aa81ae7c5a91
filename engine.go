// engine.go
package neuromotor

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// Synthesizer composes the timing, planning, geometry and noise models
// into a movement pipeline. It performs no I/O and no pacing: a
// synthesized movement is a value whose samples carry offsets from the
// movement start, ready for an InputEmitter to replay.
//
// A Synthesizer is not safe for concurrent use because the underlying
// random stream is shared across its models.
type Synthesizer struct {
	config      Config
	logger      *zap.Logger
	sampler     *Sampler
	fitts       *FittsModel
	planner     *SubmovementPlanner
	paths       *PathGenerator
	noise       *NeuromotorNoise
	clicks      *ClickModel
	diagnostics *Diagnostics
}

// NewSynthesizer creates a movement synthesizer. The configuration is
// validated eagerly. A nil logger disables logging; a nil source seeds
// the random stream from the wall clock.
func NewSynthesizer(config Config, logger *zap.Logger, src rand.Source) (*Synthesizer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("synthesizer: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}

	sampler := NewSampler(src)
	fitts := NewFittsModel(config.Fitts, sampler)
	s := &Synthesizer{
		config:      config,
		logger:      logger,
		sampler:     sampler,
		fitts:       fitts,
		planner:     NewSubmovementPlanner(config.Planner, sampler),
		paths:       NewPathGenerator(config.Path, sampler),
		noise:       NewNeuromotorNoise(config.Noise, sampler),
		clicks:      NewClickModel(config.Click, sampler),
		diagnostics: NewDiagnostics(fitts),
	}
	return s, nil
}

// SynthesizeMove produces a complete timed trajectory from start to a
// target of the given width and height centered on target. The landing
// point scatters around the center per the effective-width model; the
// returned movement ends exactly on the drawn aim point.
func (s *Synthesizer) SynthesizeMove(start, target Vector2D, width, height float64) *Movement {
	if height <= 0 {
		height = width
	}
	aim := s.sampler.BivariateNormal(target,
		EffectiveWidth(width), EffectiveWidth(height), s.config.EndpointCorrelation)

	// Time the task the diagnostics will actually measure: the distance
	// to the drawn aim point, so the throughput floor binds against the
	// real endpoint.
	distance := start.Dist(aim)
	duration := s.fitts.MovementTime(distance, width)
	plan := s.planner.Plan(start, aim, width)
	trajectory := s.assemble(start, plan, duration)

	xs, ys := trajectory.Positions()
	report := s.diagnostics.Analyze(xs, ys, trajectory.Seconds(), width)

	m := &Movement{
		ID:         uuid.New(),
		Start:      start,
		Target:     target,
		Plan:       plan,
		Trajectory: trajectory,
		Duration:   trajectory.Duration(),
		Report:     report,
	}
	s.logger.Debug("synthesized movement",
		zap.Stringer("movement_id", m.ID),
		zap.Float64("distance", distance),
		zap.Float64("duration_s", duration),
		zap.Int("submovements", len(plan)),
		zap.Int("samples", len(trajectory)),
		zap.Bool("overall_valid", report.OverallValid),
	)
	if !report.OverallValid {
		s.logger.Warn("movement outside plausibility bands",
			zap.Stringer("movement_id", m.ID),
			zap.Bool("throughput_valid", report.ThroughputValid),
			zap.Bool("straightness_valid", report.StraightnessValid),
			zap.Bool("peak_timing_valid", report.PeakTimingValid),
		)
	}
	return m
}

// assemble renders a plan into timed noisy samples. One asymmetric
// minimum-jerk profile spans the whole movement; each submovement owns
// the slice of the profile matching its time fraction, and the profile's
// displacement within that slice indexes into the submovement's curved
// path. This keeps the global velocity peak inside the primary ballistic
// phase while honoring every segment's time share exactly.
func (s *Synthesizer) assemble(start Vector2D, plan MovementPlan, duration float64) Trajectory {
	profile := MinJerkProfile{Asymmetry: s.config.VelocityAsymmetry}
	mp := profile.GenerateProfile(duration, s.config.Noise.SampleRate)
	count := len(mp.Times)

	// Cumulative time-fraction boundaries of the plan.
	bounds := make([]float64, len(plan)+1)
	for i, sm := range plan {
		bounds[i+1] = bounds[i] + sm.TimeFraction
	}
	bounds[len(plan)] = 1.0

	points := make([]Vector2D, count)
	seg := 0
	segStart := start
	var segPath []Vector2D
	var sLo, sHi float64
	loadSegment := func() {
		sLo = profile.Position(bounds[seg])
		sHi = profile.Position(bounds[seg+1])
		n := int(math.Round(float64(count) * plan[seg].TimeFraction))
		if n < 3 {
			n = 3
		}
		segPath = s.paths.GenerateCurvedPath(segStart, plan[seg].Endpoint, n)
	}
	loadSegment()

	for j := 0; j < count; j++ {
		tau := 0.0
		if duration > 0 {
			tau = mp.Times[j] / duration
		}
		for seg < len(plan)-1 && tau > bounds[seg+1] {
			segStart = plan[seg].Endpoint
			seg++
			loadSegment()
		}
		frac := 1.0
		if sHi-sLo > 1e-9 {
			frac = clamp((mp.Positions[j]-sLo)/(sHi-sLo), 0, 1)
		}
		idx := int(math.Round(frac * float64(len(segPath)-1)))
		points[j] = segPath[idx]
	}

	// Scale normalized profile velocities to px/s for the noise model.
	totalDistance := start.Dist(plan[len(plan)-1].Endpoint)
	velocities := make([]float64, count)
	for j := range velocities {
		velocities[j] = mp.Velocities[j] * totalDistance
	}

	xs := make([]float64, count)
	ys := make([]float64, count)
	for j, p := range points {
		xs[j], ys[j] = p.X, p.Y
	}
	noisyX, noisyY := s.noise.AddNoise(xs, ys, velocities)

	// The pointer departs and lands exactly where planned.
	noisyX[0], noisyY[0] = start.X, start.Y
	last := plan[len(plan)-1].Endpoint
	noisyX[count-1], noisyY[count-1] = last.X, last.Y

	trajectory := make(Trajectory, count)
	for j := 0; j < count; j++ {
		trajectory[j] = TrajectorySample{
			T: time.Duration(mp.Times[j] * float64(time.Second)),
			X: noisyX[j],
			Y: noisyY[j],
		}
	}
	return trajectory
}

// ClickDuration draws the press-to-release hold time for a click at the
// current position.
func (s *Synthesizer) ClickDuration() time.Duration {
	return s.clicks.ClickDuration()
}

// VerificationDwell draws the pause after a movement lands.
func (s *Synthesizer) VerificationDwell() time.Duration {
	return s.clicks.VerificationDwell()
}

// Config returns a copy of the synthesizer's configuration.
func (s *Synthesizer) Config() Config {
	return s.config
}
