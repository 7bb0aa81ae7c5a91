// submovement.go
package neuromotor

import "math"

// Hard bound on planning iterations, independent of the probabilistic
// exits below. The plan can never exceed 1 primary + 3 corrections + 1
// final touch, so this cap only matters if the gain clamps misbehave.
const maxPlanIterations = 8

// PlannerParams parameterizes the two-component submovement decomposition:
// one ballistic primary that covers most of the distance, followed by a
// small number of corrective homing submovements.
type PlannerParams struct {
	SingleMovementThreshold float64 `mapstructure:"single_movement_threshold"`
	PrimaryCoverageMean     float64 `mapstructure:"primary_coverage_mean"`
	PrimaryCoverageStdDev   float64 `mapstructure:"primary_coverage_std_dev"`
	PrimaryCoverageMin      float64 `mapstructure:"primary_coverage_min"`
	PrimaryCoverageMax      float64 `mapstructure:"primary_coverage_max"`
	PrimaryLateralRatio     float64 `mapstructure:"primary_lateral_ratio"`
	PrimaryFractionMin      float64 `mapstructure:"primary_fraction_min"`
	PrimaryFractionMax      float64 `mapstructure:"primary_fraction_max"`
	CorrectionGainMean      float64 `mapstructure:"correction_gain_mean"`
	CorrectionGainStdDev    float64 `mapstructure:"correction_gain_std_dev"`
	CorrectionGainMin       float64 `mapstructure:"correction_gain_min"`
	CorrectionGainMax       float64 `mapstructure:"correction_gain_max"`
	CorrectionLateralRatio  float64 `mapstructure:"correction_lateral_ratio"`
	CorrectionFractionMin   float64 `mapstructure:"correction_fraction_min"`
	CorrectionFractionMax   float64 `mapstructure:"correction_fraction_max"`
	CorrectionProbability   float64 `mapstructure:"correction_probability"`
	MaxCorrections          int     `mapstructure:"max_corrections"`
	ResidualWidthRatio      float64 `mapstructure:"residual_width_ratio"`
	MinRemainingFraction    float64 `mapstructure:"min_remaining_fraction"`
	FinalTouchThreshold     float64 `mapstructure:"final_touch_threshold"`
}

// DefaultPlannerParams returns the standard two-component model constants.
func DefaultPlannerParams() PlannerParams {
	return PlannerParams{
		SingleMovementThreshold: 5.0,
		PrimaryCoverageMean:     0.95,
		PrimaryCoverageStdDev:   0.08,
		PrimaryCoverageMin:      0.70,
		PrimaryCoverageMax:      1.15,
		PrimaryLateralRatio:     0.03,
		PrimaryFractionMin:      0.70,
		PrimaryFractionMax:      0.85,
		CorrectionGainMean:      0.92,
		CorrectionGainStdDev:    0.05,
		CorrectionGainMin:       0.80,
		CorrectionGainMax:       1.05,
		CorrectionLateralRatio:  0.02,
		CorrectionFractionMin:   0.40,
		CorrectionFractionMax:   0.70,
		CorrectionProbability:   0.85,
		MaxCorrections:          3,
		ResidualWidthRatio:      0.30,
		MinRemainingFraction:    0.05,
		FinalTouchThreshold:     1.0,
	}
}

// SubmovementPlanner decomposes a point-to-point movement into ballistic
// segments with time fractions that sum to exactly 1.
type SubmovementPlanner struct {
	params  PlannerParams
	sampler *Sampler
}

// NewSubmovementPlanner builds a planner over the given sampler.
func NewSubmovementPlanner(params PlannerParams, sampler *Sampler) *SubmovementPlanner {
	return &SubmovementPlanner{params: params, sampler: sampler}
}

// Plan decomposes the movement from start to target against a target of
// the given width. The returned plan always ends exactly at target, has
// between 1 and 5 submovements, and its time fractions sum to 1.0.
func (p *SubmovementPlanner) Plan(start, target Vector2D, width float64) MovementPlan {
	if width <= 0 {
		width = 1
	}
	distance := start.Dist(target)
	if distance < p.params.SingleMovementThreshold {
		return MovementPlan{{Endpoint: target, TimeFraction: 1.0}}
	}

	plan := make(MovementPlan, 0, 5)
	remaining := 1.0

	// Primary ballistic submovement: undershoot or overshoot along the
	// chord, with lateral scatter proportional to the full distance.
	coverage := p.sampler.TruncatedNormal(
		p.params.PrimaryCoverageMean, p.params.PrimaryCoverageStdDev,
		p.params.PrimaryCoverageMin, p.params.PrimaryCoverageMax,
	)
	dir := target.Sub(start).Normalize()
	lateral := dir.Perp().Mul(p.sampler.Normal(0, p.params.PrimaryLateralRatio*distance))
	primaryEnd := start.Add(dir.Mul(coverage * distance)).Add(lateral)
	primaryFraction := p.sampler.Uniform(p.params.PrimaryFractionMin, p.params.PrimaryFractionMax)
	plan = append(plan, Submovement{Endpoint: primaryEnd, TimeFraction: primaryFraction})
	remaining -= primaryFraction

	current := primaryEnd
	corrections := 0
	for i := 0; i < maxPlanIterations; i++ {
		residual := current.Dist(target)
		if residual <= p.params.ResidualWidthRatio*width ||
			corrections >= p.params.MaxCorrections ||
			remaining <= p.params.MinRemainingFraction ||
			!p.sampler.Bernoulli(p.params.CorrectionProbability) {
			break
		}

		gain := p.sampler.TruncatedNormal(
			p.params.CorrectionGainMean, p.params.CorrectionGainStdDev,
			p.params.CorrectionGainMin, p.params.CorrectionGainMax,
		)
		step := target.Sub(current)
		lateral := step.Normalize().Perp().Mul(p.sampler.Normal(0, p.params.CorrectionLateralRatio*residual))
		next := current.Add(step.Mul(gain)).Add(lateral)

		// Each correction spends a random share of the remaining time,
		// leaving room for the segments still to come.
		fraction := remaining * p.sampler.Uniform(p.params.CorrectionFractionMin, p.params.CorrectionFractionMax)
		plan = append(plan, Submovement{Endpoint: next, TimeFraction: fraction})
		remaining -= fraction
		current = next
		corrections++
	}

	// Land exactly on the aim point. A residual within a pixel is folded
	// into the last segment instead of spending a submovement on it.
	if current.Dist(target) > p.params.FinalTouchThreshold && remaining > 0 {
		plan = append(plan, Submovement{Endpoint: target, TimeFraction: remaining})
	} else {
		last := &plan[len(plan)-1]
		last.Endpoint = target
		last.TimeFraction += remaining
	}

	// Guard against drift in the fraction arithmetic.
	sum := 0.0
	for _, sm := range plan {
		sum += sm.TimeFraction
	}
	if d := 1.0 - sum; math.Abs(d) > 0 {
		plan[len(plan)-1].TimeFraction += d
	}
	return plan
}
