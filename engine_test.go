// engine_test.go
package neuromotor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestSynthesizer(t *testing.T, seed uint64) *Synthesizer {
	t.Helper()
	s, err := NewSynthesizer(DefaultConfig(), zap.NewNop(), rand.NewSource(seed))
	require.NoError(t, err)
	return s
}

func TestNewSynthesizer(t *testing.T) {
	t.Run("DefaultsAreValid", func(t *testing.T) {
		s, err := NewSynthesizer(DefaultConfig(), nil, nil)
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("RejectsInvalidConfig", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*Config)
		}{
			{"ZeroSampleRate", func(c *Config) { c.Noise.SampleRate = 0 }},
			{"AsymmetryAtOne", func(c *Config) { c.VelocityAsymmetry = 1.0 }},
			{"AsymmetryAtZero", func(c *Config) { c.VelocityAsymmetry = 0.0 }},
			{"NegativeFittsStdDev", func(c *Config) { c.Fitts.AStdDev = -0.1 }},
			{"ZeroThroughputCeiling", func(c *Config) { c.Fitts.MaxThroughput = 0 }},
			{"ZeroTremorBandwidth", func(c *Config) { c.Noise.TremorBandwidth = 0 }},
			{"InvertedClickBounds", func(c *Config) { c.Click.HoldMin = 400 }},
			{"NegativeClickHoldSigma", func(c *Config) { c.Click.HoldSigma = -0.25 }},
			{"NegativeDwellSigma", func(c *Config) { c.Click.DwellSigma = -0.3 }},
			{"CorrelationOutOfRange", func(c *Config) { c.EndpointCorrelation = 1.5 }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cfg := DefaultConfig()
				tt.mutate(&cfg)
				_, err := NewSynthesizer(cfg, nil, nil)
				assert.Error(t, err)
			})
		}
	})
}

func TestSynthesizer_SynthesizeMove(t *testing.T) {
	start := Vector2D{X: 100, Y: 100}
	target := Vector2D{X: 700, Y: 500}

	t.Run("TrajectoryShape", func(t *testing.T) {
		s := newTestSynthesizer(t, 12345)
		m := s.SynthesizeMove(start, target, 50, 50)
		require.NotNil(t, m)
		require.NotEmpty(t, m.Trajectory)

		// Departs exactly from the start.
		assert.Equal(t, start.X, m.Trajectory[0].X)
		assert.Equal(t, start.Y, m.Trajectory[0].Y)
		assert.Equal(t, time.Duration(0), m.Trajectory[0].T)

		// Strictly time-ascending samples spanning the full duration.
		for i := 1; i < len(m.Trajectory); i++ {
			assert.Greater(t, m.Trajectory[i].T, m.Trajectory[i-1].T)
		}
		assert.Equal(t, m.Duration, m.Trajectory.Duration())

		// Lands exactly on the planned aim point.
		last := m.Trajectory[len(m.Trajectory)-1]
		aim := m.Plan[len(m.Plan)-1].Endpoint
		assert.Equal(t, aim.X, last.X)
		assert.Equal(t, aim.Y, last.Y)
	})

	t.Run("DurationWithinHumanRange", func(t *testing.T) {
		for seed := uint64(1); seed <= 20; seed++ {
			m := newTestSynthesizer(t, seed).SynthesizeMove(start, target, 50, 50)
			secs := m.Duration.Seconds()
			assert.GreaterOrEqual(t, secs, 0.4, "seed %d", seed)
			assert.LessOrEqual(t, secs, 1.2, "seed %d", seed)
		}
	})

	t.Run("LandsNearTarget", func(t *testing.T) {
		// Endpoint scatter uses the effective width of a 50 px target,
		// about 12 px per axis.
		for seed := uint64(1); seed <= 20; seed++ {
			m := newTestSynthesizer(t, seed).SynthesizeMove(start, target, 50, 50)
			last := m.Trajectory[len(m.Trajectory)-1]
			landing := Vector2D{X: last.X, Y: last.Y}
			assert.Less(t, landing.Dist(target), 75.0, "seed %d", seed)
		}
	})

	t.Run("PlanFractionsSumToOne", func(t *testing.T) {
		for seed := uint64(1); seed <= 20; seed++ {
			m := newTestSynthesizer(t, seed).SynthesizeMove(start, target, 50, 50)
			sum := 0.0
			for _, sm := range m.Plan {
				sum += sm.TimeFraction
			}
			assert.InDelta(t, 1.0, sum, 1e-9, "seed %d", seed)
		}
	})

	t.Run("PlausibilityAcrossSeeds", func(t *testing.T) {
		valid := 0
		trials := 20
		for seed := uint64(1); seed <= uint64(trials); seed++ {
			m := newTestSynthesizer(t, seed).SynthesizeMove(start, target, 50, 50)

			// The throughput ceiling is enforced by construction.
			assert.True(t, m.Report.ThroughputValid, "seed %d", seed)
			if m.Report.OverallValid {
				valid++
			}
		}
		// Individual draws may brush a band edge; the bulk must pass.
		assert.GreaterOrEqual(t, valid, 15)
	})

	t.Run("ThroughputValidWhenFloorBinds", func(t *testing.T) {
		// Pin both coefficients to their floors and shrink the target so
		// mt = ID/MaxThroughput takes over. The movement is then timed at
		// the ceiling exactly; the measured throughput must not drift
		// above it through endpoint scatter.
		cfg := DefaultConfig()
		cfg.Fitts.AMean, cfg.Fitts.AStdDev = cfg.Fitts.AFloor, 0
		cfg.Fitts.BMean, cfg.Fitts.BStdDev = cfg.Fitts.BFloor, 0
		for seed := uint64(1); seed <= 40; seed++ {
			s, err := NewSynthesizer(cfg, zap.NewNop(), rand.NewSource(seed))
			require.NoError(t, err)
			m := s.SynthesizeMove(start, target, 10, 10)
			assert.True(t, m.Report.ThroughputValid, "seed %d", seed)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		m1 := newTestSynthesizer(t, 777).SynthesizeMove(start, target, 50, 50)
		m2 := newTestSynthesizer(t, 777).SynthesizeMove(start, target, 50, 50)
		assert.Equal(t, m1.Trajectory, m2.Trajectory)
		assert.Equal(t, m1.Plan, m2.Plan)
	})

	t.Run("ZeroDistanceMove", func(t *testing.T) {
		s := newTestSynthesizer(t, 3)
		m := s.SynthesizeMove(start, start, 50, 50)
		require.NotEmpty(t, m.Trajectory)
		assert.Greater(t, m.Duration, time.Duration(0))
	})

	t.Run("HeightDefaultsToWidth", func(t *testing.T) {
		s := newTestSynthesizer(t, 4)
		m := s.SynthesizeMove(start, target, 50, 0)
		require.NotNil(t, m)
		require.NotEmpty(t, m.Trajectory)
	})
}

func TestSynthesizer_ClickTiming(t *testing.T) {
	s := newTestSynthesizer(t, 12345)
	for i := 0; i < 200; i++ {
		hold := s.ClickDuration()
		assert.GreaterOrEqual(t, hold, 50*time.Millisecond)
		assert.LessOrEqual(t, hold, 350*time.Millisecond)

		dwell := s.VerificationDwell()
		assert.GreaterOrEqual(t, dwell, 100*time.Millisecond)
		assert.LessOrEqual(t, dwell, 800*time.Millisecond)
	}
}

func TestSynthesizer_Config(t *testing.T) {
	s := newTestSynthesizer(t, 1)
	cfg := s.Config()
	assert.Equal(t, DefaultConfig(), cfg)

	// Mutating the copy must not affect the synthesizer.
	cfg.Noise.SampleRate = 1
	assert.Equal(t, 60.0, s.Config().Noise.SampleRate)
}
