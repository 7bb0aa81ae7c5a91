// sampler.go
package neuromotor

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// truncatedNormalMaxRejections bounds the rejection loop before falling
// back to a clamped Gaussian draw.
const truncatedNormalMaxRejections = 100

// Sampler draws from the distribution families the engine is built on. All
// randomness in the engine flows through a Sampler so that a fixed seed
// reproduces an entire movement bit for bit. A Sampler is not safe for
// concurrent use; give each goroutine its own.
type Sampler struct {
	src rand.Source
	rng *rand.Rand
}

// NewSampler creates a Sampler over the given source. A nil source yields
// a sampler seeded from a fixed default, so callers who want varied output
// must provide their own seeded source.
func NewSampler(src rand.Source) *Sampler {
	if src == nil {
		src = rand.NewSource(1)
	}
	return &Sampler{src: src, rng: rand.New(src)}
}

// Normal draws from N(mu, sigma^2). A non-positive sigma returns mu.
func (s *Sampler) Normal(mu, sigma float64) float64 {
	if sigma <= 0 {
		return mu
	}
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: s.src}.Rand()
}

// LogNormal draws from a log-normal distribution whose underlying normal
// has the given mu and sigma.
func (s *Sampler) LogNormal(mu, sigma float64) float64 {
	if sigma <= 0 {
		return math.Exp(mu)
	}
	return distuv.LogNormal{Mu: mu, Sigma: sigma, Src: s.src}.Rand()
}

// ExGaussian draws from an ex-Gaussian distribution, the sum of a Gaussian
// component and an exponential tail. Negative draws clamp to zero since
// every ex-Gaussian quantity in the engine is a duration.
func (s *Sampler) ExGaussian(mu, sigma, tau float64) float64 {
	v := s.Normal(mu, sigma)
	if tau > 0 {
		v += distuv.Exponential{Rate: 1.0 / tau, Src: s.src}.Rand()
	}
	if v < 0 {
		return 0
	}
	return v
}

// TruncatedNormal draws from N(mu, sigma^2) restricted to [lo, hi] by
// rejection. If the bounds are inverted they are swapped. After the
// rejection budget is exhausted the draw degrades to a clamped Gaussian,
// which keeps pathological bound choices from looping forever.
func (s *Sampler) TruncatedNormal(mu, sigma, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if sigma <= 0 {
		return clamp(mu, lo, hi)
	}
	for i := 0; i < truncatedNormalMaxRejections; i++ {
		v := s.Normal(mu, sigma)
		if v >= lo && v <= hi {
			return v
		}
	}
	return clamp(s.Normal(mu, sigma), lo, hi)
}

// BivariateNormal draws a correlated 2D Gaussian point around center. The
// correlation is clamped into [-1, 1].
func (s *Sampler) BivariateNormal(center Vector2D, sigmaX, sigmaY, corr float64) Vector2D {
	corr = clamp(corr, -1, 1)
	z1 := s.Normal(0, 1)
	z2 := s.Normal(0, 1)
	return Vector2D{
		X: center.X + sigmaX*z1,
		Y: center.Y + sigmaY*(corr*z1+math.Sqrt(1-corr*corr)*z2),
	}
}

// Uniform draws from U(lo, hi).
func (s *Sampler) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

// Bernoulli returns true with probability p.
func (s *Sampler) Bernoulli(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.rng.Float64() < p
}

// Int63 exposes a raw 63-bit draw, used to derive sub-seeds for auxiliary
// generators.
func (s *Sampler) Int63() int64 {
	return s.rng.Int63()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
