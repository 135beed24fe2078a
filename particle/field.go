package particle

import (
	"math/rand"

	"github.com/lixenwraith/firework-quiz/parameter"
)

// Bounds is the wrap-around area in logical canvas units
type Bounds struct {
	W, H float64
}

// Particle is a decorative background dot that drifts and never dies
type Particle struct {
	X, Y   float64
	VX, VY float64
	R      float64
	Alpha  float64 // 0.0-1.0
}

// Field integrates a fixed population of ambient particles
type Field struct {
	bounds    Bounds
	particles []Particle
}

// NewField scatters n particles uniformly over bounds
func NewField(rng *rand.Rand, n int, bounds Bounds) *Field {
	f := &Field{
		bounds:    bounds,
		particles: make([]Particle, n),
	}
	for i := range f.particles {
		f.particles[i] = Particle{
			X:     rng.Float64() * bounds.W,
			Y:     rng.Float64() * bounds.H,
			VX:    uniform(rng, -parameter.AmbientMaxSpeedX, parameter.AmbientMaxSpeedX),
			VY:    uniform(rng, -parameter.AmbientMaxSpeedY, parameter.AmbientMaxSpeedY),
			R:     uniform(rng, parameter.AmbientRadiusMin, parameter.AmbientRadiusMax),
			Alpha: uniform(rng, parameter.AmbientAlphaMin, parameter.AmbientAlphaMax) / 255.0,
		}
	}
	return f
}

// Update advances every particle one tick and wraps at the edges
func (f *Field) Update() {
	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX
		p.Y += p.VY
		p.X = wrap(p.X, f.bounds.W)
		p.Y = wrap(p.Y, f.bounds.H)
	}
}

// Particles exposes the live population for rendering; callers must not retain it across ticks
func (f *Field) Particles() []Particle {
	return f.particles
}

// wrap re-enters a coordinate on the opposite boundary once it leaves [0, limit]
func wrap(v, limit float64) float64 {
	if v < 0 {
		return limit
	}
	if v > limit {
		return 0
	}
	return v
}

// uniform returns a value in [lo, hi)
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
