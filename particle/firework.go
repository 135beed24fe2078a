package particle

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/firework-quiz/core"
	"github.com/lixenwraith/firework-quiz/parameter"
	"github.com/lixenwraith/firework-quiz/parameter/visual"
)

// Fragment is one spark of a burst; Age and Life are in ticks
type Fragment struct {
	X, Y   float64
	VX, VY float64
	R      float64
	Age    int
	Life   int
	Color  core.RGB
}

// Alpha fades linearly from 1 at age 0 to 0 at age == life
func (f Fragment) Alpha() float64 {
	if f.Life <= 0 {
		return 0
	}
	a := 1.0 - float64(f.Age)/float64(f.Life)
	return math.Max(0, math.Min(1, a))
}

// Fireworks owns every live fragment across all bursts
type Fireworks struct {
	rng       *rand.Rand
	palette   []core.RGB
	fragments []Fragment
	bursts    int
}

// NewFireworks creates an empty system drawing burst colors from the warm palette
func NewFireworks(rng *rand.Rand) *Fireworks {
	return &Fireworks{
		rng:       rng,
		palette:   visual.FireworkPalette[:],
		fragments: make([]Fragment, 0, parameter.BurstFragments*parameter.PerfectEntryBursts),
	}
}

// Burst spawns BurstFragments fragments at (x, y) sharing one palette color
func (fw *Fireworks) Burst(x, y float64) {
	color := fw.palette[fw.rng.Intn(len(fw.palette))]
	for i := 0; i < parameter.BurstFragments; i++ {
		angle := fw.rng.Float64() * 2 * math.Pi
		speed := uniform(fw.rng, parameter.FragmentSpeedMin, parameter.FragmentSpeedMax)
		fw.fragments = append(fw.fragments, Fragment{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			R:     uniform(fw.rng, parameter.FragmentRadiusMin, parameter.FragmentRadiusMax),
			Life:  parameter.FragmentLifeMin + fw.rng.Intn(parameter.FragmentLifeMax-parameter.FragmentLifeMin),
			Color: color,
		})
	}
	fw.bursts++
}

// Update integrates gravity and drag, ages fragments and drops those past their life
// Removal compacts in place; fragment order carries no meaning
func (fw *Fireworks) Update() {
	live := fw.fragments[:0]
	for _, f := range fw.fragments {
		f.X += f.VX
		f.Y += f.VY
		f.VY += parameter.FragmentGravity
		f.VX *= parameter.FragmentDrag
		f.VY *= parameter.FragmentDrag
		f.Age++
		if f.Age > f.Life {
			continue
		}
		live = append(live, f)
	}
	clear(fw.fragments[len(live):])
	fw.fragments = live
}

// Clear removes all fragments
func (fw *Fireworks) Clear() {
	fw.fragments = fw.fragments[:0]
}

// Len returns the number of live fragments
func (fw *Fireworks) Len() int {
	return len(fw.fragments)
}

// Bursts returns how many bursts have been spawned since creation
func (fw *Fireworks) Bursts() int {
	return fw.bursts
}

// Fragments exposes live fragments for rendering; callers must not retain it across ticks
func (fw *Fireworks) Fragments() []Fragment {
	return fw.fragments
}
