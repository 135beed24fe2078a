package particle

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/firework-quiz/parameter"
	"github.com/lixenwraith/firework-quiz/parameter/visual"
)

func TestBurstInvariants(t *testing.T) {
	fw := NewFireworks(rand.New(rand.NewSource(42)))

	for burst := 0; burst < 25; burst++ {
		fw.Clear()
		fw.Burst(400, 300)

		if fw.Len() != parameter.BurstFragments {
			t.Fatalf("Expected %d fragments, got %d", parameter.BurstFragments, fw.Len())
		}

		color := fw.Fragments()[0].Color
		inPalette := false
		for _, c := range visual.FireworkPalette {
			if c == color {
				inPalette = true
			}
		}
		if !inPalette {
			t.Errorf("Burst color %v not in palette", color)
		}

		for i, f := range fw.Fragments() {
			if f.Color != color {
				t.Fatalf("Fragment %d color %v differs from burst color %v", i, f.Color, color)
			}
			if f.Life < 60 || f.Life >= 120 {
				t.Errorf("Fragment %d life %d outside [60,120)", i, f.Life)
			}
			if f.R < 2 || f.R >= 5 {
				t.Errorf("Fragment %d radius %f outside [2,5)", i, f.R)
			}
			speed := math.Hypot(f.VX, f.VY)
			if speed < 2-1e-9 || speed >= 8+1e-9 {
				t.Errorf("Fragment %d speed %f outside [2,8)", i, speed)
			}
			if f.X != 400 || f.Y != 300 || f.Age != 0 {
				t.Errorf("Fragment %d not at origin with age 0: %+v", i, f)
			}
		}
	}

	if fw.Bursts() != 25 {
		t.Errorf("Expected 25 bursts counted, got %d", fw.Bursts())
	}
}

func TestBurstsAccumulate(t *testing.T) {
	fw := NewFireworks(rand.New(rand.NewSource(1)))
	fw.Burst(100, 100)
	fw.Burst(700, 100)
	fw.Burst(400, 500)
	if fw.Len() != 3*parameter.BurstFragments {
		t.Errorf("Expected %d fragments, got %d", 3*parameter.BurstFragments, fw.Len())
	}
	fw.Clear()
	if fw.Len() != 0 {
		t.Errorf("Expected no fragments after Clear, got %d", fw.Len())
	}
}

func TestFragmentRemovedAfterLife(t *testing.T) {
	fw := NewFireworks(rand.New(rand.NewSource(1)))
	fw.fragments = append(fw.fragments,
		Fragment{Age: 70, Life: 70}, // age == life: gone next tick
		Fragment{Age: 69, Life: 70}, // age < life: stays
	)

	fw.Update()

	if fw.Len() != 1 {
		t.Fatalf("Expected 1 surviving fragment, got %d", fw.Len())
	}
	if got := fw.Fragments()[0]; got.Age != 70 || got.Life != 70 {
		t.Errorf("Wrong survivor %+v", got)
	}

	fw.Update()
	if fw.Len() != 0 {
		t.Errorf("Expected survivor removed one tick after reaching its life, got %d", fw.Len())
	}
}

func TestFragmentAlphaFades(t *testing.T) {
	f := Fragment{Life: 90}
	if f.Alpha() != 1 {
		t.Errorf("Expected alpha 1 at age 0, got %f", f.Alpha())
	}

	prev := f.Alpha()
	for f.Age = 1; f.Age <= f.Life; f.Age++ {
		a := f.Alpha()
		if a >= prev {
			t.Fatalf("Alpha not strictly decreasing at age %d: %f >= %f", f.Age, a, prev)
		}
		prev = a
	}
	if prev != 0 {
		t.Errorf("Expected alpha 0 at age == life, got %f", prev)
	}

	f.Life = 0
	if f.Alpha() != 0 {
		t.Errorf("Expected zero alpha for zero life, got %f", f.Alpha())
	}
}

func TestFragmentPhysics(t *testing.T) {
	fw := NewFireworks(rand.New(rand.NewSource(1)))
	fw.fragments = append(fw.fragments, Fragment{X: 10, Y: 10, VX: 2, VY: -4, Life: 100})

	fw.Update()

	f := fw.Fragments()[0]
	if f.X != 12 || f.Y != 6 {
		t.Errorf("Expected position moved by velocity to (12,6), got (%f,%f)", f.X, f.Y)
	}
	wantVX := 2 * parameter.FragmentDrag
	wantVY := (-4 + parameter.FragmentGravity) * parameter.FragmentDrag
	if math.Abs(f.VX-wantVX) > 1e-12 || math.Abs(f.VY-wantVY) > 1e-12 {
		t.Errorf("Expected velocity (%f,%f), got (%f,%f)", wantVX, wantVY, f.VX, f.VY)
	}
	if f.Age != 1 {
		t.Errorf("Expected age 1, got %d", f.Age)
	}
}

func TestFireworksDrainCompletely(t *testing.T) {
	fw := NewFireworks(rand.New(rand.NewSource(3)))
	fw.Burst(400, 300)
	for i := 0; i < parameter.FragmentLifeMax+1; i++ {
		fw.Update()
	}
	if fw.Len() != 0 {
		t.Errorf("Expected all fragments expired after max life, got %d", fw.Len())
	}
}
