package pattern

import (
	"math"
	"math/rand/v2"
	"testing"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestVariantEveryNinth(t *testing.T) {
	for _, count := range []int{1, 8, 9, 10, 27, 28, 100} {
		instances := make([]*Instance, count)
		zigzag := 0
		for i := range instances {
			instances[i] = NewInstance(i, Point{}, 120, newRand(1))
			if instances[i].Variant == Zigzag {
				zigzag++
				if i%9 != 0 {
					t.Fatalf("instance %d is zigzag, want dotted", i)
				}
			}
		}
		if want := (count + 8) / 9; zigzag != want {
			t.Fatalf("count %d: %d zigzag instances, want %d", count, zigzag, want)
		}
	}
}

func TestSetupTwentySeven(t *testing.T) {
	// 9 columns x 3 rows.
	instances := Setup(DefaultGrid(), 1920, 600, newRand(7))
	if len(instances) != 27 {
		t.Fatalf("len(Setup()) = %d, want 27", len(instances))
	}
	var got []int
	for i, p := range instances {
		if p.Variant == Zigzag {
			got = append(got, i)
		}
	}
	want := []int{0, 9, 18}
	if len(got) != len(want) {
		t.Fatalf("zigzag indices = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("zigzag indices = %v, want %v", got, want)
		}
	}
}

func TestSetupDegenerateSurface(t *testing.T) {
	if got := Setup(DefaultGrid(), 0, 0, newRand(1)); len(got) != 0 {
		t.Fatalf("len(Setup(0, 0)) = %d, want 0", len(got))
	}
}

func TestNewInstanceInitialState(t *testing.T) {
	rnd := newRand(3)
	for i := 0; i < 200; i++ {
		p := NewInstance(i, Point{X: 1, Y: 2}, 120, rnd)
		if p.BaseHue() < 90 || p.BaseHue() > 270 {
			t.Fatalf("BaseHue() = %v, want within [90, 270]", p.BaseHue())
		}
		c := p.Color()
		if c.S < 50 || c.S > 100 {
			t.Fatalf("saturation = %v, want within [50, 100]", c.S)
		}
		if c.B < 80 || c.B > 100 {
			t.Fatalf("brightness = %v, want within [80, 100]", c.B)
		}
		if p.Hue() != p.BaseHue() {
			t.Fatalf("Hue() = %v, want base hue %v", p.Hue(), p.BaseHue())
		}
		if p.InnerRadius() != 15 {
			t.Fatalf("InnerRadius() = %v, want 15", p.InnerRadius())
		}
	}
}

func TestInnerPaletteDistinctSubset(t *testing.T) {
	rnd := newRand(11)
	for i := 0; i < 500; i++ {
		palette := NewInstance(i, Point{}, 120, rnd).Palette()
		seen := map[HSB]bool{}
		for _, c := range palette {
			if seen[c] {
				t.Fatalf("palette %v repeats %v", palette, c)
			}
			seen[c] = true
			found := false
			for _, p := range Palette {
				if p == c {
					found = true
				}
			}
			if !found {
				t.Fatalf("palette color %v is not in the fixed palette", c)
			}
		}
	}
}

func TestNewInstanceSeeded(t *testing.T) {
	a := Setup(DefaultGrid(), 1280, 800, newRand(42))
	b := Setup(DefaultGrid(), 1280, 800, newRand(42))
	for i := range a {
		if a[i].BaseHue() != b[i].BaseHue() || a[i].Palette() != b[i].Palette() || a[i].Color() != b[i].Color() {
			t.Fatalf("instance %d differs between runs with the same seed", i)
		}
	}
}

func TestUpdateHue(t *testing.T) {
	tests := []struct {
		energy float64
		offset float64
	}{
		{150, 90},
		{100, 50},
		{200, 130},
		{250, 170},
		{0, -30},
	}
	for _, tt := range tests {
		p := NewInstance(1, Point{}, 120, newRand(5))
		p.UpdateHue(tt.energy)
		if got, want := p.Hue(), p.BaseHue()+tt.offset; !approx(got, want) {
			t.Fatalf("UpdateHue(%v): Hue() = %v, want %v", tt.energy, got, want)
		}
		if p.BaseHue() < 90 || p.BaseHue() > 270 {
			t.Fatalf("UpdateHue(%v) changed the base hue to %v", tt.energy, p.BaseHue())
		}
	}
}

func TestUpdateRadius(t *testing.T) {
	tests := []struct {
		energy float64
		want   float64
	}{
		{0, 10},
		{255, 65},
		{127.5, 37.5},
		{510, 120},
	}
	for _, tt := range tests {
		p := NewInstance(1, Point{}, 120, newRand(5))
		p.UpdateRadius(tt.energy)
		if got := p.InnerRadius(); !approx(got, tt.want) {
			t.Fatalf("UpdateRadius(%v): InnerRadius() = %v, want %v", tt.energy, got, tt.want)
		}
	}
}
