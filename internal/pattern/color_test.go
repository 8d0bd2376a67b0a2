package pattern

import "testing"

func TestHSBRGBA(t *testing.T) {
	tests := []struct {
		c       HSB
		r, g, b uint32
	}{
		{HSB{0, 0, 0}, 0, 0, 0},
		{HSB{0, 0, 100}, 0xffff, 0xffff, 0xffff},
		{HSB{0, 100, 100}, 0xffff, 0, 0},
		{HSB{120, 100, 100}, 0, 0xffff, 0},
		{HSB{480, 100, 100}, 0, 0xffff, 0},
		{HSB{-120, 100, 100}, 0, 0, 0xffff},
	}
	for _, tt := range tests {
		r, g, b, a := tt.c.RGBA()
		if r != tt.r || g != tt.g || b != tt.b || a != 0xffff {
			t.Fatalf("%v.RGBA() = %x %x %x %x, want %x %x %x ffff", tt.c, r, g, b, a, tt.r, tt.g, tt.b)
		}
	}
}

func TestHSBWrapsHue(t *testing.T) {
	r1, g1, b1, _ := HSB{400, 80, 90}.RGBA()
	r2, g2, b2, _ := HSB{40, 80, 90}.RGBA()
	if r1 != r2 || g1 != g2 || b1 != b2 {
		t.Fatalf("hue 400 and 40 differ: %x %x %x vs %x %x %x", r1, g1, b1, r2, g2, b2)
	}
}
