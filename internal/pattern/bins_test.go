package pattern

import "testing"

func TestBinCount(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 16},
		{1, 16},
		{15, 16},
		{16, 16},
		{17, 32},
		{24, 32},
		{1000, 1024},
		{1024, 1024},
		{5000, 1024},
	}
	for _, tt := range tests {
		got := BinCount(tt.n)
		if got != tt.want {
			t.Fatalf("BinCount(%d) = %d, want %d", tt.n, got, tt.want)
		}
		if got&(got-1) != 0 || got < 16 || got > 1024 || got < min(tt.n, 1024) {
			t.Fatalf("BinCount(%d) = %d breaks the bin constraints", tt.n, got)
		}
	}
}

func TestEnergy(t *testing.T) {
	spectrum := []float64{10, 20, 30}
	tests := []struct {
		i    int
		want float64
	}{
		{0, 10},
		{2, 30},
		{3, 0},
		{100, 0},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := Energy(spectrum, tt.i); got != tt.want {
			t.Fatalf("Energy(%d) = %v, want %v", tt.i, got, tt.want)
		}
	}
	if got := Energy(nil, 0); got != 0 {
		t.Fatalf("Energy(nil, 0) = %v, want 0", got)
	}
}
