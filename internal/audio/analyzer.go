package audio

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/iburimskiy/spectral-circles/internal/config"
)

// SampleSource is anything the analyzer can pull recent mono samples from.
type SampleSource interface {
	Snapshot(dst []float64)
}

// Analyzer turns the most recent samples into a spectrum of byte-scaled
// energies (0-255), one value per bin. It runs a real FFT of twice the bin
// count over a Blackman window, smooths magnitudes over time and maps the
// decibel range [MinDecibels, MaxDecibels] onto [0, 255].
type Analyzer struct {
	bins      int
	smoothing float64
	fft       *fourier.FFT
	window    []float64
	samples   []float64
	coeffs    []complex128
	smoothed  []float64
}

// NewAnalyzer creates an analyzer producing bins values per frame.
func NewAnalyzer(bins int, smoothing float64) *Analyzer {
	size := 2 * bins
	return &Analyzer{
		bins:      bins,
		smoothing: smoothing,
		fft:       fourier.NewFFT(size),
		window:    blackman(size),
		samples:   make([]float64, size),
		smoothed:  make([]float64, bins),
	}
}

// Bins returns the spectrum length.
func (a *Analyzer) Bins() int { return a.bins }

// Analyze reads the latest window from src and returns a fresh spectrum.
// A nil src is treated as silence.
func (a *Analyzer) Analyze(src SampleSource) []float64 {
	clear(a.samples)
	if src != nil {
		src.Snapshot(a.samples)
	}
	for i := range a.samples {
		a.samples[i] *= a.window[i]
	}
	a.coeffs = a.fft.Coefficients(a.coeffs, a.samples)

	scale := 1 / float64(len(a.samples))
	spectrum := make([]float64, a.bins)
	for k := range spectrum {
		mag := cmplx.Abs(a.coeffs[k]) * scale
		a.smoothed[k] = a.smoothing*a.smoothed[k] + (1-a.smoothing)*mag
		spectrum[k] = toByte(a.smoothed[k])
	}
	return spectrum
}

func toByte(mag float64) float64 {
	if mag <= 0 {
		return 0
	}
	db := 20 * math.Log10(mag)
	v := math.Floor(255 * (db - config.MinDecibels) / (config.MaxDecibels - config.MinDecibels))
	return math.Max(0, math.Min(255, v))
}

func blackman(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		x := 2 * math.Pi * float64(i) / float64(n)
		w[i] = 0.42 - 0.5*math.Cos(x) + 0.08*math.Cos(2*x)
	}
	return w
}
