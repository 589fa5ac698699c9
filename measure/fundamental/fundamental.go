package fundamental

import (
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Config holds fundamental-phasor estimation parameters.
type Config struct {
	SampleRate float64
	FFTSize    int
	// FundamentalFreq pins the analysis to a known frequency. Zero selects
	// the strongest bin instead.
	FundamentalFreq float64
}

// Result holds the estimated fundamental of a sampled waveform.
type Result struct {
	Frequency float64    // estimated fundamental frequency in Hz
	Phasor    complex128 // peak-amplitude phasor in the cos(wt+φ-π/2) convention
	RMS       float64    // |Phasor|/√2
}

// Analyze estimates the fundamental phasor of a real-valued time-domain
// signal. The signal is Hann-windowed, transformed, and the selected bin is
// corrected for the window's coherent gain. Returns a zero Result for inputs
// that cannot be analyzed.
func Analyze(signal []float64, cfg Config) Result {
	if len(signal) == 0 {
		return Result{}
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(signal))
	}

	if fftSize <= 1 || len(signal) > fftSize {
		return Result{}
	}

	if cfg.SampleRate <= 0 {
		cfg.SampleRate = float64(fftSize)
	}

	coeffs := hann(len(signal))

	frame := make([]float64, len(signal))
	vecmath.MulBlock(frame, signal, coeffs)

	inData := make([]complex128, fftSize)
	for i, v := range frame {
		inData[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return Result{}
	}

	binHz := cfg.SampleRate / float64(fftSize)
	maxBin := fftSize / 2

	bin := findBin(out, cfg.FundamentalFreq, binHz, maxBin)
	if bin < 1 {
		return Result{}
	}

	// Coherent gain of the window: a sinusoid of peak amplitude r lands in
	// its bin with magnitude r/2 · Σcoeffs.
	gain := 0.0
	for _, c := range coeffs {
		gain += c
	}

	if gain == 0 {
		return Result{}
	}

	amp := 2 * cmplx.Abs(out[bin]) / gain

	// The bin phase is referenced to cos; shift by +π/2 to recover the
	// phasor angle in the cos(wt+φ-π/2) convention.
	phase := cmplx.Phase(out[bin]) + math.Pi/2
	if phase > math.Pi {
		phase -= 2 * math.Pi
	}

	return Result{
		Frequency: float64(bin) * binHz,
		Phasor:    cmplx.Rect(amp, phase),
		RMS:       amp / math.Sqrt2,
	}
}

// findBin selects the analysis bin: the one nearest to freq if given,
// otherwise the strongest non-DC bin up to the Nyquist bin.
func findBin(spectrum []complex128, freq, binHz float64, maxBin int) int {
	if freq > 0 {
		bin := int(math.Round(freq / binHz))
		return clampInt(bin, 1, maxBin)
	}

	bestBin := 0
	bestVal := -1.0

	for i := 1; i <= maxBin; i++ {
		v := cmplx.Abs(spectrum[i])
		if v > bestVal {
			bestVal = v
			bestBin = i
		}
	}

	return bestBin
}

// hann returns periodic Hann window coefficients.
func hann(size int) []float64 {
	coeffs := make([]float64, size)
	for i := range coeffs {
		coeffs[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(size)))
	}

	return coeffs
}

func clampInt(val, lo, hi int) int {
	if val < lo {
		return lo
	}

	if val > hi {
		return hi
	}

	return val
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
