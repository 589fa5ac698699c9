package waveform

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
)

// Config defines common waveform sampling settings.
type Config struct {
	SampleRate float64 // samples per second
	Frequency  float64 // fundamental frequency in Hz
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the sampling rate.
func WithSampleRate(sampleRate float64) Option {
	return func(g *Generator) {
		if sampleRate > 0 {
			g.cfg.SampleRate = sampleRate
		}
	}
}

// WithFrequency sets the fundamental frequency.
func WithFrequency(freqHz float64) Option {
	return func(g *Generator) {
		if freqHz > 0 {
			g.cfg.Frequency = freqHz
		}
	}
}

// Generator samples phasor quantities into time-domain buffers from a shared
// configuration.
type Generator struct {
	cfg Config
}

// NewGenerator creates a configured waveform generator. Defaults are 60 Hz
// sampled at 10 kHz.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		cfg: Config{
			SampleRate: 10000,
			Frequency:  60,
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Config returns the generator configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// SinglePhase samples a phasor into a time-domain buffer. A phasor (r, φ)
// produces r·cos(w·t + φ - π/2) at each sample instant.
func (g *Generator) SinglePhase(uph complex128, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("waveform samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("waveform sample rate must be > 0: %f", g.cfg.SampleRate)
	}

	out := make([]float64, samples)
	g.fill(out, uph)

	return out, nil
}

// ThreePhase samples a three-phase phasor set into three time-domain buffers.
func (g *Generator) ThreePhase(upha, uphb, uphc complex128, samples int) (ua, ub, uc []float64, err error) {
	if samples <= 0 {
		return nil, nil, nil, fmt.Errorf("waveform samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, nil, nil, fmt.Errorf("waveform sample rate must be > 0: %f", g.cfg.SampleRate)
	}

	ua = make([]float64, samples)
	ub = make([]float64, samples)
	uc = make([]float64, samples)

	g.fill(ua, upha)
	g.fill(ub, uphb)
	g.fill(uc, uphc)

	return ua, ub, uc, nil
}

// fill writes the unit waveform for uph's angle into out and scales it by
// uph's magnitude in a single vectorized pass.
func (g *Generator) fill(out []float64, uph complex128) {
	r, ph := cmplx.Polar(uph)
	w := 2 * math.Pi * g.cfg.Frequency
	dt := 1 / g.cfg.SampleRate

	unit := make([]float64, len(out))
	for i := range unit {
		unit[i] = math.Cos(w*float64(i)*dt + ph - math.Pi/2)
	}

	vecmath.ScaleBlock(out, unit, r)
}

// InstantaneousPower computes the instantaneous three-phase power
// p(t) = va·ia + vb·ib + vc·ic over equal-length sample buffers into dst,
// reusing dst capacity if possible.
func InstantaneousPower(dst, va, vb, vc, ia, ib, ic []float64) ([]float64, error) {
	n := len(va)
	if len(vb) != n || len(vc) != n || len(ia) != n || len(ib) != n || len(ic) != n {
		return nil, fmt.Errorf("instantaneous power buffers must have equal length: %d %d %d %d %d %d",
			len(va), len(vb), len(vc), len(ia), len(ib), len(ic))
	}

	dst = ensureLen(dst, n)
	if n == 0 {
		return dst, nil
	}

	tmp := make([]float64, n)

	vecmath.MulBlock(dst, va, ia)
	vecmath.MulBlock(tmp, vb, ib)
	vecmath.AddBlockInPlace(dst, tmp)
	vecmath.MulBlock(tmp, vc, ic)
	vecmath.AddBlockInPlace(dst, tmp)

	return dst, nil
}

// ensureLen returns a slice with the requested length, reusing buf capacity
// if possible.
func ensureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}

	return make([]float64, n)
}
