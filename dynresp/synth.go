package dynresp

import (
	"math"
	"math/cmplx"
	"math/rand"
	"time"

	"github.com/sosl/pycyc/arc"
	"github.com/sosl/pycyc/grid"
)

// Synthesizer converts traced arc points into wavefield cells. It owns
// its random source so a fixed seed reproduces the synthesized phases.
type Synthesizer struct {
	model arc.Setting
	rng   *rand.Rand
}

// NewSynthesizer builds a synthesizer for the resolved arc model. A nil
// rng falls back to a clock-seeded source.
func NewSynthesizer(model arc.Setting, rng *rand.Rand) *Synthesizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	result := new(Synthesizer)
	result.model = model
	result.rng = rng
	return result
}

// RandomPhasor draws an independent unit-magnitude phasor with phase
// uniform on [0, 2pi)
func (s *Synthesizer) RandomPhasor() complex128 {
	phase := s.rng.Float64() * 2.0 * math.Pi
	return cmplx.Exp(complex(0, phase))
}

// Emit writes one arc point into the wavefield. The DC Doppler row keeps
// a purely real amplitude; every other row gets an independently drawn
// phase together with an independently phased negative-Doppler mirror of
// the same magnitude.
func (s *Synthesizer) Emit(w grid.Wavefield, pt ArcPoint) {
	amplitude := s.model.Amplitude(pt.Tau)
	w.Set(pt.JOmega, pt.JTau, complex(amplitude, 0))
	if pt.JOmega > 0 {
		w.Set(pt.JOmega, pt.JTau, w.At(pt.JOmega, pt.JTau)*s.RandomPhasor())
		w.SetMirror(pt.JOmega, pt.JTau, complex(amplitude, 0)*s.RandomPhasor())
	}
}
