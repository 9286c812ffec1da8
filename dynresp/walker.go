package dynresp

import (
	log "github.com/sirupsen/logrus"

	"github.com/sosl/pycyc/arc"
	"github.com/sosl/pycyc/axes"
)

type Parametrization int

var Parametrizations = [...]string{
	"ParametrizeByOmega",
	"ParametrizeByTau",
}

func (p Parametrization) String() string {
	if int(p) >= len(Parametrizations) {
		return "Unknown-Parametrization"
	}
	return Parametrizations[p]
}

const (
	ParametrizeByOmega Parametrization = iota
	ParametrizeByTau
)

// ArcPoint is one traced sample of the arc locus: the delay and Doppler
// bins to populate and the delay used for the amplitude.
type ArcPoint struct {
	JTau   int
	JOmega int
	Tau    float64 // seconds
}

// Walker traces the parabolic arc through the positive quadrant of the
// delay-Doppler index space. It starts by stepping uniformly in Doppler;
// once the quadratic relation makes a Doppler step skip a delay bin, it
// switches to stepping uniformly in delay and deriving Doppler, keeping
// the traced locus contiguous along the delay axis. The switch is
// one-directional.
type Walker struct {
	delay   axes.DelayAxis
	doppler axes.DopplerAxis
	model   arc.Setting

	mode   Parametrization
	iomega int
	itau   int
}

func NewWalker(delay axes.DelayAxis, doppler axes.DopplerAxis, model arc.Setting) *Walker {
	result := new(Walker)
	result.delay = delay
	result.doppler = doppler
	result.model = model
	result.mode = ParametrizeByOmega
	return result
}

// Mode reports the current parametrization
func (w *Walker) Mode() Parametrization {
	return w.mode
}

// Walk traces the arc, calling emit once per iteration with the point to
// populate. On the iteration where the mode switches, both
// parametrizations run and the delay-parametrized recomputation
// supersedes the Doppler-parametrized candidate, which is never emitted.
func (w *Walker) Walk(emit func(ArcPoint)) {
	var omega, tau float64
	var jtau, jomega int

	for w.iomega < w.doppler.NOmega && w.itau < w.delay.NTau {
		if w.mode == ParametrizeByOmega {
			omega = float64(w.iomega) * w.doppler.DeltaOmega
			tau = w.model.Tau(omega)
			jtau = int(tau / w.delay.DeltaTau)
			jomega = w.iomega

			// the step in tau has grown beyond one delay bin
			if jtau > w.itau {
				log.Infof("dynresp.Walk switch to delay parametrization when iomega=%d and itau=%d", w.iomega, w.itau)
				w.mode = ParametrizeByTau
			}

			w.iomega++
			w.itau = jtau + 1
		}

		if w.mode == ParametrizeByTau {
			tau = float64(w.itau) * w.delay.DeltaTau
			omega = w.model.Omega(tau)
			jtau = w.itau
			jomega = int(omega / w.doppler.DeltaOmega)
			if jomega >= w.doppler.NOmega {
				break
			}

			w.itau++
			w.iomega = jomega
		}

		emit(ArcPoint{JTau: jtau, JOmega: jomega, Tau: tau})
	}

	log.Infof("dynresp.Walk finished with iomega=%d and itau=%d", w.iomega, w.itau)
}
