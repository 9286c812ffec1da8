// Implements the parabolic scintillation arc model tau = curvature*omega^2
package arc

import (
	"encoding/json"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/sosl/pycyc/axes"
)

// DefaultOmegaSpan is the fraction of the Doppler axis reached by the
// auto-resolved arc at maximum delay.
var DefaultOmegaSpan = 0.9

// DefaultDecayFraction sets the auto-resolved decay timescale as a
// fraction of the maximum representable delay.
var DefaultDecayFraction = 0.25

// Setting holds the arc parameters. A zero Curvature or Decay is a
// sentinel asking Resolve to pick a value from the axis geometry.
type Setting struct {
	Curvature float64 // s^3, relates delay to squared Doppler shift
	Decay     float64 // s, timescale of exponential amplitude falloff
}

func (s *Setting) SetDefault() {
	s.Curvature = 0
	s.Decay = 0
}

func NewSetting() *Setting {
	result := new(Setting)
	result.SetDefault()
	return result
}

func (s *Setting) Set(str string) {
	err := json.Unmarshal([]byte(str), s)
	if err != nil {
		log.Print("Error ", err)
	}
}

// Resolve replaces sentinel parameters using the axis geometry. The
// resolved values are logged since they shape the synthesized output.
func (s *Setting) Resolve(delay axes.DelayAxis, doppler axes.DopplerAxis) error {
	if s.Curvature == 0 {
		log.Infof("arc.Resolve setting curvature to span %v%% of Doppler axis at maximum delay", DefaultOmegaSpan*100.0)
		spanOmega := DefaultOmegaSpan * doppler.MaxOmega
		s.Curvature = delay.MaxTau / (spanOmega * spanOmega)
	}
	log.Infof("arc.Resolve curvature = %v s^3", s.Curvature)

	if s.Decay == 0 {
		log.Infof("arc.Resolve setting decay time scale to %v%% of maximum delay", DefaultDecayFraction*100.0)
		s.Decay = delay.MaxTau * DefaultDecayFraction
	}
	log.Infof("arc.Resolve decay time scale = %v s", s.Decay)

	if s.Curvature <= 0 || math.IsInf(s.Curvature, 0) || math.IsNaN(s.Curvature) {
		return fmt.Errorf("arc: resolved curvature %v is not usable", s.Curvature)
	}
	if math.IsInf(s.Decay, 0) || math.IsNaN(s.Decay) {
		return fmt.Errorf("arc: resolved decay %v is not finite", s.Decay)
	}
	return nil
}

// Tau is the delay on the arc at Doppler shift omega
func (s Setting) Tau(omega float64) float64 {
	return s.Curvature * omega * omega
}

// Omega is the positive Doppler shift on the arc at delay tau
func (s Setting) Omega(tau float64) float64 {
	return math.Sqrt(tau / s.Curvature)
}

// Amplitude is the decayed arc amplitude at delay tau, 1 at tau=0
func (s Setting) Amplitude(tau float64) float64 {
	return math.Exp(-s.Decay * tau)
}
