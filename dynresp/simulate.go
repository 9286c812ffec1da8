// Synthesizes a dynamic response carrying a parabolic scintillation arc,
// as test input for scintillation analysis pipelines.
package dynresp

import (
	"math/rand"

	log "github.com/sirupsen/logrus"

	"github.com/sosl/pycyc"
	"github.com/sosl/pycyc/arc"
	"github.com/sosl/pycyc/axes"
	"github.com/sosl/pycyc/grid"
)

// Simulate traces the scintillation arc through the delay-Doppler plane
// of the observation, fills the wavefield with decaying randomly-phased
// amplitudes, and transforms it in place into the time-frequency dynamic
// response. The output is always single polarization.
//
// Callers must supply nchan > 0, bandwidth != 0, ntime > 0 and a
// positive sampling interval; a nil rng gets a clock-seeded source.
func Simulate(obs pycyc.ObsInfo, setting SimSetting, rng *rand.Rand) (*pycyc.DynamicResponse, error) {
	freq := axes.NewFrequencyAxis(obs.NChan, obs.CentreFreq, obs.Bandwidth)
	delay := axes.NewDelayAxis(obs.NChan, obs.Bandwidth)
	doppler := axes.NewDopplerAxis(setting.NTime, setting.SamplingInterval)

	model := arc.Setting{Curvature: setting.ArcCurvature, Decay: setting.ImpulseResponseDecay}
	if err := model.Resolve(delay, doppler); err != nil {
		return nil, err
	}

	log.Infof("dynresp.Simulate nomega=%d ntau=%d", doppler.NOmega, delay.NTau)

	g := grid.New(setting.NTime, obs.NChan)
	wavefield := g.Wavefield()
	synth := NewSynthesizer(model, rng)

	walker := NewWalker(delay, doppler, model)
	walker.Walk(func(pt ArcPoint) {
		synth.Emit(wavefield, pt)
	})

	Transform2D(g)

	result := new(pycyc.DynamicResponse)
	result.MinFreq = freq.MinFreq
	result.MaxFreq = freq.MaxFreq
	result.NChan = obs.NChan
	result.NTime = setting.NTime
	result.NPol = 1
	result.Data = g.Data()
	return result, nil
}
