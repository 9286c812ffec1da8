// Derives the sampling geometry of the delay-Doppler and time-frequency planes
package axes

// FrequencyAxis spans the observed band. Min and Max are channel centre
// frequencies, in the same unit as the centre frequency and bandwidth.
type FrequencyAxis struct {
	NChan   int
	MinFreq float64
	MaxFreq float64
}

// NewFrequencyAxis places nchan channels across bandwidth bw around cfreq.
func NewFrequencyAxis(nchan int, cfreq, bw float64) FrequencyAxis {
	var result FrequencyAxis
	chanbw := bw / float64(nchan)
	result.NChan = nchan
	result.MinFreq = cfreq - 0.5*(bw-chanbw)
	result.MaxFreq = cfreq + 0.5*(bw-chanbw)
	return result
}

// TimeAxis spans the simulated observation in time.
type TimeAxis struct {
	NTime            int
	SamplingInterval float64 // seconds
}

func NewTimeAxis(ntime int, tsamp float64) TimeAxis {
	return TimeAxis{NTime: ntime, SamplingInterval: tsamp}
}

// Span is the total time covered by the axis, in seconds
func (t TimeAxis) Span() float64 {
	return float64(t.NTime) * t.SamplingInterval
}

// DelayAxis is conjugate to the frequency axis. With bandwidth in MHz,
// delays are in seconds.
type DelayAxis struct {
	DeltaTau float64 // sampling interval along the delay axis, seconds
	MaxTau   float64 // maximum positive delay, seconds
	NTau     int     // number of positive delay bins
}

func NewDelayAxis(nchan int, bw float64) DelayAxis {
	var result DelayAxis
	result.DeltaTau = 1e-6 / bw
	result.MaxTau = 0.5 * float64(nchan) * result.DeltaTau
	result.NTau = nchan / 2
	return result
}

// DopplerAxis is conjugate to the time axis. Doppler shifts are in Hz.
type DopplerAxis struct {
	DeltaOmega float64 // sampling interval along the Doppler axis, Hz
	MaxOmega   float64 // maximum positive Doppler shift, Hz
	NOmega     int     // number of positive Doppler bins
}

func NewDopplerAxis(ntime int, tsamp float64) DopplerAxis {
	var result DopplerAxis
	result.DeltaOmega = 1.0 / (float64(ntime) * tsamp)
	result.MaxOmega = 0.5 * float64(ntime) * result.DeltaOmega
	result.NOmega = ntime / 2
	return result
}
