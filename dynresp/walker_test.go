package dynresp

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sosl/pycyc/arc"
	"github.com/sosl/pycyc/axes"
)

// unit-spaced axes make the traced indices easy to follow by hand
func unitAxes(ntau, nomega int) (axes.DelayAxis, axes.DopplerAxis) {
	delay := axes.DelayAxis{DeltaTau: 1, MaxTau: float64(ntau), NTau: ntau}
	doppler := axes.DopplerAxis{DeltaOmega: 1, MaxOmega: float64(nomega), NOmega: nomega}
	return delay, doppler
}

func collect(w *Walker) []ArcPoint {
	var points []ArcPoint
	w.Walk(func(pt ArcPoint) {
		points = append(points, pt)
	})
	return points
}

// TestWalker_TraceWithSwitch follows a curvature-0.5 arc on unit axes.
// The third iteration steps from delay bin 0 to bin 2, triggering the
// switch to delay parametrization; from then on the delay bins are
// contiguous while Doppler bins repeat.
func TestWalker_TraceWithSwitch(t *testing.T) {
	delay, doppler := unitAxes(16, 8)
	w := NewWalker(delay, doppler, arc.Setting{Curvature: 0.5, Decay: 1})

	require.Equal(t, ParametrizeByOmega, w.Mode())
	points := collect(w)
	assert.Equal(t, ParametrizeByTau, w.Mode(), "the skip at iomega=2 must switch the parametrization")

	expected := [][2]int{
		{0, 0}, {0, 1},
		{3, 2}, {4, 2},
		{5, 3}, {6, 3}, {7, 3},
		{8, 4}, {9, 4}, {10, 4}, {11, 4}, {12, 4},
		{13, 5}, {14, 5}, {15, 5},
	}
	require.Len(t, points, len(expected))
	for i, pt := range points {
		assert.Equal(t, expected[i][0], pt.JTau, "JTau of point %d", i)
		assert.Equal(t, expected[i][1], pt.JOmega, "JOmega of point %d", i)
	}
}

// TestWalker_SwitchIterationOverride pins the behavior on the iteration
// where the mode switches: the Doppler-parametrized candidate (2, 2) is
// recomputed by the delay-parametrized phase to (3, 2), and only the
// latter is emitted.
func TestWalker_SwitchIterationOverride(t *testing.T) {
	delay, doppler := unitAxes(16, 8)
	w := NewWalker(delay, doppler, arc.Setting{Curvature: 0.5, Decay: 1})

	points := collect(w)
	assert.Equal(t, 3, points[2].JTau)
	assert.Equal(t, 2, points[2].JOmega)
	assert.Equal(t, 3.0, points[2].Tau, "Tau must come from the delay parametrization")
	for _, pt := range points {
		assert.False(t, pt.JTau == 2 && pt.JOmega == 2, "the superseded candidate must never be emitted")
	}
}

// TestWalker_TerminatesWithoutWrite shrinks the Doppler axis so the
// delay-parametrized phase runs off its end; the terminating iteration
// must not emit.
func TestWalker_TerminatesWithoutWrite(t *testing.T) {
	delay, doppler := unitAxes(16, 3)
	w := NewWalker(delay, doppler, arc.Setting{Curvature: 0.5, Decay: 1})

	points := collect(w)
	expected := [][2]int{{0, 0}, {0, 1}, {3, 2}, {4, 2}}
	require.Len(t, points, len(expected))
	for i, pt := range points {
		assert.Equal(t, expected[i][0], pt.JTau, "JTau of point %d", i)
		assert.Equal(t, expected[i][1], pt.JOmega, "JOmega of point %d", i)
	}
}

// TestWalker_BoundsAndMonotonic runs a realistically sized walk with an
// auto-resolved arc and checks every emitted point stays inside the
// positive quadrant with non-decreasing indices.
func TestWalker_BoundsAndMonotonic(t *testing.T) {
	delay := axes.NewDelayAxis(128, 128.0)
	doppler := axes.NewDopplerAxis(256, 15.0)
	model := arc.Setting{}
	require.NoError(t, model.Resolve(delay, doppler))

	w := NewWalker(delay, doppler, model)
	points := collect(w)
	require.NotEmpty(t, points)

	prev := ArcPoint{}
	for i, pt := range points {
		require.GreaterOrEqual(t, pt.JTau, 0)
		require.Less(t, pt.JTau, delay.NTau)
		require.GreaterOrEqual(t, pt.JOmega, 0)
		require.Less(t, pt.JOmega, doppler.NOmega)
		if i > 0 {
			require.GreaterOrEqual(t, pt.JTau, prev.JTau, "JTau must not decrease")
			require.GreaterOrEqual(t, pt.JOmega, prev.JOmega, "JOmega must not decrease")
		}
		prev = pt
	}
}

// TestWalker_LogsTheSwitch checks the parametrization change is
// reported, like the resolved arc parameters are.
func TestWalker_LogsTheSwitch(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	delay, doppler := unitAxes(16, 8)
	w := NewWalker(delay, doppler, arc.Setting{Curvature: 0.5, Decay: 1})
	collect(w)

	switched := false
	finished := false
	for _, entry := range hook.AllEntries() {
		if strings.Contains(entry.Message, "switch to delay parametrization when iomega=2 and itau=1") {
			switched = true
		}
		if strings.Contains(entry.Message, "finished with iomega=5 and itau=16") {
			finished = true
		}
	}
	assert.True(t, switched, "the parametrization switch must be logged with its cursor state")
	assert.True(t, finished, "the final cursor state must be logged")
}

func TestParametrizationString(t *testing.T) {
	assert.Equal(t, "ParametrizeByOmega", ParametrizeByOmega.String())
	assert.Equal(t, "ParametrizeByTau", ParametrizeByTau.String())
	assert.Equal(t, "Unknown-Parametrization", Parametrization(7).String())
}
