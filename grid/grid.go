// Shared complex field storage for the delay-Doppler wavefield and the
// dynamic response that replaces it in place after the 2D transform.
package grid

import (
	"github.com/wiless/vlib"
)

// Grid is a dense ntime x nchan complex field in row-major, time-major
// layout: cell (r, c) sits at r*nchan + c. It is zeroed at construction
// and owned exclusively by the call that builds it.
type Grid struct {
	ntime int
	nchan int
	data  vlib.VectorC
}

func New(ntime, nchan int) *Grid {
	result := new(Grid)
	result.ntime = ntime
	result.nchan = nchan
	result.data = vlib.NewVectorC(ntime * nchan)
	return result
}

func (g *Grid) NTime() int {
	return g.ntime
}

func (g *Grid) NChan() int {
	return g.nchan
}

// Data exposes the backing buffer. Rows of length NChan are contiguous.
func (g *Grid) Data() vlib.VectorC {
	return g.data
}

// Wavefield is the delay-Doppler view of the grid, valid before the
// transform. Rows index Doppler-shift bins with the usual DFT wraparound
// for negative shifts, columns index delay bins.
func (g *Grid) Wavefield() Wavefield {
	return Wavefield{g}
}

// Response is the time-frequency view of the same buffer, valid after
// the transform. Rows index time samples, columns index channels.
func (g *Grid) Response() Response {
	return Response{g}
}

type Wavefield struct {
	g *Grid
}

func (w Wavefield) At(jomega, jtau int) complex128 {
	return w.g.data[jomega*w.g.nchan+jtau]
}

func (w Wavefield) Set(jomega, jtau int, v complex128) {
	w.g.data[jomega*w.g.nchan+jtau] = v
}

// MirrorAt reads the negative-Doppler counterpart of bin jomega
func (w Wavefield) MirrorAt(jomega, jtau int) complex128 {
	return w.g.data[(w.g.ntime-jomega)*w.g.nchan+jtau]
}

// SetMirror writes the negative-Doppler counterpart of bin jomega.
// Only valid for jomega > 0; the DC row has no mirror.
func (w Wavefield) SetMirror(jomega, jtau int, v complex128) {
	w.g.data[(w.g.ntime-jomega)*w.g.nchan+jtau] = v
}

type Response struct {
	g *Grid
}

func (r Response) At(itime, ichan int) complex128 {
	return r.g.data[itime*r.g.nchan+ichan]
}
