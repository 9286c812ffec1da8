// Renders the magnitude of a dynamic response as a waterfall image
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"strings"

	"github.com/wiless/vlib"
)

// Colors defining the gradient in the waterfall. The higher the index, the warmer.
var colors = []color.RGBA{
	{0, 0, 0, 255},       // black
	{0, 0, 255, 255},     // blue
	{0, 255, 255, 255},   // cyan
	{0, 255, 0, 255},     // green
	{255, 255, 0, 255},   // yellow
	{255, 0, 0, 255},     // red
	{255, 255, 255, 255}, // white
}

// DynamicRangeDb clips the rendered power this far below the peak.
var DynamicRangeDb = 60.0

// gradient interpolates the color for a level in [0,1]
func gradient(lvl float64) color.RGBA {
	if lvl <= 0 {
		return colors[0]
	}
	if lvl >= 1 {
		return colors[len(colors)-1]
	}
	pos := lvl * float64(len(colors)-1)
	i := int(pos)
	fract := pos - float64(i)
	prevC := colors[i]
	currC := colors[i+1]
	// subtract in float64: uint8 differences wrap when a channel falls
	// between stops
	return color.RGBA{
		uint8((float64(currC.R)-float64(prevC.R))*fract + float64(prevC.R)),
		uint8((float64(currC.G)-float64(prevC.G))*fract + float64(prevC.G)),
		uint8((float64(currC.B)-float64(prevC.B))*fract + float64(prevC.B)),
		uint8((float64(currC.A)-float64(prevC.A))*fract + float64(prevC.A)),
	}
}

// Powers returns the per-cell power of the response in dB, row-major
// with one row per time sample
func Powers(data vlib.VectorC) vlib.VectorF {
	result := vlib.NewVectorF(len(data))
	for i, v := range data {
		power := real(v)*real(v) + imag(v)*imag(v)
		result[i] = vlib.Db(power)
	}
	return result
}

// Waterfall renders the ntime x nchan response magnitudes, one pixel per
// cell: channels left to right, time top to bottom.
func Waterfall(data vlib.VectorC, ntime, nchan int) *image.RGBA {
	powersDb := Powers(data)
	maxDb := powersDb[0]
	for _, p := range powersDb {
		if p > maxDb {
			maxDb = p
		}
	}
	// an all-zero field has no peak to scale against
	if math.IsInf(maxDb, -1) {
		maxDb = 0
	}
	minDb := maxDb - DynamicRangeDb

	canvas := image.NewRGBA(image.Rect(0, 0, nchan, ntime))
	for r := 0; r < ntime; r++ {
		for c := 0; c < nchan; c++ {
			lvl := (powersDb[r*nchan+c] - minDb) / (maxDb - minDb)
			canvas.SetRGBA(c, r, gradient(lvl))
		}
	}
	return canvas
}

// WriteImage encodes the canvas as PNG or JPEG depending on the path suffix
func WriteImage(path string, canvas image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	switch {
	case strings.HasSuffix(path, ".png"):
		return png.Encode(f, canvas)
	case strings.HasSuffix(path, ".jpg"), strings.HasSuffix(path, ".jpeg"):
		return jpeg.Encode(f, canvas, &jpeg.Options{Quality: jpeg.DefaultQuality})
	}
	return fmt.Errorf("render: unsupported image format %q", path)
}
