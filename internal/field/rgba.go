package field

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Luma maps one sample to its display byte: clamp to [0, 1], scale to
// [0, 255], truncate. NaN renders black.
func Luma(v float32) uint8 {
	if math.IsNaN(float64(v)) {
		return 0
	}
	return uint8(mgl32.Clamp(v, 0, 1) * 255)
}

// AppendRGBA converts the grid to grayscale RGBA bytes, appending to dst and
// returning the extended slice. Each sample's display byte is replicated
// across all four channels, so alpha carries the same value as luminance.
// Byte order follows the grid's row-major layout: 4*(y*W+x) is the first
// byte of sample (x, y).
func (g *Grid) AppendRGBA(dst []byte) []byte {
	for _, v := range g.Data {
		b := Luma(v)
		dst = append(dst, b, b, b, b)
	}
	return dst
}

// RGBA converts the grid into a freshly allocated 4*W*H byte buffer. See
// [Grid.AppendRGBA].
func (g *Grid) RGBA() []byte {
	return g.AppendRGBA(make([]byte, 0, 4*len(g.Data)))
}
