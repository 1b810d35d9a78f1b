package field

import "math"

// Grid is a 2D scalar field stored row-major: the sample at (x, y) lives at
// Data[y*W+x]. Samples are meaningful in [0, 1]; values outside that range
// are clamped at display time.
type Grid struct {
	W, H int
	Data []float32
}

// NewGrid allocates a zeroed w×h grid. Dimensions below 1 are raised to 1.
func NewGrid(w, h int) *Grid {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Grid{W: w, H: h, Data: make([]float32, w*h)}
}

// At returns the sample at (x, y). No bounds checking beyond the slice's own.
func (g *Grid) At(x, y int) float32 {
	return g.Data[y*g.W+x]
}

// Set stores a sample at (x, y).
func (g *Grid) Set(x, y int, v float32) {
	g.Data[y*g.W+x] = v
}

// Fill sets every sample to v.
func (g *Grid) Fill(v float32) {
	for i := range g.Data {
		g.Data[i] = v
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, Data: make([]float32, len(g.Data))}
	copy(c.Data, g.Data)
	return c
}

// IsValid reports whether every sample is finite.
func (g *Grid) IsValid() bool {
	for _, v := range g.Data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
