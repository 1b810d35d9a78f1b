package reaction

import (
	"math/rand"

	"github.com/avaldr/morphogen/internal/field"
)

// Life is Conway's Game of Life (B3/S23) on a toroidal grid. Cells hold 0
// or 1, which renders as black and white.
type Life struct {
	W, H    int
	Density float64 // fraction of cells alive after Reset

	cur, next *field.Grid
	rng       *rand.Rand
	seed      int64
}

// NewLife builds a randomly seeded w×h automaton. Dimensions below 3 are
// raised to 3.
func NewLife(w, h int, seed int64) *Life {
	if w < 3 {
		w = 3
	}
	if h < 3 {
		h = 3
	}
	l := &Life{
		W: w, H: h,
		Density: 0.3,
		cur:     field.NewGrid(w, h),
		next:    field.NewGrid(w, h),
		seed:    seed,
	}
	l.Reset()
	return l
}

// Reset randomizes the board: each cell lives with probability Density.
func (l *Life) Reset() {
	l.rng = rand.New(rand.NewSource(l.seed))
	for i := range l.cur.Data {
		if l.rng.Float64() < l.Density {
			l.cur.Data[i] = 1
		} else {
			l.cur.Data[i] = 0
		}
	}
}

// Advance computes one generation and returns the new board. The returned
// grid is reused between calls.
func (l *Life) Advance() *field.Grid {
	w, h := l.W, l.H
	for y := 0; y < h; y++ {
		up := ((y - 1 + h) % h) * w
		mid := y * w
		down := ((y + 1) % h) * w
		for x := 0; x < w; x++ {
			left := (x - 1 + w) % w
			right := (x + 1) % w

			n := l.cur.Data[up+left] + l.cur.Data[up+x] + l.cur.Data[up+right] +
				l.cur.Data[mid+left] + l.cur.Data[mid+right] +
				l.cur.Data[down+left] + l.cur.Data[down+x] + l.cur.Data[down+right]

			alive := l.cur.Data[mid+x] == 1
			if n == 3 || (alive && n == 2) {
				l.next.Data[mid+x] = 1
			} else {
				l.next.Data[mid+x] = 0
			}
		}
	}
	l.cur, l.next = l.next, l.cur
	return l.cur
}

func (l *Life) GetParams() map[string]float64 {
	return map[string]float64{"density": l.Density}
}

// SetParam adjusts seeding parameters. Density takes effect on the next
// Reset.
func (l *Life) SetParam(name string, value float64) error {
	if name == "density" {
		l.Density = value
	}
	return nil
}
