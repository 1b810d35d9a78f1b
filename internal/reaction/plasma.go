package reaction

import (
	"math"

	"github.com/avaldr/morphogen/internal/field"
)

// Plasma renders a moving interference pattern from three sine waves. It
// carries no simulation state beyond a clock, which makes it a cheap smoke
// test for shaders and window plumbing.
type Plasma struct {
	W, H  int
	Speed float64 // clock increment per frame

	t       float64
	display *field.Grid
}

func NewPlasma(w, h int) *Plasma {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Plasma{W: w, H: h, Speed: 0.05, display: field.NewGrid(w, h)}
}

// Advance ticks the clock and redraws the pattern. Samples stay in [0, 1].
// The returned grid is reused between calls.
func (p *Plasma) Advance() *field.Grid {
	p.t += p.Speed
	t := p.t
	for y := 0; y < p.H; y++ {
		fy := float64(y)
		for x := 0; x < p.W; x++ {
			fx := float64(x)
			s := math.Sin(fx/16+t) + math.Sin(fy/8-1.3*t) + math.Sin((fx+fy)/24+0.7*t)
			p.display.Data[y*p.W+x] = float32(0.5 + s/6)
		}
	}
	return p.display
}

// Reset rewinds the clock to zero.
func (p *Plasma) Reset() {
	p.t = 0
}

func (p *Plasma) GetParams() map[string]float64 {
	return map[string]float64{"speed": p.Speed}
}

func (p *Plasma) SetParam(name string, value float64) error {
	if name == "speed" {
		p.Speed = value
	}
	return nil
}
