package reaction

import (
	"math/rand"

	"github.com/avaldr/morphogen/internal/field"
)

// GrayScott simulates the two-chemical Gray-Scott reaction-diffusion system
// on a toroidal grid. Concentrations u and v evolve by
//
//	du/dt = Du*∇²u - u*v² + F*(1-u)
//	dv/dt = Dv*∇²v + u*v² - (F+k)*v
//
// with a five-point Laplacian and wraparound boundaries. The uniform state
// (u=1, v=0) is a fixed point; patterns grow from a perturbed center patch.
type GrayScott struct {
	W, H          int
	Du, Dv        float64 // diffusion rates
	F, K          float64 // feed and kill rates
	Dt            float64
	StepsPerFrame int
	Channel       string // "u" or "v", selects the displayed chemical

	u, v, un, vn []float32
	display      *field.Grid
	rng          *rand.Rand
	seed         int64
}

// NewGrayScott builds a seeded w×h system with the classic pattern-forming
// defaults. Dimensions below 3 are raised to 3.
func NewGrayScott(w, h int, seed int64) *GrayScott {
	if w < 3 {
		w = 3
	}
	if h < 3 {
		h = 3
	}
	g := &GrayScott{
		W: w, H: h,
		Du: 2e-5, Dv: 1e-5,
		F: 0.04, K: 0.06,
		Dt:            1.0,
		StepsPerFrame: 16,
		Channel:       "u",
		u:             make([]float32, w*h),
		v:             make([]float32, w*h),
		un:            make([]float32, w*h),
		vn:            make([]float32, w*h),
		display:       field.NewGrid(w, h),
		seed:          seed,
	}
	g.Reset()
	return g
}

// Reset reseeds the chemicals: u=1, v=0 everywhere, with a centered square
// patch of (u≈0.5, v≈0.25) plus noise so patterns break symmetry. The same
// seed reproduces the same evolution.
func (g *GrayScott) Reset() {
	g.rng = rand.New(rand.NewSource(g.seed))
	for i := range g.u {
		g.u[i] = 1
		g.v[i] = 0
	}

	side := g.W / 8
	if side < 2 {
		side = 2
	}
	if side > g.H {
		side = g.H
	}
	x0 := (g.W - side) / 2
	y0 := (g.H - side) / 2
	for y := y0; y < y0+side; y++ {
		for x := x0; x < x0+side; x++ {
			i := y*g.W + x
			g.u[i] = 0.5 + 0.02*(g.rng.Float32()-0.5)
			g.v[i] = 0.25 + 0.02*(g.rng.Float32()-0.5)
		}
	}
}

// Step advances the system by one Dt using explicit Euler on the current
// parameters. Spatial scale is fixed at dx=0.01.
func (g *GrayScott) Step() {
	const dx = 0.01
	inv := float32(1.0 / (dx * dx))
	du, dv := float32(g.Du), float32(g.Dv)
	f, k := float32(g.F), float32(g.K)
	dt := float32(g.Dt)

	w, h := g.W, g.H
	for y := 0; y < h; y++ {
		up := ((y - 1 + h) % h) * w
		down := ((y + 1) % h) * w
		row := y * w
		for x := 0; x < w; x++ {
			left := (x - 1 + w) % w
			right := (x + 1) % w
			i := row + x

			u, v := g.u[i], g.v[i]
			lapU := (g.u[up+x] + g.u[down+x] + g.u[row+left] + g.u[row+right] - 4*u) * inv
			lapV := (g.v[up+x] + g.v[down+x] + g.v[row+left] + g.v[row+right] - 4*v) * inv
			uvv := u * v * v

			g.un[i] = u + (du*lapU-uvv+f*(1-u))*dt
			g.vn[i] = v + (dv*lapV+uvv-(f+k)*v)*dt
		}
	}
	g.u, g.un = g.un, g.u
	g.v, g.vn = g.vn, g.v
}

// Advance runs StepsPerFrame steps and returns the selected chemical as the
// display grid. The grid is reused between calls.
func (g *GrayScott) Advance() *field.Grid {
	for i := 0; i < g.StepsPerFrame; i++ {
		g.Step()
	}
	src := g.u
	if g.Channel == "v" {
		src = g.v
	}
	copy(g.display.Data, src)
	return g.display
}

func (g *GrayScott) GetParams() map[string]float64 {
	return map[string]float64{
		"feed":        g.F,
		"kill":        g.K,
		"diffusion_u": g.Du,
		"diffusion_v": g.Dv,
		"dt":          g.Dt,
	}
}

func (g *GrayScott) SetParam(name string, value float64) error {
	switch name {
	case "feed":
		g.F = value
	case "kill":
		g.K = value
	case "diffusion_u":
		g.Du = value
	case "diffusion_v":
		g.Dv = value
	case "dt":
		g.Dt = value
	}
	return nil
}
