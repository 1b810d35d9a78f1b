package reaction

import "testing"

func TestGrayScottFixedPoint(t *testing.T) {
	g := NewGrayScott(16, 16, 1)
	for i := range g.u {
		g.u[i] = 1
		g.v[i] = 0
	}

	for s := 0; s < 10; s++ {
		g.Step()
	}
	for i := range g.u {
		if g.u[i] != 1 || g.v[i] != 0 {
			t.Fatalf("sample %d = (%v, %v), want (1, 0)", i, g.u[i], g.v[i])
		}
	}
}

func TestGrayScottSeedPatch(t *testing.T) {
	g := NewGrayScott(64, 64, 1)
	center := 32*64 + 32
	if g.u[0] != 1 || g.v[0] != 0 {
		t.Errorf("corner = (%v, %v), want (1, 0)", g.u[0], g.v[0])
	}
	if g.u[center] >= 0.9 {
		t.Errorf("center u = %v, want perturbed below 0.9", g.u[center])
	}
	if g.v[center] <= 0.1 {
		t.Errorf("center v = %v, want perturbed above 0.1", g.v[center])
	}
}

func TestGrayScottDeterministic(t *testing.T) {
	a := NewGrayScott(32, 32, 42)
	b := NewGrayScott(32, 32, 42)
	for s := 0; s < 50; s++ {
		a.Step()
		b.Step()
	}
	for i := range a.u {
		if a.u[i] != b.u[i] || a.v[i] != b.v[i] {
			t.Fatalf("sample %d diverged: (%v, %v) vs (%v, %v)", i, a.u[i], a.v[i], b.u[i], b.v[i])
		}
	}
}

func TestGrayScottReset(t *testing.T) {
	a := NewGrayScott(32, 32, 42)
	b := NewGrayScott(32, 32, 42)
	for s := 0; s < 50; s++ {
		a.Step()
	}
	a.Reset()
	for i := range a.u {
		if a.u[i] != b.u[i] || a.v[i] != b.v[i] {
			t.Fatalf("sample %d not reseeded: (%v, %v) vs (%v, %v)", i, a.u[i], a.v[i], b.u[i], b.v[i])
		}
	}
}

func TestGrayScottAdvance(t *testing.T) {
	g := NewGrayScott(32, 32, 1)
	g.StepsPerFrame = 4

	grid := g.Advance()
	if grid.W != 32 || grid.H != 32 {
		t.Fatalf("grid = %dx%d, want 32x32", grid.W, grid.H)
	}
	if again := g.Advance(); again != grid {
		t.Error("display grid reallocated between frames")
	}
}

func TestGrayScottChannel(t *testing.T) {
	g := NewGrayScott(32, 32, 1)
	g.StepsPerFrame = 1
	g.Channel = "v"
	grid := g.Advance()
	// Away from the center patch, v stays near 0 while u stays near 1.
	if grid.At(0, 0) > 0.5 {
		t.Errorf("corner on channel v = %v, want near 0", grid.At(0, 0))
	}
	g.Channel = "u"
	grid = g.Advance()
	if grid.At(0, 0) < 0.5 {
		t.Errorf("corner on channel u = %v, want near 1", grid.At(0, 0))
	}
}

func TestGrayScottStaysFinite(t *testing.T) {
	g := NewGrayScott(48, 48, 7)
	g.StepsPerFrame = 50
	grid := g.Advance()
	if !grid.IsValid() {
		t.Fatal("grid contains NaN or Inf after 50 steps")
	}
	s := grid.Stats()
	if s.Min < -0.5 || s.Max > 1.5 {
		t.Errorf("samples left plausible range: min=%v max=%v", s.Min, s.Max)
	}
}

func TestGrayScottParams(t *testing.T) {
	g := NewGrayScott(8, 8, 1)
	params := g.GetParams()
	for _, key := range []string{"feed", "kill", "diffusion_u", "diffusion_v", "dt"} {
		if _, ok := params[key]; !ok {
			t.Errorf("GetParams missing %q", key)
		}
	}

	if err := g.SetParam("feed", 0.035); err != nil {
		t.Fatalf("SetParam: %v", err)
	}
	if g.F != 0.035 {
		t.Errorf("F = %v, want 0.035", g.F)
	}
	if err := g.SetParam("unknown", 1.0); err != nil {
		t.Errorf("unknown parameter returned error: %v", err)
	}
}
