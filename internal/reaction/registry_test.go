package reaction

import "testing"

func TestRegistryGetSource(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"grayscott", "life", "plasma"} {
		src, err := r.GetSource(name, Params{Width: 16, Height: 16, Seed: 1})
		if err != nil {
			t.Fatalf("GetSource(%q): %v", name, err)
		}
		grid := src.Advance()
		if grid.W != 16 || grid.H != 16 {
			t.Errorf("%s grid = %dx%d, want 16x16", name, grid.W, grid.H)
		}
	}
}

func TestRegistryUnknownModel(t *testing.T) {
	r := NewRegistry()
	if _, err := r.GetSource("nope", Params{Width: 8, Height: 8}); err == nil {
		t.Fatal("expected error for unknown model")
	}
}

func TestRegistryAppliesValues(t *testing.T) {
	r := NewRegistry()
	src, err := r.GetSource("grayscott", Params{
		Width: 16, Height: 16, Seed: 1,
		StepsPerFrame: 4,
		Channel:       "v",
		Values:        map[string]float64{"feed": 0.035, "kill": 0.065},
	})
	if err != nil {
		t.Fatal(err)
	}
	g, ok := src.(*GrayScott)
	if !ok {
		t.Fatalf("source type = %T, want *GrayScott", src)
	}
	if g.F != 0.035 || g.K != 0.065 {
		t.Errorf("params = (%v, %v), want (0.035, 0.065)", g.F, g.K)
	}
	if g.StepsPerFrame != 4 {
		t.Errorf("StepsPerFrame = %d, want 4", g.StepsPerFrame)
	}
	if g.Channel != "v" {
		t.Errorf("Channel = %q, want v", g.Channel)
	}
}

func TestRegistryListModels(t *testing.T) {
	r := NewRegistry()
	names := r.ListModels()
	if len(names) != 3 {
		t.Fatalf("ListModels = %v, want 3 entries", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("ListModels not sorted: %v", names)
		}
	}
}
