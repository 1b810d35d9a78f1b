package reaction

import "testing"

func TestPlasmaRange(t *testing.T) {
	p := NewPlasma(64, 64)
	for frame := 0; frame < 10; frame++ {
		grid := p.Advance()
		for i, v := range grid.Data {
			if v < 0 || v > 1 {
				t.Fatalf("frame %d sample %d = %v, want [0, 1]", frame, i, v)
			}
		}
	}
}

func TestPlasmaAnimates(t *testing.T) {
	p := NewPlasma(32, 32)
	first := p.Advance().Clone()
	second := p.Advance()
	same := true
	for i := range first.Data {
		if first.Data[i] != second.Data[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("consecutive frames identical")
	}
}

func TestPlasmaReset(t *testing.T) {
	p := NewPlasma(32, 32)
	first := p.Advance().Clone()
	p.Advance()
	p.Advance()
	p.Reset()
	replay := p.Advance()
	for i := range first.Data {
		if first.Data[i] != replay.Data[i] {
			t.Fatalf("sample %d after reset = %v, want %v", i, replay.Data[i], first.Data[i])
		}
	}
}

func TestPlasmaSpeed(t *testing.T) {
	p := NewPlasma(8, 8)
	p.SetParam("speed", 0.2)
	if p.Speed != 0.2 {
		t.Errorf("Speed = %v, want 0.2", p.Speed)
	}
	if got := p.GetParams()["speed"]; got != 0.2 {
		t.Errorf("GetParams speed = %v, want 0.2", got)
	}
}
