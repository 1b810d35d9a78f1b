package reaction

import "testing"

func setCells(l *Life, coords ...[2]int) {
	l.cur.Fill(0)
	for _, c := range coords {
		l.cur.Set(c[0], c[1], 1)
	}
}

func wantCells(t *testing.T, l *Life, coords ...[2]int) {
	t.Helper()
	want := make(map[[2]int]bool, len(coords))
	for _, c := range coords {
		want[c] = true
	}
	for y := 0; y < l.H; y++ {
		for x := 0; x < l.W; x++ {
			alive := l.cur.At(x, y) == 1
			if alive != want[[2]int{x, y}] {
				t.Errorf("cell (%d,%d) alive=%v, want %v", x, y, alive, !alive)
			}
		}
	}
}

func TestLifeBlinker(t *testing.T) {
	l := NewLife(5, 5, 1)
	setCells(l, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

	l.Advance()
	wantCells(t, l, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	l.Advance()
	wantCells(t, l, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
}

func TestLifeBlock(t *testing.T) {
	l := NewLife(6, 6, 1)
	block := [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}}
	setCells(l, block...)

	for i := 0; i < 5; i++ {
		l.Advance()
	}
	wantCells(t, l, block...)
}

func TestLifeEmptyStaysEmpty(t *testing.T) {
	l := NewLife(8, 8, 1)
	l.Density = 0
	l.Reset()

	grid := l.Advance()
	for i, v := range grid.Data {
		if v != 0 {
			t.Fatalf("cell %d = %v on an empty board", i, v)
		}
	}
}

func TestLifeDeterministic(t *testing.T) {
	a := NewLife(16, 16, 9)
	b := NewLife(16, 16, 9)
	for i := 0; i < 10; i++ {
		ga := a.Advance()
		gb := b.Advance()
		for j := range ga.Data {
			if ga.Data[j] != gb.Data[j] {
				t.Fatalf("generation %d cell %d diverged", i, j)
			}
		}
	}
}

func TestLifeDensityOnReset(t *testing.T) {
	l := NewLife(32, 32, 3)
	l.SetParam("density", 1.0)
	l.Reset()
	for i, v := range l.cur.Data {
		if v != 1 {
			t.Fatalf("cell %d = %v, want 1 at density 1.0", i, v)
		}
	}
}
