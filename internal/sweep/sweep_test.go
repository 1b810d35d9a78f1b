package sweep

import (
	"context"
	"errors"
	"testing"
)

func TestSweepRun(t *testing.T) {
	s := New()
	s.Rows, s.Cols = 2, 2
	s.CellSize = 16
	s.Steps = 10

	sheet, cells, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if b := sheet.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("sheet bounds = %v, want 32x32", b)
	}
	if len(cells) != 4 {
		t.Fatalf("cells = %d, want 4", len(cells))
	}

	first := cells[0]
	if first.Feed != s.FeedMin || first.Kill != s.KillMin {
		t.Errorf("cell (0,0) = feed %f kill %f, want minimums", first.Feed, first.Kill)
	}
	last := cells[3]
	if last.Feed != s.FeedMax || last.Kill != s.KillMax {
		t.Errorf("cell (1,1) = feed %f kill %f, want maximums", last.Feed, last.Kill)
	}
}

func TestSweepSingleCell(t *testing.T) {
	s := New()
	s.Rows, s.Cols = 1, 1
	s.CellSize = 8
	s.Steps = 1

	_, cells, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(cells) != 1 {
		t.Fatalf("cells = %d, want 1", len(cells))
	}
	if cells[0].Feed != s.FeedMin || cells[0].Kill != s.KillMin {
		t.Errorf("single cell uses range minimum, got feed %f kill %f", cells[0].Feed, cells[0].Kill)
	}
}

func TestSweepCanceled(t *testing.T) {
	s := New()
	s.Rows, s.Cols = 4, 4
	s.CellSize = 8
	s.Steps = 1

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, cells, err := s.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(cells) != 0 {
		t.Errorf("cells = %d, want 0 after immediate cancel", len(cells))
	}
}
