package sweep

import (
	"context"
	"image"
	"image/draw"
	"log/slog"
	"time"

	"github.com/avaldr/morphogen/internal/reaction"
	"github.com/avaldr/morphogen/internal/snapshot"
)

// Sweep runs a grid of Gray-Scott simulations over feed and kill ranges and
// tiles the final fields into one contact sheet. Feed varies down the rows,
// kill across the columns.
type Sweep struct {
	FeedMin, FeedMax float64
	KillMin, KillMax float64
	Rows, Cols       int
	CellSize         int // simulation grid edge per cell
	Steps            int // simulation steps per cell
	Seed             int64
}

// Cell records the parameters of one completed run.
type Cell struct {
	Row, Col   int
	Feed, Kill float64
}

// New returns a sweep across the classic pattern-forming region.
func New() *Sweep {
	return &Sweep{
		FeedMin: 0.020, FeedMax: 0.060,
		KillMin: 0.050, KillMax: 0.070,
		Rows: 4, Cols: 4,
		CellSize: 128,
		Steps:    2000,
		Seed:     42,
	}
}

// Run executes the cells row-major and returns the assembled sheet.
// Cancellation is checked between cells; the cells completed so far are
// returned with the context's error.
func (s *Sweep) Run(ctx context.Context) (*image.RGBA, []Cell, error) {
	sheet := image.NewRGBA(image.Rect(0, 0, s.Cols*s.CellSize, s.Rows*s.CellSize))
	cells := make([]Cell, 0, s.Rows*s.Cols)

	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Cols; col++ {
			select {
			case <-ctx.Done():
				return nil, cells, ctx.Err()
			default:
			}

			feed := lerp(s.FeedMin, s.FeedMax, frac(row, s.Rows))
			kill := lerp(s.KillMin, s.KillMax, frac(col, s.Cols))

			start := time.Now()
			g := reaction.NewGrayScott(s.CellSize, s.CellSize, s.Seed)
			g.F, g.K = feed, kill
			g.StepsPerFrame = s.Steps
			grid := g.Advance()

			tile := snapshot.Image(grid, 1)
			rect := image.Rect(col*s.CellSize, row*s.CellSize, (col+1)*s.CellSize, (row+1)*s.CellSize)
			draw.Draw(sheet, rect, tile, image.Point{}, draw.Src)

			cells = append(cells, Cell{Row: row, Col: col, Feed: feed, Kill: kill})
			slog.Debug("sweep cell done",
				"row", row, "col", col,
				"feed", feed, "kill", kill,
				"elapsed", time.Since(start))
		}
	}
	return sheet, cells, nil
}

// frac maps index i of n cells onto [0, 1].
func frac(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

func lerp(lo, hi, t float64) float64 {
	return lo + (hi-lo)*t
}
