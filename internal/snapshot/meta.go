package snapshot

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avaldr/morphogen/internal/field"
)

// Meta records how a snapshot was produced, enough to reproduce the run:
// a frame is StepsPerFrame simulation steps, so both counts are kept.
type Meta struct {
	Model         string             `json:"model"`
	Width         int                `json:"width"`
	Height        int                `json:"height"`
	Frames        int                `json:"frames"`
	StepsPerFrame int                `json:"steps_per_frame"`
	Channel       string             `json:"channel,omitempty"`
	Seed          int64              `json:"seed"`
	Params        map[string]float64 `json:"params,omitempty"`
	Stats         StatsMeta          `json:"stats"`
	CreatedAt     time.Time          `json:"created_at"`
}

type StatsMeta struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// NewStatsMeta captures the grid's summary statistics.
func NewStatsMeta(g *field.Grid) StatsMeta {
	s := g.Stats()
	return StatsMeta{Min: s.Min, Max: s.Max, Mean: s.Mean}
}

func WriteMeta(path string, m Meta) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(m)
}
