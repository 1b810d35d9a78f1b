package field

// Source produces the grid to display for the next frame. Advance may step
// an underlying simulation as a side effect. The returned grid is borrowed:
// callers read it during the current frame and must not retain or mutate it.
type Source interface {
	Advance() *Grid
}

// Tunable exposes runtime-adjustable model parameters.
type Tunable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Resettable restores a source to its initial state.
type Resettable interface {
	Reset()
}
