package field

// Stats summarizes a grid for display and benchmarks.
type Stats struct {
	Min, Max, Mean float64
}

// Stats computes the min, max and mean of all samples in one pass.
func (g *Grid) Stats() Stats {
	if len(g.Data) == 0 {
		return Stats{}
	}
	lo, hi := g.Data[0], g.Data[0]
	sum := 0.0
	for _, v := range g.Data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		sum += float64(v)
	}
	return Stats{
		Min:  float64(lo),
		Max:  float64(hi),
		Mean: sum / float64(len(g.Data)),
	}
}
