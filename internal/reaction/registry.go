package reaction

import (
	"fmt"
	"sort"

	"github.com/avaldr/morphogen/internal/field"
)

// Params carries everything a model constructor needs.
type Params struct {
	Width, Height int
	Seed          int64
	StepsPerFrame int
	Channel       string
	Values        map[string]float64 // model-specific numeric parameters
}

// Registry maps model names to constructors.
type Registry struct {
	sources map[string]func(Params) field.Source
}

func NewRegistry() *Registry {
	r := &Registry{sources: make(map[string]func(Params) field.Source)}

	r.sources["grayscott"] = func(p Params) field.Source {
		g := NewGrayScott(p.Width, p.Height, p.Seed)
		if p.StepsPerFrame > 0 {
			g.StepsPerFrame = p.StepsPerFrame
		}
		if p.Channel != "" {
			g.Channel = p.Channel
		}
		for name, v := range p.Values {
			g.SetParam(name, v)
		}
		return g
	}

	r.sources["life"] = func(p Params) field.Source {
		l := NewLife(p.Width, p.Height, p.Seed)
		for name, v := range p.Values {
			l.SetParam(name, v)
		}
		l.Reset()
		return l
	}

	r.sources["plasma"] = func(p Params) field.Source {
		pl := NewPlasma(p.Width, p.Height)
		for name, v := range p.Values {
			pl.SetParam(name, v)
		}
		return pl
	}

	return r
}

// GetSource builds the named model.
func (r *Registry) GetSource(name string, p Params) (field.Source, error) {
	fn, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(p), nil
}

// ListModels returns the registered model names, sorted.
func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
