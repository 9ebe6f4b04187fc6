package algorithms

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateFilter = errors.New("filter already registered")
	ErrUnknownFilter   = errors.New("filter not found")
)

// Registry holds filters by name in registration order. The order is the
// order in which the pipeline applies them.
type Registry struct {
	filters []Filter
	index   map[string]int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		filters: make([]Filter, 0),
		index:   make(map[string]int),
	}
}

// Params are the fixed construction parameters of the default filters
type Params struct {
	GaussianKernel  int
	CannyLow        float32
	CannyHigh       float32
	SketchKernel    int
	SketchScale     float32
	SketchThreshold float32
}

// DefaultParams returns the stock parameters
func DefaultParams() Params {
	return Params{
		GaussianKernel:  DefaultGaussianKernel,
		CannyLow:        DefaultCannyLow,
		CannyHigh:       DefaultCannyHigh,
		SketchKernel:    DefaultSketchKernel,
		SketchScale:     DefaultSketchScale,
		SketchThreshold: DefaultSketchThreshold,
	}
}

// NewDefaultRegistry registers Gaussian Blur, Canny, Sharpen and Pencil
// Sketch, in that order, all disabled
func NewDefaultRegistry(p Params) *Registry {
	r := NewRegistry()
	for _, f := range []Filter{
		NewGaussianBlur(p.GaussianKernel),
		NewCanny(p.CannyLow, p.CannyHigh),
		NewSharpen(),
		NewPencilSketch(p.SketchKernel, p.SketchScale, p.SketchThreshold),
	} {
		// names are distinct constants
		_ = r.Register(f)
	}
	return r
}

// Register appends f. A name can only be registered once.
func (r *Registry) Register(f Filter) error {
	name := f.Name()
	if _, exists := r.index[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateFilter, name)
	}
	r.index[name] = len(r.filters)
	r.filters = append(r.filters, f)
	return nil
}

// Get returns the filter registered under name
func (r *Registry) Get(name string) (Filter, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.filters[i], true
}

// Toggle flips the enabled flag of the named filter
func (r *Registry) Toggle(name string) error {
	f, ok := r.Get(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFilter, name)
	}
	f.Toggle()
	return nil
}

// Filters returns the filters in registration order
func (r *Registry) Filters() []Filter {
	result := make([]Filter, len(r.filters))
	copy(result, r.filters)
	return result
}

// Names returns the filter names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.filters))
	for i, f := range r.filters {
		names[i] = f.Name()
	}
	return names
}

// Enabled returns the enabled filters in registration order
func (r *Registry) Enabled() []Filter {
	result := make([]Filter, 0, len(r.filters))
	for _, f := range r.filters {
		if f.Enabled() {
			result = append(result, f)
		}
	}
	return result
}

// Len returns the number of registered filters
func (r *Registry) Len() int { return len(r.filters) }
