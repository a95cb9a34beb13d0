// Package filter defines the registry of line-oriented text transforms
// that pipe clauses apply to command output.
package filter

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Filter is the interface every text transform must implement. Filters are
// pure: they read the input text and their args, and return the transformed
// text or an error.
type Filter interface {
	// Name returns the filter identifier used after a pipe.
	Name() string

	// Usage returns the invocation form for help output, e.g. "head [n]".
	Usage() string

	// Description returns a human-readable summary for help output.
	Description() string

	// Apply transforms input. A returned error fails the rest of the
	// link's pipeline.
	Apply(input string, args []string) (string, error)
}

// Registry maps filter names to implementations. The filter set is built
// once at startup, not per invocation.
type Registry struct {
	mu      sync.RWMutex
	filters map[string]Filter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{filters: make(map[string]Filter)}
}

// Register adds a filter to the registry.
func (r *Registry) Register(f Filter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters[f.Name()] = f
}

// Lookup returns a filter by name.
func (r *Registry) Lookup(name string) (Filter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.filters[name]
	if !ok {
		return nil, fmt.Errorf("Unknown filter: %s", name)
	}
	return f, nil
}

// All returns all registered filters sorted by name.
func (r *Registry) All() []Filter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	filters := make([]Filter, 0, len(r.filters))
	for _, f := range r.filters {
		filters = append(filters, f)
	}
	sort.Slice(filters, func(i, j int) bool {
		return filters[i].Name() < filters[j].Name()
	})
	return filters
}

// RunPipeline applies filter invocations strictly left to right. Each spec
// is a whole invocation string, e.g. "grep cash". The first failing filter
// aborts the rest; its error becomes the pipeline's error.
func (r *Registry) RunPipeline(input string, specs []string) (string, error) {
	text := input
	for _, spec := range specs {
		parts := strings.Fields(spec)
		if len(parts) == 0 {
			return "", fmt.Errorf("empty filter")
		}
		f, err := r.Lookup(parts[0])
		if err != nil {
			return "", err
		}
		text, err = f.Apply(text, parts[1:])
		if err != nil {
			return "", err
		}
	}
	return text, nil
}

// Help renders the filter listing: one line of usage and description per
// registered filter. Purely presentational.
func Help(r *Registry) string {
	var b strings.Builder
	b.WriteString("filters (apply to command output with | ):\n")
	for _, f := range r.All() {
		fmt.Fprintf(&b, "  %-16s %s\n", f.Usage(), f.Description())
	}
	return b.String()
}
