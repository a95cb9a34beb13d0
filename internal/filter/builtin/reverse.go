package builtin

import "grift/internal/filter"

type Reverse struct{}

var _ filter.Filter = (*Reverse)(nil)

func (r *Reverse) Name() string        { return "reverse" }
func (r *Reverse) Usage() string       { return "reverse" }
func (r *Reverse) Description() string { return "reverse line order" }

func (r *Reverse) Apply(input string, args []string) (string, error) {
	lines := splitLines(input)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[len(lines)-1-i] = line
	}
	return joinLines(out), nil
}
