package builtin

import (
	"fmt"

	"grift/internal/filter"
)

type Number struct{}

var _ filter.Filter = (*Number)(nil)

func (n *Number) Name() string        { return "number" }
func (n *Number) Usage() string       { return "number" }
func (n *Number) Description() string { return "prefix each line with its 1-based index" }

func (n *Number) Apply(input string, args []string) (string, error) {
	lines := splitLines(input)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = fmt.Sprintf("%d: %s", i+1, line)
	}
	return joinLines(out), nil
}
