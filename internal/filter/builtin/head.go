package builtin

import (
	"strconv"

	"grift/internal/filter"
)

type Head struct{}

var _ filter.Filter = (*Head)(nil)

func (h *Head) Name() string        { return "head" }
func (h *Head) Usage() string       { return "head [n]" }
func (h *Head) Description() string { return "first n lines (default 10)" }

func (h *Head) Apply(input string, args []string) (string, error) {
	lines := splitLines(input)
	n := countArg(args)
	if n > len(lines) {
		n = len(lines)
	}
	return joinLines(lines[:n]), nil
}

// countArg parses the optional line count. A missing or non-numeric
// argument silently falls back to the default.
func countArg(args []string) int {
	n := defaultCount
	if len(args) > 0 {
		if v, err := strconv.Atoi(args[0]); err == nil {
			n = v
		}
	}
	if n < 0 {
		n = 0
	}
	return n
}
