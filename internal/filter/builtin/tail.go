package builtin

import "grift/internal/filter"

type Tail struct{}

var _ filter.Filter = (*Tail)(nil)

func (t *Tail) Name() string        { return "tail" }
func (t *Tail) Usage() string       { return "tail [n]" }
func (t *Tail) Description() string { return "last n lines (default 10)" }

func (t *Tail) Apply(input string, args []string) (string, error) {
	lines := splitLines(input)
	n := countArg(args)
	if n > len(lines) {
		n = len(lines)
	}
	return joinLines(lines[len(lines)-n:]), nil
}
