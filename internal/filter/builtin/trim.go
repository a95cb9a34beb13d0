package builtin

import (
	"strings"

	"grift/internal/filter"
)

type Trim struct{}

var _ filter.Filter = (*Trim)(nil)

func (t *Trim) Name() string        { return "trim" }
func (t *Trim) Usage() string       { return "trim" }
func (t *Trim) Description() string { return "strip surrounding whitespace from each line" }

func (t *Trim) Apply(input string, args []string) (string, error) {
	lines := splitLines(input)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimSpace(line)
	}
	return joinLines(out), nil
}
