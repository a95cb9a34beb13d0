package builtin

import (
	"sort"

	"grift/internal/filter"
)

type Sort struct{}

var _ filter.Filter = (*Sort)(nil)

func (s *Sort) Name() string        { return "sort" }
func (s *Sort) Usage() string       { return "sort [-r]" }
func (s *Sort) Description() string { return "sort lines ascending (-r reverses)" }

func (s *Sort) Apply(input string, args []string) (string, error) {
	lines := splitLines(input)
	out := make([]string, len(lines))
	copy(out, lines)
	sort.Strings(out)
	if len(args) > 0 && args[0] == "-r" {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return joinLines(out), nil
}
