package builtin

import (
	"strings"

	"grift/internal/filter"
)

type First struct{}

var _ filter.Filter = (*First)(nil)

func (f *First) Name() string        { return "first" }
func (f *First) Usage() string       { return "first" }
func (f *First) Description() string { return "first token of each line" }

func (f *First) Apply(input string, args []string) (string, error) {
	return eachLineToken(input, func(fields []string) string {
		return fields[0]
	}), nil
}

type Last struct{}

var _ filter.Filter = (*Last)(nil)

func (l *Last) Name() string        { return "last" }
func (l *Last) Usage() string       { return "last" }
func (l *Last) Description() string { return "last token of each line" }

func (l *Last) Apply(input string, args []string) (string, error) {
	return eachLineToken(input, func(fields []string) string {
		return fields[len(fields)-1]
	}), nil
}

// eachLineToken maps each line to one of its whitespace-delimited tokens.
// A line with no tokens maps to the empty string.
func eachLineToken(input string, pick func([]string) string) string {
	lines := splitLines(input)
	out := make([]string, len(lines))
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			out[i] = ""
			continue
		}
		out[i] = pick(fields)
	}
	return joinLines(out)
}
