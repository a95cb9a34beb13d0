package builtin

import (
	"fmt"
	"regexp"
	"strings"

	"grift/internal/filter"
)

type Grep struct{}

var _ filter.Filter = (*Grep)(nil)

func (g *Grep) Name() string        { return "grep" }
func (g *Grep) Usage() string       { return "grep <pattern>" }
func (g *Grep) Description() string { return "keep lines matching a case-insensitive pattern" }

func (g *Grep) Apply(input string, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("grep requires a pattern")
	}
	pattern := strings.Join(args, " ")
	// The pattern is user text and may not be a valid expression.
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return "", fmt.Errorf("grep: invalid pattern %q", pattern)
	}
	var out []string
	for _, line := range splitLines(input) {
		if re.MatchString(line) {
			out = append(out, line)
		}
	}
	return joinLines(out), nil
}
