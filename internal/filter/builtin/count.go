package builtin

import (
	"fmt"
	"strings"

	"grift/internal/filter"
)

type Count struct{}

var _ filter.Filter = (*Count)(nil)

func (c *Count) Name() string        { return "count" }
func (c *Count) Usage() string       { return "count" }
func (c *Count) Description() string { return "count non-blank lines" }

func (c *Count) Apply(input string, args []string) (string, error) {
	n := 0
	for _, line := range splitLines(input) {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return fmt.Sprintf("%d lines", n), nil
}
