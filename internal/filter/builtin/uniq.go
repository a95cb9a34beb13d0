package builtin

import "grift/internal/filter"

type Uniq struct{}

var _ filter.Filter = (*Uniq)(nil)

func (u *Uniq) Name() string        { return "uniq" }
func (u *Uniq) Usage() string       { return "uniq" }
func (u *Uniq) Description() string { return "drop duplicate lines, keeping first-seen order" }

func (u *Uniq) Apply(input string, args []string) (string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, line := range splitLines(input) {
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	return joinLines(out), nil
}
