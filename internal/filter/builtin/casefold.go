package builtin

import (
	"strings"

	"grift/internal/filter"
)

type Upper struct{}

var _ filter.Filter = (*Upper)(nil)

func (u *Upper) Name() string        { return "upper" }
func (u *Upper) Usage() string       { return "upper" }
func (u *Upper) Description() string { return "uppercase the whole text" }

func (u *Upper) Apply(input string, args []string) (string, error) {
	return strings.ToUpper(input), nil
}

type Lower struct{}

var _ filter.Filter = (*Lower)(nil)

func (l *Lower) Name() string        { return "lower" }
func (l *Lower) Usage() string       { return "lower" }
func (l *Lower) Description() string { return "lowercase the whole text" }

func (l *Lower) Apply(input string, args []string) (string, error) {
	return strings.ToLower(input), nil
}
