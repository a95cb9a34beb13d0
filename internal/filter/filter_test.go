package filter

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubFilter applies a fixed transform, or fails when failMsg is set.
type stubFilter struct {
	name    string
	failMsg string
	suffix  string
}

func (s *stubFilter) Name() string        { return s.name }
func (s *stubFilter) Usage() string       { return s.name }
func (s *stubFilter) Description() string { return "stub" }

func (s *stubFilter) Apply(input string, args []string) (string, error) {
	if s.failMsg != "" {
		return "", fmt.Errorf("%s", s.failMsg)
	}
	return input + s.suffix, nil
}

func TestLookupUnknownFilter(t *testing.T) {
	r := NewRegistry()
	_, err := r.Lookup("bogus")
	require.EqualError(t, err, "Unknown filter: bogus")
}

func TestRunPipelineAppliesLeftToRight(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubFilter{name: "a", suffix: "-a"})
	r.Register(&stubFilter{name: "b", suffix: "-b"})

	out, err := r.RunPipeline("x", []string{"a", "b"})
	require.NoError(t, err)
	require.Equal(t, "x-a-b", out)
}

func TestRunPipelineAbortsOnFirstFailure(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubFilter{name: "a", suffix: "-a"})
	r.Register(&stubFilter{name: "boom", failMsg: "it broke"})
	r.Register(&stubFilter{name: "b", suffix: "-b"})

	_, err := r.RunPipeline("x", []string{"a", "boom", "b"})
	require.EqualError(t, err, "it broke")
}

func TestAllSortedByName(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubFilter{name: "zeta"})
	r.Register(&stubFilter{name: "alpha"})

	all := r.All()
	require.Len(t, all, 2)
	require.Equal(t, "alpha", all[0].Name())
	require.Equal(t, "zeta", all[1].Name())
}

func TestHelpListsEveryFilter(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubFilter{name: "alpha"})
	r.Register(&stubFilter{name: "zeta"})

	help := Help(r)
	require.True(t, strings.Contains(help, "alpha"))
	require.True(t, strings.Contains(help, "zeta"))
}
