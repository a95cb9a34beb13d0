package builtin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"grift/internal/filter"
)

func TestGrep(t *testing.T) {
	g := &Grep{}

	out, err := g.Apply("cash: $250\nheat: 10\nCASHED out", []string{"cash"})
	require.NoError(t, err)
	require.Equal(t, "cash: $250\nCASHED out", out)

	out, err = g.Apply("a1\nb2\nc3", []string{"[ab]\\d"})
	require.NoError(t, err)
	require.Equal(t, "a1\nb2", out)
}

func TestGrepMissingPattern(t *testing.T) {
	g := &Grep{}
	_, err := g.Apply("text", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "pattern")
}

func TestGrepInvalidPattern(t *testing.T) {
	g := &Grep{}
	_, err := g.Apply("text", []string{"[unclosed"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid pattern")
}

func TestHead(t *testing.T) {
	h := &Head{}

	out, err := h.Apply("a\nb\nc\nd", []string{"2"})
	require.NoError(t, err)
	require.Equal(t, "a\nb", out)

	// Non-numeric count silently defaults.
	out, err = h.Apply("a\nb\nc", []string{"lots"})
	require.NoError(t, err)
	require.Equal(t, "a\nb\nc", out)

	// Count beyond input keeps everything.
	out, err = h.Apply("a\nb", []string{"9"})
	require.NoError(t, err)
	require.Equal(t, "a\nb", out)
}

func TestTail(t *testing.T) {
	tl := &Tail{}

	out, err := tl.Apply("a\nb\nc\nd", []string{"2"})
	require.NoError(t, err)
	require.Equal(t, "c\nd", out)

	out, err = tl.Apply("a\nb", nil)
	require.NoError(t, err)
	require.Equal(t, "a\nb", out)
}

func TestSort(t *testing.T) {
	s := &Sort{}

	out, err := s.Apply("b\na\nc", nil)
	require.NoError(t, err)
	require.Equal(t, "a\nb\nc", out)

	out, err = s.Apply("b\na\nc", []string{"-r"})
	require.NoError(t, err)
	require.Equal(t, "c\nb\na", out)
}

func TestUniq(t *testing.T) {
	u := &Uniq{}

	out, err := u.Apply("a\na\nb", nil)
	require.NoError(t, err)
	require.Equal(t, "a\nb", out)

	// Non-adjacent duplicates are dropped too, first-seen order kept.
	out, err = u.Apply("b\na\nb\na", nil)
	require.NoError(t, err)
	require.Equal(t, "b\na", out)
}

func TestCount(t *testing.T) {
	c := &Count{}

	out, err := c.Apply("a\n\nb\n  \nc", nil)
	require.NoError(t, err)
	require.Equal(t, "3 lines", out)

	out, err = c.Apply("", nil)
	require.NoError(t, err)
	require.Equal(t, "0 lines", out)
}

func TestCasefold(t *testing.T) {
	out, err := (&Upper{}).Apply("mixed Case", nil)
	require.NoError(t, err)
	require.Equal(t, "MIXED CASE", out)

	out, err = (&Lower{}).Apply("mixed Case", nil)
	require.NoError(t, err)
	require.Equal(t, "mixed case", out)
}

func TestTrim(t *testing.T) {
	out, err := (&Trim{}).Apply("  a  \n\tb\t", nil)
	require.NoError(t, err)
	require.Equal(t, "a\nb", out)
}

func TestReverse(t *testing.T) {
	out, err := (&Reverse{}).Apply("a\nb\nc", nil)
	require.NoError(t, err)
	require.Equal(t, "c\nb\na", out)
}

func TestNumber(t *testing.T) {
	out, err := (&Number{}).Apply("a\nb", nil)
	require.NoError(t, err)
	require.Equal(t, "1: a\n2: b", out)
}

func TestFirstLast(t *testing.T) {
	out, err := (&First{}).Apply("one two three\n\nsolo", nil)
	require.NoError(t, err)
	require.Equal(t, "one\n\nsolo", out)

	out, err = (&Last{}).Apply("one two three\n\nsolo", nil)
	require.NoError(t, err)
	require.Equal(t, "three\n\nsolo", out)
}

func TestRegisterAllProvidesAllFilters(t *testing.T) {
	reg := filter.NewRegistry()
	RegisterAll(reg)

	names := []string{
		"grep", "head", "tail", "sort", "uniq", "count",
		"upper", "lower", "trim", "reverse", "number", "first", "last",
	}
	for _, name := range names {
		_, err := reg.Lookup(name)
		require.NoError(t, err, name)
	}
	require.Len(t, reg.All(), len(names))
}

func TestPipelineThroughRegistry(t *testing.T) {
	reg := filter.NewRegistry()
	RegisterAll(reg)

	input := strings.Join([]string{"beta 2", "alpha 1", "beta 2"}, "\n")
	out, err := reg.RunPipeline(input, []string{"uniq", "sort", "first"})
	require.NoError(t, err)
	require.Equal(t, "alpha\nbeta", out)
}
