// Package cond parses and evaluates the single-clause conditions used by
// if/then/else console lines.
package cond

import (
	"regexp"
	"strconv"
	"strings"
)

// Snapshot is a read-only numeric view of game state, supplied fresh for
// each interpreter call. The evaluator never mutates it.
type Snapshot map[string]int

// Clause is one parsed comparison: identifier, comparator, integer.
type Clause struct {
	Ident string
	Cmp   string
	Value int
}

// IfLine is a recognized conditional line. Else is empty when the line has
// no else branch.
type IfLine struct {
	Cond string
	Then string
	Else string
}

var (
	// Lazy cond and then groups so the first "then"/"else" keywords win.
	ifLineRe = regexp.MustCompile(`(?i)^if\s+(.+?)\s+then\s+(.+?)(?:\s+else\s+(.+))?$`)

	// Two-character comparators listed first so ">=" is never read as ">".
	clauseRe = regexp.MustCompile(`^([a-z_][a-z0-9_]*)\s*(>=|<=|==|!=|>|<)\s*(-?\d+)$`)
)

// ParseIfLine recognizes "if <condition> then <command> [else <command>]".
// Keywords are case-insensitive; branch commands are passed through
// verbatim, operators and pipes included. ok reports whether the line is a
// conditional at all. A line that opens with "if" but has no then clause is
// malformed and returns an error.
func ParseIfLine(line string) (IfLine, bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.EqualFold(fields[0], "if") {
		return IfLine{}, false, nil
	}
	m := ifLineRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return IfLine{}, true, &ParseError{Line: line}
	}
	return IfLine{Cond: m[1], Then: m[2], Else: m[3]}, true, nil
}

// ParseError reports a conditional line that does not fit the
// if/then/else shape.
type ParseError struct {
	Line string
}

func (e *ParseError) Error() string {
	return "malformed conditional: expected 'if <condition> then <command> [else <command>]'"
}

// Eval evaluates a condition string against the snapshot. The grammar is
// exactly a true/false literal or "<identifier> <comparator> <integer>".
// Anything else, including an identifier missing from the snapshot,
// evaluates false rather than erroring.
func Eval(condition string, snap Snapshot) bool {
	s := strings.ToLower(strings.TrimSpace(condition))
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	c, ok := ParseClause(s)
	if !ok {
		return false
	}
	return c.Holds(snap)
}

// ParseClause parses "<identifier> <comparator> <integer>". The identifier
// is lower-cased.
func ParseClause(s string) (Clause, bool) {
	m := clauseRe.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if m == nil {
		return Clause{}, false
	}
	n, err := strconv.Atoi(m[3])
	if err != nil {
		return Clause{}, false
	}
	return Clause{Ident: m[1], Cmp: m[2], Value: n}, true
}

// Holds reports whether the clause is true for the snapshot. An identifier
// absent from the snapshot makes the clause false.
func (c Clause) Holds(snap Snapshot) bool {
	v, ok := snap[c.Ident]
	if !ok {
		return false
	}
	switch c.Cmp {
	case ">":
		return v > c.Value
	case "<":
		return v < c.Value
	case ">=":
		return v >= c.Value
	case "<=":
		return v <= c.Value
	case "==":
		return v == c.Value
	case "!=":
		return v != c.Value
	default:
		return false
	}
}
