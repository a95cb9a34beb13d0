// Package chain parses and executes command chains: atomic commands joined
// by pipes (|), short-circuit operators (&&, ||) and sequencing (;), with
// single-clause if/then/else conditionals.
package chain

// Operator relates a link to the result of the previous link.
type Operator int

const (
	OpNone Operator = iota // first link only
	OpAnd                  // && — run only if the previous link succeeded
	OpOr                   // || — run only if the previous link failed
	OpSeq                  // ;  — run regardless
)

func (op Operator) String() string {
	switch op {
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpSeq:
		return ";"
	default:
		return ""
	}
}

// Link is one atomic command, its filter pipeline, and the operator
// relating it to the previous link's result. Command is never empty for a
// link produced by Parse.
type Link struct {
	Command string
	Pipes   []string
	Op      Operator
}

// Result is the canonical outcome shape used throughout the interpreter.
// Err is set only on failure.
type Result struct {
	Success bool
	Output  string
	Err     string
}
