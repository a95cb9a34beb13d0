package chain

import (
	"context"
	"strings"

	"grift/internal/cond"
	"grift/internal/filter"
	"grift/internal/token"
)

// Runner executes one atomic command. Implementations live outside the
// interpreter; whatever shape they report is normalized to Result at this
// boundary and nowhere else.
type Runner interface {
	Run(ctx context.Context, command string) (string, error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, command string) (string, error)

func (f RunnerFunc) Run(ctx context.Context, command string) (string, error) {
	return f(ctx, command)
}

// Interp interprets console lines. It wires the tokenizer, parser, filter
// registry and condition evaluator behind a single entry point. State is
// the read-only snapshot conditions are evaluated against; it is supplied
// fresh per invocation and never mutated here.
type Interp struct {
	Runner  Runner
	Filters *filter.Registry
	State   cond.Snapshot
}

// Run interprets one raw console line and returns its result. It never
// panics and never surfaces a Go error: every failure is folded into the
// returned Result.
func (in *Interp) Run(ctx context.Context, line string) Result {
	line = strings.TrimSpace(line)
	if line == "" {
		return Result{Err: "Empty command"}
	}
	if in.Runner == nil {
		return Result{Err: "No command executor set"}
	}

	if ifl, ok, err := cond.ParseIfLine(line); ok {
		if err != nil {
			return Result{Err: err.Error()}
		}
		return in.runIf(ctx, ifl)
	}

	links, err := Parse(token.Tokenize(line))
	if err != nil {
		return Result{Err: err.Error()}
	}
	if len(links) == 0 {
		return Result{Err: "Empty command"}
	}
	return in.execute(ctx, links)
}

// runIf evaluates the condition and re-enters Run for the chosen branch,
// so pipes and further chaining inside branches behave exactly like
// top-level lines. A false condition with no else branch is an empty
// success.
func (in *Interp) runIf(ctx context.Context, ifl cond.IfLine) Result {
	if cond.Eval(ifl.Cond, in.State) {
		return in.Run(ctx, ifl.Then)
	}
	if ifl.Else != "" {
		return in.Run(ctx, ifl.Else)
	}
	return Result{Success: true}
}

// execute walks the links strictly in order, threading the last result
// through the short-circuit gates. Runner calls are awaited one at a time,
// so command side effects land in left-to-right source order.
func (in *Interp) execute(ctx context.Context, links []Link) Result {
	last := Result{Success: true}
	var log []string

	for _, link := range links {
		// A skipped link leaves last untouched.
		switch link.Op {
		case OpAnd:
			if !last.Success {
				continue
			}
		case OpOr:
			if last.Success {
				continue
			}
		}

		res := in.runLink(ctx, link)
		if res.Success {
			log = append(log, res.Output)
		} else {
			log = append(log, "Error: "+res.Err)
		}
		last = res
	}

	return Result{
		Success: last.Success,
		Output:  strings.Join(log, "\n"),
		Err:     last.Err,
	}
}

// runLink invokes the runner for one link, then routes its output through
// the link's filter pipeline. A runner failure or the first failing filter
// turns the whole link into a failure.
func (in *Interp) runLink(ctx context.Context, link Link) Result {
	out, err := in.Runner.Run(ctx, link.Command)
	if err != nil {
		return Result{Output: out, Err: err.Error()}
	}
	if len(link.Pipes) > 0 {
		filtered, err := in.Filters.RunPipeline(out, link.Pipes)
		if err != nil {
			return Result{Err: err.Error()}
		}
		out = filtered
	}
	return Result{Success: true, Output: out}
}
