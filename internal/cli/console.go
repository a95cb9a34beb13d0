// Package cli provides the console surfaces around the chain interpreter:
// the interactive REPL, one-shot execution, the filter listing and audit
// log inspection.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"grift/internal/audit"
	"grift/internal/chain"
	"grift/internal/config"
	"grift/internal/filter"
	"grift/internal/filter/builtin"
	"grift/internal/game"
	"grift/internal/token"
)

// Console bundles the interpreter wiring for one game session.
type Console struct {
	Interp *chain.Interp
	Runner *game.Runner
	Audit  *audit.Logger // nil disables audit logging
}

// NewConsole builds a console: game state seeded from config, the built-in
// filter set, and the interpreter on top.
func NewConsole(cfg *config.Config, logger *audit.Logger) *Console {
	state := game.NewState(cfg.Game.StartCash, cfg.Game.StartEnergy, cfg.Game.StartLevel)
	runner := game.NewRunner(state)

	reg := filter.NewRegistry()
	builtin.RegisterAll(reg)

	return &Console{
		Interp: &chain.Interp{Runner: runner, Filters: reg},
		Runner: runner,
		Audit:  logger,
	}
}

// Eval interprets one line against a fresh state snapshot and audits the
// outcome.
func (c *Console) Eval(ctx context.Context, line string) chain.Result {
	c.Interp.State = c.Runner.State().Snapshot()

	start := time.Now()
	res := c.Interp.Run(ctx, line)
	c.logAudit(line, res, time.Since(start))
	return res
}

// logAudit records the line and, best-effort, the commands and filters it
// parsed into. Audit failure never fails the chain.
func (c *Console) logAudit(line string, res chain.Result, d time.Duration) {
	if c.Audit == nil {
		return
	}
	var commands, filters []string
	if links, err := chain.Parse(token.Tokenize(line)); err == nil {
		for _, l := range links {
			commands = append(commands, l.Command)
			filters = append(filters, l.Pipes...)
		}
	}
	_ = c.Audit.Log(line, commands, filters, res.Success, res.Err, d)
}

// RunLine executes a single line (grift -c "...") and prints the result.
func RunLine(ctx context.Context, c *Console, line string, stdout, stderr io.Writer) int {
	res := c.Eval(ctx, line)
	if res.Output != "" {
		fmt.Fprintln(stdout, res.Output)
	}
	if !res.Success {
		if res.Output == "" && res.Err != "" {
			fmt.Fprintln(stderr, "Error: "+res.Err)
		}
		return 1
	}
	return 0
}

// RunFilters prints the filter help listing.
func RunFilters(c *Console, w io.Writer) int {
	fmt.Fprint(w, filter.Help(c.Interp.Filters))
	return 0
}
