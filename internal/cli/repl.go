package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"grift/internal/chain"
	"grift/internal/config"
	"grift/internal/filter"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RunREPL drives the interactive console until EOF or an exit command.
// Lines are edited with history support; every non-meta line goes through
// the chain interpreter.
func RunREPL(ctx context.Context, c *Console, cfg *config.Config, stdout io.Writer) int {
	rl := liner.NewLiner()
	rl.SetCtrlCAborts(true)
	defer rl.Close()

	loadHistory(rl, cfg.Console.HistoryFile)
	defer saveHistory(rl, cfg.Console.HistoryFile)

	fmt.Fprintln(stdout, infoStyle.Render(
		"grift console — chain commands with | && || ; and if/then/else",
	))
	fmt.Fprintln(stdout, infoStyle.Render(
		`type "help" for commands, "filters" for pipe filters, "exit" to quit`,
	))

	for {
		input, err := rl.Prompt(promptStyle.Render(cfg.Console.Prompt))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			// EOF or a broken terminal ends the session.
			fmt.Fprintln(stdout)
			return 0
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		rl.AppendHistory(input)

		switch trimmed {
		case "exit", "quit":
			return 0
		case "filters":
			fmt.Fprint(stdout, filter.Help(c.Interp.Filters))
			continue
		}

		printResult(stdout, c.Eval(ctx, input))
	}
}

// printResult renders a chain result, coloring the embedded error lines so
// a partially-failed chain stays legible.
func printResult(w io.Writer, res chain.Result) {
	if res.Output == "" {
		if res.Err != "" {
			fmt.Fprintln(w, errorStyle.Render("Error: "+res.Err))
		}
		return
	}
	for _, line := range strings.Split(res.Output, "\n") {
		if strings.HasPrefix(line, "Error: ") {
			fmt.Fprintln(w, errorStyle.Render(line))
		} else {
			fmt.Fprintln(w, line)
		}
	}
}

func loadHistory(rl *liner.State, path string) {
	if path == "" {
		return
	}
	if f, err := os.Open(path); err == nil {
		rl.ReadHistory(f)
		f.Close()
	}
}

func saveHistory(rl *liner.State, path string) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	rl.WriteHistory(f)
}
