package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"grift/internal/audit"
	"grift/internal/cli"
	"grift/internal/config"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "grift: config: %v\n", err)
		return 1
	}

	var logger *audit.Logger
	if cfg.Audit.Enabled {
		logger, err = audit.NewLogger(cfg.Audit.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "grift: audit: %v\n", err)
			// Continue without audit logging.
			logger = nil
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	console := cli.NewConsole(cfg, logger)

	args := os.Args[1:]
	if len(args) == 0 {
		return cli.RunREPL(ctx, console, cfg, os.Stdout)
	}

	switch args[0] {
	case "-c":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "grift: -c requires a command line")
			return 1
		}
		return cli.RunLine(ctx, console, strings.Join(args[1:], " "), os.Stdout, os.Stderr)
	case "--filters":
		return cli.RunFilters(console, os.Stdout)
	case "--audit":
		return cli.RunAudit(os.Stdout, cfg.Audit.Path, args[1:])
	case "--version":
		fmt.Printf("grift %s\n", version)
		return 0
	case "--help":
		printUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "grift: unknown option %q\n", args[0])
		printUsage(os.Stderr)
		return 1
	}
}

func printUsage(w *os.File) {
	fmt.Fprintln(w, "grift — street-crime console")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  grift                      interactive console")
	fmt.Fprintln(w, `  grift -c "<line>"          run one command chain and exit`)
	fmt.Fprintln(w, "  grift --filters            list pipe filters")
	fmt.Fprintln(w, "  grift --audit <verify|tail> audit log operations")
	fmt.Fprintln(w, "  grift --version            show version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "chain operators: | (filter pipe), && (and-then), || (or-else), ; (sequence)")
	fmt.Fprintln(w, "conditionals:    if <stat> <cmp> <n> then <chain> [else <chain>]")
}
