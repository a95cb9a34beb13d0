package chain

import (
	"strings"
	"testing"

	"grift/internal/token"
)

func parseLine(t *testing.T, line string) []Link {
	t.Helper()
	links, err := Parse(token.Tokenize(line))
	if err != nil {
		t.Fatalf("parse %q: %v", line, err)
	}
	return links
}

func TestParseSingleCommand(t *testing.T) {
	links := parseLine(t, "bank deposit 100")
	if len(links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(links))
	}
	l := links[0]
	if l.Command != "bank deposit 100" {
		t.Errorf("expected command %q, got %q", "bank deposit 100", l.Command)
	}
	if l.Op != OpNone {
		t.Errorf("expected OpNone, got %v", l.Op)
	}
	if len(l.Pipes) != 0 {
		t.Errorf("expected no pipes, got %v", l.Pipes)
	}
}

func TestParsePipesAttachToCurrentLink(t *testing.T) {
	links := parseLine(t, "status | grep cash | head 2")
	if len(links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(links))
	}
	l := links[0]
	if l.Command != "status" {
		t.Errorf("expected command status, got %q", l.Command)
	}
	if len(l.Pipes) != 2 || l.Pipes[0] != "grep cash" || l.Pipes[1] != "head 2" {
		t.Errorf("unexpected pipes: %v", l.Pipes)
	}
}

func TestParseOperatorTagsNextLink(t *testing.T) {
	links := parseLine(t, "crime && status ; bank || rest")
	if len(links) != 4 {
		t.Fatalf("expected 4 links, got %d", len(links))
	}
	wantOps := []Operator{OpNone, OpAnd, OpSeq, OpOr}
	wantCmds := []string{"crime", "status", "bank", "rest"}
	for i := range links {
		if links[i].Op != wantOps[i] {
			t.Errorf("link %d: expected op %v, got %v", i, wantOps[i], links[i].Op)
		}
		if links[i].Command != wantCmds[i] {
			t.Errorf("link %d: expected command %q, got %q", i, wantCmds[i], links[i].Command)
		}
	}
}

func TestParsePipesStayWithTheirLink(t *testing.T) {
	links := parseLine(t, "status | grep cash && crime | count")
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if len(links[0].Pipes) != 1 || links[0].Pipes[0] != "grep cash" {
		t.Errorf("link 0 pipes: %v", links[0].Pipes)
	}
	if links[1].Op != OpAnd {
		t.Errorf("link 1: expected OpAnd, got %v", links[1].Op)
	}
	if len(links[1].Pipes) != 1 || links[1].Pipes[0] != "count" {
		t.Errorf("link 1 pipes: %v", links[1].Pipes)
	}
}

func TestParsePipeWithNoCommand(t *testing.T) {
	_, err := Parse(token.Tokenize("| grep cash"))
	if err == nil {
		t.Fatal("expected error for pipe with no preceding command")
	}
	if !strings.Contains(err.Error(), "no preceding command") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParsePipeWithNoFilter(t *testing.T) {
	_, err := Parse(token.Tokenize("status |"))
	if err == nil {
		t.Fatal("expected error for trailing pipe")
	}
	if _, err := Parse(token.Tokenize("status | && crime")); err == nil {
		t.Fatal("expected error for pipe followed by operator")
	}
}

func TestParseMissingCommandBeforeOperator(t *testing.T) {
	for _, line := range []string{"&& status", "; status", "|| status"} {
		if _, err := Parse(token.Tokenize(line)); err == nil {
			t.Errorf("%q: expected error for leading operator", line)
		}
	}
}

func TestParseTrailingOperatorIgnored(t *testing.T) {
	links := parseLine(t, "crime &&")
	if len(links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(links))
	}
	if links[0].Command != "crime" {
		t.Errorf("expected command crime, got %q", links[0].Command)
	}
}

func TestParseEmptyInput(t *testing.T) {
	links, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(links) != 0 {
		t.Errorf("expected empty chain, got %v", links)
	}
}
