package chain

import (
	"fmt"
	"strings"

	"grift/internal/token"
)

// Parse consumes a token sequence and builds the ordered link list.
//
// Words accumulate space-joined into the current command. A pipe consumes
// the following token whole as one filter invocation for the current link;
// a pipe before any command is a parse error for the whole line. A compound
// operator closes the current link, which keeps the operator it was opened
// with, and opens the next link tagged with the operator just seen. Any
// non-empty command left at end of input closes into a final link.
//
// An empty link list means there is nothing to execute.
func Parse(toks []token.Token) ([]Link, error) {
	var (
		links []Link
		words []string
		pipes []string
	)
	op := OpNone

	closeLink := func(next Operator) error {
		if len(words) == 0 {
			if next == OpNone {
				// End of input with no open command.
				return nil
			}
			return fmt.Errorf("missing command before %q", next)
		}
		links = append(links, Link{
			Command: strings.Join(words, " "),
			Pipes:   pipes,
			Op:      op,
		})
		words = nil
		pipes = nil
		op = next
		return nil
	}

	for i := 0; i < len(toks); i++ {
		t := toks[i]
		switch t.Kind {
		case token.Word:
			words = append(words, t.Text)
		case token.Pipe:
			if len(words) == 0 {
				return nil, fmt.Errorf("pipe with no preceding command")
			}
			if i+1 >= len(toks) || toks[i+1].Kind != token.Word {
				return nil, fmt.Errorf("pipe with no filter")
			}
			i++
			pipes = append(pipes, toks[i].Text)
		case token.And:
			if err := closeLink(OpAnd); err != nil {
				return nil, err
			}
		case token.Or:
			if err := closeLink(OpOr); err != nil {
				return nil, err
			}
		case token.Seq:
			if err := closeLink(OpSeq); err != nil {
				return nil, err
			}
		}
	}

	if len(words) > 0 {
		if err := closeLink(OpNone); err != nil {
			return nil, err
		}
	}
	return links, nil
}
