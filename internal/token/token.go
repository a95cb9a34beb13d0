// Package token splits a raw console line into words and chain operators.
package token

import (
	"strings"
	"unicode"
)

// Kind identifies the token type.
type Kind int

const (
	Word Kind = iota // command or filter text
	Pipe             // |
	And              // &&
	Or               // ||
	Seq              // ;
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Pipe:
		return "|"
	case And:
		return "&&"
	case Or:
		return "||"
	case Seq:
		return ";"
	default:
		return "kind(?)"
	}
}

// Token is a single lexical element of a console line. Text is set only
// for Word tokens.
type Token struct {
	Kind Kind
	Text string
}

// Tokenize splits a line into word and operator tokens.
//
// Whitespace outside quotes separates words. Text inside matching '...' or
// "..." becomes part of one word with the quotes stripped; there is no
// escape handling inside quotes. Two-character operators are matched before
// single characters, so the first '&' of "&&" is never read as a lone
// ampersand (a lone '&' stays ordinary word text) and '|' is only a pipe
// when not followed by a second '|'.
//
// The text following a pipe is collected whole, up to the next operator or
// end of line, as a single word token: the entire filter invocation. So
// "status | grep cash" yields [Word(status) Pipe Word(grep cash)].
func Tokenize(line string) []Token {
	line = strings.TrimSpace(line)

	var (
		toks  []Token
		word  strings.Builder
		chunk []string // words between a pipe and the next operator
	)
	chunking := false

	endWord := func() {
		if word.Len() == 0 {
			return
		}
		if chunking {
			chunk = append(chunk, word.String())
		} else {
			toks = append(toks, Token{Kind: Word, Text: word.String()})
		}
		word.Reset()
	}
	endChunk := func() {
		if !chunking {
			return
		}
		if len(chunk) > 0 {
			toks = append(toks, Token{Kind: Word, Text: strings.Join(chunk, " ")})
		}
		chunk = nil
		chunking = false
	}
	emitOp := func(k Kind) {
		endWord()
		endChunk()
		toks = append(toks, Token{Kind: k})
		if k == Pipe {
			chunking = true
		}
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\'' || r == '"':
			// Consume to the matching quote; an unclosed quote runs to
			// end of line.
			j := i + 1
			for j < len(runes) && runes[j] != r {
				word.WriteRune(runes[j])
				j++
			}
			i = j
		case r == '&' && i+1 < len(runes) && runes[i+1] == '&':
			emitOp(And)
			i++
		case r == '|':
			if i+1 < len(runes) && runes[i+1] == '|' {
				emitOp(Or)
				i++
			} else {
				emitOp(Pipe)
			}
		case r == ';':
			emitOp(Seq)
		case unicode.IsSpace(r):
			endWord()
		default:
			word.WriteRune(r)
		}
	}
	endWord()
	endChunk()
	return toks
}
