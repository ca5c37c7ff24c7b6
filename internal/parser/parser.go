// Package parser matches token sequences against the grammar table and
// produces structured commands. Parsing is stateless: each call is a
// pure function of its token sequence.
package parser

import (
	"fmt"
	"strings"

	"github.com/quicktix/quicktix/internal/apperr"
	"github.com/quicktix/quicktix/internal/command"
	"github.com/quicktix/quicktix/internal/grammar"
	"github.com/quicktix/quicktix/internal/token"
)

type Parser struct{}

func New() *Parser {
	return &Parser{}
}

// Parse resolves the token sequence to a command, or to a *ParseError
// when no grammar rule accepts it. A single stray word is not an error:
// it becomes an Unrecognized command so the caller can answer with a
// hint instead of a failure.
func (p *Parser) Parse(tokens []token.Token) (command.Command, error) {
	toks := trimEOF(tokens)

	if len(toks) == 0 {
		return nil, apperr.NewParse("unexpected end of command")
	}

	first := toks[0]

	if first.Kind == token.WORD {
		if len(toks) == 1 {
			return command.Unrecognized{Word: first.Literal}, nil
		}
		return nil, unexpected(first)
	}

	if first.Kind != token.KEYWORD {
		return nil, unexpected(first)
	}

	verb := first.Keyword()
	rules := grammar.ForVerb(verb)
	if len(rules) == 0 {
		return nil, unexpected(first)
	}

	for _, rule := range rules {
		if matches(rule.Pattern, toks) {
			return rule.Build(toks), nil
		}
	}

	return nil, unexpected(firstMismatch(rules, toks))
}

// matches requires the full pattern to cover the full token sequence:
// no leftover tokens, no missing tokens.
func matches(pattern []grammar.Slot, toks []token.Token) bool {
	if len(pattern) != len(toks) {
		return false
	}
	for i, slot := range pattern {
		if !slot.Matches(toks[i]) {
			return false
		}
	}
	return true
}

// firstMismatch picks the token to blame in the error message: the
// first position where the closest-length overload stops matching.
func firstMismatch(rules []grammar.Rule, toks []token.Token) token.Token {
	best := toks[len(toks)-1]
	bestPos := 0
	for _, rule := range rules {
		n := len(rule.Pattern)
		if len(toks) < n {
			n = len(toks)
		}
		for i := 0; i < n; i++ {
			if !rule.Pattern[i].Matches(toks[i]) {
				if i > bestPos {
					best, bestPos = toks[i], i
				}
				break
			}
			if i == n-1 && len(toks) > len(rule.Pattern) {
				extra := toks[len(rule.Pattern)]
				if len(rule.Pattern) > bestPos {
					best, bestPos = extra, len(rule.Pattern)
				}
			}
		}
	}
	return best
}

func unexpected(t token.Token) *apperr.ParseError {
	literal := t.Literal
	if strings.TrimSpace(literal) == "" {
		return apperr.NewParse("unexpected end of command")
	}
	return apperr.NewParse(fmt.Sprintf("unexpected %q", literal))
}

func trimEOF(tokens []token.Token) []token.Token {
	for len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}
