package token

import (
	"fmt"
	"strings"
	"unicode"
)

// LexError records an unrecognized character. The scanner skips the
// character and keeps going, so a single bad rune never loses the rest
// of the command.
type LexError struct {
	Char rune
	Pos  int
}

func (e LexError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
}

// Tokenizer breaks a command line into tokens.
type Tokenizer struct {
	input []rune
	pos   int
}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize converts the input string into a slice of Tokens plus any
// lexical diagnostics. Whitespace never produces tokens. A trailing EOF
// token is always appended.
// Example: `BOOK "Mello Vibes" ON 2024-12-31 FOR "Ann"`
func (t *Tokenizer) Tokenize(input string) ([]Token, []LexError) {
	t.input = []rune(input)
	t.pos = 0

	var tokens []Token
	var lexErrs []LexError

	for t.pos < len(t.input) {
		t.skipWhitespace()
		if t.pos >= len(t.input) {
			break
		}
		ch := t.input[t.pos]
		switch {
		case isQuote(ch):
			tokens = append(tokens, t.readQuoted())
		case unicode.IsDigit(ch):
			tokens = append(tokens, t.readDateOrNumber())
		case unicode.IsLetter(ch):
			tokens = append(tokens, t.readWord())
		default:
			lexErrs = append(lexErrs, LexError{Char: ch, Pos: t.pos})
			t.pos++
		}
	}

	tokens = append(tokens, Token{Kind: EOF, Pos: len(t.input)})
	return tokens, lexErrs
}

func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.input) && unicode.IsSpace(t.input[t.pos]) {
		t.pos++
	}
}

// readQuoted consumes a quoted span and strips the quotes. Both straight
// and curly quotes are accepted, the way users paste them from documents.
func (t *Tokenizer) readQuoted() Token {
	start := t.pos
	t.pos++ // opening quote
	valueStart := t.pos
	for t.pos < len(t.input) && !isQuote(t.input[t.pos]) {
		t.pos++
	}
	value := string(t.input[valueStart:t.pos])
	if t.pos < len(t.input) {
		t.pos++ // closing quote
	}
	return Token{Kind: STRING, Literal: value, Pos: start}
}

// readDateOrNumber consumes a digit run, preferring the YYYY-MM-DD date
// shape over a bare integer.
func (t *Tokenizer) readDateOrNumber() Token {
	start := t.pos
	if t.matchDate() {
		return Token{Kind: DATE, Literal: string(t.input[start:t.pos]), Pos: start}
	}
	for t.pos < len(t.input) && unicode.IsDigit(t.input[t.pos]) {
		t.pos++
	}
	return Token{Kind: NUMBER, Literal: string(t.input[start:t.pos]), Pos: start}
}

// matchDate advances past a \d{4}-\d{2}-\d{2} span and reports success;
// on failure the position is left untouched.
func (t *Tokenizer) matchDate() bool {
	rest := t.input[t.pos:]
	if len(rest) < 10 {
		return false
	}
	for i, r := range rest[:10] {
		switch i {
		case 4, 7:
			if r != '-' {
				return false
			}
		default:
			if !unicode.IsDigit(r) {
				return false
			}
		}
	}
	// A longer digit run (e.g. 2024-12-315) is not a date.
	if len(rest) > 10 && unicode.IsDigit(rest[10]) {
		return false
	}
	t.pos += 10
	return true
}

func (t *Tokenizer) readWord() Token {
	start := t.pos
	for t.pos < len(t.input) && isWordChar(t.input[t.pos]) {
		t.pos++
	}
	word := string(t.input[start:t.pos])

	if _, ok := Keywords[strings.ToUpper(word)]; ok {
		return Token{Kind: KEYWORD, Literal: word, Pos: start}
	}
	return Token{Kind: WORD, Literal: word, Pos: start}
}

func isWordChar(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}

func isQuote(ch rune) bool {
	return ch == '"' || ch == '“' || ch == '”'
}
