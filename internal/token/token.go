package token

import "strings"

type Kind int

const (
	EOF Kind = iota
	KEYWORD
	STRING
	DATE
	NUMBER
	WORD
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case KEYWORD:
		return "KEYWORD"
	case STRING:
		return "STRING"
	case DATE:
		return "DATE"
	case NUMBER:
		return "NUMBER"
	case WORD:
		return "WORD"
	default:
		return "UNKNOWN"
	}
}

// Keywords is the reserved word set of the command language. Matching is
// case-insensitive; the canonical spelling is upper-case.
var Keywords = map[string]struct{}{
	"LIST": {}, "EVENTS": {}, "IN": {}, "BOOK": {}, "ON": {}, "FOR": {},
	"CONFIRM": {}, "BOOKING": {}, "PAY": {}, "CANCEL": {}, "UPDATE": {},
	"EVENT": {}, "WITH": {}, "NEW": {}, "TICKETS": {}, "ADD": {}, "AT": {},
	"FROM": {}, "TO": {}, "PRICE": {}, "HELP": {},
}

// Token is a lexical token with its kind, literal value and the byte
// offset where it starts in the source text. STRING literals are already
// unquoted; KEYWORD literals keep the spelling the user typed.
type Token struct {
	Kind    Kind
	Literal string
	Pos     int
}

// Is reports whether the token is the given keyword, ignoring case.
func (t Token) Is(keyword string) bool {
	return t.Kind == KEYWORD && strings.EqualFold(t.Literal, keyword)
}

// Keyword returns the canonical upper-case spelling for KEYWORD tokens
// and the empty string for everything else.
func (t Token) Keyword() string {
	if t.Kind != KEYWORD {
		return ""
	}
	return strings.ToUpper(t.Literal)
}
