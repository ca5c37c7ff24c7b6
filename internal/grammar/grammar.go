// Package grammar declares the sentence patterns of the command
// language. Each verb registers one or more overloads; the parser picks
// the first overload whose pattern matches the token sequence exactly.
package grammar

import (
	"sort"
	"strconv"
	"strings"

	"github.com/quicktix/quicktix/internal/command"
	"github.com/quicktix/quicktix/internal/token"
)

type SlotKind int

const (
	// SlotKeyword matches one specific reserved word.
	SlotKeyword SlotKind = iota
	// SlotString matches a quoted string.
	SlotString
	// SlotDate matches a YYYY-MM-DD literal.
	SlotDate
	// SlotNumber matches a non-negative integer literal.
	SlotNumber
	// SlotCategory matches a free-form word or the EVENT keyword, since
	// "ADD EVENT ..." lexes EVENT as a reserved word while
	// "ADD concert ..." yields a plain word.
	SlotCategory
)

// Slot is one expected position in a sentence pattern.
type Slot struct {
	Kind    SlotKind
	Keyword string
}

func kw(keyword string) Slot { return Slot{Kind: SlotKeyword, Keyword: keyword} }

var (
	str      = Slot{Kind: SlotString}
	date     = Slot{Kind: SlotDate}
	number   = Slot{Kind: SlotNumber}
	category = Slot{Kind: SlotCategory}
)

// Matches reports whether the token satisfies the slot.
func (s Slot) Matches(t token.Token) bool {
	switch s.Kind {
	case SlotKeyword:
		return t.Is(s.Keyword)
	case SlotString:
		return t.Kind == token.STRING
	case SlotDate:
		return t.Kind == token.DATE
	case SlotNumber:
		return t.Kind == token.NUMBER
	case SlotCategory:
		return t.Kind == token.WORD || t.Is("EVENT")
	default:
		return false
	}
}

// Rule is one accepted phrasing of a verb. Build turns the matched token
// sequence (verb included, EOF excluded) into a finished command.
type Rule struct {
	Verb    string
	Pattern []Slot
	Build   func(toks []token.Token) command.Command
}

var table = []Rule{
	{
		Verb:    "HELP",
		Pattern: []Slot{kw("HELP")},
		Build: func(toks []token.Token) command.Command {
			return command.Help{}
		},
	},
	{
		Verb:    "LIST",
		Pattern: []Slot{kw("LIST"), kw("EVENTS")},
		Build: func(toks []token.Token) command.Command {
			return command.ListEvents{}
		},
	},
	{
		Verb:    "LIST",
		Pattern: []Slot{kw("LIST"), kw("EVENTS"), kw("IN"), str},
		Build: func(toks []token.Token) command.Command {
			return command.ListEvents{Location: toks[3].Literal}
		},
	},
	{
		Verb:    "BOOK",
		Pattern: []Slot{kw("BOOK"), str, number},
		Build: func(toks []token.Token) command.Command {
			return command.BookByID{EventID: toks[1].Literal, Quantity: toInt(toks[2])}
		},
	},
	{
		Verb:    "BOOK",
		Pattern: []Slot{kw("BOOK"), str, kw("ON"), date, kw("FOR"), str},
		Build: func(toks []token.Token) command.Command {
			return command.BookByName{Title: toks[1].Literal, Date: toks[3].Literal, User: toks[5].Literal}
		},
	},
	{
		Verb:    "CONFIRM",
		Pattern: []Slot{kw("CONFIRM"), str},
		Build: func(toks []token.Token) command.Command {
			return command.ConfirmBooking{Code: toks[1].Literal}
		},
	},
	{
		Verb:    "CONFIRM",
		Pattern: []Slot{kw("CONFIRM"), kw("BOOKING"), str},
		Build: func(toks []token.Token) command.Command {
			return command.ConfirmBooking{Code: toks[2].Literal}
		},
	},
	{
		Verb:    "PAY",
		Pattern: []Slot{kw("PAY"), str, number},
		Build: func(toks []token.Token) command.Command {
			return command.PayBooking{Code: toks[1].Literal, Amount: toFloat(toks[2])}
		},
	},
	{
		Verb:    "PAY",
		Pattern: []Slot{kw("PAY"), kw("FOR"), kw("BOOKING"), str, number},
		Build: func(toks []token.Token) command.Command {
			return command.PayBooking{Code: toks[3].Literal, Amount: toFloat(toks[4])}
		},
	},
	{
		Verb:    "CANCEL",
		Pattern: []Slot{kw("CANCEL"), str},
		Build: func(toks []token.Token) command.Command {
			return command.CancelBooking{Code: toks[1].Literal}
		},
	},
	{
		Verb:    "CANCEL",
		Pattern: []Slot{kw("CANCEL"), kw("BOOKING"), str},
		Build: func(toks []token.Token) command.Command {
			return command.CancelBooking{Code: toks[2].Literal}
		},
	},
	{
		// Absolute replacement of the ticket count.
		Verb:    "UPDATE",
		Pattern: []Slot{kw("UPDATE"), str, number},
		Build: func(toks []token.Token) command.Command {
			return command.SetTickets{EventID: toks[1].Literal, Tickets: toInt(toks[2])}
		},
	},
	{
		// Additive increment, addressed by title.
		Verb:    "UPDATE",
		Pattern: []Slot{kw("UPDATE"), kw("EVENT"), str, kw("WITH"), number, kw("NEW"), kw("TICKETS")},
		Build: func(toks []token.Token) command.Command {
			return command.AddTickets{Title: toks[2].Literal, Tickets: toInt(toks[4])}
		},
	},
	{
		// Positional form with an explicit ticket count.
		Verb:    "ADD",
		Pattern: []Slot{kw("ADD"), category, str, str, str, date, date, number, number, number},
		Build: func(toks []token.Token) command.Command {
			return command.AddEvent{
				Category:  strings.ToLower(toks[1].Literal),
				Title:     toks[2].Literal,
				Venue:     toks[3].Literal,
				Location:  toks[4].Literal,
				StartDate: toks[5].Literal,
				EndDate:   toks[6].Literal,
				PriceMin:  toFloat(toks[7]),
				PriceMax:  toFloat(toks[8]),
				Tickets:   toInt(toks[9]),
			}
		},
	},
	{
		// Keyworded form; the ticket count defaults.
		Verb:    "ADD",
		Pattern: []Slot{kw("ADD"), category, str, kw("AT"), str, kw("IN"), str, kw("FROM"), date, kw("TO"), date, kw("PRICE"), number, kw("TO"), number},
		Build: func(toks []token.Token) command.Command {
			return command.AddEvent{
				Category:  strings.ToLower(toks[1].Literal),
				Title:     toks[2].Literal,
				Venue:     toks[4].Literal,
				Location:  toks[6].Literal,
				StartDate: toks[8].Literal,
				EndDate:   toks[10].Literal,
				PriceMin:  toFloat(toks[12]),
				PriceMax:  toFloat(toks[14]),
				Tickets:   -1,
			}
		},
	},
}

// Table returns every registered rule.
func Table() []Rule {
	return table
}

// ForVerb returns the verb's overloads ordered longest pattern first, so
// the most specific phrasing wins when a prefix would also match.
func ForVerb(verb string) []Rule {
	var rules []Rule
	for _, r := range table {
		if r.Verb == verb {
			rules = append(rules, r)
		}
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return len(rules[i].Pattern) > len(rules[j].Pattern)
	})
	return rules
}

// Verbs returns the set of verbs that can start a command.
func Verbs() map[string]struct{} {
	verbs := make(map[string]struct{})
	for _, r := range table {
		verbs[r.Verb] = struct{}{}
	}
	return verbs
}

// The tokenizer only emits digit runs for NUMBER, so these cannot fail.

func toInt(t token.Token) int {
	n, _ := strconv.Atoi(t.Literal)
	return n
}

func toFloat(t token.Token) float64 {
	f, _ := strconv.ParseFloat(t.Literal, 64)
	return f
}
