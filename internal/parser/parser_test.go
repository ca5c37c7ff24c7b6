package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicktix/quicktix/internal/apperr"
	"github.com/quicktix/quicktix/internal/command"
	"github.com/quicktix/quicktix/internal/token"
)

func parse(t *testing.T, input string) (command.Command, error) {
	t.Helper()
	tokens, lexErrs := token.NewTokenizer().Tokenize(input)
	require.Empty(t, lexErrs, "input %q", input)
	return New().Parse(tokens)
}

func mustParse(t *testing.T, input string) command.Command {
	t.Helper()
	cmd, err := parse(t, input)
	require.NoError(t, err, "input %q", input)
	return cmd
}

func TestParse_ListEvents(t *testing.T) {
	assert.Equal(t, command.ListEvents{}, mustParse(t, "LIST EVENTS"))
	assert.Equal(t,
		command.ListEvents{Location: "Kingston"},
		mustParse(t, `LIST EVENTS IN "Kingston"`))
}

func TestParse_BookOverloadDisambiguation(t *testing.T) {
	assert.Equal(t,
		command.BookByID{EventID: "E1", Quantity: 2},
		mustParse(t, `BOOK "E1" 2`))

	assert.Equal(t,
		command.BookByName{Title: "Concert", Date: "2024-12-31", User: "Ann"},
		mustParse(t, `BOOK "Concert" ON 2024-12-31 FOR "Ann"`))
}

func TestParse_ConfirmPayCancelPhrasings(t *testing.T) {
	tests := []struct {
		input string
		want  command.Command
	}{
		{`CONFIRM "QTX-1234"`, command.ConfirmBooking{Code: "QTX-1234"}},
		{`CONFIRM BOOKING "QTX-1234"`, command.ConfirmBooking{Code: "QTX-1234"}},
		{`PAY "QTX-1234" 100`, command.PayBooking{Code: "QTX-1234", Amount: 100}},
		{`PAY FOR BOOKING "QTX-1234" 100`, command.PayBooking{Code: "QTX-1234", Amount: 100}},
		{`CANCEL "QTX-1234"`, command.CancelBooking{Code: "QTX-1234"}},
		{`CANCEL BOOKING "QTX-1234"`, command.CancelBooking{Code: "QTX-1234"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, mustParse(t, tt.input), "input %q", tt.input)
	}
}

func TestParse_UpdateOverloadsHaveDistinctSemantics(t *testing.T) {
	assert.Equal(t,
		command.SetTickets{EventID: "E1", Tickets: 50},
		mustParse(t, `UPDATE "E1" 50`))

	assert.Equal(t,
		command.AddTickets{Title: "Mello Vibes", Tickets: 10},
		mustParse(t, `UPDATE EVENT "Mello Vibes" WITH 10 NEW TICKETS`))
}

func TestParse_AddEventPositional(t *testing.T) {
	cmd := mustParse(t, `ADD EVENT "Jazz Night" "City Hall" "Kingston" 2025-01-01 2025-01-02 20 50 30`)

	assert.Equal(t, command.AddEvent{
		Category:  "event",
		Title:     "Jazz Night",
		Venue:     "City Hall",
		Location:  "Kingston",
		StartDate: "2025-01-01",
		EndDate:   "2025-01-02",
		PriceMin:  20,
		PriceMax:  50,
		Tickets:   30,
	}, cmd)
}

func TestParse_AddEventKeyworded(t *testing.T) {
	cmd := mustParse(t, `ADD concert "Mello Vibes" AT "Sabina Park" IN "Kingston" FROM 2024-12-31 TO 2024-12-31 PRICE 50 TO 100`)

	assert.Equal(t, command.AddEvent{
		Category:  "concert",
		Title:     "Mello Vibes",
		Venue:     "Sabina Park",
		Location:  "Kingston",
		StartDate: "2024-12-31",
		EndDate:   "2024-12-31",
		PriceMin:  50,
		PriceMax:  100,
		Tickets:   -1,
	}, cmd)
}

func TestParse_Help(t *testing.T) {
	assert.Equal(t, command.Help{}, mustParse(t, "HELP"))
	assert.Equal(t, command.Help{}, mustParse(t, "help"))
}

func TestParse_SingleStrayWordIsUnrecognizedNotError(t *testing.T) {
	cmd := mustParse(t, "foobar")
	assert.Equal(t, command.Unrecognized{Word: "foobar"}, cmd)
}

func TestParse_EmptyInputIsTerminalParseError(t *testing.T) {
	_, err := parse(t, "")
	require.Error(t, err)

	var pe *apperr.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Message, "end of command")
}

func TestParse_NoMatchingOverload(t *testing.T) {
	tests := []string{
		`BOOK 2`,                  // missing event reference
		`LIST EVENTS IN Kingston`, // location must be quoted
		`PAY "QTX-1234"`,          // missing amount
		`CONFIRM`,                 // missing code
		`foobar "extra"`,          // stray word with trailing tokens
	}

	for _, input := range tests {
		_, err := parse(t, input)
		var pe *apperr.ParseError
		require.ErrorAs(t, err, &pe, "input %q", input)
	}
}

func TestParse_IsStateless(t *testing.T) {
	p := New()
	tokens, _ := token.NewTokenizer().Tokenize("LIST EVENTS")

	first, err1 := p.Parse(tokens)
	second, err2 := p.Parse(tokens)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}
