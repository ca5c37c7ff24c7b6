package interpreter

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicktix/quicktix/internal/storage/inmem"
)

var codePattern = regexp.MustCompile(`QTX-\d{4}`)

func TestRun_AddThenList(t *testing.T) {
	interp := New(inmem.NewRepository())
	ctx := context.Background()

	out := interp.Run(ctx, `ADD concert "Jazz Night" AT "City Hall" IN "Kingston" FROM 2025-01-01 TO 2025-01-02 PRICE 20 TO 50`)
	assert.Contains(t, out, "✅ Added 'Jazz Night' (concert ticket) with ID: ")

	out = interp.Run(ctx, `LIST EVENTS IN "Kingston"`)
	assert.Contains(t, out, "📍 Events in Kingston:")
	assert.Contains(t, out, "🎫 Title: Jazz Night")
	assert.Contains(t, out, "🎟️ Tickets Left: 100")
}

func TestRun_FullBookingLifecycle(t *testing.T) {
	interp := New(inmem.NewRepository())
	ctx := context.Background()

	interp.Run(ctx, `ADD EVENT "Jazz Night" "City Hall" "Kingston" 2025-01-01 2025-01-02 20 50 30`)

	out := interp.Run(ctx, `BOOK "Jazz Night" ON 2025-01-01 FOR "Ann"`)
	code := codePattern.FindString(out)
	require.NotEmpty(t, code, "no booking code in %q", out)

	out = interp.Run(ctx, `CONFIRM BOOKING "`+code+`"`)
	assert.Equal(t, "✅ Booking "+code+" confirmed successfully", out)

	// Underpaying leaves the booking confirmed.
	out = interp.Run(ctx, `PAY "`+code+`" 10`)
	assert.Equal(t, "❌ Amount $10 is less than required $20", out)

	out = interp.Run(ctx, `PAY "`+code+`" 20`)
	assert.Equal(t, "✅ Payment of $20 processed for booking "+code, out)

	out = interp.Run(ctx, `CANCEL "`+code+`"`)
	assert.Equal(t, "✅ Booking "+code+" cancelled and 1 ticket(s) restored", out)
}

func TestRun_SyntaxError(t *testing.T) {
	interp := New(inmem.NewRepository())
	ctx := context.Background()

	out := interp.Run(ctx, `BOOK 2`)
	assert.True(t, strings.HasPrefix(out, "❌ Syntax error: "), "got %q", out)
	assert.Contains(t, out, "Type 'help' for available commands.")

	out = interp.Run(ctx, "")
	assert.Contains(t, out, "❌ Syntax error: ")
}

func TestRun_LexDiagnosticsThenRecovery(t *testing.T) {
	interp := New(inmem.NewRepository())
	ctx := context.Background()

	// The bad character is reported and the rest still parses.
	out := interp.Run(ctx, "LIST @ EVENTS")
	assert.Contains(t, out, "Invalid character '@' in command. Please check the command syntax.\n")
	assert.Contains(t, out, "No events found")
}

func TestRun_UnrecognizedWord(t *testing.T) {
	interp := New(inmem.NewRepository())

	out := interp.Run(context.Background(), "frobnicate")
	assert.Equal(t, "Unrecognized command: frobnicate. Type 'help' for available commands.", out)
}

func TestRun_Help(t *testing.T) {
	interp := New(inmem.NewRepository())

	out := interp.Run(context.Background(), "help")
	assert.Contains(t, out, "LIST EVENTS")
	assert.Contains(t, out, "CANCEL")
}

func TestRun_UpdateOverloads(t *testing.T) {
	interp := New(inmem.NewRepository())
	ctx := context.Background()

	out := interp.Run(ctx, `ADD EVENT "Jazz Night" "City Hall" "Kingston" 2025-01-01 2025-01-02 20 50 30`)
	idPattern := regexp.MustCompile(`ID: (\S+)`)
	m := idPattern.FindStringSubmatch(out)
	require.Len(t, m, 2)
	id := m[1]

	out = interp.Run(ctx, `UPDATE "`+id+`" 50`)
	assert.Equal(t, "🔄 Updated 'Jazz Night': available tickets set to 50.", out)

	out = interp.Run(ctx, `UPDATE EVENT "Jazz Night" WITH 10 NEW TICKETS`)
	assert.Equal(t, "🔁 Updated 'Jazz Night' with 10 new tickets.", out)

	out = interp.Run(ctx, `LIST EVENTS`)
	assert.Contains(t, out, "🎟️ Tickets Left: 60")
}
