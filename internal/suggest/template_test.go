package suggest

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateSuggester_VerbPrefix(t *testing.T) {
	s := NewTemplateSuggester()
	ctx := context.Background()

	tests := []struct {
		partial string
		want    string
	}{
		{"LIST", `LIST EVENTS IN "Kingston"`},
		{"list", `LIST EVENTS IN "Kingston"`},
		{"BO", `BOOK "Event Name" ON 2024-12-31 FOR "Person Name"`},
		{"CONF", `CONFIRM "QTX-1234"`},
		{"HELP", "HELP"},
	}

	for _, tt := range tests {
		got, err := s.Suggest(ctx, tt.partial)
		require.NoError(t, err, "partial %q", tt.partial)
		assert.Equal(t, tt.want, got, "partial %q", tt.partial)
	}
}

func TestTemplateSuggester_PhrasePrefixBeatsVerbDefault(t *testing.T) {
	s := NewTemplateSuggester()

	got, err := s.Suggest(context.Background(), "CONFIRM BOOK")
	require.NoError(t, err)
	assert.Equal(t, `CONFIRM BOOKING "QTX-1234"`, got)

	got, err = s.Suggest(context.Background(), "PAY FOR")
	require.NoError(t, err)
	assert.Equal(t, `PAY FOR BOOKING "QTX-1234" 100`, got)
}

func TestTemplateSuggester_NoMatch(t *testing.T) {
	s := NewTemplateSuggester()

	got, err := s.Suggest(context.Background(), "frobnicate")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = s.Suggest(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNewTemplateSuggesterFromYAML(t *testing.T) {
	yaml := `
templates:
  list:
    - 'LIST EVENTS IN "Montego Bay"'
`
	s, err := NewTemplateSuggesterFromYAML(strings.NewReader(yaml))
	require.NoError(t, err)

	// Overridden verb uses the file's templates.
	got, err := s.Suggest(context.Background(), "LIST")
	require.NoError(t, err)
	assert.Equal(t, `LIST EVENTS IN "Montego Bay"`, got)

	// Untouched verbs keep the built-ins.
	got, err = s.Suggest(context.Background(), "CANCEL")
	require.NoError(t, err)
	assert.Equal(t, `CANCEL "QTX-1234"`, got)
}

func TestNewTemplateSuggesterFromYAML_BadInput(t *testing.T) {
	_, err := NewTemplateSuggesterFromYAML(strings.NewReader("templates: ["))
	assert.Error(t, err)
}
