package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicktix/quicktix/internal/token"
)

func TestForVerb_MostSpecificFirst(t *testing.T) {
	for verb := range Verbs() {
		rules := ForVerb(verb)
		require.NotEmpty(t, rules, "verb %s", verb)
		for i := 1; i < len(rules); i++ {
			assert.GreaterOrEqual(t,
				len(rules[i-1].Pattern), len(rules[i].Pattern),
				"overloads of %s must be ordered longest first", verb)
		}
	}
}

func TestVerbs_CoversCommandSurface(t *testing.T) {
	verbs := Verbs()
	for _, v := range []string{"LIST", "BOOK", "CONFIRM", "PAY", "CANCEL", "UPDATE", "ADD", "HELP"} {
		assert.Contains(t, verbs, v)
	}
}

func TestSlot_CategoryAcceptsWordAndEventKeyword(t *testing.T) {
	slot := Slot{Kind: SlotCategory}

	assert.True(t, slot.Matches(token.Token{Kind: token.WORD, Literal: "concert"}))
	assert.True(t, slot.Matches(token.Token{Kind: token.KEYWORD, Literal: "EVENT"}))
	assert.True(t, slot.Matches(token.Token{Kind: token.KEYWORD, Literal: "event"}))
	assert.False(t, slot.Matches(token.Token{Kind: token.KEYWORD, Literal: "BOOK"}))
	assert.False(t, slot.Matches(token.Token{Kind: token.STRING, Literal: "concert"}))
}

func TestSlot_KeywordMatchIgnoresCase(t *testing.T) {
	slot := Slot{Kind: SlotKeyword, Keyword: "TICKETS"}

	assert.True(t, slot.Matches(token.Token{Kind: token.KEYWORD, Literal: "tickets"}))
	assert.False(t, slot.Matches(token.Token{Kind: token.WORD, Literal: "tickets"}))
}
