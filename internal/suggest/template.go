package suggest

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultTemplates lists the accepted phrasings per verb, most specific
// first. They seed both prefix matching and the LLM prompt.
var defaultTemplates = map[string][]string{
	"LIST": {
		`LIST EVENTS IN "Kingston"`,
		`LIST EVENTS`,
	},
	"BOOK": {
		`BOOK "Event Name" ON 2024-12-31 FOR "Person Name"`,
		`BOOK "Event ID" 2`,
	},
	"CONFIRM": {
		`CONFIRM "QTX-1234"`,
		`CONFIRM BOOKING "QTX-1234"`,
	},
	"PAY": {
		`PAY "QTX-1234" 100`,
		`PAY FOR BOOKING "QTX-1234" 100`,
	},
	"CANCEL": {
		`CANCEL "QTX-1234"`,
	},
	"UPDATE": {
		`UPDATE "Event ID" 50`,
		`UPDATE EVENT "Event Name" WITH 10 NEW TICKETS`,
	},
	"ADD": {
		`ADD EVENT "Title" "Venue" "Location" 2024-12-31 2024-12-31 50 100 100`,
		`ADD EVENT "Title" AT "Venue" IN "Location" FROM 2024-12-31 TO 2024-12-31 PRICE 50 TO 100`,
	},
	"HELP": {
		`HELP`,
	},
}

// TemplateSuggester completes partial input by prefix-matching against
// command templates. It is the zero-dependency fallback behind the LLM
// suggester and works offline.
type TemplateSuggester struct {
	templates map[string][]string
}

func NewTemplateSuggester() *TemplateSuggester {
	return &TemplateSuggester{templates: defaultTemplates}
}

// templateFile is the YAML shape for overriding the built-in templates.
type templateFile struct {
	Templates map[string][]string `yaml:"templates"`
}

// NewTemplateSuggesterFromYAML reads verb templates from a YAML stream,
// falling back to the built-ins for verbs the file does not mention.
func NewTemplateSuggesterFromYAML(r io.Reader) (*TemplateSuggester, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read template config: %w", err)
	}

	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse template config: %w", err)
	}

	templates := make(map[string][]string, len(defaultTemplates))
	for verb, list := range defaultTemplates {
		templates[verb] = list
	}
	for verb, list := range file.Templates {
		templates[strings.ToUpper(verb)] = list
	}

	return &TemplateSuggester{templates: templates}, nil
}

// Suggest returns the first template whose verb extends the partial
// input. Longer verb matches win, so "CONF" resolves to CONFIRM before
// any shorter candidate.
func (t *TemplateSuggester) Suggest(ctx context.Context, partial string) (string, error) {
	trimmed := strings.TrimSpace(partial)
	if trimmed == "" {
		return "", nil
	}

	upper := strings.ToUpper(trimmed)
	firstWord, _, _ := strings.Cut(upper, " ")

	// Exact phrase prefix beats verb-only completion.
	for _, verb := range t.sortedVerbs() {
		for _, tpl := range t.templates[verb] {
			if strings.HasPrefix(strings.ToUpper(tpl), upper) {
				return tpl, nil
			}
		}
	}

	for _, verb := range t.sortedVerbs() {
		if strings.HasPrefix(verb, firstWord) {
			return t.templates[verb][0], nil
		}
	}

	return "", nil
}

func (t *TemplateSuggester) sortedVerbs() []string {
	verbs := make([]string, 0, len(t.templates))
	for v := range t.templates {
		verbs = append(verbs, v)
	}
	sort.Strings(verbs)
	return verbs
}

// TemplatesFor exposes a verb's templates so the LLM suggester can seed
// its prompt with them.
func (t *TemplateSuggester) TemplatesFor(verb string) []string {
	return t.templates[strings.ToUpper(verb)]
}
