package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

type OllamaOption func(client *OllamaSuggester)

// OllamaSuggester asks a locally hosted LLM to complete the command,
// seeding the prompt with the matching verb's templates. Strictly a
// convenience: any failure surfaces as an error the Chain skips over.
type OllamaSuggester struct {
	base      url.URL
	model     string
	http      *http.Client
	templates *TemplateSuggester
}

func NewOllamaSuggester(baseUrl, model string, templates *TemplateSuggester, opts ...OllamaOption) (*OllamaSuggester, error) {
	base, err := url.Parse(baseUrl)
	if err != nil {
		return nil, err
	}

	s := &OllamaSuggester{
		base:      *base,
		model:     model,
		templates: templates,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func WithHttpClient(httpClient *http.Client) OllamaOption {
	return func(s *OllamaSuggester) {
		s.http = httpClient
	}
}

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

func (s *OllamaSuggester) Suggest(ctx context.Context, partial string) (string, error) {
	trimmed := strings.TrimSpace(partial)
	if trimmed == "" {
		return "", nil
	}

	req := ollamaRequest{
		Model:  s.model,
		Prompt: s.buildPrompt(trimmed),
	}

	var resp ollamaResponse
	if err := s.do(ctx, http.MethodPost, "/api/generate", req, &resp); err != nil {
		return "", err
	}

	suggestion := strings.TrimSpace(strings.Trim(strings.TrimSpace(resp.Response), "`"))
	if strings.ContainsRune(suggestion, '\n') {
		// The model ignored the one-line instruction; better no
		// suggestion than a broken one.
		return "", nil
	}
	return suggestion, nil
}

func (s *OllamaSuggester) buildPrompt(partial string) string {
	verb, _, _ := strings.Cut(strings.ToUpper(partial), " ")

	var templates []string
	if s.templates != nil {
		templates = s.templates.TemplatesFor(verb)
	}

	var b strings.Builder
	b.WriteString("You are a CLI command suggestion assistant for a ticket booking system.\n")
	fmt.Fprintf(&b, "The user typed: '%s'\n\n", partial)

	if len(templates) > 0 {
		b.WriteString("Available command formats:\n")
		for _, t := range templates {
			fmt.Fprintf(&b, "- %s\n", t)
		}
		b.WriteString("\n")
	}

	b.WriteString("Rules:\n")
	b.WriteString("1. Use exact date format: YYYY-MM-DD\n")
	b.WriteString("2. Use quotes around names and locations\n")
	b.WriteString("3. Return only the completed command, no additional text\n\n")
	b.WriteString("Suggest the most likely complete command.")
	return b.String()
}

func (s *OllamaSuggester) do(ctx context.Context, method, path string, reqData, respData any) error {
	reqDataBytes, err := json.Marshal(reqData)
	if err != nil {
		return err
	}

	reqURL := s.base.JoinPath(path)
	request, err := http.NewRequestWithContext(ctx, method, reqURL.String(), bytes.NewReader(reqDataBytes))
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, respData); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}
