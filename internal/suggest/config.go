package suggest

import (
	"errors"
	"os"
)

const defaultModel = "llama3.2:3b"

type Config struct {
	Enabled       bool
	Model         string
	BaseURL       string
	TemplatesPath string
}

func LoadConfigFromEnv() (*Config, error) {
	enabled := os.Getenv("SUGGEST_ENABLED")
	model := os.Getenv("SUGGEST_MODEL")
	baseUrl := os.Getenv("SUGGEST_BASE_URL")
	templatesPath := os.Getenv("SUGGEST_TEMPLATES_PATH")

	if model == "" {
		model = defaultModel
	}

	if enabled == "true" && baseUrl == "" {
		return nil, errors.New("SUGGEST_BASE_URL environment variable not set")
	}

	return &Config{
		Enabled:       enabled == "true",
		Model:         model,
		BaseURL:       baseUrl,
		TemplatesPath: templatesPath,
	}, nil
}

// NewFromConfig assembles the suggester chain: the LLM first when
// enabled, templates always as the fallback.
func NewFromConfig(cfg *Config) (Suggester, error) {
	templates := NewTemplateSuggester()
	if cfg.TemplatesPath != "" {
		f, err := os.Open(cfg.TemplatesPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		templates, err = NewTemplateSuggesterFromYAML(f)
		if err != nil {
			return nil, err
		}
	}

	if !cfg.Enabled {
		return templates, nil
	}

	llm, err := NewOllamaSuggester(cfg.BaseURL, cfg.Model, templates)
	if err != nil {
		return nil, err
	}
	return Chain{llm, templates}, nil
}
