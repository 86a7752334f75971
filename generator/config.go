package generator

import (
	"encoding/json"
	"fmt"
	"os"
)

// ProviderConfig holds one provider binding.
type ProviderConfig struct {
	Model   string `json:"model,omitempty"`
	APIKey  string `json:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty"`
}

// Config is the on-disk service configuration. API keys may be omitted
// from the file and supplied via environment instead.
type Config struct {
	OpenAI     ProviderConfig `json:"openai"`
	Anthropic  ProviderConfig `json:"anthropic"`
	ServerAddr string         `json:"server_addr,omitempty"`
}

const (
	defaultOpenAIModel    = "gpt-4"
	defaultAnthropicModel = "claude-3-5-sonnet-20241022"
)

// LoadConfig reads the JSON config file and fills env fallbacks and
// model defaults. A missing file is not an error; env-only setups are
// common in deployment.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to env-only config
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if cfg.OpenAI.APIKey == "" {
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.Anthropic.APIKey == "" {
		cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = defaultOpenAIModel
	}
	if cfg.Anthropic.Model == "" {
		cfg.Anthropic.Model = defaultAnthropicModel
	}
	return cfg, nil
}

// BuildLLM constructs the client for one model choice.
func BuildLLM(cfg Config, choice ModelChoice) (LLMClient, error) {
	switch choice {
	case ModelOpenAI:
		return NewOpenAILLMFromConfig(&LLMSettings{
			Provider: string(ModelOpenAI),
			Model:    cfg.OpenAI.Model,
			APIKey:   cfg.OpenAI.APIKey,
			BaseURL:  cfg.OpenAI.BaseURL,
		})
	case ModelClaude:
		return NewAnthropicLLMFromConfig(&LLMSettings{
			Provider: string(ModelClaude),
			Model:    cfg.Anthropic.Model,
			APIKey:   cfg.Anthropic.APIKey,
			BaseURL:  cfg.Anthropic.BaseURL,
		})
	case "mock":
		return MockLLM{}, nil
	default:
		return nil, fmt.Errorf("model %q not supported", string(choice))
	}
}
