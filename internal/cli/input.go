package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/credo/internal/model"
	"github.com/ppiankov/credo/internal/pipeline"
	"github.com/spf13/viper"
)

// buildConfig assembles the effective configuration for a run: defaults,
// then config file / env via viper, then command flags.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if v := viper.GetString("llm.provider"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := viper.GetString("llm.model"); v != "" {
		cfg.LLM.Model = v
	}
	if v := viper.GetString("engine.base_url"); v != "" {
		cfg.Engine.BaseURL = v
	}

	if llmProvider != "" {
		cfg.LLM.Provider = llmProvider
	}
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}
	if engineURL != "" {
		cfg.Engine.BaseURL = engineURL
	}
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose

	if err := resolveProviderEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveProviderEnv pulls provider credentials from the environment
func resolveProviderEnv(cfg *model.Config) error {
	switch cfg.LLM.Provider {
	case "openai":
		if cfg.LLM.APIKey == "" {
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		if cfg.LLM.APIKey == "" {
			cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" && cfg.LLM.BaseURL == "" {
			cfg.LLM.BaseURL = baseURL
		}
	}
	return nil
}

// sourceInput resolves one input spec to (subject, source, text).
// A spec is raw text, a local file path, or an http(s) URL.
func sourceInput(ctx context.Context, cfg *model.Config, spec string) (subject, source, text string, err error) {
	switch {
	case strings.HasPrefix(spec, "http://"), strings.HasPrefix(spec, "https://"):
		fetcher := pipeline.NewFetcher(cfg.HTTP)
		page, err := fetcher.Fetch(ctx, spec)
		if err != nil {
			return "", "", "", fmt.Errorf("fetch %s: %w", spec, err)
		}
		return page.Subject, page.FinalURL, page.Text, nil

	case fileExists(spec):
		data, err := os.ReadFile(spec)
		if err != nil {
			return "", "", "", fmt.Errorf("read %s: %w", spec, err)
		}
		return spec, spec, strings.TrimSpace(string(data)), nil

	default:
		return excerpt(spec), "inline", spec, nil
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// excerpt shortens raw text into a subject label
func excerpt(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > 60 {
		return text[:57] + "..."
	}
	return text
}
