package model

import "time"

// Config holds the complete credo configuration
type Config struct {
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Engine      EngineConfig      `yaml:"engine" mapstructure:"engine"`
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// LLMConfig configures the text-completion provider
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // "openai", "anthropic", "ollama"
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL   string `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// EngineConfig configures the external reasoning-engine service
type EngineConfig struct {
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	Timeout int    `yaml:"timeout" mapstructure:"timeout"` // seconds
}

// HTTPConfig configures outbound HTTP for URL ingestion
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
}

// CacheConfig configures the completion cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir     string        `yaml:"dir,omitempty" mapstructure:"dir"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ConcurrencyConfig configures batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig configures report rendering
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:  "",
			Model:     "",
			Timeout:   60,
			MaxTokens: 2000,
		},
		Engine: EngineConfig{
			BaseURL: "http://localhost:8787",
			Timeout: 30,
		},
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Credo/0.1 (+https://github.com/ppiankov/credo)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
