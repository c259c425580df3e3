package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port           int      `yaml:"port"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	Providers struct {
		TimeoutSeconds int  `yaml:"timeout_seconds"`
		NewsPageSize   int  `yaml:"news_page_size"`
		NewsScraper    bool `yaml:"news_scraper_fallback"`
	} `yaml:"providers"`
	LLM struct {
		Provider    string  `yaml:"provider"`
		Model       string  `yaml:"model"`
		MaxTokens   int     `yaml:"max_tokens"`
		Temperature float32 `yaml:"temperature"`
	} `yaml:"llm"`
	Cache struct {
		Capacity   int `yaml:"capacity"`
		TTLSeconds int `yaml:"ttl_seconds"`
	} `yaml:"cache"`
	Prewarm struct {
		Cron      string   `yaml:"cron"`
		Watchlist []string `yaml:"watchlist"`
	} `yaml:"prewarm"`
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be 1-65535", c.Server.Port)
	}
	switch c.LLM.Provider {
	case "GEMINI", "OPENAI", "CLAUDE", "NOOP":
	default:
		return fmt.Errorf("invalid llm.provider '%s': must be 'GEMINI', 'OPENAI', 'CLAUDE', or 'NOOP'", c.LLM.Provider)
	}
	if c.Cache.Capacity <= 0 {
		return fmt.Errorf("cache.capacity must be positive, got %d", c.Cache.Capacity)
	}
	if c.Cache.TTLSeconds <= 0 {
		return fmt.Errorf("cache.ttl_seconds must be positive, got %d", c.Cache.TTLSeconds)
	}
	if c.Providers.NewsPageSize <= 0 || c.Providers.NewsPageSize > 100 {
		return fmt.Errorf("providers.news_page_size must be 1-100, got %d", c.Providers.NewsPageSize)
	}
	return nil
}

// LoadConfig reads config from a YAML file. A missing file is not an
// error; defaults apply and env overrides still work.
func LoadConfig(path string) (*Config, error) {
	var c Config

	b, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(b) > 0 {
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnvOverrides(&c)
	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &c, nil
}

func applyDefaults(c *Config) {
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if c.Providers.TimeoutSeconds == 0 {
		c.Providers.TimeoutSeconds = 15
	}
	if c.Providers.NewsPageSize == 0 {
		c.Providers.NewsPageSize = 5
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "GEMINI"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = defaultModelFor(c.LLM.Provider)
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 500
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.1
	}
	if c.Cache.Capacity == 0 {
		c.Cache.Capacity = 100
	}
	if c.Cache.TTLSeconds == 0 {
		c.Cache.TTLSeconds = 600
	}
}

func defaultModelFor(provider string) string {
	switch provider {
	case "OPENAI":
		return "gpt-4o-mini"
	case "CLAUDE":
		return "claude-3-5-haiku-latest"
	default:
		return "gemini-1.5-flash"
	}
}

func applyEnvOverrides(c *Config) {
	if v := os.Getenv("PULSE_PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("PULSE_LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("PULSE_LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
}
