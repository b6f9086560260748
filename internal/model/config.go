package model

import "time"

// Config is the complete runtime configuration.
// Loaded from ~/.discern/config.yaml, DISCERN_* environment variables,
// and CLI flags (highest priority).
type Config struct {
	Analysis    AnalysisConfig    `yaml:"analysis"`
	HTTP        HTTPConfig        `yaml:"http"`
	Scan        ScanConfig        `yaml:"scan"`
	Cache       CacheConfig       `yaml:"cache"`
	LLM         LLMConfig         `yaml:"llm"`
	Output      OutputConfig      `yaml:"output"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
}

// AnalysisConfig holds the scoring entry-point defaults.
type AnalysisConfig struct {
	Language     string  `yaml:"language"`       // Default language code
	DensityBias  float64 `yaml:"density_bias"`   // Heuristic density bias [0,1]
	MaxTextChars int     `yaml:"max_text_chars"` // Upper bound enforced at the boundary
}

// HTTPConfig configures the local analysis API server.
type HTTPConfig struct {
	Addr              string        `yaml:"addr"`
	ReadTimeout       time.Duration `yaml:"read_timeout"`
	WriteTimeout      time.Duration `yaml:"write_timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"` // Per-client rate limit
	Burst             int           `yaml:"burst"`
}

// ScanConfig configures URL fetching for the scan command.
type ScanConfig struct {
	Timeout       time.Duration `yaml:"timeout"`
	UserAgent     string        `yaml:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes"`
	RespectRobots bool          `yaml:"respect_robots"`
}

// CacheConfig configures the seeded-result cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

// LLMConfig configures the optional explanation provider.
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "openai", "ollama", "" (disabled)
	Model     string `yaml:"model"`
	APIKey    string `yaml:"-"` // From environment only, never persisted
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose bool   `yaml:"verbose"`
	Format  string `yaml:"format"` // "table" or "json"
}

// ConcurrencyConfig controls batch processing.
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Language:     "en",
			DensityBias:  0.75,
			MaxTextChars: 100_000,
		},
		HTTP: HTTPConfig{
			Addr:              "127.0.0.1:8000",
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			RequestsPerSecond: 5,
			Burst:             10,
		},
		Scan: ScanConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "Discern/0.1 (+https://github.com/avosk/discern)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 1000,
		},
		Output: OutputConfig{
			Format: "table",
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
	}
}
