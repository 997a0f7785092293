package model

// EnvConfig holds secrets and deploy settings read from the environment.
type EnvConfig struct {
	Port               string
	Environment        string
	AlphaVantageAPIKey string
}

// AppConfig holds the tunables loaded from config.yaml (all optional,
// defaults applied when the file or a field is absent).
type AppConfig struct {
	CacheTTLMinutes     int      `yaml:"cache_ttl_minutes"`
	RetryBackoffSeconds int      `yaml:"retry_backoff_seconds"`
	DefaultBars         int      `yaml:"default_bars"`
	MaxBars             int      `yaml:"max_bars"`
	RateLimiter         bool     `yaml:"rate_limiter"`
	FrontendUrls        []string `yaml:"frontend_urls"`
}
