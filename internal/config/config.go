package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Source   SourceConfig   `yaml:"source"`
	Scrape   ScrapeConfig   `yaml:"scrape"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// SourceConfig holds settings for the public results site client.
type SourceConfig struct {
	BaseURL     string        `yaml:"base_url"     env:"SOURCE_BASE_URL"     env-default:"https://results.hyrox.com"`
	Timeout     time.Duration `yaml:"timeout"      env:"SOURCE_TIMEOUT"      env-default:"20s"`
	MaxAttempts int           `yaml:"max_attempts" env:"SOURCE_MAX_ATTEMPTS" env-default:"3"`
	RetryDelay  time.Duration `yaml:"retry_delay"  env:"SOURCE_RETRY_DELAY"  env-default:"5s"`
	UserAgent   string        `yaml:"user_agent"   env:"SOURCE_USER_AGENT"   env-default:"Mozilla/5.0 (compatible; hyrox-results/1.0)"`
	Language    string        `yaml:"language"     env:"SOURCE_LANGUAGE"     env-default:"EN_CAP"`
}

// ScrapeConfig holds pacing and pagination settings for ingestion runs.
type ScrapeConfig struct {
	PageSize    int           `yaml:"page_size"    env:"SCRAPE_PAGE_SIZE"    env-default:"100"`
	MaxPages    int           `yaml:"max_pages"    env:"SCRAPE_MAX_PAGES"    env-default:"200"`
	PoliteDelay time.Duration `yaml:"polite_delay" env:"SCRAPE_POLITE_DELAY" env-default:"5s"`
}
