package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Source.validate(); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if err := c.Scrape.validate(); err != nil {
		return fmt.Errorf("scrape: %w", err)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "", "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (s *SourceConfig) validate() error {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url must be an http(s) URL (got %q)", s.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base_url has no host (got %q)", s.BaseURL)
	}
	s.BaseURL = strings.TrimRight(s.BaseURL, "/")

	if s.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1 (got %d)", s.MaxAttempts)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", s.Timeout)
	}
	if s.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must be >= 0 (got %v)", s.RetryDelay)
	}
	return nil
}

func (s *ScrapeConfig) validate() error {
	if s.PageSize < 1 || s.PageSize > 1000 {
		return fmt.Errorf("page_size must be in [1, 1000] (got %d)", s.PageSize)
	}
	if s.MaxPages < 1 {
		return fmt.Errorf("max_pages must be >= 1 (got %d)", s.MaxPages)
	}
	if s.PoliteDelay < 0 {
		return fmt.Errorf("polite_delay must be >= 0 (got %v)", s.PoliteDelay)
	}
	return nil
}
