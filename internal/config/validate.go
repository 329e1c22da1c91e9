package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Site.validate(); err != nil {
		return fmt.Errorf("site: %w", err)
	}

	if err := c.Thanks.validate(); err != nil {
		return fmt.Errorf("thanks: %w", err)
	}

	if err := c.Notify.validate(); err != nil {
		return fmt.Errorf("notify: %w", err)
	}

	if c.Session.CookieName == "" {
		return fmt.Errorf("session.cookie_name must not be empty")
	}

	return nil
}

func (s *SiteConfig) validate() error {
	if _, err := parseHTTPURL(s.BaseURL); err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if !strings.HasPrefix(s.ArticlePath, "/") {
		return fmt.Errorf("article_path must start with / (got %q)", s.ArticlePath)
	}
	if !strings.HasPrefix(s.ThanksPath, "/") {
		return fmt.Errorf("thanks_path must start with / (got %q)", s.ThanksPath)
	}
	return nil
}

func (t *ThanksConfig) validate() error {
	if t.RateLimitPerMinute <= 0 {
		return fmt.Errorf("rate_limit_per_minute must be > 0 (got %d)", t.RateLimitPerMinute)
	}
	t.LogTypes = ParseList(t.LogTypesRaw)
	return nil
}

func (n *NotifyConfig) validate() error {
	if n.WebhookURL == "" {
		return nil
	}
	if _, err := parseHTTPURL(n.WebhookURL); err != nil {
		return fmt.Errorf("webhook_url: %w", err)
	}
	if n.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", n.Workers)
	}
	if n.QueueSize <= 0 {
		return fmt.Errorf("queue_size must be > 0 (got %d)", n.QueueSize)
	}
	return nil
}

func parseHTTPURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("scheme must be http or https (got %q)", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("host is required")
	}
	return u, nil
}

// ParseList parses a comma-separated list (e.g. "move,delete"), dropping
// blanks and duplicates. An empty string returns a nil slice.
func ParseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}
