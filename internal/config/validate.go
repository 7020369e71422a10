package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	if err := c.Scorer.validate(); err != nil {
		return fmt.Errorf("scorer: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (s *ServerConfig) validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535 (got %d)", s.Port)
	}
	if s.ReadTimeout < 0 || s.WriteTimeout < 0 || s.IdleTimeout < 0 || s.ShutdownTimeout < 0 {
		return fmt.Errorf("timeouts must be >= 0")
	}
	if s.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be > 0 (got %d)", s.MaxBodyBytes)
	}

	s.Debug = ParseDebug(s.DebugRaw)
	return nil
}

func (s *ScorerConfig) validate() error {
	if s.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %s)", s.Timeout)
	}
	if s.ProbeTimeout <= 0 {
		return fmt.Errorf("probe_timeout must be > 0 (got %s)", s.ProbeTimeout)
	}
	if !s.Enabled() {
		return nil
	}

	u, err := url.Parse(strings.TrimSpace(s.URL))
	if err != nil {
		return fmt.Errorf("url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("url must be an absolute http(s) URL (got %q)", s.URL)
	}
	return nil
}

// ParseDebug reports whether raw enables debug mode. Only "true" in any
// casing does; "1", "yes" and the empty string do not.
func ParseDebug(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), "true")
}
