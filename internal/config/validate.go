package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	return nil
}

func (s *SearchConfig) validate() error {
	if s.MaxLimit <= 0 {
		return fmt.Errorf("max_limit must be > 0 (got %d)", s.MaxLimit)
	}
	if s.DefaultLimit <= 0 || s.DefaultLimit > s.MaxLimit {
		return fmt.Errorf("default_limit must be in [1, max_limit] (got %d)", s.DefaultLimit)
	}
	if s.SuggestMaxLimit <= 0 {
		return fmt.Errorf("suggest_max_limit must be > 0 (got %d)", s.SuggestMaxLimit)
	}
	if s.SuggestDefaultLimit <= 0 || s.SuggestDefaultLimit > s.SuggestMaxLimit {
		return fmt.Errorf("suggest_default_limit must be in [1, suggest_max_limit] (got %d)", s.SuggestDefaultLimit)
	}
	if s.SuggestRatePerMinute <= 0 {
		return fmt.Errorf("suggest_rate_per_minute must be > 0 (got %d)", s.SuggestRatePerMinute)
	}
	if s.QueryMinLength < 1 {
		return fmt.Errorf("query_min_length must be >= 1 (got %d)", s.QueryMinLength)
	}
	if s.QueryMaxLength < s.QueryMinLength {
		return fmt.Errorf("query_max_length must be >= query_min_length (got %d)", s.QueryMaxLength)
	}
	if s.SuggestCacheTTL <= 0 {
		return fmt.Errorf("suggest_cache_ttl must be > 0 (got %v)", s.SuggestCacheTTL)
	}
	if s.FanoutTimeout <= 0 {
		return fmt.Errorf("fanout_timeout must be > 0 (got %v)", s.FanoutTimeout)
	}
	return nil
}
