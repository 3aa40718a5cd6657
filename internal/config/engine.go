package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultThreshold            = 2
	defaultWorkers              = 1
	defaultMaxValidatorSegments = 500
	defaultCachePrefix          = "vent-agent:result:"
	defaultCacheTTL             = "1h"
)

// LoadEngineConfig reads ENGINE_CONFIG_PATH (default configs/engine.yaml). A missing file yields
// the defaults.
func LoadEngineConfig() (*EngineConfig, error) {
	path := os.Getenv("ENGINE_CONFIG_PATH")
	if path == "" {
		path = "configs/engine.yaml"
	}

	var cfg EngineConfig

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func Default() *EngineConfig {
	var cfg EngineConfig
	applyDefaults(&cfg)
	return &cfg
}

func applyDefaults(cfg *EngineConfig) {
	if cfg.Engine.Threshold == 0 {
		cfg.Engine.Threshold = defaultThreshold
	}
	if cfg.Engine.Workers == 0 {
		cfg.Engine.Workers = defaultWorkers
	}
	if cfg.Engine.MaxValidatorSegments == 0 {
		cfg.Engine.MaxValidatorSegments = defaultMaxValidatorSegments
	}
	if cfg.Cache.Prefix == "" {
		cfg.Cache.Prefix = defaultCachePrefix
	}
	if cfg.Cache.TTL == "" {
		cfg.Cache.TTL = defaultCacheTTL
	}
}

func (c *EngineConfig) Validate() error {
	if c.Engine.Threshold < 1 {
		return fmt.Errorf("engine.threshold must be >= 1, got %d", c.Engine.Threshold)
	}
	if c.Engine.Workers < 1 {
		return fmt.Errorf("engine.workers must be >= 1, got %d", c.Engine.Workers)
	}
	if c.Engine.MaxValidatorSegments < 0 {
		return fmt.Errorf("engine.max_validator_segments must not be negative")
	}
	if _, err := c.CacheTTL(); err != nil {
		return fmt.Errorf("cache.ttl: %w", err)
	}
	return nil
}

func (c *EngineConfig) CacheTTL() (time.Duration, error) {
	return time.ParseDuration(c.Cache.TTL)
}
