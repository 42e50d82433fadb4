package config

import (
	"testing"
	"time"
)

func TestLoadCacheConfigDefaults(t *testing.T) {
	for _, key := range []string{"CACHE_ENABLED", "CACHE_METHODS", "CACHE_TTL", "CACHE_PREFIX", "CACHE_MAX_BODY_BYTES"} {
		t.Setenv(key, "")
	}

	cfg := LoadCacheConfig()
	if !cfg.Enabled {
		t.Error("cache should default to enabled")
	}
	if !cfg.Methods["GET"] || len(cfg.Methods) != 1 {
		t.Errorf("methods = %v, want GET only", cfg.Methods)
	}
	if cfg.TTL != 30*time.Second {
		t.Errorf("TTL = %v, want 30s", cfg.TTL)
	}
	if cfg.Prefix != "cache" {
		t.Errorf("prefix = %q, want cache", cfg.Prefix)
	}
	if cfg.MaxBodyBytes != 1048576 {
		t.Errorf("max body = %d, want 1048576", cfg.MaxBodyBytes)
	}
}

func TestLoadCacheConfigOverrides(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_METHODS", "get, head")
	t.Setenv("CACHE_TTL", "2m")
	t.Setenv("CACHE_PREFIX", "hotels")
	t.Setenv("CACHE_MAX_BODY_BYTES", "4096")

	cfg := LoadCacheConfig()
	if cfg.Enabled {
		t.Error("cache should be disabled")
	}
	if !cfg.Methods["GET"] || !cfg.Methods["HEAD"] || len(cfg.Methods) != 2 {
		t.Errorf("methods = %v, want GET and HEAD", cfg.Methods)
	}
	if cfg.TTL != 2*time.Minute {
		t.Errorf("TTL = %v, want 2m", cfg.TTL)
	}
	if cfg.Prefix != "hotels" || cfg.MaxBodyBytes != 4096 {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadCacheConfigBadTTLFallsBack(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")

	if ttl := LoadCacheConfig().TTL; ttl != time.Second {
		t.Errorf("TTL = %v, want 1s fallback", ttl)
	}
}

func TestLoadRateLimitConfigDefaults(t *testing.T) {
	for _, key := range []string{"RATE_LIMIT_ENABLED", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW", "RATE_LIMIT_PREFIX"} {
		t.Setenv(key, "")
	}

	cfg := LoadRateLimitConfig()
	if !cfg.Enabled || cfg.Limit != 60 || cfg.Window != time.Minute || cfg.Prefix != "rl" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestLoadRateLimitConfigClamping(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "-3")
	t.Setenv("RATE_LIMIT_WINDOW", "0s")

	cfg := LoadRateLimitConfig()
	if cfg.Limit != 1 {
		t.Errorf("limit = %d, want clamp to 1", cfg.Limit)
	}
	if cfg.Window != time.Minute {
		t.Errorf("window = %v, want clamp to 1m", cfg.Window)
	}
}
