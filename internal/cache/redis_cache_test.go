package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/povarna/generative-ai-agents/vent-agent/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// fakeRedis implements the two commands the cache uses on top of an in-memory map.
type fakeRedis struct {
	redis.Cmdable
	data    map[string]string
	ttls    map[string]time.Duration
	failing error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failing != nil {
		return redis.NewStringResult("", f.failing)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.failing != nil {
		return redis.NewStatusResult("", f.failing)
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestRedisCache_RoundTrip(t *testing.T) {
	fake := newFakeRedis()
	cache := NewRedisCache(fake, "test:", time.Minute, newTestLogger())
	ctx := context.Background()

	missing, err := cache.Get(ctx, "abc")
	if err != nil || missing != nil {
		t.Fatalf("expected miss, got %v, %v", missing, err)
	}

	if err := cache.Set(ctx, "abc", models.CountResult{ID: "r1", AxisAligned: 5, All: 12, Threshold: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.ttls["test:abc"] != time.Minute {
		t.Errorf("expected ttl of one minute, got %s", fake.ttls["test:abc"])
	}

	got, err := cache.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.AxisAligned != 5 || got.All != 12 {
		t.Errorf("expected cached 5/12, got %+v", got)
	}
}

func TestRedisCache_CorruptEntryIsMiss(t *testing.T) {
	fake := newFakeRedis()
	fake.data["test:abc"] = "{not json"
	cache := NewRedisCache(fake, "test:", time.Minute, newTestLogger())

	got, err := cache.Get(context.Background(), "abc")
	if err != nil || got != nil {
		t.Errorf("expected miss for corrupt entry, got %v, %v", got, err)
	}
}

func TestRedisCache_Errors(t *testing.T) {
	fake := newFakeRedis()
	fake.failing = errors.New("connection refused")
	cache := NewRedisCache(fake, "test:", time.Minute, newTestLogger())

	if _, err := cache.Get(context.Background(), "abc"); err == nil {
		t.Error("expected Get error")
	}
	if err := cache.Set(context.Background(), "abc", models.CountResult{}); err == nil {
		t.Error("expected Set error")
	}
}
