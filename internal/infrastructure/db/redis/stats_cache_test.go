package redis

import (
	"testing"
	"time"
)

func TestNewStatsCache_TTLFallback(t *testing.T) {
	if c := NewStatsCache(nil, 0); c.ttl != DefaultStatsTTL {
		t.Fatalf("zero ttl: got %v, want %v", c.ttl, DefaultStatsTTL)
	}
	if c := NewStatsCache(nil, -time.Second); c.ttl != DefaultStatsTTL {
		t.Fatalf("negative ttl: got %v, want %v", c.ttl, DefaultStatsTTL)
	}
	if c := NewStatsCache(nil, time.Minute); c.ttl != time.Minute {
		t.Fatalf("explicit ttl: got %v, want %v", c.ttl, time.Minute)
	}
}
