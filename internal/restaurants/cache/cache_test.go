package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"restaurant_inspections_backend/platform/logger"
)

func newTestCache(t *testing.T, ttl time.Duration) (*Metadata, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	c, err := NewMetadata("redis://"+mr.Addr(), ttl, logger.New("test"))
	if err != nil {
		t.Fatalf("NewMetadata: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestNewMetadataDisabledWithoutURL(t *testing.T) {
	c, err := NewMetadata("", time.Minute, logger.New("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != nil {
		t.Fatal("empty URL must disable caching")
	}
}

func TestNewMetadataBadURL(t *testing.T) {
	if _, err := NewMetadata("not-a-url", time.Minute, logger.New("test")); err == nil {
		t.Fatal("expected error for malformed URL")
	}
}

func TestSetAndGetRoundTrip(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	if _, ok := c.Get(ctx, "metadata:boroughs"); ok {
		t.Fatal("expected miss before Set")
	}

	values := []string{"BRONX", "BROOKLYN", "MANHATTAN"}
	c.Set(ctx, "metadata:boroughs", values)

	got, ok := c.Get(ctx, "metadata:boroughs")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if len(got) != 3 || got[0] != "BRONX" {
		t.Fatalf("got %v", got)
	}
}

func TestEntryExpires(t *testing.T) {
	c, mr := newTestCache(t, 10*time.Minute)
	ctx := context.Background()

	c.Set(ctx, "metadata:cuisines", []string{"Pizza"})
	mr.FastForward(11 * time.Minute)

	if _, ok := c.Get(ctx, "metadata:cuisines"); ok {
		t.Fatal("entry should have expired")
	}
}

func TestCorruptEntryIsAMiss(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)

	mr.Set("metadata:boroughs", "{not json")
	if _, ok := c.Get(context.Background(), "metadata:boroughs"); ok {
		t.Fatal("corrupt entry must read as a miss")
	}
}
