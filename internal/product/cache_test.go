package product

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/commerce-api/internal/category"
)

func newTestRedisCache(t *testing.T, log *slog.Logger) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return NewRedisCache(client, 10*time.Minute, log), mr
}

func cachedFixture() *Product {
	return &Product{
		ID:          1,
		Name:        "The Lord of the Rings",
		Description: "Epic fantasy novel in three volumes.",
		Price:       decimal.RequireFromString("90.50"),
		ImgURL:      "lotr.jpg",
		Categories:  []category.Category{{ID: 1, Name: "Books"}},
	}
}

func TestRedisCacheHit(t *testing.T) {
	c, mr := newTestRedisCache(t, nil)
	ctx := context.Background()
	p := cachedFixture()

	c.Set(ctx, p)
	if !mr.Exists("product:1") {
		t.Fatalf("expected key product:1")
	}
	if ttl := mr.TTL("product:1"); ttl != 10*time.Minute {
		t.Fatalf("ttl=%s", ttl)
	}

	got, ok := c.Get(ctx, 1)
	if !ok {
		t.Fatalf("expected hit")
	}
	if got.Name != p.Name || !got.Price.Equal(p.Price) || len(got.Categories) != 1 || got.Categories[0].Name != "Books" {
		t.Fatalf("unexpected product: %+v", got)
	}
}

func TestRedisCacheMiss(t *testing.T) {
	c, _ := newTestRedisCache(t, nil)
	if _, ok := c.Get(context.Background(), 42); ok {
		t.Fatalf("expected miss")
	}
}

func TestRedisCacheCorruptEntry(t *testing.T) {
	var buf strings.Builder
	c, mr := newTestRedisCache(t, slog.New(slog.NewTextHandler(&buf, nil)))
	if err := mr.Set("product:1", "{not json"); err != nil {
		t.Fatal(err)
	}

	if _, ok := c.Get(context.Background(), 1); ok {
		t.Fatalf("corrupt entry must read as a miss")
	}
	if !strings.Contains(buf.String(), "product cache unmarshal failed") {
		t.Fatalf("expected warning, got %q", buf.String())
	}
}

func TestRedisCacheIDMismatchEvicts(t *testing.T) {
	c, mr := newTestRedisCache(t, nil)
	if err := mr.Set("product:5", `{"id":6,"name":"Smart TV","price":"2190"}`); err != nil {
		t.Fatal(err)
	}

	if _, ok := c.Get(context.Background(), 5); ok {
		t.Fatalf("mismatched entry must read as a miss")
	}
	if mr.Exists("product:5") {
		t.Fatalf("mismatched entry should be evicted")
	}
}

func TestRedisCacheInvalidate(t *testing.T) {
	c, mr := newTestRedisCache(t, nil)
	ctx := context.Background()
	c.Set(ctx, cachedFixture())

	c.Invalidate(ctx, 1)
	if mr.Exists("product:1") {
		t.Fatalf("expected key removed")
	}
	if _, ok := c.Get(ctx, 1); ok {
		t.Fatalf("expected miss after invalidate")
	}
}

func TestRedisCacheFailuresAreOnlyLogged(t *testing.T) {
	var buf strings.Builder
	c, mr := newTestRedisCache(t, slog.New(slog.NewTextHandler(&buf, nil)))
	mr.Close()
	ctx := context.Background()

	c.Set(ctx, cachedFixture())
	if _, ok := c.Get(ctx, 1); ok {
		t.Fatalf("expected miss while redis is down")
	}
	c.Invalidate(ctx, 1)

	for _, msg := range []string{"product cache set failed", "product cache get failed", "product cache del failed"} {
		if !strings.Contains(buf.String(), msg) {
			t.Fatalf("missing %q in %q", msg, buf.String())
		}
	}
}

func TestServiceReadsThroughRedisCache(t *testing.T) {
	c, mr := newTestRedisCache(t, nil)
	repo := newStubRepo()
	p := repo.seed("The Lord of the Rings", "90.50", 1)
	svc := NewService(repo, &passTx{}, c)
	ctx := context.Background()

	if _, err := svc.FindByID(ctx, p.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !mr.Exists("product:1") {
		t.Fatalf("expected read to populate the cache")
	}
	if _, err := svc.Update(ctx, p.ID, validPayload()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if mr.Exists("product:1") {
		t.Fatalf("expected update to evict the cached entry")
	}
}
