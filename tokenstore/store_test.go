package tokenstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

func testStoreContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	got, err := store.Get(ctx)
	if err != nil || got != "" {
		t.Fatalf("empty store: expected (\"\", nil), got (%q, %v)", got, err)
	}

	if err := store.Set(ctx, "tok-1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err = store.Get(ctx)
	if err != nil || got != "tok-1" {
		t.Fatalf("expected tok-1, got (%q, %v)", got, err)
	}

	if err := store.Set(ctx, "tok-2"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, _ = store.Get(ctx)
	if got != "tok-2" {
		t.Fatalf("expected overwrite to tok-2, got %q", got)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	got, err = store.Get(ctx)
	if err != nil || got != "" {
		t.Fatalf("after clear: expected (\"\", nil), got (%q, %v)", got, err)
	}

	// Clearing an already-empty store must be a no-op.
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	testStoreContract(t, NewMemory())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	testStoreContract(t, NewFile(path))
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "token")

	if err := NewFile(path).Set(ctx, "durable"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := NewFile(path).Get(ctx)
	if err != nil || got != "durable" {
		t.Fatalf("expected durable token after reopen, got (%q, %v)", got, err)
	}
}

func TestRedisStore(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	testStoreContract(t, NewRedis(rdb, "", 0))
}

func TestRedisStoreTTL(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	ctx := context.Background()
	store := NewRedis(rdb, "k", time.Minute)
	if err := store.Set(ctx, "tok"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx)
	if err != nil || got != "" {
		t.Fatalf("expected expired token to read as absent, got (%q, %v)", got, err)
	}
}

func TestExpiresAt(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	got, ok := ExpiresAt(signed)
	if !ok {
		t.Fatal("expected exp claim to be found")
	}
	if !got.Equal(exp) {
		t.Fatalf("expected %v, got %v", exp, got)
	}
}

func TestExpiresAtRejectsGarbage(t *testing.T) {
	if _, ok := ExpiresAt("not-a-jwt"); ok {
		t.Fatal("garbage token must not yield an expiry")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "alice"})
	signed, _ := token.SignedString([]byte("k"))
	if _, ok := ExpiresAt(signed); ok {
		t.Fatal("token without exp must not yield an expiry")
	}
}
