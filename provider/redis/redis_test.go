package redis

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

func TestNewRequiresClient(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrNilClient) {
		t.Fatalf("err = %v want ErrNilClient", err)
	}
}

func TestCloseRespectsOwnership(t *testing.T) {
	ctx := context.Background()
	rdb := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:0"})
	defer rdb.Close()

	borrowed, err := New(Config{Client: rdb})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := borrowed.Close(ctx); err != nil {
		t.Fatalf("Close (borrowed): %v", err)
	}

	owned, err := New(Config{Client: rdb, CloseClient: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := owned.Close(ctx); err != nil {
		t.Fatalf("Close (owned): %v", err)
	}
	if err := owned.Close(ctx); err != nil {
		t.Fatalf("second Close should be a no-op: %v", err)
	}
}

// liveClient connects to HEXCODEC_REDIS_ADDR and skips the test when it is
// unset or unreachable.
func liveClient(t *testing.T) *goredis.Client {
	t.Helper()
	addr := os.Getenv("HEXCODEC_REDIS_ADDR")
	if addr == "" {
		t.Skip("HEXCODEC_REDIS_ADDR not set")
	}
	rdb := goredis.NewClient(&goredis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		t.Skipf("redis at %s unreachable: %v", addr, err)
	}
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestRoundTripLive(t *testing.T) {
	rdb := liveClient(t)
	ctx := context.Background()
	p, err := New(Config{Client: rdb})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	key := "hexcodec:test:" + t.Name()
	t.Cleanup(func() { rdb.Del(context.Background(), key) })

	if _, ok, err := p.Get(ctx, key); err != nil || ok {
		t.Fatalf("Get before Set: ok=%v err=%v", ok, err)
	}
	if ok, err := p.Set(ctx, key, []byte("HX1:6869"), 1, time.Minute); err != nil || !ok {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	got, ok, err := p.Get(ctx, key)
	if err != nil || !ok || !bytes.Equal(got, []byte("HX1:6869")) {
		t.Fatalf("Get = %q ok=%v err=%v", got, ok, err)
	}
	if ttl := rdb.TTL(ctx, key).Val(); ttl <= 0 || ttl > time.Minute {
		t.Fatalf("TTL = %v want (0, 1m]", ttl)
	}
	if err := p.Del(ctx, key); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, err := p.Get(ctx, key); err != nil || ok {
		t.Fatalf("Get after Del: ok=%v err=%v", ok, err)
	}
}

func TestNegativeTTLStoresWithoutExpiry(t *testing.T) {
	rdb := liveClient(t)
	ctx := context.Background()
	p, err := New(Config{Client: rdb})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	key := "hexcodec:test:" + t.Name()
	t.Cleanup(func() { rdb.Del(context.Background(), key) })

	if ok, err := p.Set(ctx, key, []byte("HX1:00"), 0, -time.Second); err != nil || !ok {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	// -1 means the key exists with no expiry.
	if ttl := rdb.TTL(ctx, key).Val(); ttl != -1 {
		t.Fatalf("TTL = %v want no expiry", ttl)
	}
}
