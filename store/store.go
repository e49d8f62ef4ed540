// Package store keeps values in a byte Provider as framed hex text.
//
// Values pass through a Codec, get framed by internal/wire ("HX1:<hex>"), and
// are written under "hex:<ns>:<key>". Entries that fail frame validation or
// value decoding are deleted on read and reported as misses (self-heal).
//
//	s, _ := store.New(store.Options[User]{
//	    Namespace: "user",
//	    Provider:  p,
//	    Codec:     codec.JSON[User]{},
//	})
//	_ = s.Set(ctx, "u:1", u, 0)
//	u, ok, err := s.Get(ctx, "u:1")
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/unkn0wn-root/hexcodec"
	c "github.com/unkn0wn-root/hexcodec/codec"
	"github.com/unkn0wn-root/hexcodec/internal/wire"
	pr "github.com/unkn0wn-root/hexcodec/provider"
)

const defaultTTL = 10 * time.Minute

var ErrEntryTooLarge = errors.New("store: entry too large")

type SetCostFunc func(key string, raw []byte) int64

// Options tune the store. Namespace, Provider and Codec are required.
type Options[V any] struct {
	Namespace string // e.g. "user", "session"
	Provider  pr.Provider
	Codec     c.Codec[V]

	Logger         hexcodec.Logger // nil => NopLogger
	Hooks          hexcodec.Hooks  // nil => NopHooks
	DefaultTTL     time.Duration   // 0 => 10m
	MaxEntrySize   int             // bytes of framed text; 0 => unlimited
	ComputeSetCost SetCostFunc     // default len(raw)
	Disabled       bool
}

type Store[V any] struct {
	ns       string
	provider pr.Provider
	codec    c.Codec[V]
	log      hexcodec.Logger
	hooks    hexcodec.Hooks
	enabled  bool

	defaultTTL     time.Duration
	maxEntrySize   int
	computeSetCost SetCostFunc
}

func New[V any](opts Options[V]) (*Store[V], error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("store: provider is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("store: codec is required")
	}
	if opts.Namespace == "" {
		return nil, fmt.Errorf("store: namespace is required")
	}
	if opts.MaxEntrySize < 0 {
		return nil, fmt.Errorf("store: negative MaxEntrySize %d", opts.MaxEntrySize)
	}

	s := &Store[V]{
		ns:           opts.Namespace,
		provider:     opts.Provider,
		codec:        opts.Codec,
		enabled:      !opts.Disabled,
		maxEntrySize: opts.MaxEntrySize,
	}
	s.log = coalesce[hexcodec.Logger](opts.Logger, hexcodec.NopLogger{})
	s.hooks = coalesce[hexcodec.Hooks](opts.Hooks, hexcodec.NopHooks{})
	s.defaultTTL = coalesce(opts.DefaultTTL, defaultTTL)
	if opts.ComputeSetCost != nil {
		s.computeSetCost = opts.ComputeSetCost
	} else {
		s.computeSetCost = func(_ string, raw []byte) int64 { return int64(len(raw)) }
	}
	return s, nil
}

func (s *Store[V]) Enabled() bool { return s.enabled }

func (s *Store[V]) Close(ctx context.Context) error {
	return s.provider.Close(ctx)
}

// Get returns the value stored under key. Corrupt or undecodable entries
// are deleted and reported as a miss; only provider errors are returned.
func (s *Store[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	if !s.enabled {
		return zero, false, nil
	}
	k := s.storageKey(key)
	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil || !ok {
		return zero, false, err
	}
	payload, err := wire.Decode(raw)
	if err != nil {
		s.heal(ctx, k, "corrupt", err)
		return zero, false, nil
	}
	v, err := s.codec.Decode(payload)
	if err != nil {
		s.heal(ctx, k, "value_decode", err)
		return zero, false, nil
	}
	return v, true, nil
}

// Set encodes value and writes it under key. ttl 0 uses DefaultTTL.
// A provider refusing the write under pressure is not an error.
func (s *Store[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	if !s.enabled {
		return nil
	}
	if ttl == 0 {
		ttl = s.defaultTTL
	}
	k := s.storageKey(key)
	payload, err := s.codec.Encode(value)
	if err != nil {
		return err
	}
	entry := wire.Encode(payload)
	if s.maxEntrySize > 0 && len(entry) > s.maxEntrySize {
		s.hooks.OversizedEntry(k, len(entry), s.maxEntrySize)
		return fmt.Errorf("%w: %d > %d", ErrEntryTooLarge, len(entry), s.maxEntrySize)
	}
	ok, err := s.provider.Set(ctx, k, entry, s.computeSetCost(k, entry), ttl)
	if err != nil {
		return err
	}
	if !ok {
		s.hooks.ProviderSetRejected(k)
		s.log.Debug("Set rejected by provider (pressure)", hexcodec.Fields{"key": key})
	}
	return nil
}

func (s *Store[V]) Del(ctx context.Context, key string) error {
	if !s.enabled {
		return nil
	}
	return s.provider.Del(ctx, s.storageKey(key))
}

func (s *Store[V]) heal(ctx context.Context, storageKey, reason string, cause error) {
	if err := s.provider.Del(ctx, storageKey); err != nil {
		s.log.Warn("self-heal delete failed", hexcodec.Fields{"key": storageKey, "err": err})
	}
	s.hooks.SelfHeal(storageKey, reason)
	s.log.Debug("dropped unreadable entry", hexcodec.Fields{"key": storageKey, "reason": reason, "err": cause})
}

func (s *Store[V]) storageKey(userKey string) string {
	return "hex:" + s.ns + ":" + userKey
}
