package sloghooks

import (
	"crypto/sha256"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/hexcodec"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	SelfHealEvery uint64
	// Optional key redactor. Defaults to an 8-byte SHA-256 prefix in hex.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	selfHealCtr atomic.Uint64
}

var _ hexcodec.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hexcodec.Encode(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n <= 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) SelfHeal(storageKey, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("hexcodec.self_heal",
		"key", h.redact(storageKey),
		"reason", reason)
}

func (h *Hooks) ProviderSetRejected(storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Warn("hexcodec.provider_set_rejected",
		"key", h.redact(storageKey))
}

func (h *Hooks) OversizedEntry(storageKey string, size, limit int) {
	if h.l == nil {
		return
	}
	h.l.Warn("hexcodec.oversized_entry",
		"key", h.redact(storageKey),
		"size", size,
		"limit", limit)
}
