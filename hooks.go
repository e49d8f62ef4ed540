package hexcodec

// Hooks are lightweight callbacks for high-signal store events.
// Implementations MUST be cheap and non-blocking; the store calls them
// on hot paths.
type Hooks interface {
	// An entry was deleted by the store on read.
	// reason ∈ {"corrupt", "value_decode"}
	SelfHeal(storageKey, reason string)

	// Provider returned ok=false on Set (backpressure/eviction).
	ProviderSetRejected(storageKey string)

	// An encoded entry exceeded the configured size and was not written.
	OversizedEntry(storageKey string, size, limit int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) SelfHeal(string, string)         {}
func (NopHooks) ProviderSetRejected(string)      {}
func (NopHooks) OversizedEntry(string, int, int) {}
