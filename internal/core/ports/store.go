package ports

import (
	"regexp"
	"time"
)

// TTLClass selects one of the three configured retention classes: short for
// file fingerprints, medium for structural snapshots, long for operation
// results.
type TTLClass string

const (
	TTLShort  TTLClass = "short"
	TTLMedium TTLClass = "medium"
	TTLLong   TTLClass = "long"
)

// StoreStats is a cheap summary of store accounting used by the monitor.
// UsageRatio approximates memory pressure as key count over configured
// capacity; the store does not track per-entry byte sizes.
type StoreStats struct {
	Hits       uint64
	Misses     uint64
	KeyCount   int
	Capacity   int
	UsageRatio float64
	Uptime     time.Duration
}

// Store is the namespaced key/value substrate every cache component sits on.
// Keys follow the grammar "namespace:part:part..."; the colon separator is
// load-bearing because callers build regex patterns such as ^operation:style:
// against it. None of the methods return errors: a miss is a normal return
// value and every Get mutates the hit/miss counters, even on a miss.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Store interface {
	// Get returns the value for key, or ok=false on a miss or expired entry.
	Get(key string) (value any, ok bool)

	// Set stores value under key with an explicit TTL; a zero TTL means the
	// entry never expires. It reports false only for an empty key.
	Set(key string, value any, ttl time.Duration) bool

	// SetWithClassTTL stores value with one of the configured TTL classes.
	SetWithClassTTL(key string, value any, class TTLClass) bool

	// Del removes key and reports how many entries were removed (0 or 1).
	Del(key string) int

	// Has reports whether key holds a live entry without touching counters.
	Has(key string) bool

	// Keys returns all live keys in unspecified order.
	Keys() []string

	// Clear drops every entry and resets the hit/miss counters.
	Clear()

	// GenerateKey joins a namespace and parts with the colon separator.
	GenerateKey(namespace string, parts ...string) string

	// KeysByPattern returns all live keys matching re.
	KeysByPattern(re *regexp.Regexp) []string

	// DeleteByPattern removes all keys matching re and returns the count.
	DeleteByPattern(re *regexp.Regexp) int

	// SweepExpired removes entries whose TTL has lapsed and returns the count.
	SweepExpired() int

	// EfficiencyRatio returns hits/(hits+misses), or 0 before any activity.
	EfficiencyRatio() float64

	// Stats returns current accounting.
	Stats() StoreStats
}
