// Package store implements the in-memory namespaced key/value store that
// every cache component sits on.
package store

import (
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/memo/internal/core/ports"
)

var _ ports.Store = (*Store)(nil)

// Config holds the store's TTL classes and capacity.
type Config struct {
	ShortTTL  time.Duration
	MediumTTL time.Duration
	LongTTL   time.Duration

	// Capacity is the target number of entries. The store never refuses a
	// Set beyond it; usage ratio above 1.0 is what triggers monitor cleanup.
	Capacity int
}

// DefaultConfig returns the retention settings used when no configuration
// file is present.
func DefaultConfig() Config {
	return Config{
		ShortTTL:  30 * time.Second,
		MediumTTL: 5 * time.Minute,
		LongTTL:   30 * time.Minute,
		Capacity:  1000,
	}
}

type entry struct {
	value     any
	createdAt time.Time
	expiresAt time.Time // zero means no expiry
}

// Store is a process-wide map with per-entry TTL, pattern-based bulk
// operations and hit/miss accounting. One instance is constructed at startup
// and passed explicitly to every component; tests build isolated instances.
// Every operation is a single critical section, so no torn reads are
// observable.
type Store struct {
	mu        sync.RWMutex
	entries   map[string]entry
	hits      uint64
	misses    uint64
	cfg       Config
	clock     clockwork.Clock
	startedAt time.Time
}

// New creates a Store with the given configuration.
func New(cfg Config, clock clockwork.Clock) *Store {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultConfig().Capacity
	}
	return &Store{
		entries:   make(map[string]entry),
		cfg:       cfg,
		clock:     clock,
		startedAt: clock.Now(),
	}
}

// Get returns the value stored under key. A miss, including a lazily expired
// entry, is a normal return value, not an error. Hit/miss counters are
// mutated on every call.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || s.expired(e) {
		if ok {
			delete(s.entries, key)
		}
		s.misses++
		return nil, false
	}
	s.hits++
	return e.value, true
}

// Set stores value under key. A zero ttl means the entry never expires.
func (s *Store) Set(key string, value any, ttl time.Duration) bool {
	if key == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	e := entry{value: value, createdAt: now}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}
	s.entries[key] = e
	return true
}

// SetWithClassTTL stores value using one of the configured TTL classes.
// Unknown classes fall back to the long TTL.
func (s *Store) SetWithClassTTL(key string, value any, class ports.TTLClass) bool {
	ttl := s.cfg.LongTTL
	switch class {
	case ports.TTLShort:
		ttl = s.cfg.ShortTTL
	case ports.TTLMedium:
		ttl = s.cfg.MediumTTL
	case ports.TTLLong:
		ttl = s.cfg.LongTTL
	}
	return s.Set(key, value, ttl)
}

// Del removes key and reports how many entries were removed.
func (s *Store) Del(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return 0
	}
	delete(s.entries, key)
	return 1
}

// Has reports whether key holds a live entry. Unlike Get it does not touch
// the hit/miss counters.
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	return ok && !s.expired(e)
}

// Keys returns all live keys.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for k, e := range s.entries {
		if s.expired(e) {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

// Clear drops every entry and resets the counters.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]entry)
	s.hits = 0
	s.misses = 0
}

// GenerateKey joins a namespace and parts with colons. The exact separator is
// load-bearing: other components build patterns like ^operation:style:
// against it.
func (s *Store) GenerateKey(namespace string, parts ...string) string {
	if len(parts) == 0 {
		return namespace
	}
	return namespace + ":" + strings.Join(parts, ":")
}

// KeysByPattern returns all live keys matching re.
func (s *Store) KeysByPattern(re *regexp.Regexp) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	for k, e := range s.entries {
		if s.expired(e) {
			continue
		}
		if re.MatchString(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// DeleteByPattern removes every key matching re and returns the count.
func (s *Store) DeleteByPattern(re *regexp.Regexp) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for k := range s.entries {
		if re.MatchString(k) {
			delete(s.entries, k)
			count++
		}
	}
	return count
}

// SweepExpired removes entries whose TTL has lapsed and returns the count.
func (s *Store) SweepExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for k, e := range s.entries {
		if s.expired(e) {
			delete(s.entries, k)
			count++
		}
	}
	return count
}

// EfficiencyRatio returns hits/(hits+misses), or 0 before any activity.
func (s *Store) EfficiencyRatio() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.efficiencyLocked()
}

func (s *Store) efficiencyLocked() float64 {
	total := s.hits + s.misses
	if total == 0 {
		return 0
	}
	return float64(s.hits) / float64(total)
}

// Stats returns current accounting. UsageRatio is key count over capacity, a
// documented approximation of memory pressure.
func (s *Store) Stats() ports.StoreStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	live := 0
	for _, e := range s.entries {
		if !s.expired(e) {
			live++
		}
	}
	return ports.StoreStats{
		Hits:       s.hits,
		Misses:     s.misses,
		KeyCount:   live,
		Capacity:   s.cfg.Capacity,
		UsageRatio: float64(live) / float64(s.cfg.Capacity),
		Uptime:     s.clock.Since(s.startedAt),
	}
}

func (s *Store) expired(e entry) bool {
	return !e.expiresAt.IsZero() && s.clock.Now().After(e.expiresAt)
}
