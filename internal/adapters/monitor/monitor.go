// Package monitor implements periodic health sampling and adaptive cleanup
// for the shared store.
package monitor

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
)

// Health thresholds. Status is critical when either efficiency or memory
// crosses its critical bound, warning on the softer bounds, healthy
// otherwise.
const (
	criticalEfficiency = 0.3
	warningEfficiency  = 0.5
	criticalMemory     = 0.9
	warningMemory      = 0.8

	// underUsedFraction marks a store holding less than this share of its
	// capacity as a candidate for warming.
	underUsedFraction = 0.1
)

// Config holds sampling and cleanup settings.
type Config struct {
	Interval         time.Duration
	CleanupInterval  time.Duration
	CleanupThreshold float64
	SizeTarget       float64
	HistoryCap       int
}

// Monitor samples store health on a fixed interval and optionally runs
// adaptive cleanup. Monitoring and auto-cleanup are independent lifecycles;
// both start disabled and both stop idempotently. The monitor only reads the
// store, except for cleanup which goes through the store's own delete API.
type Monitor struct {
	store  ports.Store
	logger ports.Logger
	clock  clockwork.Clock
	cfg    Config

	mu          sync.Mutex
	history     []domain.HealthSnapshot
	monitorDone chan struct{}
	cleanupDone chan struct{}
}

// New creates a Monitor. The clock is injected so tests can drive ticks
// without wall-clock waits.
func New(store ports.Store, logger ports.Logger, clock clockwork.Clock, cfg Config) *Monitor {
	if cfg.HistoryCap <= 0 {
		cfg.HistoryCap = 500
	}
	// A non-positive interval would panic inside clock.NewTicker and take
	// the host process down with it.
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = time.Minute
	}
	return &Monitor{
		store:  store,
		logger: logger,
		clock:  clock,
		cfg:    cfg,
	}
}

// StartMonitoring begins periodic health sampling. Starting an already
// running monitor is a no-op.
func (m *Monitor) StartMonitoring() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.monitorDone != nil {
		return
	}
	done := make(chan struct{})
	m.monitorDone = done
	go m.run(done, m.cfg.Interval, m.sampleTick)
}

// StopMonitoring stops sampling. Safe to call repeatedly.
func (m *Monitor) StopMonitoring() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.monitorDone == nil {
		return
	}
	close(m.monitorDone)
	m.monitorDone = nil
}

// StartAutoCleanup begins the adaptive cleanup loop. Starting twice is a
// no-op.
func (m *Monitor) StartAutoCleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cleanupDone != nil {
		return
	}
	done := make(chan struct{})
	m.cleanupDone = done
	go m.run(done, m.cfg.CleanupInterval, m.cleanupTick)
}

// StopAutoCleanup stops the cleanup loop. Safe to call repeatedly.
func (m *Monitor) StopAutoCleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cleanupDone == nil {
		return
	}
	close(m.cleanupDone)
	m.cleanupDone = nil
}

// Monitoring reports whether health sampling is running.
func (m *Monitor) Monitoring() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.monitorDone != nil
}

// AutoCleanup reports whether the cleanup loop is running.
func (m *Monitor) AutoCleanup() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cleanupDone != nil
}

// run drives a tick function on the given interval until done is closed. A
// tick that fails or panics is logged and must never stop subsequent ticks.
func (m *Monitor) run(done chan struct{}, interval time.Duration, tick func() error) {
	ticker := m.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.Chan():
			m.safeTick(tick)
		}
	}
}

func (m *Monitor) safeTick(tick func() error) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error(zerr.With(zerr.New("monitor tick panicked"), "panic", fmt.Sprint(r)))
		}
	}()
	if err := tick(); err != nil {
		m.logger.Error(zerr.Wrap(err, "monitor tick failed"))
	}
}

func (m *Monitor) sampleTick() error {
	snap := m.Snapshot()

	m.mu.Lock()
	m.history = append(m.history, snap)
	if len(m.history) > m.cfg.HistoryCap {
		m.history = m.history[len(m.history)-m.cfg.HistoryCap:]
	}
	m.mu.Unlock()

	if snap.Status == domain.HealthCritical {
		m.logger.Warn("cache health critical")
	}
	return nil
}

// Snapshot generates a fresh health sample.
func (m *Monitor) Snapshot() domain.HealthSnapshot {
	stats := m.store.Stats()
	eff := m.store.EfficiencyRatio()

	snap := domain.HealthSnapshot{
		Efficiency:  eff,
		MemoryUsage: stats.UsageRatio,
		KeyCount:    stats.KeyCount,
		Uptime:      stats.Uptime,
		Status:      classify(eff, stats.UsageRatio),
		SampledAt:   m.clock.Now(),
	}
	snap.Recommendations = recommend(snap, stats)
	return snap
}

// History returns a copy of the retained snapshots, oldest first.
func (m *Monitor) History() []domain.HealthSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.HealthSnapshot, len(m.history))
	copy(out, m.history)
	return out
}

func classify(efficiency, memory float64) domain.HealthStatus {
	switch {
	case efficiency < criticalEfficiency || memory > criticalMemory:
		return domain.HealthCritical
	case efficiency < warningEfficiency || memory > warningMemory:
		return domain.HealthWarning
	default:
		return domain.HealthHealthy
	}
}

func recommend(snap domain.HealthSnapshot, stats ports.StoreStats) []string {
	var recs []string

	switch {
	case snap.Efficiency < criticalEfficiency:
		recs = append(recs, "hit ratio critically low: review invalidation volume or warm fingerprints")
	case snap.Efficiency < warningEfficiency:
		recs = append(recs, "hit ratio below 50%: consider warming fingerprints for frequently checked files")
	}

	switch {
	case snap.MemoryUsage > criticalMemory:
		recs = append(recs, "store near capacity: run cleanup or raise capacity")
	case snap.MemoryUsage > warningMemory:
		recs = append(recs, "store above 80% of capacity: cleanup recommended")
	}

	if stats.Capacity > 0 && float64(stats.KeyCount) < underUsedFraction*float64(stats.Capacity) {
		recs = append(recs, "store under-utilized: warming fingerprints would speed up first checks")
	}
	return recs
}
