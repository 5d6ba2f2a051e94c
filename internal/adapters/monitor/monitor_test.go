package monitor_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/adapters/logger"
	"go.trai.ch/memo/internal/adapters/monitor"
	"go.trai.ch/memo/internal/adapters/store"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/memo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() monitor.Config {
	return monitor.Config{
		Interval:         30 * time.Second,
		CleanupInterval:  time.Minute,
		CleanupThreshold: 0.85,
		SizeTarget:       0.7,
		HistoryCap:       500,
	}
}

func newTestMonitor(t *testing.T, capacity int) (*monitor.Monitor, *store.Store, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	cfg := store.DefaultConfig()
	cfg.Capacity = capacity
	st := store.New(cfg, clock)
	return monitor.New(st, logger.New(), clock, testConfig()), st, clock
}

func TestMonitor_SnapshotCritical(t *testing.T) {
	m, st, _ := newTestMonitor(t, 100)

	// 1 hit against 9 misses puts efficiency at 0.1, well below the 0.3
	// critical bound.
	st.Set("k", "v", 0)
	st.Get("k")
	for range 9 {
		st.Get("missing")
	}

	snap := m.Snapshot()

	assert.InDelta(t, 0.1, snap.Efficiency, 1e-9)
	assert.Equal(t, domain.HealthCritical, snap.Status)
	assert.NotEmpty(t, snap.Recommendations)
}

func TestMonitor_SnapshotWarningOnMemory(t *testing.T) {
	m, st, _ := newTestMonitor(t, 10)

	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"} {
		st.Set(k, 1, 0)
		st.Get(k)
	}

	snap := m.Snapshot()

	assert.Equal(t, domain.HealthWarning, snap.Status)
	assert.InDelta(t, 0.9, snap.MemoryUsage, 1e-9)
}

func TestMonitor_SnapshotHealthy(t *testing.T) {
	m, st, _ := newTestMonitor(t, 100)

	st.Set("k", "v", 0)
	st.Get("k")
	st.Get("k")

	snap := m.Snapshot()

	assert.Equal(t, domain.HealthHealthy, snap.Status)
}

func TestMonitor_RecommendsWarmingWhenUnderUsed(t *testing.T) {
	m, st, _ := newTestMonitor(t, 1000)

	st.Set("k", "v", 0)
	st.Get("k")

	snap := m.Snapshot()

	require.Equal(t, domain.HealthHealthy, snap.Status)
	assert.NotEmpty(t, snap.Recommendations)
}

func TestMonitor_LifecyclesAreIndependentAndIdempotent(t *testing.T) {
	m, _, _ := newTestMonitor(t, 100)

	assert.False(t, m.Monitoring())
	assert.False(t, m.AutoCleanup())

	m.StartMonitoring()
	m.StartMonitoring()
	assert.True(t, m.Monitoring())
	assert.False(t, m.AutoCleanup())

	m.StartAutoCleanup()
	assert.True(t, m.AutoCleanup())

	m.StopMonitoring()
	m.StopMonitoring()
	assert.False(t, m.Monitoring())
	assert.True(t, m.AutoCleanup())

	m.StopAutoCleanup()
	m.StopAutoCleanup()
	assert.False(t, m.AutoCleanup())
}

func TestMonitor_SampleTickAppendsHistory(t *testing.T) {
	m, st, clock := newTestMonitor(t, 100)
	st.Set("k", "v", 0)
	st.Get("k")

	m.StartMonitoring()
	defer m.StopMonitoring()

	clock.BlockUntil(1)
	clock.Advance(30 * time.Second)

	require.Eventually(t, func() bool {
		return len(m.History()) == 1
	}, time.Second, time.Millisecond)
}

func TestMonitor_ZeroIntervalsFallBackToDefaults(t *testing.T) {
	clock := clockwork.NewFakeClock()
	st := store.New(store.DefaultConfig(), clock)
	m := monitor.New(st, logger.New(), clock, monitor.Config{})

	// Starting must not panic the tickers; the default 30s interval takes
	// over and sampling proceeds.
	m.StartMonitoring()
	defer m.StopMonitoring()
	m.StartAutoCleanup()
	defer m.StopAutoCleanup()

	clock.BlockUntil(2)
	clock.Advance(30 * time.Second)

	require.Eventually(t, func() bool {
		return len(m.History()) == 1
	}, time.Second, time.Millisecond)
}

func TestMonitor_HistoryIsCapped(t *testing.T) {
	clock := clockwork.NewFakeClock()
	st := store.New(store.DefaultConfig(), clock)
	cfg := testConfig()
	cfg.HistoryCap = 3
	m := monitor.New(st, logger.New(), clock, cfg)

	m.StartMonitoring()
	defer m.StopMonitoring()

	clock.BlockUntil(1)
	for i := range 5 {
		clock.Advance(30 * time.Second)
		require.Eventually(t, func() bool {
			return len(m.History()) == min(i+1, 3)
		}, time.Second, time.Millisecond)
	}

	history := m.History()
	require.Len(t, history, 3)
	// Oldest snapshots are dropped first.
	assert.True(t, history[0].SampledAt.Before(history[2].SampledAt))
}

func TestMonitor_TickPanicDoesNotStopLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	log := mocks.NewMockLogger(ctrl)
	clock := clockwork.NewFakeClock()

	st.EXPECT().Stats().DoAndReturn(func() ports.StoreStats {
		panic("store blew up")
	})
	st.EXPECT().Stats().Return(ports.StoreStats{KeyCount: 1, Capacity: 100, UsageRatio: 0.01}).AnyTimes()
	st.EXPECT().EfficiencyRatio().Return(0.9).AnyTimes()
	log.EXPECT().Error(gomock.Any())

	m := monitor.New(st, log, clock, testConfig())
	m.StartMonitoring()
	defer m.StopMonitoring()

	clock.BlockUntil(1)
	clock.Advance(30 * time.Second) // panics, is caught and logged

	// Later ticks must still run and sample normally.
	require.Eventually(t, func() bool {
		clock.Advance(30 * time.Second)
		return len(m.History()) >= 1
	}, time.Second, 10*time.Millisecond)
}

func TestMonitor_RunCleanupStrategies(t *testing.T) {
	m, st, _ := newTestMonitor(t, 100)

	seed := func() {
		st.Clear()
		st.Set("operation:compile:k1", 1, 0)
		st.Set("operation:style:k2", 1, 0)
		st.Set("metadata:fingerprint:a.ts", 1, 0)
		st.Set("resource:structure", 1, 0)
		st.Set("temp:scratch", 1, 0)
	}

	seed()
	removed, err := m.RunCleanup(monitor.StrategyNamespaceSweep, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)
	assert.True(t, st.Has("resource:structure"))

	seed()
	removed, err = m.RunCleanup(monitor.StrategyAgeSweep, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.False(t, st.Has("operation:style:k2"))
	assert.True(t, st.Has("operation:compile:k1"))

	seed()
	removed, err = m.RunCleanup(monitor.StrategyPatternMatch, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.False(t, st.Has("temp:scratch"))
}

func TestMonitor_RunCleanupUnknownStrategy(t *testing.T) {
	m, _, _ := newTestMonitor(t, 100)

	_, err := m.RunCleanup(monitor.Strategy("frobnicate"), nil)
	require.ErrorIs(t, err, domain.ErrUnknownStrategy)
}

func TestMonitor_SizeTargetCleanup(t *testing.T) {
	m, st, _ := newTestMonitor(t, 10)

	for i := range 10 {
		st.Set("k"+string(rune('a'+i)), 1, 0)
	}

	removed, err := m.RunCleanup(monitor.StrategySizeTarget, nil)
	require.NoError(t, err)

	// Usage 1.0 against target 0.7 removes 30% of keys.
	assert.Equal(t, 3, removed)
	assert.Equal(t, 7, st.Stats().KeyCount)
}

func TestMonitor_SizeTargetCleanupBelowTargetIsNoop(t *testing.T) {
	m, st, _ := newTestMonitor(t, 100)

	st.Set("k", 1, 0)

	removed, err := m.RunCleanup(monitor.StrategySizeTarget, nil)
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.True(t, st.Has("k"))
}

func TestMonitor_AutoCleanupEscalates(t *testing.T) {
	m, st, clock := newTestMonitor(t, 10)

	// Everything above the threshold and nothing matching the age sweep, so
	// the loop must escalate to the size target strategy.
	for i := range 10 {
		st.Set("operation:compile:k"+string(rune('a'+i)), 1, 0)
	}

	m.StartAutoCleanup()
	defer m.StopAutoCleanup()

	clock.BlockUntil(1)
	clock.Advance(time.Minute)

	require.Eventually(t, func() bool {
		return st.Stats().UsageRatio <= 0.85
	}, time.Second, time.Millisecond)
}
