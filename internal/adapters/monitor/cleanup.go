package monitor

import (
	"math"
	"regexp"
	"sort"
	"strconv"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/zerr"
)

// Strategy names a cleanup policy. The store tracks no access order, so none
// of these is true LRU; they are age- and pattern-biased approximations.
type Strategy string

const (
	// StrategyNamespaceSweep drops the whole operation and metadata
	// namespaces, the heaviest hammer.
	StrategyNamespaceSweep Strategy = "namespace-sweep"

	// StrategySizeTarget deletes a fraction of all keys proportional to how
	// far usage exceeds the configured target ratio.
	StrategySizeTarget Strategy = "size-target"

	// StrategyAgeSweep drops namespaces known to churn: structural
	// snapshots, projections and style results.
	StrategyAgeSweep Strategy = "age-sweep"

	// StrategyPatternMatch deletes keys matching a caller-supplied pattern,
	// defaulting to scratch namespaces.
	StrategyPatternMatch Strategy = "pattern-match"
)

var (
	namespaceSweepPattern = regexp.MustCompile(`^(operation|metadata):`)
	ageSweepPattern       = regexp.MustCompile(`^(structure|resource|operation:style):`)
	defaultScratchPattern = regexp.MustCompile(`^(temp|debug):`)
)

// RunCleanup executes one strategy and returns the number of entries
// removed. The pattern argument is only consulted by StrategyPatternMatch.
func (m *Monitor) RunCleanup(strategy Strategy, pattern *regexp.Regexp) (int, error) {
	switch strategy {
	case StrategyNamespaceSweep:
		return m.store.DeleteByPattern(namespaceSweepPattern), nil
	case StrategyAgeSweep:
		return m.store.DeleteByPattern(ageSweepPattern), nil
	case StrategyPatternMatch:
		if pattern == nil {
			pattern = defaultScratchPattern
		}
		return m.store.DeleteByPattern(pattern), nil
	case StrategySizeTarget:
		return m.sizeTargetCleanup(), nil
	default:
		return 0, zerr.With(domain.ErrUnknownStrategy, "strategy", string(strategy))
	}
}

// sizeTargetCleanup deletes enough keys to bring usage back toward the
// configured target ratio. Keys are sorted so repeated runs remove a
// deterministic slice.
func (m *Monitor) sizeTargetCleanup() int {
	stats := m.store.Stats()
	if stats.UsageRatio <= m.cfg.SizeTarget || stats.KeyCount == 0 {
		return 0
	}

	fraction := (stats.UsageRatio - m.cfg.SizeTarget) / stats.UsageRatio
	toRemove := int(math.Ceil(fraction * float64(stats.KeyCount)))

	keys := m.store.Keys()
	sort.Strings(keys)
	if toRemove > len(keys) {
		toRemove = len(keys)
	}

	removed := 0
	for _, key := range keys[:toRemove] {
		removed += m.store.Del(key)
	}
	return removed
}

// cleanupTick is the adaptive loop body: sweep expired entries, then if
// usage still exceeds the threshold run the first-pass strategy, re-check,
// and escalate once.
func (m *Monitor) cleanupTick() error {
	m.store.SweepExpired()

	if m.store.Stats().UsageRatio <= m.cfg.CleanupThreshold {
		return nil
	}

	removed, err := m.RunCleanup(StrategyAgeSweep, nil)
	if err != nil {
		return err
	}

	if m.store.Stats().UsageRatio > m.cfg.CleanupThreshold {
		more, err := m.RunCleanup(StrategySizeTarget, nil)
		if err != nil {
			return err
		}
		removed += more
	}

	if removed > 0 {
		m.logger.Info("cache cleanup removed " + strconv.Itoa(removed) + " entries")
	}
	return nil
}
