package ports

import "go.trai.ch/memo/internal/core/domain"

// Fingerprinter computes and caches file fingerprints. Implementations never
// return errors: an unreachable file degrades to Exists=false with an empty
// ContentHash.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// Get returns the fingerprint for path, served from cache when fresh.
	Get(path string) domain.Fingerprint

	// GetBatch fingerprints every path with per-path isolation: a failing
	// path yields a not-found fingerprint in its own slot, the rest are
	// still computed.
	GetBatch(paths []string) []domain.Fingerprint

	// Hash returns the content hash for path, or "" when the file cannot be
	// hashed. The empty string is a sentinel, never a valid hash; callers
	// must treat it as changed rather than comparing it for equality.
	Hash(path string) string

	// CompareWithExpected classifies each expected path/hash pair against
	// the current file system state.
	CompareWithExpected(expected map[string]string) domain.CompareResult

	// WarmBatch precomputes fingerprints in bounded batches so a large warm
	// request does not fire unbounded parallel file I/O.
	WarmBatch(paths []string)

	// Invalidate drops cached fingerprints for the given paths so the next
	// lookup recomputes them.
	Invalidate(paths []string)
}
