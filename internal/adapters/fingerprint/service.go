// Package fingerprint computes and caches content fingerprints for project
// files. A fingerprint is the unit of "has this input changed".
package fingerprint

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

var _ ports.Fingerprinter = (*Service)(nil)

const (
	// largeFileThreshold is the size above which content hashing is replaced
	// by a size+mtime proxy. Precision is traded for cost: a touched but
	// byte-identical large file reads as changed, which only costs a
	// recomputation.
	largeFileThreshold = 1 << 20

	// warmBatchLimit bounds concurrent file I/O during warm-up.
	warmBatchLimit = 10
)

// Service implements ports.Fingerprinter on top of the shared store.
// Fingerprints are cached with the short TTL class and recomputed on the
// first request after expiry.
type Service struct {
	store  ports.Store
	logger ports.Logger
	root   string
}

// NewService creates a fingerprint service anchored at root. Relative paths
// are resolved against it; absolute paths are used as given.
func NewService(store ports.Store, logger ports.Logger, root string) *Service {
	return &Service{store: store, logger: logger, root: root}
}

// Get returns the fingerprint for path, cache-then-compute. It never fails:
// an unreachable file yields Exists=false with an empty ContentHash.
func (s *Service) Get(path string) domain.Fingerprint {
	key := s.store.GenerateKey("metadata", "fingerprint", path)
	if v, ok := s.store.Get(key); ok {
		if fp, ok := v.(domain.Fingerprint); ok {
			return fp
		}
	}

	fp := s.compute(path)
	s.store.SetWithClassTTL(key, fp, ports.TTLShort)
	return fp
}

// GetBatch fingerprints every path with per-path isolation; a failing path
// degrades to a not-found fingerprint in its own slot.
func (s *Service) GetBatch(paths []string) []domain.Fingerprint {
	out := make([]domain.Fingerprint, len(paths))
	for i, path := range paths {
		out[i] = s.Get(path)
	}
	return out
}

// Hash returns the content hash for path. The empty string is an explicit
// "unhashable" sentinel, never a valid hash: callers must force "" to
// changed instead of comparing it for equality.
func (s *Service) Hash(path string) string {
	return s.Get(path).ContentHash
}

// CompareWithExpected classifies every expected path against the current
// file system state. The classification here is the single source of truth
// for staleness decisions.
func (s *Service) CompareWithExpected(expected map[string]string) domain.CompareResult {
	paths := make([]string, 0, len(expected))
	for p := range expected {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	res := domain.CompareResult{TotalChecked: len(paths)}
	for _, path := range paths {
		oldHash := expected[path]
		cur := s.Get(path)

		switch {
		case !cur.Exists:
			res.Changed = append(res.Changed, domain.FileChange{
				Path: path, Kind: domain.ChangeMissing, OldHash: oldHash,
			})
		case oldHash == "":
			res.Changed = append(res.Changed, domain.FileChange{
				Path: path, Kind: domain.ChangeNew, NewHash: cur.ContentHash,
			})
		case cur.ContentHash == "" || cur.ContentHash != oldHash:
			// An empty current hash means unhashable and always counts as
			// changed, even against an empty recorded hash.
			res.Changed = append(res.Changed, domain.FileChange{
				Path: path, Kind: domain.ChangeContent, OldHash: oldHash, NewHash: cur.ContentHash,
			})
		}
	}
	res.ChangedCount = len(res.Changed)
	return res
}

// WarmBatch precomputes fingerprints with bounded concurrency so a large
// warm-up does not fire unbounded parallel file I/O.
func (s *Service) WarmBatch(paths []string) {
	var g errgroup.Group
	g.SetLimit(warmBatchLimit)
	for _, path := range paths {
		g.Go(func() error {
			s.Get(path)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors
}

// Invalidate drops the cached fingerprints for the given paths so the next
// lookup recomputes them.
func (s *Service) Invalidate(paths []string) {
	for _, path := range paths {
		s.store.Del(s.store.GenerateKey("metadata", "fingerprint", path))
	}
}

func (s *Service) compute(path string) domain.Fingerprint {
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(s.root, full)
	}

	info, err := os.Stat(full)
	if err != nil {
		return domain.Fingerprint{Path: path}
	}

	fp := domain.Fingerprint{
		Path:       path,
		SizeBytes:  info.Size(),
		ModifiedAt: info.ModTime(),
		Exists:     true,
	}

	if info.IsDir() {
		// Directories carry no content hash; the sentinel keeps them
		// permanently "changed" for any caller that recorded one.
		return fp
	}

	if info.Size() > largeFileThreshold {
		fp.ContentHash = fmt.Sprintf("large:%d:%d", info.Size(), info.ModTime().UnixMilli())
		return fp
	}

	hash, err := hashFile(full)
	if err != nil {
		// Degrade to the unhashable sentinel rather than failing the lookup.
		fp.ContentHash = ""
		return fp
	}
	fp.ContentHash = hash
	return fp
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // path is controlled by caller
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck // best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
