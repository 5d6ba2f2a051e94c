// Package results binds an operation's outcome to the exact set of file
// fingerprints that produced it, and re-validates that binding on demand.
package results

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
)

// Namespace is the key prefix for operation records, sub-namespaced by
// operation type: operation:<type>:<key>.
const Namespace = "operation"

var operationKeys = regexp.MustCompile(`^` + Namespace + `:`)

// Cache stores operation records in the shared store and decides whether a
// stored result is still trustworthy: exactly as long as every file it
// depended on is hash-identical and still exists.
type Cache struct {
	store  ports.Store
	fp     ports.Fingerprinter
	logger ports.Logger
}

// New creates a result cache on top of the shared store.
func New(store ports.Store, fp ports.Fingerprinter, logger ports.Logger) *Cache {
	return &Cache{store: store, fp: fp, logger: logger}
}

// Put stores a record under operation:<type>:<key> with the long TTL class.
func (c *Cache) Put(op domain.OperationType, key string, rec domain.OperationRecord) {
	c.store.SetWithClassTTL(c.storeKey(op, key), rec, ports.TTLLong)
}

// GetRaw returns the last stored record without any freshness validation, so
// callers can inspect an operation's last-known output even when it is
// stale. Pair with IsValid before trusting the result.
func (c *Cache) GetRaw(op domain.OperationType, key string) (domain.OperationRecord, bool) {
	v, ok := c.store.Get(c.storeKey(op, key))
	if !ok {
		return domain.OperationRecord{}, false
	}
	rec, ok := v.(domain.OperationRecord)
	if !ok {
		return domain.OperationRecord{}, false
	}
	return rec, true
}

// IsValid reports whether every file the record depended on is unchanged. A
// record with a nil fingerprint map is corrupted and counts as invalid,
// forcing recomputation; an empty map is a record with no file dependencies
// and is trivially valid.
func (c *Cache) IsValid(rec domain.OperationRecord) bool {
	if rec.FileFingerprints == nil {
		return false
	}
	cmp := c.fp.CompareWithExpected(rec.FileFingerprints)
	return cmp.ChangedCount == 0
}

// BuildKey derives a deterministic key from the set of input and config
// files. Basenames are sorted before hashing so re-discovering the same
// inputs in a different order still hits the same slot.
func BuildKey(files, configFiles []string) string {
	names := make([]string, 0, len(files)+len(configFiles))
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	for _, f := range configFiles {
		names = append(names, filepath.Base(f))
	}
	sort.Strings(names)

	sum := sha256.Sum256([]byte(strings.Join(names, "|")))
	return hex.EncodeToString(sum[:8])
}

// InvalidateByPaths eagerly deletes every operation record whose fingerprint
// set intersects the changed paths, and returns the count removed. This is
// the fast bulk reaction to file events; IsValid remains the lazy read-time
// check that stays correct even if an event was missed.
func (c *Cache) InvalidateByPaths(changed []string) int {
	if len(changed) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(changed))
	for _, p := range changed {
		set[filepath.ToSlash(p)] = struct{}{}
	}

	removed := 0
	for _, key := range c.store.KeysByPattern(operationKeys) {
		v, ok := c.store.Get(key)
		if !ok {
			continue
		}
		rec, ok := v.(domain.OperationRecord)
		if !ok {
			// Foreign value under the operation namespace; drop it rather
			// than let it shadow a real record.
			removed += c.store.Del(key)
			continue
		}
		for path := range rec.FileFingerprints {
			if _, hit := set[filepath.ToSlash(path)]; hit {
				removed += c.store.Del(key)
				break
			}
		}
	}
	return removed
}

// Latest returns the most recently produced record for the given operation
// type, valid or not.
func (c *Cache) Latest(op domain.OperationType) (domain.OperationRecord, bool) {
	re := regexp.MustCompile(`^` + Namespace + `:` + regexp.QuoteMeta(string(op)) + `:`)

	var (
		latest domain.OperationRecord
		found  bool
	)
	for _, key := range c.store.KeysByPattern(re) {
		v, ok := c.store.Get(key)
		if !ok {
			continue
		}
		rec, ok := v.(domain.OperationRecord)
		if !ok {
			continue
		}
		if !found || rec.ProducedAt.After(latest.ProducedAt) {
			latest = rec
			found = true
		}
	}
	return latest, found
}

func (c *Cache) storeKey(op domain.OperationType, key string) string {
	return c.store.GenerateKey(Namespace, string(op), key)
}
