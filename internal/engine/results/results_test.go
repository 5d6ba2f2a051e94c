package results_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/adapters/logger"
	"go.trai.ch/memo/internal/adapters/store"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports/mocks"
	"go.trai.ch/memo/internal/engine/results"
	"go.uber.org/mock/gomock"
)

func newTestCache(t *testing.T) (*results.Cache, *store.Store, *mocks.MockFingerprinter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	fp := mocks.NewMockFingerprinter(ctrl)
	st := store.New(store.DefaultConfig(), clockwork.NewFakeClock())
	return results.New(st, fp, logger.New()), st, fp
}

func record(fps map[string]string) domain.OperationRecord {
	return domain.OperationRecord{
		Type:             domain.OpCompile,
		Success:          true,
		RawOutput:        "ok",
		ProducedAt:       time.Now(),
		FileFingerprints: fps,
	}
}

func TestCache_PutAndGetRaw(t *testing.T) {
	cache, st, _ := newTestCache(t)

	rec := record(map[string]string{"src/a.ts": "aaaa"})
	cache.Put(domain.OpCompile, "key1", rec)

	assert.True(t, st.Has("operation:compile:key1"))

	got, ok := cache.GetRaw(domain.OpCompile, "key1")
	require.True(t, ok)
	assert.Equal(t, rec.RawOutput, got.RawOutput)
	assert.Equal(t, rec.FileFingerprints, got.FileFingerprints)
}

func TestCache_GetRawSkipsValidation(t *testing.T) {
	cache, _, fp := newTestCache(t)

	// No CompareWithExpected expectation: a read of a stale record must not
	// touch the file system.
	cache.Put(domain.OpStyle, "key", record(map[string]string{"gone.ts": "old"}))

	_, ok := cache.GetRaw(domain.OpStyle, "key")
	assert.True(t, ok)
	_ = fp
}

func TestCache_GetRawMiss(t *testing.T) {
	cache, _, _ := newTestCache(t)

	_, ok := cache.GetRaw(domain.OpCompile, "nope")
	assert.False(t, ok)
}

func TestCache_IsValid(t *testing.T) {
	cache, _, fp := newTestCache(t)

	fps := map[string]string{"src/a.ts": "aaaa", "src/b.ts": "bbbb"}
	fp.EXPECT().CompareWithExpected(fps).Return(domain.CompareResult{TotalChecked: 2})

	assert.True(t, cache.IsValid(record(fps)))
}

func TestCache_IsValidSingleChangeInvalidates(t *testing.T) {
	cache, _, fp := newTestCache(t)

	fps := map[string]string{"src/a.ts": "aaaa", "src/b.ts": "bbbb"}
	fp.EXPECT().CompareWithExpected(fps).Return(domain.CompareResult{
		TotalChecked: 2,
		ChangedCount: 1,
		Changed: []domain.FileChange{
			{Path: "src/b.ts", Kind: domain.ChangeContent, OldHash: "bbbb", NewHash: "cccc"},
		},
	})

	assert.False(t, cache.IsValid(record(fps)))
}

func TestCache_IsValidNilFingerprintsIsCorrupted(t *testing.T) {
	cache, _, _ := newTestCache(t)

	// Nil map means the record lost its dependency set; it must never be
	// trusted, and no comparison is attempted.
	assert.False(t, cache.IsValid(record(nil)))
}

func TestCache_IsValidEmptyFingerprintsIsTrivially(t *testing.T) {
	cache, _, fp := newTestCache(t)

	empty := map[string]string{}
	fp.EXPECT().CompareWithExpected(empty).Return(domain.CompareResult{})

	assert.True(t, cache.IsValid(record(empty)))
}

func TestBuildKey_OrderIndependent(t *testing.T) {
	k1 := results.BuildKey([]string{"src/a.ts", "src/b.ts"}, []string{"tsconfig.json"})
	k2 := results.BuildKey([]string{"src/b.ts", "src/a.ts"}, []string{"tsconfig.json"})

	assert.Equal(t, k1, k2)
	assert.Len(t, k1, 16)
}

func TestBuildKey_SensitiveToFileSet(t *testing.T) {
	k1 := results.BuildKey([]string{"a.ts"}, nil)
	k2 := results.BuildKey([]string{"a.ts", "b.ts"}, nil)
	k3 := results.BuildKey(nil, nil)

	assert.NotEqual(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	// Empty input set still yields a stable key.
	assert.Equal(t, k3, results.BuildKey(nil, nil))
}

func TestCache_InvalidateByPaths(t *testing.T) {
	cache, st, _ := newTestCache(t)

	cache.Put(domain.OpCompile, "k1", record(map[string]string{"src/a.ts": "a", "src/b.ts": "b"}))
	cache.Put(domain.OpStyle, "k2", record(map[string]string{"src/c.ts": "c"}))
	cache.Put(domain.OpTest, "k3", record(map[string]string{"src/a.ts": "a"}))

	removed := cache.InvalidateByPaths([]string{"src/a.ts"})

	assert.Equal(t, 2, removed)
	assert.False(t, st.Has("operation:compile:k1"))
	assert.True(t, st.Has("operation:style:k2"))
	assert.False(t, st.Has("operation:test:k3"))
}

func TestCache_InvalidateByPathsEmptyBatch(t *testing.T) {
	cache, _, _ := newTestCache(t)

	cache.Put(domain.OpCompile, "k1", record(map[string]string{"src/a.ts": "a"}))

	assert.Zero(t, cache.InvalidateByPaths(nil))
}

func TestCache_InvalidateByPathsDropsForeignValues(t *testing.T) {
	cache, st, _ := newTestCache(t)

	st.Set("operation:compile:bogus", "not a record", 0)

	removed := cache.InvalidateByPaths([]string{"whatever.ts"})

	assert.Equal(t, 1, removed)
	assert.False(t, st.Has("operation:compile:bogus"))
}

func TestCache_Latest(t *testing.T) {
	cache, _, _ := newTestCache(t)

	older := record(nil)
	older.ProducedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	older.RawOutput = "older"
	newer := record(nil)
	newer.ProducedAt = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	newer.RawOutput = "newer"

	cache.Put(domain.OpCompile, "k1", older)
	cache.Put(domain.OpCompile, "k2", newer)
	cache.Put(domain.OpStyle, "k3", record(nil))

	got, ok := cache.Latest(domain.OpCompile)
	require.True(t, ok)
	assert.Equal(t, "newer", got.RawOutput)

	_, ok = cache.Latest(domain.OpTest)
	assert.False(t, ok)
}
