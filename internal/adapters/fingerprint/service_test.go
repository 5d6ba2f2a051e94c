package fingerprint_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/adapters/fingerprint"
	"go.trai.ch/memo/internal/adapters/logger"
	"go.trai.ch/memo/internal/adapters/store"
	"go.trai.ch/memo/internal/core/domain"
)

func newTestService(t *testing.T) (*fingerprint.Service, *store.Store, string) {
	t.Helper()
	root := t.TempDir()
	st := store.New(store.DefaultConfig(), clockwork.NewFakeClock())
	return fingerprint.NewService(st, logger.New(), root), st, root
}

func writeFile(t *testing.T, root, name, content string) string {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return name
}

func TestService_GetExistingFile(t *testing.T) {
	svc, _, root := newTestService(t)
	writeFile(t, root, "src/index.ts", "export const x = 1\n")

	fp := svc.Get("src/index.ts")

	assert.True(t, fp.Exists)
	assert.Equal(t, "src/index.ts", fp.Path)
	assert.Equal(t, int64(19), fp.SizeBytes)
	assert.Len(t, fp.ContentHash, 16)
}

func TestService_GetMissingFile(t *testing.T) {
	svc, _, _ := newTestService(t)

	fp := svc.Get("does/not/exist.ts")

	assert.False(t, fp.Exists)
	assert.Empty(t, fp.ContentHash)
}

func TestService_IdenticalContentSameHash(t *testing.T) {
	svc, _, root := newTestService(t)
	writeFile(t, root, "a.ts", "same content")
	writeFile(t, root, "b.ts", "same content")

	assert.Equal(t, svc.Hash("a.ts"), svc.Hash("b.ts"))
	assert.NotEmpty(t, svc.Hash("a.ts"))
}

func TestService_DirectoryHasNoHash(t *testing.T) {
	svc, _, root := newTestService(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))

	fp := svc.Get("src")

	assert.True(t, fp.Exists)
	assert.Empty(t, fp.ContentHash)
}

func TestService_SecondGetIsCached(t *testing.T) {
	svc, st, root := newTestService(t)
	writeFile(t, root, "a.ts", "v1")

	svc.Get("a.ts")
	before := st.Stats()

	svc.Get("a.ts")
	after := st.Stats()

	assert.Equal(t, before.Hits+1, after.Hits)
}

func TestService_StaleCacheUntilInvalidated(t *testing.T) {
	svc, _, root := newTestService(t)
	writeFile(t, root, "a.ts", "v1")

	old := svc.Hash("a.ts")
	writeFile(t, root, "a.ts", "v2 with different length")

	// Within the TTL the cached fingerprint is served as-is.
	assert.Equal(t, old, svc.Hash("a.ts"))

	svc.Invalidate([]string{"a.ts"})
	assert.NotEqual(t, old, svc.Hash("a.ts"))
}

func TestService_GetBatchSettlesAllPaths(t *testing.T) {
	svc, _, root := newTestService(t)
	writeFile(t, root, "ok.ts", "content")

	fps := svc.GetBatch([]string{"ok.ts", "missing.ts"})

	require.Len(t, fps, 2)
	assert.True(t, fps[0].Exists)
	assert.False(t, fps[1].Exists)
}

func TestService_CompareWithExpected(t *testing.T) {
	svc, _, root := newTestService(t)
	writeFile(t, root, "same.ts", "unchanged")
	writeFile(t, root, "edited.ts", "v1")
	writeFile(t, root, "added.ts", "new file")

	expected := map[string]string{
		"same.ts":    svc.Hash("same.ts"),
		"edited.ts":  svc.Hash("edited.ts"),
		"added.ts":   "", // recorded before the file was hashable
		"deleted.ts": "deadbeefdeadbeef",
	}

	writeFile(t, root, "edited.ts", "v2 with different length")
	svc.Invalidate([]string{"edited.ts"})

	res := svc.CompareWithExpected(expected)

	require.Equal(t, 4, res.TotalChecked)
	require.Equal(t, 3, res.ChangedCount)

	kinds := map[string]domain.ChangeKind{}
	for _, ch := range res.Changed {
		kinds[ch.Path] = ch.Kind
	}
	assert.Equal(t, domain.ChangeNew, kinds["added.ts"])
	assert.Equal(t, domain.ChangeContent, kinds["edited.ts"])
	assert.Equal(t, domain.ChangeMissing, kinds["deleted.ts"])
	assert.NotContains(t, kinds, "same.ts")
}

func TestService_CompareEmptySetIsStable(t *testing.T) {
	svc, _, _ := newTestService(t)

	res := svc.CompareWithExpected(map[string]string{})

	assert.Zero(t, res.TotalChecked)
	assert.Zero(t, res.ChangedCount)
	assert.Empty(t, res.Changed)
}

func TestService_UnhashableAlwaysChanged(t *testing.T) {
	svc, _, root := newTestService(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dir"), 0o755))

	// A directory fingerprint carries the empty sentinel hash. Even when the
	// recorded hash is also empty it must count as changed, never as equal.
	res := svc.CompareWithExpected(map[string]string{"dir": ""})

	require.Equal(t, 1, res.ChangedCount)
	assert.Equal(t, domain.ChangeNew, res.Changed[0].Kind)
}

func TestService_WarmBatchPrecomputes(t *testing.T) {
	svc, st, root := newTestService(t)
	paths := make([]string, 0, 25)
	for i := range 25 {
		paths = append(paths, writeFile(t, root, filepath.Join("src", string(rune('a'+i))+".ts"), time.Now().String()))
	}

	svc.WarmBatch(paths)

	for _, p := range paths {
		assert.True(t, st.Has(st.GenerateKey("metadata", "fingerprint", p)))
	}
}
