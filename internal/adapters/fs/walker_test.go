package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/adapters/fs"
)

func scaffold(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
	return root
}

func TestWalker_WalkFilesSkipsExcluded(t *testing.T) {
	root := scaffold(t,
		"src/index.ts",
		"src/util.ts",
		"node_modules/pkg/index.js",
		"dist/out.js",
		".git/config",
	)

	var got []string
	for path := range fs.NewWalker().WalkFiles(root, []string{"node_modules", "dist"}) {
		got = append(got, path)
	}

	assert.ElementsMatch(t, []string{"src/index.ts", "src/util.ts"}, got)
}

func TestWalker_SourceFilesFiltersByExtension(t *testing.T) {
	root := scaffold(t,
		"src/b.tsx",
		"src/a.ts",
		"src/readme.md",
		"src/style.css",
	)

	got := fs.NewWalker().SourceFiles(root, []string{".ts", ".tsx"}, nil)

	// Sorted, extension-filtered, root-relative slash paths.
	assert.Equal(t, []string{"src/a.ts", "src/b.tsx"}, got)
}

func TestWalker_ConfigFilesWithGlobs(t *testing.T) {
	root := scaffold(t,
		"tsconfig.json",
		"tsconfig.build.json",
		"package.json",
		"src/index.ts",
	)

	got := fs.NewWalker().ConfigFiles(root, []string{"tsconfig.json", "tsconfig.*.json"})

	assert.ElementsMatch(t, []string{"tsconfig.json", "tsconfig.build.json"}, got)
}

func TestWalker_MissingConfigFilesAreSkipped(t *testing.T) {
	root := scaffold(t, "src/index.ts")

	got := fs.NewWalker().ConfigFiles(root, []string{"tsconfig.json", ".eslintrc*"})

	assert.Empty(t, got)
}

func TestWalker_EmptyTree(t *testing.T) {
	root := t.TempDir()

	assert.Empty(t, fs.NewWalker().SourceFiles(root, []string{".ts"}, nil))
}
