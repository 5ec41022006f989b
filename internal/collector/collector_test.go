package collector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aseprite-tools/asepack/internal/domain"
)

// writeTree creates the given files (with dummy content) under root
func writeTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, p)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(p), 0644))
	}
}

func newTestCollector(t *testing.T, category string) (*Collector, string) {
	t.Helper()
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src")
	writeTree(t, src, "root.lua", "notes.txt", "A/foo.lua", "B/bar.lua", "A/deep/baz.lua")
	writeTree(t, tmpDir, "assets/icons/x.png", "assets/theme.xml")

	manifest := filepath.Join(src, "package.json")
	require.NoError(t, os.WriteFile(manifest, []byte(`{}`), 0644))

	return New(Options{
		ManifestPath: manifest,
		SourceDir:    src,
		AssetsDir:    filepath.Join(tmpDir, "assets"),
		ScriptExt:    ".lua",
		Category:     category,
	}), tmpDir
}

func flatNames(set *FileSet) []string {
	names := make([]string, len(set.Flat))
	for i, f := range set.Flat {
		names[i] = filepath.Base(f)
	}
	return names
}

func TestCollect_NoFilter(t *testing.T) {
	c, _ := newTestCollector(t, CategoryAll)

	set, err := c.Collect()

	require.NoError(t, err)
	// WalkDir order: lexical per directory, recursing as encountered
	assert.Equal(t, []string{"package.json", "baz.lua", "foo.lua", "bar.lua", "root.lua"}, flatNames(set))
}

func TestCollect_ManifestIsAlwaysFirst(t *testing.T) {
	c, _ := newTestCollector(t, CategoryAll)

	set, err := c.Collect()

	require.NoError(t, err)
	require.NotEmpty(t, set.Flat)
	assert.Equal(t, "package.json", filepath.Base(set.Flat[0]))
}

func TestCollect_CategoryFilter(t *testing.T) {
	c, _ := newTestCollector(t, "A")

	set, err := c.Collect()

	require.NoError(t, err)
	names := flatNames(set)
	assert.Contains(t, names, "root.lua")
	assert.Contains(t, names, "foo.lua")
	assert.Contains(t, names, "baz.lua")
	assert.NotContains(t, names, "bar.lua")
}

func TestCollect_NonScriptFilesIgnored(t *testing.T) {
	c, _ := newTestCollector(t, CategoryAll)

	set, err := c.Collect()

	require.NoError(t, err)
	assert.NotContains(t, flatNames(set), "notes.txt")
}

func TestCollect_AssetsKeepStructure(t *testing.T) {
	c, _ := newTestCollector(t, CategoryAll)

	set, err := c.Collect()

	require.NoError(t, err)
	rels := make([]string, len(set.Assets))
	for i, a := range set.Assets {
		rels[i] = filepath.ToSlash(a.Rel)
	}
	assert.Equal(t, []string{"assets/icons/x.png", "assets/theme.xml"}, rels)
}

func TestCollect_MissingAssetsDirIsEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	manifest := filepath.Join(tmpDir, "package.json")
	require.NoError(t, os.WriteFile(manifest, []byte(`{}`), 0644))

	c := New(Options{
		ManifestPath: manifest,
		SourceDir:    tmpDir,
		AssetsDir:    filepath.Join(tmpDir, "no-such-dir"),
		ScriptExt:    ".lua",
	})

	set, err := c.Collect()

	require.NoError(t, err)
	assert.Empty(t, set.Assets)
}

func TestCollect_MissingSourceDirFails(t *testing.T) {
	c := New(Options{
		ManifestPath: "package.json",
		SourceDir:    filepath.Join(t.TempDir(), "missing"),
		ScriptExt:    ".lua",
	})

	_, err := c.Collect()

	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
}

func TestCollect_Deterministic(t *testing.T) {
	c, _ := newTestCollector(t, CategoryAll)

	first, err := c.Collect()
	require.NoError(t, err)
	second, err := c.Collect()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFileSet_TotalCount(t *testing.T) {
	c, _ := newTestCollector(t, CategoryAll)

	set, err := c.Collect()

	require.NoError(t, err)
	assert.Equal(t, len(set.Flat)+len(set.Assets), set.TotalCount())
	assert.Equal(t, 7, set.TotalCount())
}
