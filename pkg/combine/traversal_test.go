package combine

import (
	"os"
	"path/filepath"
	"testing"

	"foldersnap/pkg/ignore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkOrdering(t *testing.T) {
	root := setupTestDir(t, map[string]string{
		"big.txt":          "0123456789ABCDEF", // 16 bytes, 1 file
		"small.txt":        "x",                // 1 byte, 1 file
		"many/one.txt":     "1",
		"many/two.txt":     "22",
		"many/three.txt":   "333",
		"pair/left.txt":    "l",
		"pair/right.txt":   "r",
		"Alpha.md":         "same",
		"beta.md":          "same",
		".hidden/file.txt": "never listed",
	})
	walker := NewWalker(root, nil, 4, nil)

	items, err := walker.Walk()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"many",
		"many/three.txt",
		"many/two.txt",
		"many/one.txt",
		"pair",
		"pair/left.txt",
		"pair/right.txt",
		"big.txt",
		"Alpha.md",
		"beta.md",
		"small.txt",
	}, relPaths(root, items))
}

func TestWalkIsDeterministic(t *testing.T) {
	root := setupTestDir(t, map[string]string{
		"a/x.txt": "same",
		"b/x.txt": "same",
		"c.txt":   "same",
		"d.txt":   "same",
		"e/f/g/":  "",
	})
	walker := NewWalker(root, nil, 0, nil)

	first, err := walker.Walk()
	require.NoError(t, err)
	second, err := walker.Walk()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a", "a/x.txt", "b", "b/x.txt", "c.txt", "d.txt", "e", "e/f", "e/f/g"}, relPaths(root, first))
}

func TestWalkEntryContext(t *testing.T) {
	root := setupTestDir(t, map[string]string{
		"dir/sub/leaf.txt": "leaf",
		"top.txt":          "t",
	})
	items, err := NewWalker(root, nil, 2, nil).Walk()
	require.NoError(t, err)
	require.Len(t, items, 4)

	dir, sub, leaf, top := items[0], items[1], items[2], items[3]

	assert.Equal(t, KindDir, dir.Entry.Kind)
	assert.Equal(t, root, dir.Entry.Parent)
	assert.Equal(t, 0, dir.Entry.Depth)
	assert.False(t, dir.IsLast)
	assert.Equal(t, Stats{TotalSize: 4, ItemCount: 1}, dir.Stats)

	assert.Equal(t, dir.Entry.Path, sub.Entry.Parent)
	assert.Equal(t, 1, sub.Entry.Depth)
	assert.True(t, sub.IsLast)

	assert.Equal(t, "leaf.txt", leaf.Entry.Name)
	assert.Equal(t, KindFile, leaf.Entry.Kind)
	assert.Equal(t, 2, leaf.Entry.Depth)
	assert.True(t, leaf.IsLast)

	assert.Equal(t, Stats{TotalSize: 1, ItemCount: 1}, top.Stats)
	assert.True(t, top.IsLast)
}

func TestWalkAppliesFilterAndNames(t *testing.T) {
	root := setupTestDir(t, map[string]string{
		"keep.go":               "package keep",
		"node_modules/x/y.js":   "js",
		"out_codebase.md":       "old output",
		"sub/out_codebase.md":   "also excluded by name",
		"sub/foldersnap":        "binary",
		"sub/kept.txt":          "kept",
		"build/generated/a.txt": "gen",
	})
	filter := ignore.NewFilter(root, ignore.NewRuleSet("node_modules", "build"), []string{"out_codebase.md", "foldersnap"}, nil)

	items, err := NewWalker(root, filter, 0, nil).Walk()
	require.NoError(t, err)
	// keep.go (12 bytes) outranks sub (4 bytes); both hold one file.
	assert.Equal(t, []string{"keep.go", "sub", "sub/kept.txt"}, relPaths(root, items))
}

func TestWalkDanglingSymlink(t *testing.T) {
	root := setupTestDir(t, map[string]string{"real.txt": "real"})
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "link.txt")))
	logger, logs := setupTestLogger(t)

	items, err := NewWalker(root, nil, 0, logger).Walk()
	require.NoError(t, err)
	require.Equal(t, []string{"real.txt", "link.txt"}, relPaths(root, items))
	assert.Equal(t, Stats{}, items[1].Stats)
	assert.True(t, items[1].Entry.Link)
	assert.Equal(t, 1, logs.FilterMessage("Failed to compute entry stats, treating as empty").Len())
}

func TestWalkDoesNotDescendLinkedDirectories(t *testing.T) {
	root := setupTestDir(t, map[string]string{"target/inner.txt": "inner"})
	require.NoError(t, os.Symlink(filepath.Join(root, "target"), filepath.Join(root, "alias")))

	items, err := NewWalker(root, nil, 0, nil).Walk()
	require.NoError(t, err)
	assert.Equal(t, []string{"target", "target/inner.txt", "alias"}, relPaths(root, items))
	assert.True(t, items[2].Entry.IsDir())
}

func TestWalkMissingRoot(t *testing.T) {
	_, err := NewWalker(filepath.Join(t.TempDir(), "missing"), nil, 0, nil).Walk()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSortItemsTieBreaks(t *testing.T) {
	mk := func(name string, count int, size int64) Item {
		return Item{Entry: Entry{Name: name}, Stats: Stats{ItemCount: count, TotalSize: size}}
	}
	items := []Item{
		mk("b", 1, 10),
		mk("a", 1, 10),
		mk("A", 1, 10),
		mk("z", 2, 1),
		mk("y", 1, 99),
	}
	SortItems(items)

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Entry.Name
	}
	assert.Equal(t, []string{"z", "y", "A", "a", "b"}, names)
}
