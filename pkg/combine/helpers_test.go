package combine

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// setupTestDir creates structure under a temp dir. Keys ending in "/" are
// directories, everything else is a file with the given content.
func setupTestDir(t *testing.T, structure map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()
	paths := make([]string, 0, len(structure))
	for p := range structure {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, relPath := range paths {
		absPath := filepath.Join(tempDir, filepath.FromSlash(relPath))
		if strings.HasSuffix(relPath, "/") {
			require.NoError(t, os.MkdirAll(absPath, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(absPath), 0755))
		require.NoError(t, os.WriteFile(absPath, []byte(structure[relPath]), 0644), "Failed to write file: %s", absPath)
	}
	return tempDir
}

func setupTestLogger(t *testing.T) (*zap.Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

// relPaths returns the root-relative slash paths of items in walk order.
func relPaths(root string, items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		rel, _ := filepath.Rel(root, item.Entry.Path)
		out[i] = filepath.ToSlash(rel)
	}
	return out
}
