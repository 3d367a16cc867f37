// File: pkg/combine/probe.go
package combine

import (
	"io/fs"
	"os"
	"path/filepath"

	"foldersnap/pkg/ignore"
)

// Probe computes the aggregate stats of the subtree at dirPath. Structurally
// excluded entries are skipped and excluded directories are never opened.
// Only files are counted. A file that cannot be statted contributes size 0,
// an unreadable subdirectory contributes nothing; only a failure on dirPath
// itself is returned, as a *ProbeError.
func Probe(dirPath string, filter *ignore.Filter) (Stats, error) {
	var stats Stats
	err := filepath.WalkDir(dirPath, func(p string, d fs.DirEntry, err error) error {
		if p == dirPath {
			return err
		}
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if filter.Excludes(p, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		size, isDir := fileSize(p, d)
		if isDir {
			// Symlink to a directory: listed in the tree, never followed.
			return nil
		}
		stats.ItemCount++
		stats.TotalSize += size
		return nil
	})
	if err != nil {
		return Stats{}, &ProbeError{Path: dirPath, Err: err}
	}
	return stats, nil
}

// fileSize returns the size of a non-directory entry, following symbolic
// links. An entry that cannot be statted has size 0. The second result is
// true when a link resolves to a directory.
func fileSize(p string, d fs.DirEntry) (int64, bool) {
	if d.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(p)
		if err != nil {
			return 0, false
		}
		return info.Size(), info.IsDir()
	}
	info, err := d.Info()
	if err != nil {
		return 0, false
	}
	return info.Size(), false
}
