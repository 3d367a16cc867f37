// File: pkg/combine/traversal.go
package combine

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"foldersnap/pkg/ignore"

	"go.uber.org/zap"
)

// Walker enumerates a directory tree in a stable depth-first pre-order.
// Within a directory, entries are ordered by file count descending, total
// size descending, then name.
type Walker struct {
	root    string
	filter  *ignore.Filter
	workers int
	logger  *zap.Logger
}

// NewWalker returns a Walker over root. A non-positive workers uses one
// worker per CPU.
func NewWalker(root string, filter *ignore.Filter, workers int, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if filter == nil {
		filter = ignore.NewFilter(root, nil, nil, logger)
	}
	return &Walker{root: root, filter: filter, workers: workers, logger: logger}
}

// Walk returns the full sequence of visited items. Every call re-reads the
// filesystem. Only a failure to read the root directory is returned.
func (w *Walker) Walk() ([]Item, error) {
	w.logger.Debug("Starting tree walk", zap.String("root", w.root))
	children, err := w.listDir(w.root, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to read root directory '%s': %w", w.root, err)
	}

	var items []Item
	// Explicit stack of pending sibling lists keeps pre-order without recursion.
	stack := [][]Item{children}
	for len(stack) > 0 {
		top := len(stack) - 1
		if len(stack[top]) == 0 {
			stack = stack[:top]
			continue
		}
		item := stack[top][0]
		stack[top] = stack[top][1:]
		items = append(items, item)

		if !item.Entry.IsDir() || item.Entry.Link {
			continue
		}
		sub, err := w.listDir(item.Entry.Path, item.Entry.Depth+1)
		if err != nil {
			w.logger.Warn("Failed to read directory, listing it without children",
				zap.String("directory", item.Entry.Path), zap.Error(err))
			continue
		}
		stack = append(stack, sub)
	}

	w.logger.Debug("Completed tree walk", zap.String("root", w.root), zap.Int("items", len(items)))
	return items, nil
}

// listDir reads dir, drops excluded entries, probes the remaining siblings
// concurrently and returns them sorted with IsLast set.
func (w *Walker) listDir(dir string, depth int) ([]Item, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(dirEntries))
	for _, de := range dirEntries {
		p := filepath.Join(dir, de.Name())
		isLink := de.Type()&os.ModeSymlink != 0
		isDir := de.IsDir()
		if isLink {
			if info, statErr := os.Stat(p); statErr == nil {
				isDir = info.IsDir()
			}
		}
		if w.filter.Excludes(p, isDir) {
			continue
		}
		kind := KindFile
		if isDir {
			kind = KindDir
		}
		items = append(items, Item{Entry: Entry{
			Path:   p,
			Name:   de.Name(),
			Kind:   kind,
			Parent: dir,
			Depth:  depth,
			Link:   isLink,
		}})
	}

	// Each task writes only its own slot.
	forEach(len(items), w.workers, func(i int) {
		stats, err := w.entryStats(items[i].Entry)
		if err != nil {
			w.logger.Warn("Failed to compute entry stats, treating as empty",
				zap.String("path", items[i].Entry.Path), zap.Stringer("kind", items[i].Entry.Kind), zap.Error(err))
		}
		items[i].Stats = stats
	})

	SortItems(items)
	for i := range items {
		items[i].IsLast = i == len(items)-1
	}
	return items, nil
}

// entryStats probes a directory or stats a file.
func (w *Walker) entryStats(e Entry) (Stats, error) {
	if e.IsDir() {
		if e.Link {
			return Stats{}, nil
		}
		return Probe(e.Path, w.filter)
	}
	info, err := os.Stat(e.Path)
	if err != nil {
		return Stats{}, &ProbeError{Path: e.Path, Err: err}
	}
	return Stats{TotalSize: info.Size(), ItemCount: 1}, nil
}

// SortItems orders siblings by file count descending, total size
// descending, case-insensitive name, then exact name.
func SortItems(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return lessItem(items[i], items[j])
	})
}

func lessItem(a, b Item) bool {
	if a.Stats.ItemCount != b.Stats.ItemCount {
		return a.Stats.ItemCount > b.Stats.ItemCount
	}
	if a.Stats.TotalSize != b.Stats.TotalSize {
		return a.Stats.TotalSize > b.Stats.TotalSize
	}
	la, lb := strings.ToLower(a.Entry.Name), strings.ToLower(b.Entry.Name)
	if la != lb {
		return la < lb
	}
	return a.Entry.Name < b.Entry.Name
}
