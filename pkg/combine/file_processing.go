package combine

import (
	"sort"
	"strings"

	"foldersnap/pkg/ignore"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Collector reads the files of a walk into ContentRecords. Its exclusions
// apply on top of whatever the walk already filtered out.
type Collector struct {
	root       string
	rules      *ignore.RuleSet
	extensions map[string]struct{}
	workers    int
	logger     *zap.Logger
}

// NewCollector returns a Collector for files under root. Files matching
// rules, or whose Extension is in extensions, are skipped.
func NewCollector(root string, rules *ignore.RuleSet, extensions []string, workers int, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rules == nil {
		rules = ignore.NewRuleSet()
	}
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		set[normalizeExtension(ext)] = struct{}{}
	}
	return &Collector{root: root, rules: rules, extensions: set, workers: workers, logger: logger}
}

// Skip reports whether a file is excluded from the content dump, with a
// short reason for logging.
func (c *Collector) Skip(e Entry) (bool, string) {
	if e.IsDir() {
		return true, "directory"
	}
	if ignore.ShouldIgnore(e.Path, c.root, c.rules) {
		return true, "content ignore pattern"
	}
	if _, ok := c.extensions[Extension(e.Name)]; ok {
		return true, "ignored extension"
	}
	return false, ""
}

// Collect reads every non-skipped file in items concurrently and returns
// the records ordered by size descending, then path. Files that cannot be
// read produce no record; their FileReadErrors are logged and returned
// combined, and never prevent the other records from being returned.
func (c *Collector) Collect(items []Item) ([]ContentRecord, error) {
	var files []Item
	for _, item := range items {
		if skip, reason := c.Skip(item.Entry); skip {
			if item.Entry.Kind == KindFile {
				c.logger.Debug("Skipping file content",
					zap.String("path", item.Entry.Path), zap.String("reason", reason))
			}
			continue
		}
		files = append(files, item)
	}

	c.logger.Debug("Reading file contents", zap.Int("files", len(files)))
	records := make([]ContentRecord, len(files))
	errs := make([]error, len(files))
	forEach(len(files), c.workers, func(i int) {
		records[i], errs[i] = c.readRecord(files[i])
	})

	var combined error
	out := make([]ContentRecord, 0, len(files))
	for i := range files {
		if errs[i] != nil {
			c.logger.Warn("Failed to read file, skipping", zap.String("path", files[i].Entry.Path), zap.Error(errs[i]))
			combined = multierr.Append(combined, errs[i])
			continue
		}
		out = append(out, records[i])
	}
	SortRecords(out)
	return out, combined
}

func (c *Collector) readRecord(item Item) (ContentRecord, error) {
	content, err := readText(item.Entry.Path)
	if err != nil {
		return ContentRecord{}, &FileReadError{Path: item.Entry.Path, Err: err}
	}
	return ContentRecord{
		Path:    ignore.RelSlash(c.root, item.Entry.Path),
		Size:    item.Stats.TotalSize,
		Ext:     Extension(item.Entry.Name),
		Content: content,
	}, nil
}

// SortRecords orders records by size descending, then path ascending.
func SortRecords(records []ContentRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Size != records[j].Size {
			return records[i].Size > records[j].Size
		}
		return records[i].Path < records[j].Path
	})
}

func normalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimLeft(strings.TrimSpace(ext), "."))
}
