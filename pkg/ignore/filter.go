package ignore

import (
	"path/filepath"

	"go.uber.org/zap"
)

// Matcher excludes paths beyond what a RuleSet expresses.
type Matcher interface {
	Match(path string, isDir bool) bool
}

// Filter is the structural exclusion used while walking and probing.
// It is built once per run and is safe for concurrent use.
type Filter struct {
	root   string
	rules  *RuleSet
	names  map[string]struct{}
	extra  []Matcher
	logger *zap.Logger
}

// NewFilter returns a Filter rooted at root. Entries whose base name is in
// names are excluded at any depth.
func NewFilter(root string, rules *RuleSet, names []string, logger *zap.Logger) *Filter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rules == nil {
		rules = NewRuleSet()
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n != "" {
			set[n] = struct{}{}
		}
	}
	return &Filter{root: root, rules: rules, names: set, logger: logger}
}

// With attaches an extra matcher and returns f.
func (f *Filter) With(m Matcher) *Filter {
	if m != nil {
		f.extra = append(f.extra, m)
	}
	return f
}

// Root returns the directory the filter's patterns are relative to.
func (f *Filter) Root() string {
	return f.root
}

// Rules returns the structural rule set.
func (f *Filter) Rules() *RuleSet {
	return f.rules
}

// Excludes reports whether p is structurally excluded.
func (f *Filter) Excludes(p string, isDir bool) bool {
	name := filepath.Base(p)
	if IsHidden(name) {
		return true
	}
	if _, ok := f.names[name]; ok {
		f.logger.Debug("Excluded by name", zap.String("path", p))
		return true
	}
	rel := RelSlash(f.root, p)
	if matched, pattern := f.rules.MatchesPath(rel); matched {
		f.logger.Debug("Excluded by pattern", zap.String("path", rel), zap.String("pattern", pattern))
		return true
	}
	for _, m := range f.extra {
		if m.Match(p, isDir) {
			f.logger.Debug("Excluded by extra matcher", zap.String("path", rel))
			return true
		}
	}
	return false
}
