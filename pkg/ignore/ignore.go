// Package ignore decides which filesystem entries are excluded from a scan.
package ignore

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/danwakefield/fnmatch"
)

// anyDepthPrefix marks a pattern that also matches on the base name alone.
const anyDepthPrefix = "**/"

// RuleSet is an ordered collection of glob patterns.
type RuleSet struct {
	patterns []string
}

// NewRuleSet returns a RuleSet holding the given patterns in order.
// Empty patterns are dropped.
func NewRuleSet(patterns ...string) *RuleSet {
	rs := &RuleSet{}
	rs.Add(patterns...)
	return rs
}

// Add appends patterns to the set.
func (rs *RuleSet) Add(patterns ...string) {
	for _, p := range patterns {
		if p == "" {
			continue
		}
		rs.patterns = append(rs.patterns, p)
	}
}

// Patterns returns a copy of the patterns in insertion order.
func (rs *RuleSet) Patterns() []string {
	if rs == nil {
		return nil
	}
	out := make([]string, len(rs.patterns))
	copy(out, rs.patterns)
	return out
}

// Len returns the number of patterns.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.patterns)
}

// CompileIgnoreLines parses ignore-file lines and appends the resulting patterns.
// Blank lines and lines starting with '#' are skipped; a leading `\#` yields a literal '#'.
func (rs *RuleSet) CompileIgnoreLines(lines ...string) {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.HasPrefix(trimmed, `\#`) {
			trimmed = trimmed[1:]
		}
		rs.patterns = append(rs.patterns, trimmed)
	}
}

// CompileIgnoreFile reads an ignore file and appends its patterns.
func (rs *RuleSet) CompileIgnoreFile(fpath string) error {
	content, err := os.ReadFile(fpath)
	if err != nil {
		return fmt.Errorf("failed to read ignore file %s: %w", fpath, err)
	}
	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	rs.CompileIgnoreLines(lines...)
	return nil
}

// MatchesPath reports whether the slash-separated root-relative path rel
// matches any pattern, directly, by base name for `**/` patterns, or through
// one of its ancestors. The first matching pattern is returned.
func (rs *RuleSet) MatchesPath(rel string) (bool, string) {
	if rs == nil || rel == "" || rel == "." {
		return false, ""
	}
	base := path.Base(rel)
	parts := strings.Split(rel, "/")

	for _, pattern := range rs.patterns {
		if globMatch(pattern, rel) {
			return true, pattern
		}
		if strings.HasPrefix(pattern, anyDepthPrefix) && globMatch(pattern[len(anyDepthPrefix):], base) {
			return true, pattern
		}
		for i := 1; i < len(parts); i++ {
			if globMatch(pattern, strings.Join(parts[:i], "/")) {
				return true, pattern
			}
		}
	}
	return false, ""
}

// ShouldIgnore reports whether path must be excluded from a traversal rooted at root.
// Hidden entries are always excluded; otherwise rules decides.
func ShouldIgnore(p, root string, rules *RuleSet) bool {
	if IsHidden(filepath.Base(p)) {
		return true
	}
	matched, _ := rules.MatchesPath(RelSlash(root, p))
	return matched
}

// IsHidden reports whether name follows the leading-dot convention.
func IsHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}

// RelSlash returns p relative to root with '/' separators.
// If p is not under root, p itself is returned in slash form.
func RelSlash(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}

// globMatch applies shell-glob semantics where '*' may cross '/'.
func globMatch(pattern, name string) bool {
	return fnmatch.Match(pattern, name, fnmatch.FNM_NOESCAPE)
}
