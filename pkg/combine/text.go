// File: pkg/combine/text.go
package combine

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrNotText is returned for files whose content is not valid UTF-8.
var ErrNotText = errors.New("content is not valid UTF-8 text")

// readText reads a file and returns its content with unified line endings.
func readText(p string) (string, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrNotText
	}
	return NormalizeLineEndings(string(data)), nil
}

// NormalizeLineEndings turns "\r\n" and lone "\r" into "\n".
func NormalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Extension returns the lower-cased final suffix of name without the dot.
// Names without a dot, or whose only dot is leading, have extension "".
func Extension(name string) string {
	base := strings.TrimLeft(filepath.Base(name), ".")
	ext := filepath.Ext(base)
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
