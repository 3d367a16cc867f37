// File: pkg/combine/document.go
package combine

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	newlineRuns        = regexp.MustCompile(`\n+`)
	trailingWhitespace = regexp.MustCompile(`\s+\n`)
)

// Layout describes how a document is framed: its file name, the text
// around the tree and the format of each file block.
type Layout struct {
	// FileName returns the artifact name for a root folder name.
	FileName func(folder string) string
	// Header precedes the tree lines.
	Header func(folder string) string
	// TreeFooter closes the tree section and opens the contents section.
	TreeFooter string
	// Block formats one content record.
	Block func(rec ContentRecord) string
}

// Assemble builds the document for a rendered tree and the records in the
// order given, then normalizes it.
func Assemble(layout Layout, folder, treeText string, records []ContentRecord) string {
	var b strings.Builder
	b.WriteString(layout.Header(folder))
	b.WriteString(treeText)
	b.WriteString(layout.TreeFooter)
	for _, rec := range records {
		b.WriteString(layout.Block(rec))
		b.WriteString("\n")
	}
	return Normalize(b.String())
}

// Normalize unifies line endings, collapses runs of newlines, strips
// whitespace before each newline and drops trailing newlines.
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = NormalizeLineEndings(s)
	s = newlineRuns.ReplaceAllString(s, "\n")
	s = trailingWhitespace.ReplaceAllString(s, "\n")
	return strings.TrimRight(s, "\n")
}

func fencedBlock(heading, tag, content string) string {
	return fmt.Sprintf("%s\n```%s\n%s\n```", heading, tag, content)
}
