// File: pkg/combine/tree.go
package combine

import "strings"

const (
	connectorMid  = "├── "
	connectorLast = "└── "
	prefixPipe    = "│   "
	prefixBlank   = "    "
)

// RenderTree formats a walk sequence as box-drawing tree lines joined by
// newlines. A directory's children are indented by its own prefix extended
// with blanks if it was the last sibling, or a pipe otherwise.
func RenderTree(items []Item) string {
	prefixes := make(map[string]string)
	lines := make([]string, 0, len(items))

	for _, item := range items {
		prefix := prefixes[item.Entry.Parent]

		connector := connectorMid
		if item.IsLast {
			connector = connectorLast
		}

		name := item.Entry.Name
		if item.Entry.IsDir() {
			name += "/"
			ext := prefixPipe
			if item.IsLast {
				ext = prefixBlank
			}
			prefixes[item.Entry.Path] = prefix + ext
		}
		lines = append(lines, prefix+connector+name)
	}
	return strings.Join(lines, "\n")
}
