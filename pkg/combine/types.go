package combine

// Kind distinguishes files from directories.
type Kind int

const (
	KindFile Kind = iota
	KindDir
)

func (k Kind) String() string {
	if k == KindDir {
		return "directory"
	}
	return "file"
}

// Entry is a filesystem node visited during a scan.
type Entry struct {
	Path   string // Absolute path
	Name   string // Base name used for display and sorting
	Kind   Kind
	Parent string // Absolute path of the containing directory
	Depth  int    // 0 for children of the root
	Link   bool   // Entry is a symbolic link; linked directories are never descended
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDir
}

// Stats is the aggregate size and file count of an entry's subtree.
// For a file it is (own size, 1).
type Stats struct {
	TotalSize int64
	ItemCount int
}

// Item is one element of a walk: an entry, whether it is the last of its
// siblings, and its aggregate stats.
type Item struct {
	Entry  Entry
	IsLast bool
	Stats  Stats
}

// ContentRecord is the normalized text of one included file.
type ContentRecord struct {
	Path    string // Root-relative, '/' separated
	Size    int64
	Ext     string // Lower-cased extension without the dot
	Content string
}
