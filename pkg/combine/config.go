// File: pkg/combine/config.go
package combine

// DefaultIgnoreFile is read from the root, when present, for extra structural patterns.
const DefaultIgnoreFile = ".snapignore"

// Arguments holds the configuration options for one snapshot run.
type Arguments struct {
	Directory                string   // Root directory to scan.
	Profile                  string   // Profile name; empty selects DefaultProfile.
	Output                   string   // Output file path; empty writes the profile's file name into the root.
	StructureIgnore          []string // Structural patterns; nil keeps the profile default.
	ContentIgnore            []string // Content-only patterns; nil keeps the profile default.
	ContentIgnoredExtensions []string // Extensions left out of the content dump; nil keeps the profile default.
	ExtraIgnore              []string // Structural patterns appended to the above.
	IgnoreFile               string   // Ignore file path; empty uses DefaultIgnoreFile in the root.
	UseGitignore             bool     // Also exclude what the root .gitignore lists.
	MaxWorkers               int      // Concurrent probe/read tasks; 0 means one per CPU.
	SelfName                 string   // Program's own file name, never listed.
}

// Result summarizes a completed run.
type Result struct {
	OutputPath  string // Where the document was written.
	Entries     int    // Entries listed in the tree.
	Files       int    // Files with a content block.
	FailedFiles int    // Files skipped because they could not be read.
	Document    string // Final normalized document.
}
