// File: pkg/combine/profiles.go
package combine

import (
	"fmt"
	"sort"
)

// Profile is one member of the utility family: a layout plus the default
// exclusion sets it runs with.
type Profile struct {
	Name                     string
	Short                    string
	Layout                   Layout
	StructureIgnore          []string
	ContentIgnore            []string
	ContentIgnoredExtensions []string
}

// DefaultProfile is used when no profile is named.
const DefaultProfile = "codebase"

var profiles = map[string]Profile{
	"codebase": {
		Name:                     "codebase",
		Short:                    "Write <folder>_codebase.md with the tree and file contents",
		StructureIgnore:          []string{".git"},
		ContentIgnore:            []string{"README.md", ".git"},
		ContentIgnoredExtensions: []string{"git", "gitignore", "bat", ""},
		Layout: Layout{
			FileName: func(folder string) string { return folder + "_codebase.md" },
			Header: func(folder string) string {
				return "# Codebase:\n## Folder Contents:\n### Folder structure:\n```\n" + folder + "/\n"
			},
			TreeFooter: "\n```\n## File Contents:\n",
			Block: func(rec ContentRecord) string {
				return fencedBlock(fmt.Sprintf("### `%s`:", rec.Path), rec.Ext, rec.Content)
			},
		},
	},
	"prompt": {
		Name:            "prompt",
		Short:           "Write prompt_template.md with the tree and file contents",
		StructureIgnore: []string{".git", ".idea", "__pycache__"},
		Layout: Layout{
			FileName: func(string) string { return "prompt_template.md" },
			Header: func(folder string) string {
				return "# Folder Contents: " + folder + "\n## Folder structure:\n```\n" + folder + "/\n"
			},
			TreeFooter: "\n```\n## File Contents:\n",
			Block: func(rec ContentRecord) string {
				return fencedBlock(fmt.Sprintf("### `%s`", rec.Path), rec.Ext, rec.Content)
			},
		},
	},
	"contents": {
		Name:            "contents",
		Short:           "Write folder_contents.txt with the tree and file contents",
		StructureIgnore: []string{".git", ".idea", "__pycache__"},
		Layout: Layout{
			FileName:   func(string) string { return "folder_contents.txt" },
			Header:     func(folder string) string { return folder + "/\n" },
			TreeFooter: "\n\n",
			Block: func(rec ContentRecord) string {
				return fencedBlock(fmt.Sprintf("### `%s` file:", rec.Path), "", rec.Content)
			},
		},
	},
}

// LookupProfile returns the named profile.
func LookupProfile(name string) (Profile, error) {
	if name == "" {
		name = DefaultProfile
	}
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q (available: %v)", name, ProfileNames())
	}
	return p, nil
}

// ProfileNames returns the profile names in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
