// Package version reports build metadata for foldersnap.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set with -ldflags "-X foldersnap/pkg/version.Version=1.2.3".
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info is the metadata printed by the version command.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string
}

// Get returns the build metadata. When the linker flags were not set, the
// commit and build time fall back to the VCS stamp embedded by go build.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.GitCommit == "none":
				info.GitCommit = shortRevision(s.Value)
			case s.Key == "vcs.time" && info.BuildTime == "unknown":
				info.BuildTime = s.Value
			}
		}
	}
	return info
}

// String renders Info on one line.
func (i Info) String() string {
	return fmt.Sprintf("foldersnap version %s (commit: %s) built at %s with %s on %s",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
