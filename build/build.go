// Package build reports version information for the qsort binary. Version
// and Commit can be set with -ldflags; anything left empty is filled from
// the module and VCS data the Go toolchain embeds.
package build

import (
	"runtime/debug"
)

// Set at link time:
//
//	go build -ldflags "-X github.com/amp-labs/quicksort/build.Version=v1.2.3"
var (
	Version = "" //nolint:gochecknoglobals
	Commit  = "" //nolint:gochecknoglobals
)

// Info contains build metadata.
type Info struct {
	Version   string `json:"version"             yaml:"version"`
	GitCommit string `json:"gitCommit,omitempty" yaml:"gitCommit,omitempty"`
	GitDate   string `json:"gitDate,omitempty"   yaml:"gitDate,omitempty"`
	Modified  bool   `json:"modified,omitempty"  yaml:"modified,omitempty"`
	GoVersion string `json:"goVersion"           yaml:"goVersion"`
}

// Current returns the build info of the running binary.
func Current() Info {
	bi, _ := debug.ReadBuildInfo()

	return fromBuildInfo(bi, Version, Commit)
}

func fromBuildInfo(bi *debug.BuildInfo, version, commit string) Info {
	info := Info{
		Version:   version,
		GitCommit: commit,
	}

	if bi == nil {
		if info.Version == "" {
			info.Version = "(devel)"
		}

		return info
	}

	info.GoVersion = bi.GoVersion

	if info.Version == "" {
		info.Version = bi.Main.Version
	}

	if info.Version == "" {
		info.Version = "(devel)"
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			info.GitDate = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}

	return info
}
