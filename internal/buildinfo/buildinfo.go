// Package buildinfo provides build metadata for shacalc binaries.
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is injected at build time with -ldflags "-X shacalc/internal/buildinfo.Version=...".
	Version string
	// Commit is the source control revision. When not injected, the VCS
	// revision recorded by the Go toolchain is used.
	Commit string
	// Date is the build timestamp.
	Date string
)

// Info contains normalized build metadata.
type Info struct {
	Version string
	Commit  string
	Date    string
	Go      string
	OS      string
	Arch    string
}

// Get returns build metadata, filling gaps from the embedded module build
// info and finally from fixed defaults.
func Get() Info {
	info := Info{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}

	if embedded, ok := debug.ReadBuildInfo(); ok {
		fillFromEmbedded(&info, embedded)
	}

	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return info
}

func fillFromEmbedded(info *Info, embedded *debug.BuildInfo) {
	if info.Version == "" && embedded.Main.Version != "" && embedded.Main.Version != "(devel)" {
		info.Version = embedded.Main.Version
	}
	for _, setting := range embedded.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = setting.Value
			}
		case "vcs.time":
			if info.Date == "" {
				info.Date = setting.Value
			}
		}
	}
}

// String formats build metadata for CLI output.
func (i Info) String() string {
	return fmt.Sprintf("shacalc %s\ncommit: %s\nbuilt:  %s\ngo:     %s\nos/arch:%s/%s", i.Version, i.Commit, i.Date, i.Go, i.OS, i.Arch)
}
