// Package build describes the running binary: its version and the commit
// it was built from.
//
// Release builds inject a JSON document with -ldflags:
//
//	go build -ldflags "-X 'github.com/amp-labs/amp-algorithms/build.Injected={\"version\":\"1.2.0\"}'"
//
// Other builds fall back to what the Go toolchain records in the binary.
package build

import (
	"encoding/json"
	"log/slog"
	"runtime/debug"
	"sync"
)

// DevelVersion is reported when no version is known.
const DevelVersion = "devel"

// Injected is set at link time, see the package documentation.
var Injected string //nolint:gochecknoglobals

// Info contains build metadata.
type Info struct {
	Version   string `json:"version"    yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"` //nolint:tagliatelle
	GitDate   string `json:"git_date"   yaml:"git_date"`   //nolint:tagliatelle
	GoVersion string `json:"go_version" yaml:"go_version"` //nolint:tagliatelle
}

// Parse deserializes a JSON string into build Info.
// Returns (nil, false) if the input is empty, "{}", or fails to parse.
func Parse(js string) (*Info, bool) {
	if len(js) == 0 || js == "{}" {
		return nil, false
	}

	var info Info

	if err := json.Unmarshal([]byte(js), &info); err != nil {
		slog.Warn("Failed to parse build info from JSON",
			"data", js,
			"error", err)

		return nil, false
	}

	return &info, true
}

// FromBuildInfo extracts Info from the toolchain's build information.
func FromBuildInfo(bi *debug.BuildInfo) Info {
	info := Info{Version: DevelVersion}

	if bi == nil {
		return info
	}

	info.GoVersion = bi.GoVersion

	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.GitCommit = s.Value
		case "vcs.time":
			info.GitDate = s.Value
		}
	}

	return info
}

var current = sync.OnceValue(func() Info { //nolint:gochecknoglobals
	bi, _ := debug.ReadBuildInfo()
	info := FromBuildInfo(bi)

	if injected, ok := Parse(Injected); ok {
		if injected.Version == "" {
			injected.Version = info.Version
		}

		if injected.GoVersion == "" {
			injected.GoVersion = info.GoVersion
		}

		return *injected
	}

	return info
})

// Current returns the Info of the running binary.
func Current() Info {
	return current()
}
