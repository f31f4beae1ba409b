// Package build reports which version of binsort is running.
//
// Release builds inject a JSON blob with -ldflags:
//
//	go build -ldflags "-X github.com/amp-labs/amp-binsort/build.infoJSON=$(cat build.json)" ./cmd/binsort
//
// Other builds fall back to what the Go toolchain records in the binary.
package build

import (
	"encoding/json"
	"log/slog"
	"runtime/debug"
	"strings"
)

const develVersion = "dev"

var infoJSON string //nolint:gochecknoglobals

// Info contains build metadata.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"` //nolint:tagliatelle
	BuildTime string `json:"build_time"` //nolint:tagliatelle
	GoVersion string `json:"go_version"` //nolint:tagliatelle
	Modified  bool   `json:"modified"`
}

// Parse deserializes build Info from JSON.
// Returns (nil, false) if the input is empty, "{}", or fails to parse.
func Parse(js string) (*Info, bool) {
	js = strings.TrimSpace(js)
	if js == "" || js == "{}" {
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

// Current returns the injected build info if there is any, otherwise the
// module version and VCS settings embedded by the toolchain.
func Current() Info {
	if info, ok := Parse(infoJSON); ok {
		if info.Version == "" {
			info.Version = develVersion
		}

		return *info
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{Version: develVersion}
	}

	return fromBuildInfo(bi)
}

func fromBuildInfo(bi *debug.BuildInfo) Info {
	info := Info{
		Version:   bi.Main.Version,
		GoVersion: bi.GoVersion,
	}

	if info.Version == "" || info.Version == "(devel)" {
		info.Version = develVersion
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.GitCommit = s.Value
		case "vcs.time":
			info.BuildTime = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}

	return info
}

// String renders the info for --version output, e.g. "v1.2.0 (abc1234, go1.25.1)".
func (i Info) String() string {
	var details []string

	if i.GitCommit != "" {
		commit := i.GitCommit
		if len(commit) > 7 { //nolint:mnd
			commit = commit[:7]
		}

		if i.Modified {
			commit += "-dirty"
		}

		details = append(details, commit)
	}

	if i.GoVersion != "" {
		details = append(details, i.GoVersion)
	}

	if len(details) == 0 {
		return i.Version
	}

	return i.Version + " (" + strings.Join(details, ", ") + ")"
}
