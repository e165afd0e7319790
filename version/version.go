package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Product is the name reported in the User-Agent of outbound requests.
const Product = "sheetfeed"

var (
	// These variables are set at build time using -ldflags
	Version   = "dev"
	GitCommit = ""
	GitBranch = ""
	BuildTime = ""
	GoVersion = ""
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info represents version information.
type Info struct {
	Version   string    `json:"version" yaml:"version"`
	GitCommit string    `json:"git_commit" yaml:"git_commit"`
	GitBranch string    `json:"git_branch" yaml:"git_branch"`
	BuildTime string    `json:"build_time" yaml:"build_time"`
	GoVersion string    `json:"go_version" yaml:"go_version"`
	BuildDate time.Time `json:"build_date" yaml:"build_date"`
	IsRelease bool      `json:"is_release" yaml:"is_release"`
	IsDirty   bool      `json:"is_dirty" yaml:"is_dirty"`
}

// GetVersionInfo returns the build information, preferring -ldflags values
// over embedded VCS stamps.
func GetVersionInfo() *Info {
	info := &Info{
		Version:   Version,
		GitCommit: GitCommit,
		GitBranch: GitBranch,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		IsRelease: Version != "dev" && !strings.Contains(Version, "dirty"),
	}
	if BuildTime != "" {
		if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
			info.BuildDate = t
		}
	}

	if buildInfo, ok := readBuildInfo(); ok {
		applyBuildInfo(info, buildInfo)
	}
	return info
}

func applyBuildInfo(info *Info, buildInfo *debug.BuildInfo) {
	if info.GoVersion == "" {
		info.GoVersion = buildInfo.GoVersion
	}
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = setting.Value
				if len(info.GitCommit) > 7 {
					info.GitCommit = info.GitCommit[:7]
				}
			}
		case "vcs.modified":
			info.IsDirty = setting.Value == "true"
		case "vcs.time":
			if info.BuildTime == "" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					info.BuildDate = t
					info.BuildTime = setting.Value
				}
			}
		}
	}
}

// GetShortVersion returns version, commit and dirty marker joined by dashes.
func GetShortVersion() string {
	info := GetVersionInfo()
	parts := []string{info.Version}
	if info.GitCommit != "" {
		parts = append(parts, info.GitCommit)
		if info.IsDirty {
			parts = append(parts, "dirty")
		}
	}
	return strings.Join(parts, "-")
}

// String returns the line printed by --version.
func String() string {
	info := GetVersionInfo()
	s := fmt.Sprintf("%s %s", Product, GetShortVersion())
	if info.GitBranch != "" && info.GitBranch != "main" && info.GitBranch != "master" {
		s += " (" + info.GitBranch + ")"
	}
	if !info.BuildDate.IsZero() {
		s += " built " + info.BuildDate.UTC().Format(time.RFC3339)
	}
	if info.GoVersion != "" {
		s += " " + info.GoVersion
	}
	return s
}

// UserAgent returns the User-Agent header value for outbound requests.
func UserAgent() string {
	return Product + "/" + Version
}
