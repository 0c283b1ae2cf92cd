package version

import (
	"fmt"
	"runtime"
)

// These variables are set at build time via -ldflags
var (
	Version   = "dev"     // -X github.com/aversacc/avers-site/internal/version.Version=v1.0.0
	BuildTime = "unknown" // -X github.com/aversacc/avers-site/internal/version.BuildTime=...
	GitCommit = "unknown" // -X github.com/aversacc/avers-site/internal/version.GitCommit=...
)

// BuildInfo contains build information
type BuildInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetBuildInfo returns complete build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// GetVersionString returns a formatted version string
func GetVersionString() string {
	if BuildTime == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit)
}
