package app

import (
	"runtime/debug"
	"strings"
)

// Stamped by `mage build` via -ldflags -X. A plain `go build` leaves the
// defaults, and BuildVersion then falls back to the module's VCS metadata.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion is reported in startup logs and by /health,
// e.g. "v1.2.0 (abc1234, 2026-01-02T15:04:05Z)".
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		vcsCommit, vcsTime := vcsInfo()
		if commit == "" {
			commit = vcsCommit
		}
		if built == "" {
			built = vcsTime
		}
	}
	return formatVersion(Version, commit, built)
}

func formatVersion(version, commit, built string) string {
	var meta []string
	if len(commit) > 7 {
		commit = commit[:7]
	}
	for _, s := range []string{commit, built} {
		if s != "" {
			meta = append(meta, s)
		}
	}
	if len(meta) == 0 {
		return version
	}
	return version + " (" + strings.Join(meta, ", ") + ")"
}

func vcsInfo() (commit, built string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.time":
			built = s.Value
		}
	}
	return commit, built
}
