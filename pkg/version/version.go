// Package version derives the application version from build metadata.
//
// An -ldflags override wins over the VCS stamp; without either the
// version reads "dev".
package version

import "runtime/debug"

// AppName is the application name used in version strings and protocol
// handshakes.
const AppName = "gearbox"

// commitOverride is set via -ldflags for container builds where .git is
// unavailable.
var commitOverride string

// GitCommit is the short commit hash, suffixed with "+dirty" when the
// working tree was modified at build time. "dev" when no build info is
// stamped (e.g. `go test`).
var GitCommit = "dev"

// BuildTime is the commit timestamp from the VCS stamp, empty when
// unavailable.
var BuildTime string

func init() {
	if commitOverride != "" {
		GitCommit = short(commitOverride)
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			BuildTime = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return
	}
	GitCommit = short(revision)
	if dirty {
		GitCommit += "+dirty"
	}
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "gearbox/<commit>" for user-agent strings and logging.
func Full() string {
	return AppName + "/" + GitCommit
}
