// Package version derives the build identity reported in logs and protocol
// handshakes. An -ldflags override wins, then the VCS revision embedded in
// the build info, then "dev".
package version

import "runtime/debug"

// AppName identifies this binary in version strings.
const AppName = "tarsy"

// commit can be injected with -ldflags for builds without VCS metadata,
// e.g. container builds from a source tarball.
var commit string

// GitCommit is the short revision this binary was built from, or "dev".
var GitCommit = resolveCommit()

func resolveCommit() string {
	if commit != "" {
		return short(commit)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return short(s.Value)
			}
		}
	}
	return "dev"
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "<app>/<commit>", e.g. "tarsy/a3f8c2d1".
func Full() string {
	return AppName + "/" + GitCommit
}
