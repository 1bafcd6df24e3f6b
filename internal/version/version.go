// Package version holds build metadata injected through -ldflags by
// the release build. The defaults identify a local dev build.
package version

var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)
