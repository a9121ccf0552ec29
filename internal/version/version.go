// Package version carries the build identity stamped in via ldflags. Both
// binaries and the health endpoint report from here.
package version

var (
	// Version is the release tag, "dev" for untagged builds.
	Version = "dev"
	// Commit is the short git hash the binary was built from.
	Commit = "none"
)
