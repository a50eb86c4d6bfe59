// Package version reports build information for blogctl.
//
// Version, Commit, Branch and BuildTime are set with -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/blogkit/version.Version=1.2.0" ./cmd/blogctl
//
// Values left empty are filled from the VCS settings Go embeds in the
// binary.
package version
