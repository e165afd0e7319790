// Package version reports build information for sheetfeed binaries.
//
// Version, git commit, branch, and build time are set at compile time
// via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/sheetfeed/version.Version=1.0.0" ./cmd/gdocstojson
//
// Unset values fall back to the VCS stamps the Go toolchain embeds.
package version
