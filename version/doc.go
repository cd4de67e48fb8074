// Package version reports build information for seqkit binaries.
//
// Version, commit and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/seqkit/version.Version=1.0.0"
//
// Fields left unset are filled from the module build info when available.
package version
