// Package version exposes build-time version metadata.
package version

// NodefilterVersion is the semantic version string embedded at build time.
var NodefilterVersion = "0.0.0-src"

// Set version at compile time with
// go build -ldflags "-X nodefilter/pkg/version.NodefilterVersion=1.0.0" -o nodefilter

// For a release build with version and optimization flags:
// go build -ldflags "-s -w -X nodefilter/pkg/version.NodefilterVersion=1.0.0" -o nodefilter
