// Package grammar holds the Semantic Versioning 2.0.0 grammar as regular
// expression text.
//
// # Overview
//
// The patterns are the published, stable surface of this module: generators in
// package generator draw strings from them, and other libraries may build their
// own generators on the same text. Every pattern is unanchored so it can be
// embedded; use Anchored, or the compiled validators, to test a whole string.
//
// # Patterns
//
//   - SemVerPattern: a full version string
//   - MajorMinorPatchPattern, ComponentPattern: numeric parts
//   - AlwaysPreReleasePattern, SometimesPreReleasePattern: pre-release identifiers
//   - AlwaysBuildMetadataPattern, SometimesBuildMetadataPattern: build metadata
//
// The "Always" variants omit the "-" / "+" prefix. The "Sometimes" variants
// include the prefix and may match the empty string.
//
// # Usage
//
//	if grammar.SemVer.MatchString("1.2.3-rc.1+build.5") {
//	    // valid
//	}
//
//	re := regexp.MustCompile(grammar.Anchored(grammar.MajorMinorPatchPattern + grammar.SometimesPreReleasePattern))
package grammar
