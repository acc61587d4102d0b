// Package config loads generator profiles.
//
// A profile overrides the default weights, probabilities and sequence bound
// used when generators are built outside of Go code, for example by the
// sampler behind the semvergen command:
//
//	operator: {default: 5, wildcard: 1}
//	fullComparator: {plain: 7, wildcardMinor: 1, wildcardPatch: 1}
//	comparatorVec: {wildcard: 1, list: 14}
//	probabilities: {preRelease: 0.5, buildMetadata: 0.5}
//	maxLength: 32
//
// Keys that are absent keep their defaults. Unknown keys are rejected so a
// misspelled weight does not silently fall back. Profiles may be YAML or JSON,
// local or fetched over http(s).
package config
