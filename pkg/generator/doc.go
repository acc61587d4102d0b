// Package generator provides gopter generators for Semantic Versioning 2.0.0
// values: version strings, numeric components, pre-release and build
// metadata, operators, comparators and requirements.
//
// Every generator is a gopter.Gen, a pure function of *gopter.GenParameters.
// All randomness comes from the parameters' Rng, so equal seeds yield equal
// values and generators hold no state between draws.
//
// # Construction Paths
//
// Versions and requirements can be built two ways:
//
//   - String path (Version, VersionReq): format text from grammar parts and
//     parse it with the oracle. The parser has the last word.
//   - Struct path (SemverVersion, SemverVersionReq): construct the value
//     directly from 64-bit components, bypassing parsing.
//
// On the string path, a component that overflows 64 bits is tolerated and
// redrawn. Any other rejection is a defect and panics with an INTERNAL
// *errors.StructuredError.
//
// # Configuration
//
// Weights and probabilities are explicit structs with documented defaults:
//
//	g := generator.Op(generator.OperatorWeights{Default: 0, Wildcard: 1})
//
// Invalid configuration (all weights zero, a probability outside [0, 1], a
// maximum length below 1) panics with an INVALID_CONFIG error when the
// generator is built.
//
// # Usage
//
//	properties := gopter.NewProperties(nil)
//	properties.Property("versions parse", prop.ForAll(
//	    func(v *semver.Version) bool { return v != nil },
//	    generator.Version(),
//	))
//	properties.TestingRun(t)
package generator
