// Package defaults provides centralized default values for the generators,
// the sampler and the semvergen command.
//
// Centralizing these values keeps the generator configuration structs, the
// YAML profile loader and the CLI flags in agreement.
//
// # Categories
//
//   - Weights: relative weights for weighted choices (operators, comparator
//     shapes, requirement shapes)
//   - Probabilities: probability of optional grammar elements being present
//   - Limits: comparator cap and sampler bounds
//   - Timeouts: sampler deadline
//
// # Usage
//
//	import "github.com/canardleteer/proptest-semver/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.SampleTimeout)
//	defer cancel()
package defaults
