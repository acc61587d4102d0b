// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package generator

import (
	"github.com/canardleteer/proptest-semver/pkg/defaults"
	"github.com/canardleteer/proptest-semver/pkg/errors"
)

// OperatorWeights controls Op. Default applies to each of the seven
// non-wildcard operators, Wildcard to the wildcard operator. A zero weight
// excludes that branch.
type OperatorWeights struct {
	Default  uint32 `json:"default" yaml:"default"`
	Wildcard uint32 `json:"wildcard" yaml:"wildcard"`
}

// DefaultOperatorWeights returns {Default: 5, Wildcard: 1}.
func DefaultOperatorWeights() OperatorWeights {
	return OperatorWeights{
		Default:  defaults.OperatorDefaultWeight,
		Wildcard: defaults.OperatorWildcardWeight,
	}
}

// Validate checks that at least one branch can be chosen.
func (w OperatorWeights) Validate() error {
	return positiveTotal("operator", w.Default, w.Wildcard)
}

// FullComparatorWeights controls FullComparator. The bare wildcard shape has
// no weight because it is never produced.
type FullComparatorWeights struct {
	Plain         uint32 `json:"plain" yaml:"plain"`
	WildcardMinor uint32 `json:"wildcardMinor" yaml:"wildcardMinor"`
	WildcardPatch uint32 `json:"wildcardPatch" yaml:"wildcardPatch"`
}

// DefaultFullComparatorWeights returns {Plain: 7, WildcardMinor: 1, WildcardPatch: 1}.
func DefaultFullComparatorWeights() FullComparatorWeights {
	return FullComparatorWeights{
		Plain:         defaults.FullComparatorPlainWeight,
		WildcardMinor: defaults.FullComparatorWildcardMinorWeight,
		WildcardPatch: defaults.FullComparatorWildcardPatchWeight,
	}
}

// Validate checks that at least one branch can be chosen.
func (w FullComparatorWeights) Validate() error {
	return positiveTotal("fullComparator", w.Plain, w.WildcardMinor, w.WildcardPatch)
}

// ComparatorVecWeights controls FullComparatorVec.
type ComparatorVecWeights struct {
	Wildcard uint32 `json:"wildcard" yaml:"wildcard"`
	List     uint32 `json:"list" yaml:"list"`
}

// DefaultComparatorVecWeights returns {Wildcard: 1, List: 14}.
func DefaultComparatorVecWeights() ComparatorVecWeights {
	return ComparatorVecWeights{
		Wildcard: defaults.ComparatorVecWildcardWeight,
		List:     defaults.ComparatorVecListWeight,
	}
}

// Validate checks that at least one branch can be chosen.
func (w ComparatorVecWeights) Validate() error {
	return positiveTotal("comparatorVec", w.Wildcard, w.List)
}

// Probabilities are the chances, in [0, 1], that a version carries a
// pre-release and build metadata. They are independent.
type Probabilities struct {
	PreRelease    float64 `json:"preRelease" yaml:"preRelease"`
	BuildMetadata float64 `json:"buildMetadata" yaml:"buildMetadata"`
}

// DefaultProbabilities returns {PreRelease: 0.5, BuildMetadata: 0.5}.
func DefaultProbabilities() Probabilities {
	return Probabilities{
		PreRelease:    defaults.ProbabilityOfPreRelease,
		BuildMetadata: defaults.ProbabilityOfBuildMetadata,
	}
}

// Validate checks that both probabilities are in [0, 1].
func (p Probabilities) Validate() error {
	if err := validateProbability("preRelease", p.PreRelease); err != nil {
		return err
	}
	return validateProbability("buildMetadata", p.BuildMetadata)
}

func positiveTotal(name string, weights ...uint32) error {
	var total uint64
	for _, w := range weights {
		total += uint64(w)
	}
	if total == 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidConfig,
			"at least one weight must be positive", map[string]any{"weights": name})
	}
	return nil
}

func validateProbability(name string, p float64) error {
	// NaN fails both comparisons.
	if !(p >= 0 && p <= 1) {
		return errors.NewWithContext(errors.ErrCodeInvalidConfig,
			"probability must be in [0, 1]", map[string]any{"probability": name, "value": p})
	}
	return nil
}

func validateMaxLength(n int) error {
	if n < 1 {
		return errors.NewWithContext(errors.ErrCodeInvalidConfig,
			"maximum length must be at least 1", map[string]any{"maxLength": n})
	}
	return nil
}

// must panics with err. Generators are built at test setup time, where an
// invalid configuration is a programming error.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
