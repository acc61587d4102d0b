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
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	"github.com/canardleteer/proptest-semver/pkg/comparator"
	"github.com/canardleteer/proptest-semver/pkg/defaults"
	"github.com/canardleteer/proptest-semver/pkg/oracle"
)

// SemverComparator generates a structured comparator [oracle.Comparator]:
// an operator from DefaultOp, a major component, an optional minor and
// patch, and a pre-release. Comparators carry no build metadata.
func SemverComparator() gopter.Gen {
	op := DefaultOp()
	component := Component()
	optional := weightedOption[uint64](0.5, component)
	pre := Prerelease()

	return func(params *gopter.GenParameters) *gopter.GenResult {
		o, ok1 := draw[oracle.Op](op, params)
		major, ok2 := draw[uint64](component, params)
		minor, ok3 := draw[*uint64](optional, params)
		patch, ok4 := draw[*uint64](optional, params)
		pr, ok5 := draw[oracle.Prerelease](pre, params)
		if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
			return discard[oracle.Comparator]()
		}
		return gopter.NewGenResult(oracle.Comparator{
			Op:    o,
			Major: major,
			Minor: minor,
			Patch: patch,
			Pre:   pr,
		}, gopter.NoShrinker)
	}
}

// VecSemverComparator generates between 1 and maxLen-1 structured
// comparators [[]oracle.Comparator].
func VecSemverComparator(maxLen int) gopter.Gen {
	return boundedSliceOf[oracle.Comparator](maxLen, SemverComparator())
}

// FullComparator generates one comparator shape [comparator.FullComparator],
// never the bare Wildcard. Plain comparators carry a pre-release, and
// independently build metadata, with probability 0.8 each.
func FullComparator(w FullComparatorWeights) gopter.Gen {
	must(w.Validate())
	return weighted(
		gen.WeightedGen{Weight: int(w.WildcardMinor), Gen: wildcardMinor()},
		gen.WeightedGen{Weight: int(w.WildcardPatch), Gen: wildcardPatch()},
		gen.WeightedGen{Weight: int(w.Plain), Gen: plainComparator()},
	)
}

// DefaultFullComparator is FullComparator with DefaultFullComparatorWeights.
func DefaultFullComparator() gopter.Gen {
	return FullComparator(DefaultFullComparatorWeights())
}

func plainComparator() gopter.Gen {
	op := ComparatorOp()
	component := Component()
	pre := OptionPreReleaseString(defaults.PlainComparatorProbability)
	build := OptionBuildMetadataString(defaults.PlainComparatorProbability)

	return func(params *gopter.GenParameters) *gopter.GenResult {
		o, ok1 := draw[oracle.Op](op, params)
		major, ok2 := draw[uint64](component, params)
		minor, ok3 := draw[uint64](component, params)
		patch, ok4 := draw[uint64](component, params)
		pr, ok5 := draw[*string](pre, params)
		bm, ok6 := draw[*string](build, params)
		if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
			return discard[comparator.FullComparator]()
		}
		var c comparator.FullComparator = comparator.Plain{
			Op: o, Major: major, Minor: minor, Patch: patch, Pre: pr, Build: bm,
		}
		return gopter.NewGenResult(c, gopter.NoShrinker)
	}
}

func wildcardMinor() gopter.Gen {
	op := ComparatorOp()
	component := Component()

	return func(params *gopter.GenParameters) *gopter.GenResult {
		o, ok1 := draw[oracle.Op](op, params)
		major, ok2 := draw[uint64](component, params)
		if !ok1 || !ok2 {
			return discard[comparator.FullComparator]()
		}
		var c comparator.FullComparator = comparator.WildcardMinor{Op: o, Major: major}
		return gopter.NewGenResult(c, gopter.NoShrinker)
	}
}

func wildcardPatch() gopter.Gen {
	op := ComparatorOp()
	component := Component()

	return func(params *gopter.GenParameters) *gopter.GenResult {
		o, ok1 := draw[oracle.Op](op, params)
		major, ok2 := draw[uint64](component, params)
		minor, ok3 := draw[uint64](component, params)
		if !ok1 || !ok2 || !ok3 {
			return discard[comparator.FullComparator]()
		}
		var c comparator.FullComparator = comparator.WildcardPatch{Op: o, Major: major, Minor: minor}
		return gopter.NewGenResult(c, gopter.NoShrinker)
	}
}

// ComparatorString generates the text of one comparator the requirement
// parser accepts [string].
func ComparatorString() gopter.Gen {
	return DefaultFullComparator().Map(func(c comparator.FullComparator) string {
		return c.String()
	})
}

// VecComparatorString generates between 1 and maxLen-1 comparator strings
// [[]string].
func VecComparatorString(maxLen int) gopter.Gen {
	return boundedSliceOf[string](maxLen, ComparatorString())
}

// ComparatorList generates exactly n full comparators [comparator.List].
// The exact length keeps the comparator limit boundary deterministic.
func ComparatorList(n int) gopter.Gen {
	must(validateMaxLength(n))
	return sliceOfLen[comparator.FullComparator](n, DefaultFullComparator()).
		Map(func(cs []comparator.FullComparator) comparator.List {
			return comparator.List(cs)
		})
}

// FullComparatorVec generates a requirement shape [comparator.ComparatorVec]:
// the bare wildcard with weight w.Wildcard, or a List of exactly maxLen
// comparators with weight w.List.
func FullComparatorVec(maxLen int, w ComparatorVecWeights) gopter.Gen {
	must(w.Validate())
	var wildcard comparator.ComparatorVec = comparator.WildcardVec{}
	choices := []gen.WeightedGen{
		{Weight: int(w.Wildcard), Gen: gen.Const(wildcard)},
	}
	if w.List > 0 {
		list := ComparatorList(maxLen).Map(func(l comparator.List) comparator.ComparatorVec {
			return l
		})
		choices = append(choices, gen.WeightedGen{Weight: int(w.List), Gen: list})
	}
	return weighted(choices...)
}

// DefaultFullComparatorVec is FullComparatorVec with DefaultComparatorVecWeights.
func DefaultFullComparatorVec(maxLen int) gopter.Gen {
	return FullComparatorVec(maxLen, DefaultComparatorVecWeights())
}
