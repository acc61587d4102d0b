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
	"strings"

	"github.com/leanovate/gopter"

	"github.com/canardleteer/proptest-semver/pkg/comparator"
	"github.com/canardleteer/proptest-semver/pkg/defaults"
	"github.com/canardleteer/proptest-semver/pkg/oracle"
)

// MaxComparatorsInVersionReq is the largest number of comparators the
// requirement parser accepts. The parser does not export it, so it is pinned
// here and checked by tests on both sides of the boundary.
const MaxComparatorsInVersionReq = defaults.MaxComparatorsInVersionReq

// SemverVersionReq builds a requirement directly from between 1 and maxLen-1
// structured comparators [oracle.VersionReq]. No parsing is involved, so the
// comparator limit does not apply.
func SemverVersionReq(maxLen int) gopter.Gen {
	return VecSemverComparator(maxLen).Map(func(cs []oracle.Comparator) oracle.VersionReq {
		return oracle.VersionReq{Comparators: cs}
	})
}

// OptionalSemverVersionReq is SemverVersionReq present with probability p
// [*oracle.VersionReq].
func OptionalSemverVersionReq(p float64, maxLen int) gopter.Gen {
	return weightedOption[oracle.VersionReq](p, SemverVersionReq(maxLen))
}

// VersionReq renders a FullComparatorVec with default weights and parses it
// [*oracle.Requirement]. maxComparators should not exceed
// MaxComparatorsInVersionReq.
func VersionReq(maxComparators int) gopter.Gen {
	return VersionReqWeighted(maxComparators, DefaultComparatorVecWeights())
}

// VersionReqWeighted is VersionReq with explicit requirement shape weights.
//
// The parser's verdict is not negotiable: a rejected requirement, including
// one over the comparator limit, panics with an INTERNAL error wrapping the
// parser's error.
func VersionReqWeighted(maxComparators int, w ComparatorVecWeights) gopter.Gen {
	vec := FullComparatorVec(maxComparators, w)
	return func(params *gopter.GenParameters) *gopter.GenResult {
		v, ok := draw[comparator.ComparatorVec](vec, params)
		if !ok {
			return discard[*oracle.Requirement]()
		}
		return gopter.NewGenResult(mustParseReq(v.String()), gopter.NoShrinker)
	}
}

// OptionalVersionReq joins between 1 and maxComparators-1 comparator strings
// with "," and parses the result, present with probability p
// [*oracle.Requirement].
func OptionalVersionReq(p float64, maxComparators int) gopter.Gen {
	joined := VecComparatorString(maxComparators).Map(func(cs []string) string {
		return strings.Join(cs, ",")
	})
	option := weightedOption[string](p, joined)
	return func(params *gopter.GenParameters) *gopter.GenResult {
		s, ok := draw[*string](option, params)
		if !ok {
			return discard[*oracle.Requirement]()
		}
		if s == nil {
			return gopter.NewGenResult((*oracle.Requirement)(nil), gopter.NoShrinker)
		}
		return gopter.NewGenResult(mustParseReq(*s), gopter.NoShrinker)
	}
}

func mustParseReq(s string) *oracle.Requirement {
	req, err := oracle.ParseVersionReq(s)
	if err != nil {
		internal("generated requirement rejected", err, s)
	}
	return req
}
