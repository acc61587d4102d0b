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
	"math"
	"strconv"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	"github.com/canardleteer/proptest-semver/pkg/grammar"
	"github.com/canardleteer/proptest-semver/pkg/oracle"
)

// smallComponentMax bounds the "small value" branch of Component.
const smallComponentMax = 1024

// SemVerString generates arbitrary SemVer 2.0.0 strings [string].
//
// Components are unbounded, as the grammar allows, so many values overflow
// the 64-bit parser. Use Version for values the parser always accepts.
func SemVerString() gopter.Gen {
	return gen.RegexMatch(grammar.SemVerPattern)
}

// Component generates a numeric version component [uint64] across the full
// 64-bit range. Zero, one and the values next to math.MaxUint64 are drawn
// far more often than uniform sampling would.
func Component() gopter.Gen {
	return weighted(
		gen.WeightedGen{Weight: 1, Gen: gen.OneConstOf(uint64(0), uint64(1), uint64(math.MaxUint64-1), uint64(math.MaxUint64))},
		gen.WeightedGen{Weight: 2, Gen: gen.UInt64Range(0, smallComponentMax)},
		gen.WeightedGen{Weight: 7, Gen: gen.UInt64()},
	)
}

// ComponentString generates a numeric component as decimal text [string].
// Most values fit in a uint64; the rest are grammar-legal numbers of
// arbitrary length that overflow it.
func ComponentString() gopter.Gen {
	return weighted(
		gen.WeightedGen{Weight: 9, Gen: Component().Map(formatComponent)},
		gen.WeightedGen{Weight: 1, Gen: gen.RegexMatch(grammar.ComponentPattern)},
	)
}

func formatComponent(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// PreReleaseString generates a pre-release without the "-" prefix [string].
func PreReleaseString() gopter.Gen {
	return gen.RegexMatch(grammar.AlwaysPreReleasePattern)
}

// OptionPreReleaseString generates a pre-release that is present with
// probability p [*string]. Absent is nil, never "".
func OptionPreReleaseString(p float64) gopter.Gen {
	return weightedOption[string](p, PreReleaseString())
}

// Prerelease generates a validated pre-release [oracle.Prerelease].
func Prerelease() gopter.Gen {
	return PreReleaseString().Map(mustPrerelease)
}

// OptionPrerelease generates a validated pre-release that is present with
// probability p [*oracle.Prerelease].
func OptionPrerelease(p float64) gopter.Gen {
	return weightedOption[oracle.Prerelease](p, Prerelease())
}

// BuildMetadataString generates build metadata without the "+" prefix [string].
func BuildMetadataString() gopter.Gen {
	return gen.RegexMatch(grammar.AlwaysBuildMetadataPattern)
}

// OptionBuildMetadataString generates build metadata that is present with
// probability p [*string].
func OptionBuildMetadataString(p float64) gopter.Gen {
	return weightedOption[string](p, BuildMetadataString())
}

// BuildMetadata generates validated build metadata [oracle.BuildMetadata].
func BuildMetadata() gopter.Gen {
	return BuildMetadataString().Map(mustBuildMetadata)
}

// OptionBuildMetadata generates validated build metadata that is present
// with probability p [*oracle.BuildMetadata].
func OptionBuildMetadata(p float64) gopter.Gen {
	return weightedOption[oracle.BuildMetadata](p, BuildMetadata())
}

func mustPrerelease(s string) oracle.Prerelease {
	pre, err := oracle.NewPrerelease(s)
	if err != nil {
		internal("generated pre-release rejected", err, s)
	}
	return pre
}

func mustBuildMetadata(s string) oracle.BuildMetadata {
	build, err := oracle.NewBuildMetadata(s)
	if err != nil {
		internal("generated build metadata rejected", err, s)
	}
	return build
}
