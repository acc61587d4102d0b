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

	"github.com/Masterminds/semver/v3"
	"github.com/leanovate/gopter"

	"github.com/canardleteer/proptest-semver/pkg/oracle"
)

// VersionString generates "MAJOR.MINOR.PATCH[-pre][+build]" text from
// independently drawn parts [string]. Components may exceed 64 bits.
func VersionString(p Probabilities) gopter.Gen {
	must(p.Validate())
	component := ComponentString()
	pre := OptionPreReleaseString(p.PreRelease)
	build := OptionBuildMetadataString(p.BuildMetadata)

	return func(params *gopter.GenParameters) *gopter.GenResult {
		major, ok1 := draw[string](component, params)
		minor, ok2 := draw[string](component, params)
		patch, ok3 := draw[string](component, params)
		pr, ok4 := draw[*string](pre, params)
		bm, ok5 := draw[*string](build, params)
		if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
			return discard[string]()
		}
		return gopter.NewGenResult(formatVersion(major, minor, patch, pr, bm), gopter.NoShrinker)
	}
}

func formatVersion(major, minor, patch string, pre, build *string) string {
	var b strings.Builder
	b.WriteString(major)
	b.WriteByte('.')
	b.WriteString(minor)
	b.WriteByte('.')
	b.WriteString(patch)
	if pre != nil {
		b.WriteByte('-')
		b.WriteString(*pre)
	}
	if build != nil {
		b.WriteByte('+')
		b.WriteString(*build)
	}
	return b.String()
}

// maxOverflowRedraws bounds how many times VersionWeighted redraws after an
// overflowing component before discarding the draw.
const maxOverflowRedraws = 16

// VersionWeighted generates a version by formatting it as text and parsing
// it [*semver.Version].
//
// A component that overflows 64 bits is the one rejection tolerated: the text
// is redrawn, and after maxOverflowRedraws the draw is discarded. Any other
// rejection panics, since it means the grammar produced text the parser
// disallows.
func VersionWeighted(p Probabilities) gopter.Gen {
	text := VersionString(p)
	return func(params *gopter.GenParameters) *gopter.GenResult {
		for range maxOverflowRedraws {
			s, ok := draw[string](text, params)
			if !ok {
				continue
			}
			v, err := oracle.ParseVersion(s)
			if err == nil {
				return gopter.NewGenResult(v, gopter.NoShrinker)
			}
			if !oracle.IsOverflow(err) {
				internal("generated version rejected", err, s)
			}
		}
		return discard[*semver.Version]()
	}
}

// Version is VersionWeighted with DefaultProbabilities.
func Version() gopter.Gen {
	return VersionWeighted(DefaultProbabilities())
}

// SemverVersionWeighted generates a version by constructing it directly from
// 64-bit components, without parsing [*semver.Version]. Absent pre-release
// and build metadata are the empty values.
func SemverVersionWeighted(p Probabilities) gopter.Gen {
	must(p.Validate())
	component := Component()
	pre := OptionPrerelease(p.PreRelease)
	build := OptionBuildMetadata(p.BuildMetadata)

	return func(params *gopter.GenParameters) *gopter.GenResult {
		major, ok1 := draw[uint64](component, params)
		minor, ok2 := draw[uint64](component, params)
		patch, ok3 := draw[uint64](component, params)
		pr, ok4 := draw[*oracle.Prerelease](pre, params)
		bm, ok5 := draw[*oracle.BuildMetadata](build, params)
		if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
			return discard[*semver.Version]()
		}

		preValue := oracle.EmptyPrerelease
		if pr != nil {
			preValue = *pr
		}
		buildValue := oracle.EmptyBuildMetadata
		if bm != nil {
			buildValue = *bm
		}
		return gopter.NewGenResult(oracle.NewVersion(major, minor, patch, preValue, buildValue), gopter.NoShrinker)
	}
}

// SemverVersion is SemverVersionWeighted with DefaultProbabilities.
func SemverVersion() gopter.Gen {
	return SemverVersionWeighted(DefaultProbabilities())
}

// VecVersions generates between 1 and maxLen-1 string-path versions
// [[]*semver.Version].
func VecVersions(maxLen int) gopter.Gen {
	return boundedSliceOf[*semver.Version](maxLen, Version())
}

// VecSemverVersions generates between 1 and maxLen-1 struct-path versions
// [[]*semver.Version].
func VecSemverVersions(maxLen int) gopter.Gen {
	return boundedSliceOf[*semver.Version](maxLen, SemverVersion())
}
