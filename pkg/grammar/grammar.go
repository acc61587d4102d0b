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

package grammar

import "regexp"

// SemVerPattern matches a Semantic Versioning 2.0.0 string. It is the regular
// expression published at https://semver.org with the surrounding anchors
// removed so it can be embedded in larger patterns or handed to a string
// generator. Go's \d only matches ASCII digits, so the pattern is ASCII only.
const SemVerPattern = `(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?` +
	`(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?`

// MajorMinorPatchPattern matches the MAJOR.MINOR.PATCH triple.
//
// The grammar allows components of any length. The version parser used as the
// oracle caps them at math.MaxUint64.
const MajorMinorPatchPattern = `(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)`

// ComponentPattern matches a single MAJOR, MINOR or PATCH component: zero, or a
// number without a leading zero.
const ComponentPattern = `(0|[1-9]\d*)`

// SometimesPreReleasePattern matches an optional pre-release, prefixed with "-".
const SometimesPreReleasePattern = `(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?`

// SometimesBuildMetadataPattern matches optional build metadata, prefixed with "+".
const SometimesBuildMetadataPattern = `(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?`

// AlwaysPreReleasePattern matches a pre-release without the "-" prefix.
const AlwaysPreReleasePattern = `(?:((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))`

// AlwaysBuildMetadataPattern matches build metadata without the "+" prefix.
const AlwaysBuildMetadataPattern = `(?:([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))`

// Anchored wraps pattern so that it must match an entire input.
func Anchored(pattern string) string {
	return `^(?:` + pattern + `)$`
}

// Compiled, anchored validators for the published patterns.
var (
	SemVer        = regexp.MustCompile(Anchored(SemVerPattern))
	Component     = regexp.MustCompile(Anchored(ComponentPattern))
	PreRelease    = regexp.MustCompile(Anchored(AlwaysPreReleasePattern))
	BuildMetadata = regexp.MustCompile(Anchored(AlwaysBuildMetadataPattern))
)

// IsASCII reports whether s contains only 7-bit ASCII bytes.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}
