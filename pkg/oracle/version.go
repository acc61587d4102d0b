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

package oracle

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/canardleteer/proptest-semver/pkg/errors"
)

// overflowMarker is the text the parser reports when a numeric component does
// not fit in a uint64. The parser does not expose a typed error for this case
// on every path, so classification is done on the message.
const overflowMarker = "value out of range"

// Prerelease is a validated pre-release identifier sequence without the "-"
// prefix. The empty value means "no pre-release".
type Prerelease string

// EmptyPrerelease is the explicit "absent" pre-release.
const EmptyPrerelease Prerelease = ""

// BuildMetadata is a validated build-metadata identifier sequence without the
// "+" prefix. The empty value means "no build metadata".
type BuildMetadata string

// EmptyBuildMetadata is the explicit "absent" build metadata.
const EmptyBuildMetadata BuildMetadata = ""

// IsEmpty returns true if no pre-release is present.
func (p Prerelease) IsEmpty() bool { return p == EmptyPrerelease }

// String returns the identifier sequence.
func (p Prerelease) String() string { return string(p) }

// IsEmpty returns true if no build metadata is present.
func (b BuildMetadata) IsEmpty() bool { return b == EmptyBuildMetadata }

// String returns the identifier sequence.
func (b BuildMetadata) String() string { return string(b) }

var zeroVersion = semver.New(0, 0, 0, "", "")

// NewPrerelease validates s with the parser's own pre-release rules.
// The empty string is accepted and yields EmptyPrerelease.
func NewPrerelease(s string) (Prerelease, error) {
	if _, err := zeroVersion.SetPrerelease(s); err != nil {
		return EmptyPrerelease, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"invalid pre-release", err, map[string]any{"prerelease": s})
	}
	return Prerelease(s), nil
}

// NewBuildMetadata validates s with the parser's own build-metadata rules.
// The empty string is accepted and yields EmptyBuildMetadata.
func NewBuildMetadata(s string) (BuildMetadata, error) {
	if _, err := zeroVersion.SetMetadata(s); err != nil {
		return EmptyBuildMetadata, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"invalid build metadata", err, map[string]any{"metadata": s})
	}
	return BuildMetadata(s), nil
}

// NewVersion constructs a version directly from its parts, bypassing string
// parsing. The result is structurally equal to ParseVersion of its String().
func NewVersion(major, minor, patch uint64, pre Prerelease, build BuildMetadata) *semver.Version {
	return semver.New(major, minor, patch, string(pre), string(build))
}

// ParseVersion parses a strict SemVer 2.0.0 string: no "v" prefix, exactly
// three numeric components, no leading zeros.
//
// A component larger than math.MaxUint64 yields an ErrCodeOverflow error; use
// IsOverflow to tell it apart from a grammar rejection (ErrCodeInvalidRequest).
func ParseVersion(s string) (*semver.Version, error) {
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		if isOverflowCause(err) {
			return nil, errors.WrapWithContext(errors.ErrCodeOverflow,
				"version number exceeds uint64 range", err, map[string]any{"version": s})
		}
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"invalid version", err, map[string]any{"version": s})
	}
	return v, nil
}

// IsOverflow reports whether err is the numeric-overflow rejection produced by
// ParseVersion.
func IsOverflow(err error) bool {
	return errors.IsCode(err, errors.ErrCodeOverflow)
}

func isOverflowCause(err error) bool {
	return err != nil && strings.Contains(err.Error(), overflowMarker)
}
