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
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canardleteer/proptest-semver/pkg/defaults"
	"github.com/canardleteer/proptest-semver/pkg/errors"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		overflow bool
	}{
		{name: "plain", input: "1.2.3"},
		{name: "zeros", input: "0.0.0"},
		{name: "pre-release", input: "1.2.3-rc.1"},
		{name: "build metadata", input: "1.2.3+build.5"},
		{name: "both", input: "1.2.3-alpha.0.x-y+001.sha"},
		{name: "max uint64", input: "18446744073709551615.18446744073709551615.18446744073709551615"},
		{name: "major overflow", input: "18446744073709551616.0.0", wantErr: true, overflow: true},
		{name: "patch overflow", input: "0.0.99999999999999999999999", wantErr: true, overflow: true},
		{name: "empty", input: "", wantErr: true},
		{name: "v prefix", input: "v1.2.3", wantErr: true},
		{name: "two components", input: "1.2", wantErr: true},
		{name: "leading zero", input: "01.2.3", wantErr: true},
		{name: "pre-release leading zero", input: "1.2.3-01", wantErr: true},
		{name: "empty pre-release identifier", input: "1.2.3-a..b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseVersion(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.overflow, IsOverflow(err), "overflow classification: %v", err)
				if !tt.overflow {
					assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, v.String())
		})
	}
}

func TestNewVersionEqualsParsed(t *testing.T) {
	tests := []struct {
		major, minor, patch uint64
		pre                 Prerelease
		build               BuildMetadata
	}{
		{1, 2, 3, EmptyPrerelease, EmptyBuildMetadata},
		{0, 0, 0, "0", EmptyBuildMetadata},
		{1, 0, 0, EmptyPrerelease, "007"},
		{18446744073709551615, 1, 2, "rc.1", "sha.5114f85"},
	}

	for _, tt := range tests {
		built := NewVersion(tt.major, tt.minor, tt.patch, tt.pre, tt.build)
		parsed, err := ParseVersion(built.String())
		require.NoError(t, err)
		assert.Equal(t, parsed, built, "struct path must equal parse path for %s", built)
		assert.Equal(t, string(tt.pre), built.Prerelease())
		assert.Equal(t, string(tt.build), built.Metadata())
	}
}

func TestNewPrereleaseAndBuildMetadata(t *testing.T) {
	valid := []string{"", "0", "rc", "rc.1", "x-y-z.--", "0a"}
	for _, s := range valid {
		p, err := NewPrerelease(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, p.String())
		assert.Equal(t, s == "", p.IsEmpty())
	}

	invalidPre := []string{"01", "a..b", "a b", "é"}
	for _, s := range invalidPre {
		_, err := NewPrerelease(s)
		assert.Error(t, err, s)
		assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))
	}

	for _, s := range []string{"", "007", "exp.sha.5114f85", "-"} {
		b, err := NewBuildMetadata(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, b.String())
	}
	for _, s := range []string{"a..b", "a_b", "."} {
		_, err := NewBuildMetadata(s)
		assert.Error(t, err, s)
	}
}

func TestOp(t *testing.T) {
	tests := []struct {
		op     Op
		symbol string
		name   string
	}{
		{OpExact, "=", "Exact"},
		{OpGreater, ">", "Greater"},
		{OpGreaterEq, ">=", "GreaterEq"},
		{OpLess, "<", "Less"},
		{OpLessEq, "<=", "LessEq"},
		{OpTilde, "~", "Tilde"},
		{OpCaret, "^", "Caret"},
		{OpWildcard, "", "Wildcard"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.op.IsValid())
			assert.Equal(t, tt.symbol, tt.op.String())
			assert.Equal(t, tt.name, tt.op.Name())
			text, err := tt.op.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.name, string(text))
		})
	}

	assert.False(t, Op(99).IsValid())
	assert.Equal(t, "Unknown", Op(99).Name())
	assert.Len(t, Ops(), 7)
	assert.NotContains(t, Ops(), OpWildcard)
}

func ptr(v uint64) *uint64 { return &v }

func TestComparatorString(t *testing.T) {
	tests := []struct {
		name string
		c    Comparator
		want string
	}{
		{"full", Comparator{Op: OpGreaterEq, Major: 1, Minor: ptr(2), Patch: ptr(3)}, ">=1.2.3"},
		{"full with pre", Comparator{Op: OpCaret, Major: 1, Minor: ptr(2), Patch: ptr(3), Pre: "rc.1"}, "^1.2.3-rc.1"},
		{"major only", Comparator{Op: OpTilde, Major: 4}, "~4"},
		{"major minor", Comparator{Op: OpLess, Major: 4, Minor: ptr(5)}, "<4.5"},
		{"pre dropped without patch", Comparator{Op: OpExact, Major: 4, Minor: ptr(5), Pre: "a"}, "=4.5"},
		{"patch dropped without minor", Comparator{Op: OpGreater, Major: 4, Patch: ptr(5)}, ">4"},
		{"wildcard major", Comparator{Op: OpWildcard, Major: 4}, "4.*"},
		{"wildcard minor", Comparator{Op: OpWildcard, Major: 4, Minor: ptr(5)}, "4.5.*"},
		{"wildcard full", Comparator{Op: OpWildcard, Major: 4, Minor: ptr(5), Patch: ptr(6)}, "4.5.6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.String())
			_, err := ParseComparator(tt.c.String())
			assert.NoError(t, err)
		})
	}
}

func TestVersionReq(t *testing.T) {
	req := VersionReq{Comparators: []Comparator{
		{Op: OpGreaterEq, Major: 1, Minor: ptr(2), Patch: ptr(0)},
		{Op: OpLess, Major: 2},
	}}
	assert.Equal(t, ">=1.2.0,<2", req.String())

	compiled, err := req.Compile()
	require.NoError(t, err)
	assert.Equal(t, 2, compiled.Len())

	assert.True(t, req.Matches(semver.MustParse("1.5.0")))
	assert.False(t, req.Matches(semver.MustParse("2.0.0")))
	assert.False(t, req.Matches(nil))

	empty := VersionReq{}
	assert.Equal(t, "*", empty.String())
	assert.True(t, empty.Matches(semver.MustParse("3.1.4")))
}

func TestParseComparator(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"=1.2.3", false},
		{">1.2.3-rc.1+build", false},
		{"^0.0.0", false},
		{"~18446744073709551615.18446744073709551615.18446744073709551615", false},
		{"<=1.*.*", false},
		{">=1.2.*", false},
		{"*", false},
		{"", true},
		{">=1.2.3,<2.0.0", true},
		{"1.2.3 || 2.0.0", true},
		{"!!1.2.3", true},
		{">= 1.2.3", false},
		{">=1.0.0 <2.0.0", true},
		{"1.2.3 2.0.0", true},
		{"* >=1.0.0", true},
		{"1.0.0 - 2.0.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, err := ParseComparator(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, r.Len())
			assert.Equal(t, tt.input, r.String())
		})
	}
}

func TestParseVersionReq(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLen  int
		wantCode errors.ErrorCode
	}{
		{name: "single", input: ">=1.2.3", wantLen: 1},
		{name: "list", input: ">=1.2.3,<2.0.0-0,~1.2.*", wantLen: 3},
		{name: "bare wildcard", input: "*", wantLen: 1},
		{name: "wildcard forms", input: "=1.*.*,^3.4.*", wantLen: 2},
		{name: "empty", input: "", wantCode: errors.ErrCodeInvalidRequest},
		{name: "empty comparator", input: ">=1.0.0,,<2.0.0", wantCode: errors.ErrCodeInvalidRequest},
		{name: "disjunction", input: "1.0.0 || 2.0.0", wantCode: errors.ErrCodeInvalidRequest},
		{name: "wildcard mixed", input: "*,>=1.0.0", wantCode: errors.ErrCodeInvalidRequest},
		{name: "garbage", input: ">=banana", wantCode: errors.ErrCodeInvalidRequest},
		{name: "space after operator", input: ">= 1.2.3, < 2.0.0", wantLen: 2},
		{name: "space separated", input: ">=1.0.0 <2.0.0", wantCode: errors.ErrCodeInvalidRequest},
		{name: "space separated in list", input: ">=1.0.0,<2.0.0 !=1.5.0", wantCode: errors.ErrCodeInvalidRequest},
		{name: "wildcard space separated", input: "* >=1.0.0", wantCode: errors.ErrCodeInvalidRequest},
		{name: "space separated over limit", input: strings.Repeat(">=1.0.0 ", 40), wantCode: errors.ErrCodeLimitExceeded},
		{name: "hyphen range", input: "1.0.0 - 2.0.0", wantCode: errors.ErrCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseVersionReq(tt.input)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, tt.wantCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, r.Len())
		})
	}
}

func TestParseVersionReqComparatorLimit(t *testing.T) {
	build := func(n int) string {
		parts := make([]string, n)
		for i := range parts {
			parts[i] = ">=1.2.3"
		}
		return strings.Join(parts, ",")
	}

	r, err := ParseVersionReq(build(defaults.MaxComparatorsInVersionReq))
	require.NoError(t, err)
	assert.Equal(t, defaults.MaxComparatorsInVersionReq, r.Len())

	_, err = ParseVersionReq(build(defaults.MaxComparatorsInVersionReq + 1))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeLimitExceeded))
	assert.Contains(t, err.Error(), "excessive number of version comparators")
}

func TestRequirementMatches(t *testing.T) {
	tests := []struct {
		req     string
		version string
		want    bool
	}{
		{"=1.2.3", "1.2.3", true},
		{"=1.2.3", "1.2.4", false},
		{">1.2.3", "1.2.4", true},
		{"<1.2.3", "1.2.2", true},
		{"~1.2.3", "1.2.9", true},
		{"~1.2.3", "1.3.0", false},
		{"^1.2.3", "1.9.0", true},
		{"^1.2.3", "2.0.0", false},
		{"1.*.*", "1.7.3", true},
		{"1.2.*", "1.3.0", false},
		{"*", "42.0.0", true},
		{">=1.0.0,<2.0.0", "1.5.0", true},
		{">=1.0.0,<2.0.0", "2.5.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.req+" "+tt.version, func(t *testing.T) {
			r, err := ParseVersionReq(tt.req)
			require.NoError(t, err)
			v, err := ParseVersion(tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Matches(v))
		})
	}

	var nilReq *Requirement
	assert.False(t, nilReq.Matches(semver.MustParse("1.0.0")))
	assert.Equal(t, 0, nilReq.Len())
	assert.Equal(t, "", nilReq.String())
}
