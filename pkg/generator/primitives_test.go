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
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/canardleteer/proptest-semver/pkg/grammar"
	"github.com/canardleteer/proptest-semver/pkg/oracle"
)

// withProbability builds a generator from a probability drawn in [0, 1).
func withProbability(f func(p float64) gopter.Gen, resultType reflect.Type) gopter.Gen {
	return gen.Float64Range(0, 1).FlatMap(func(v any) gopter.Gen {
		return f(v.(float64))
	}, resultType)
}

func TestPrimitiveProperties(t *testing.T) {
	properties := gopter.NewProperties(testParameters())

	properties.Property("semver strings are ASCII and parse or overflow", prop.ForAll(
		func(s string) bool {
			if !grammar.IsASCII(s) || !grammar.SemVer.MatchString(s) {
				return false
			}
			_, err := oracle.ParseVersion(s)
			return err == nil || oracle.IsOverflow(err)
		},
		SemVerString(),
	))

	properties.Property("component strings have no leading zero", prop.ForAll(
		func(s string) bool {
			return grammar.IsASCII(s) && grammar.Component.MatchString(s)
		},
		ComponentString(),
	))

	properties.Property("optional pre-release strings construct when present", prop.ForAll(
		func(s *string) bool {
			if s == nil {
				return true
			}
			_, err := oracle.NewPrerelease(*s)
			return *s != "" && grammar.IsASCII(*s) && err == nil
		},
		withProbability(OptionPreReleaseString, reflect.TypeFor[*string]()),
	))

	properties.Property("optional build metadata strings construct when present", prop.ForAll(
		func(s *string) bool {
			if s == nil {
				return true
			}
			_, err := oracle.NewBuildMetadata(*s)
			return *s != "" && grammar.IsASCII(*s) && err == nil
		},
		withProbability(OptionBuildMetadataString, reflect.TypeFor[*string]()),
	))

	properties.Property("pre-release values match the grammar", prop.ForAll(
		func(p oracle.Prerelease) bool {
			return !p.IsEmpty() && grammar.PreRelease.MatchString(p.String())
		},
		Prerelease(),
	))

	properties.Property("build metadata values match the grammar", prop.ForAll(
		func(b oracle.BuildMetadata) bool {
			return !b.IsEmpty() && grammar.BuildMetadata.MatchString(b.String())
		},
		BuildMetadata(),
	))

	properties.Property("optional structured values are never empty", prop.ForAll(
		func(p *oracle.Prerelease, b *oracle.BuildMetadata) bool {
			return (p == nil || !p.IsEmpty()) && (b == nil || !b.IsEmpty())
		},
		OptionPrerelease(0.5),
		OptionBuildMetadata(0.5),
	))

	properties.TestingRun(t)
}

func TestComponentBoundaries(t *testing.T) {
	seen := map[uint64]bool{}
	g := Component()
	for seed := int64(0); seed < 2000; seed++ {
		seen[sample[uint64](t, g, seed)] = true
	}

	for _, v := range []uint64{0, 1, math.MaxUint64 - 1, math.MaxUint64} {
		assert.True(t, seen[v], "boundary %d never drawn", v)
	}
}

func TestComponentStringOverflows(t *testing.T) {
	var fits, overflows int
	g := ComponentString()
	for seed := int64(0); seed < 2000; seed++ {
		// Full-size parameters so the unbounded branch can exceed 20 digits.
		s, ok := draw[string](g, gopter.DefaultGenParameters().CloneWithSeed(seed))
		if !assert.True(t, ok) {
			continue
		}
		if _, err := oracle.ParseVersion(s + ".0.0"); err != nil {
			assert.True(t, oracle.IsOverflow(err), "%q rejected for %v", s, err)
			overflows++
			continue
		}
		fits++
	}

	assert.Positive(t, fits)
	assert.Positive(t, overflows)
}

func TestWeightedOptionExtremes(t *testing.T) {
	tests := []struct {
		name    string
		g       gopter.Gen
		present bool
	}{
		{"pre-release never", OptionPreReleaseString(0), false},
		{"pre-release always", OptionPreReleaseString(1), true},
		{"build metadata never", OptionBuildMetadataString(0), false},
		{"build metadata always", OptionBuildMetadataString(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(0); seed < 200; seed++ {
				s := sample[*string](t, tt.g, seed)
				assert.Equal(t, tt.present, s != nil, "seed %d", seed)
			}
		})
	}
}

func TestStructuredOptionExtremes(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		assert.Nil(t, sample[*oracle.Prerelease](t, OptionPrerelease(0), seed))
		assert.NotNil(t, sample[*oracle.Prerelease](t, OptionPrerelease(1), seed))
		assert.Nil(t, sample[*oracle.BuildMetadata](t, OptionBuildMetadata(0), seed))
		assert.NotNil(t, sample[*oracle.BuildMetadata](t, OptionBuildMetadata(1), seed))
	}
}
