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

package sample

import (
	"sort"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"github.com/leanovate/gopter"

	"github.com/canardleteer/proptest-semver/pkg/comparator"
	"github.com/canardleteer/proptest-semver/pkg/config"
	"github.com/canardleteer/proptest-semver/pkg/defaults"
	"github.com/canardleteer/proptest-semver/pkg/errors"
	"github.com/canardleteer/proptest-semver/pkg/generator"
	"github.com/canardleteer/proptest-semver/pkg/oracle"
)

// Kind describes one generator the sampler can run.
type Kind struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Class       Class  `json:"class" yaml:"class"`
	// Vector kinds produce several texts per value, each checked on its own.
	Vector bool `json:"vector" yaml:"vector"`

	build func(cfg config.Config) gopter.Gen
	// texts renders a generated value; ok is false for an absent optional.
	texts func(v any) (texts []string, ok bool)
}

// Build returns the generator for this kind configured by cfg.
func (k Kind) Build(cfg config.Config) gopter.Gen {
	return k.build(cfg)
}

func scalar[T any](name, desc string, class Class, build func(config.Config) gopter.Gen, text func(T) string) Kind {
	return Kind{
		Name:        name,
		Description: desc,
		Class:       class,
		build:       build,
		texts: func(v any) ([]string, bool) {
			return []string{text(v.(T))}, true
		},
	}
}

func optional[T any](name, desc string, class Class, build func(config.Config) gopter.Gen, text func(T) string) Kind {
	return Kind{
		Name:        name,
		Description: desc,
		Class:       class,
		build:       build,
		texts: func(v any) ([]string, bool) {
			p := v.(*T)
			if p == nil {
				return nil, false
			}
			return []string{text(*p)}, true
		},
	}
}

func vector[T any](name, desc string, class Class, build func(config.Config) gopter.Gen, text func(T) string) Kind {
	return Kind{
		Name:        name,
		Description: desc,
		Class:       class,
		Vector:      true,
		build:       build,
		texts: func(v any) ([]string, bool) {
			items := v.([]T)
			out := make([]string, len(items))
			for i, item := range items {
				out[i] = text(item)
			}
			return out, true
		},
	}
}

func identity(s string) string { return s }

func versionText(v *semver.Version) string { return v.String() }

func fixed(g func() gopter.Gen) func(config.Config) gopter.Gen {
	return func(config.Config) gopter.Gen { return g() }
}

var registry = func() map[string]Kind {
	kinds := []Kind{
		scalar("semver-string", "text matching the SemVer 2.0.0 grammar", ClassVersion,
			fixed(generator.SemVerString), identity),
		scalar("component", "numeric component across the full uint64 range", ClassComponent,
			fixed(generator.Component), func(v uint64) string { return strconv.FormatUint(v, 10) }),
		scalar("component-string", "numeric component text, possibly beyond uint64", ClassComponent,
			fixed(generator.ComponentString), identity),
		scalar("pre-release-string", "pre-release text without the leading '-'", ClassPreRelease,
			fixed(generator.PreReleaseString), identity),
		scalar("pre-release", "validated pre-release value", ClassPreRelease,
			fixed(generator.Prerelease), oracle.Prerelease.String),
		scalar("build-metadata-string", "build metadata text without the leading '+'", ClassBuildMetadata,
			fixed(generator.BuildMetadataString), identity),
		scalar("build-metadata", "validated build metadata value", ClassBuildMetadata,
			fixed(generator.BuildMetadata), oracle.BuildMetadata.String),
		scalar("op", "comparison operator drawn with the profile's operator weights", ClassOp,
			func(cfg config.Config) gopter.Gen { return generator.Op(cfg.Operator) }, opText),
		scalar("version-string", "version text assembled from parts", ClassVersion,
			func(cfg config.Config) gopter.Gen { return generator.VersionString(cfg.Probabilities) }, identity),
		scalar("version", "version parsed from generated text", ClassVersion,
			func(cfg config.Config) gopter.Gen { return generator.VersionWeighted(cfg.Probabilities) }, versionText),
		scalar("semver-version", "version constructed from 64-bit parts", ClassVersion,
			func(cfg config.Config) gopter.Gen {
				return generator.SemverVersionWeighted(cfg.Probabilities)
			}, versionText),
		vector("vec-versions", "sequence of parsed versions", ClassVersion,
			func(cfg config.Config) gopter.Gen { return generator.VecVersions(cfg.MaxLength) }, versionText),
		vector("vec-semver-versions", "sequence of constructed versions", ClassVersion,
			func(cfg config.Config) gopter.Gen { return generator.VecSemverVersions(cfg.MaxLength) }, versionText),
		scalar("semver-comparator", "structured comparator", ClassComparator,
			fixed(generator.SemverComparator), oracle.Comparator.String),
		vector("vec-semver-comparator", "sequence of structured comparators", ClassComparator,
			func(cfg config.Config) gopter.Gen { return generator.VecSemverComparator(cfg.MaxLength) }, oracle.Comparator.String),
		scalar("full-comparator", "comparator shape drawn with the profile's shape weights", ClassComparator,
			func(cfg config.Config) gopter.Gen { return generator.FullComparator(cfg.FullComparator) },
			func(c comparator.FullComparator) string { return c.String() }),
		scalar("comparator-string", "comparator text", ClassComparator,
			fixed(generator.ComparatorString), identity),
		vector("vec-comparator-string", "sequence of comparator texts", ClassComparator,
			func(cfg config.Config) gopter.Gen { return generator.VecComparatorString(cfg.MaxLength) }, identity),
		scalar("comparator-list", "exactly maxLength comparators joined by ','", ClassRequirement,
			func(cfg config.Config) gopter.Gen { return generator.ComparatorList(cfg.MaxLength) }, comparator.List.String),
		scalar("full-comparator-vec", "requirement shape drawn with the profile's requirement weights", ClassRequirement,
			func(cfg config.Config) gopter.Gen {
				return generator.FullComparatorVec(cfg.MaxLength, cfg.ComparatorVec)
			},
			func(v comparator.ComparatorVec) string { return v.String() }),
		scalar("semver-version-req", "requirement built from structured comparators", ClassRequirement,
			func(cfg config.Config) gopter.Gen { return generator.SemverVersionReq(cfg.MaxLength) }, oracle.VersionReq.String),
		optional("optional-semver-version-req", "structured requirement, sometimes absent", ClassRequirement,
			func(cfg config.Config) gopter.Gen {
				return generator.OptionalSemverVersionReq(defaults.ProbabilityOfSome, cfg.MaxLength)
			}, oracle.VersionReq.String),
		scalar("version-req", "parsed requirement", ClassRequirement,
			func(cfg config.Config) gopter.Gen {
				return generator.VersionReqWeighted(cfg.MaxLength, cfg.ComparatorVec)
			},
			(*oracle.Requirement).String),
		optional("optional-version-req", "parsed requirement, sometimes absent", ClassRequirement,
			func(cfg config.Config) gopter.Gen {
				return generator.OptionalVersionReq(defaults.ProbabilityOfSome, cfg.MaxLength)
			}, func(r oracle.Requirement) string { return r.String() }),
	}

	m := make(map[string]Kind, len(kinds))
	for _, k := range kinds {
		m[k.Name] = k
	}
	return m
}()

// Kinds returns every registered kind sorted by name.
func Kinds() []Kind {
	out := make([]Kind, 0, len(registry))
	for _, k := range registry {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the kind registered under name.
func Lookup(name string) (Kind, error) {
	k, ok := registry[name]
	if !ok {
		return Kind{}, errors.NewWithContext(errors.ErrCodeNotFound, "unknown generator kind",
			map[string]any{"kind": name})
	}
	return k, nil
}
