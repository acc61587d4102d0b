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

package comparator

import (
	"strconv"
	"strings"

	"github.com/canardleteer/proptest-semver/pkg/oracle"
)

// FullComparator is one comparator of a requirement in any of its legal
// textual shapes. The set of implementations is closed.
type FullComparator interface {
	String() string
	fullComparator()
}

// Plain is the common "<op>MAJOR.MINOR.PATCH[-pre][+build]" form.
// A nil Pre or Build means the suffix is absent.
type Plain struct {
	Op    oracle.Op `json:"op" yaml:"op"`
	Major uint64    `json:"major" yaml:"major"`
	Minor uint64    `json:"minor" yaml:"minor"`
	Patch uint64    `json:"patch" yaml:"patch"`
	Pre   *string   `json:"pre,omitempty" yaml:"pre,omitempty"`
	Build *string   `json:"build,omitempty" yaml:"build,omitempty"`
}

// WildcardMinor is the "<op>MAJOR.*.*" form.
type WildcardMinor struct {
	Op    oracle.Op `json:"op" yaml:"op"`
	Major uint64    `json:"major" yaml:"major"`
}

// WildcardPatch is the "<op>MAJOR.MINOR.*" form.
type WildcardPatch struct {
	Op    oracle.Op `json:"op" yaml:"op"`
	Major uint64    `json:"major" yaml:"major"`
	Minor uint64    `json:"minor" yaml:"minor"`
}

// Wildcard is the bare "*" comparator. It is only legal as the sole
// comparator of a requirement, so List never carries it.
type Wildcard struct{}

func (Plain) fullComparator()         {}
func (WildcardMinor) fullComparator() {}
func (WildcardPatch) fullComparator() {}
func (Wildcard) fullComparator()      {}

func (c Plain) String() string {
	var b strings.Builder
	b.WriteString(c.Op.String())
	writeUint(&b, c.Major)
	b.WriteByte('.')
	writeUint(&b, c.Minor)
	b.WriteByte('.')
	writeUint(&b, c.Patch)
	if c.Pre != nil {
		b.WriteByte('-')
		b.WriteString(*c.Pre)
	}
	if c.Build != nil {
		b.WriteByte('+')
		b.WriteString(*c.Build)
	}
	return b.String()
}

func (c WildcardMinor) String() string {
	var b strings.Builder
	b.WriteString(c.Op.String())
	writeUint(&b, c.Major)
	b.WriteString(".*.*")
	return b.String()
}

func (c WildcardPatch) String() string {
	var b strings.Builder
	b.WriteString(c.Op.String())
	writeUint(&b, c.Major)
	b.WriteByte('.')
	writeUint(&b, c.Minor)
	b.WriteString(".*")
	return b.String()
}

func (Wildcard) String() string { return "*" }

func writeUint(b *strings.Builder, v uint64) {
	b.WriteString(strconv.FormatUint(v, 10))
}

// Kind returns the variant name of c, e.g. "WildcardPatch".
func Kind(c FullComparator) string {
	switch c.(type) {
	case Plain:
		return "Plain"
	case WildcardMinor:
		return "WildcardMinor"
	case WildcardPatch:
		return "WildcardPatch"
	case Wildcard:
		return "Wildcard"
	default:
		return "Unknown"
	}
}
