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
	"strconv"
	"strings"
)

// Comparator is the structured form of a single requirement comparator: an
// operator, a required major and optional minor and patch components, and a
// pre-release. Comparators never carry build metadata.
type Comparator struct {
	Op    Op         `json:"op" yaml:"op"`
	Major uint64     `json:"major" yaml:"major"`
	Minor *uint64    `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch *uint64    `json:"patch,omitempty" yaml:"patch,omitempty"`
	Pre   Prerelease `json:"pre,omitempty" yaml:"pre,omitempty"`
}

// String renders the comparator the way the requirement parser reads it.
// Patch is only emitted when Minor is present, and the pre-release only when
// Patch is present. A wildcard operator gets a ".*" suffix in place of the
// first missing component.
func (c Comparator) String() string {
	var b strings.Builder
	b.WriteString(c.Op.String())
	b.WriteString(strconv.FormatUint(c.Major, 10))

	if c.Minor == nil {
		if c.Op == OpWildcard {
			b.WriteString(".*")
		}
		return b.String()
	}

	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(*c.Minor, 10))

	if c.Patch == nil {
		if c.Op == OpWildcard {
			b.WriteString(".*")
		}
		return b.String()
	}

	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(*c.Patch, 10))
	if !c.Pre.IsEmpty() {
		b.WriteByte('-')
		b.WriteString(c.Pre.String())
	}
	return b.String()
}
