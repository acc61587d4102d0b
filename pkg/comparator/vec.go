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
	"strings"

	"github.com/canardleteer/proptest-semver/pkg/errors"
	"github.com/canardleteer/proptest-semver/pkg/oracle"
)

// ComparatorVec is the whole of a requirement: a bare wildcard or a list of
// non-wildcard comparators. The set of implementations is closed.
type ComparatorVec interface {
	String() string
	comparatorVec()
}

// List is a list of comparators joined with ",". It must not contain Wildcard.
type List []FullComparator

// WildcardVec is the requirement consisting of the single comparator "*".
type WildcardVec struct{}

func (List) comparatorVec()        {}
func (WildcardVec) comparatorVec() {}

func (l List) String() string {
	parts := make([]string, len(l))
	for i, c := range l {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

func (WildcardVec) String() string { return "*" }

// Validate reports a List that embeds the bare wildcard, or is empty.
func (l List) Validate() error {
	if len(l) == 0 {
		return errors.New(errors.ErrCodeInvalidRequest, "comparator list cannot be empty")
	}
	for i, c := range l {
		if _, ok := c.(Wildcard); ok {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"bare wildcard must be the only comparator", map[string]any{"position": i})
		}
	}
	return nil
}

// Parse renders v and parses it as a requirement.
func Parse(v ComparatorVec) (*oracle.Requirement, error) {
	return oracle.ParseVersionReq(v.String())
}
