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
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/canardleteer/proptest-semver/pkg/defaults"
	"github.com/canardleteer/proptest-semver/pkg/errors"
)

// comparatorOps are the characters an operator may be written with.
const comparatorOps = "=<>!~^"

// Requirement is a parsed requirement that can be evaluated against versions.
type Requirement struct {
	text        string
	count       int
	constraints *semver.Constraints
}

// Matches returns true if v satisfies every comparator of the requirement.
// It never panics; a nil requirement or version matches nothing.
func (r *Requirement) Matches(v *semver.Version) bool {
	if r == nil || r.constraints == nil || v == nil {
		return false
	}
	return r.constraints.Check(v)
}

// Len returns the number of comparators in the requirement.
func (r *Requirement) Len() int {
	if r == nil {
		return 0
	}
	return r.count
}

// String returns the requirement text that was parsed.
func (r *Requirement) String() string {
	if r == nil {
		return ""
	}
	return r.text
}

// VersionReq is the structured form of a requirement, built directly from
// comparators instead of parsed from text. It is not subject to the
// comparator-count limit of ParseVersionReq.
type VersionReq struct {
	Comparators []Comparator `json:"comparators" yaml:"comparators"`
}

// String joins the rendered comparators with ",". An empty requirement
// renders as "*".
func (r VersionReq) String() string {
	if len(r.Comparators) == 0 {
		return "*"
	}
	parts := make([]string, len(r.Comparators))
	for i, c := range r.Comparators {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

// Compile turns the structured requirement into an evaluable Requirement.
func (r VersionReq) Compile() (*Requirement, error) {
	text := r.String()
	cs, err := semver.NewConstraint(text)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"invalid version requirement", err, map[string]any{"requirement": text})
	}
	count := len(r.Comparators)
	if count == 0 {
		count = 1
	}
	return &Requirement{text: text, count: count, constraints: cs}, nil
}

// Matches returns true if v satisfies the requirement. A requirement that
// does not compile matches nothing.
func (r VersionReq) Matches(v *semver.Version) bool {
	req, err := r.Compile()
	if err != nil {
		return false
	}
	return req.Matches(v)
}

// ParseComparator parses exactly one comparator, e.g. ">=1.2.3-rc.1" or "1.*.*".
func ParseComparator(s string) (*Requirement, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "comparator cannot be empty")
	}
	if strings.Contains(text, ",") || strings.Contains(text, "||") || len(comparatorTokens(text)) != 1 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"expected a single comparator", map[string]any{"comparator": text})
	}
	cs, err := semver.NewConstraint(text)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"invalid comparator", err, map[string]any{"comparator": text})
	}
	return &Requirement{text: text, count: 1, constraints: cs}, nil
}

// ParseVersionReq parses a comma separated list of comparators.
//
// On top of the comparator grammar it enforces the requirement-level rules:
// at most 32 comparators, no "||" disjunction, a bare "*" only as the sole
// comparator, and commas as the only separator. Comparators separated by
// whitespace count toward the limit before they are rejected.
func ParseVersionReq(s string) (*Requirement, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "version requirement cannot be empty")
	}
	if strings.Contains(text, "||") {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"disjunction is not supported in a version requirement", map[string]any{"requirement": text})
	}

	parts := strings.Split(text, ",")
	tokens := make([][]string, len(parts))
	count := 0
	for i, p := range parts {
		tokens[i] = comparatorTokens(p)
		count += max(len(tokens[i]), 1)
	}
	if count > defaults.MaxComparatorsInVersionReq {
		return nil, errors.NewWithContext(errors.ErrCodeLimitExceeded,
			"excessive number of version comparators",
			map[string]any{"count": count, "max": defaults.MaxComparatorsInVersionReq})
	}
	for i, toks := range tokens {
		if len(toks) == 0 {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"empty comparator in version requirement", map[string]any{"position": i})
		}
		if count > 1 && slices.ContainsFunc(toks, isBareWildcard) {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"wildcard req (*) must be the only comparator in the version req",
				map[string]any{"position": i})
		}
		if len(toks) > 1 {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"comparators must be separated by \",\"",
				map[string]any{"position": i, "comparator": strings.TrimSpace(parts[i])})
		}
	}

	cs, err := semver.NewConstraint(text)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"invalid version requirement", err, map[string]any{"requirement": text})
	}
	return &Requirement{text: text, count: count, constraints: cs}, nil
}

// comparatorTokens splits one comma separated part into the comparators the
// constraint parser reads from it, which also separates comparators with
// whitespace. An operator followed by whitespace stays with its version.
func comparatorTokens(part string) []string {
	fields := strings.Fields(part)
	tokens := make([]string, 0, len(fields))
	op := ""
	for _, f := range fields {
		if strings.Trim(f, comparatorOps) == "" {
			op += f
			continue
		}
		tokens = append(tokens, op+f)
		op = ""
	}
	if op != "" {
		tokens = append(tokens, op)
	}
	return tokens
}

func isBareWildcard(s string) bool {
	switch s {
	case "*", "x", "X":
		return true
	default:
		return false
	}
}
