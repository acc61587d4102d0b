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
	"slices"

	"github.com/canardleteer/proptest-semver/pkg/errors"
)

// CheckResult is the verdict for one checked value.
type CheckResult struct {
	Value   string  `json:"value" yaml:"value"`
	Class   Class   `json:"class" yaml:"class"`
	Verdict Verdict `json:"verdict" yaml:"verdict"`
	Reason  string  `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// CheckReport holds one result per checked value, in input order.
type CheckReport []CheckResult

// TableHeader implements serializer.Tabular.
func (r CheckReport) TableHeader() []string {
	return []string{"VALUE", "CLASS", "VERDICT", "REASON"}
}

// TableRows implements serializer.Tabular.
func (r CheckReport) TableRows() [][]string {
	rows := make([][]string, 0, len(r))
	for _, c := range r {
		rows = append(rows, []string{c.Value, string(c.Class), string(c.Verdict), c.Reason})
	}
	return rows
}

// Failed counts the values that were not accepted.
func (r CheckReport) Failed() int {
	n := 0
	for _, c := range r {
		if c.Verdict != VerdictAccepted {
			n++
		}
	}
	return n
}

// Check verifies every value as class. An unknown class is a NOT_FOUND error.
func Check(class Class, values []string) (CheckReport, error) {
	if !slices.Contains(Classes(), class) {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound, "unknown class", map[string]any{"class": string(class)})
	}

	report := make(CheckReport, 0, len(values))
	for _, v := range values {
		verdict, err := Verify(class, v)
		r := CheckResult{Value: v, Class: class, Verdict: verdict}
		if err != nil {
			r.Reason = err.Error()
		}
		report = append(report, r)
	}
	return report, nil
}
