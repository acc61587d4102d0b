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
	stderrors "errors"
	"strconv"

	"github.com/canardleteer/proptest-semver/pkg/errors"
	"github.com/canardleteer/proptest-semver/pkg/grammar"
	"github.com/canardleteer/proptest-semver/pkg/oracle"
)

// Class names the grammar a piece of text is checked against.
type Class string

const (
	ClassVersion       Class = "version"
	ClassComparator    Class = "comparator"
	ClassRequirement   Class = "requirement"
	ClassPreRelease    Class = "pre-release"
	ClassBuildMetadata Class = "build-metadata"
	ClassComponent     Class = "component"
	ClassOp            Class = "op"
)

// Classes returns every class Verify understands.
func Classes() []Class {
	return []Class{
		ClassVersion, ClassComparator, ClassRequirement,
		ClassPreRelease, ClassBuildMetadata, ClassComponent, ClassOp,
	}
}

// Verdict is the outcome of checking one sample.
type Verdict string

const (
	// VerdictAccepted means the parser accepted the text.
	VerdictAccepted Verdict = "accepted"
	// VerdictOverflow means a numeric component does not fit in 64 bits.
	VerdictOverflow Verdict = "overflow"
	// VerdictRejected means the parser rejected the text for any other reason.
	VerdictRejected Verdict = "rejected"
	// VerdictAbsent means an optional generator produced no value.
	VerdictAbsent Verdict = "absent"
	// VerdictDiscarded means the generator gave up on the draw.
	VerdictDiscarded Verdict = "discarded"
	// VerdictPanicked means the generator refused to produce a value.
	VerdictPanicked Verdict = "panicked"
)

// Verify checks text against the parser for class and returns the verdict
// with the parser's error, if any.
func Verify(class Class, text string) (Verdict, error) {
	err := verify(class, text)
	switch {
	case err == nil:
		return VerdictAccepted, nil
	case oracle.IsOverflow(err):
		return VerdictOverflow, err
	default:
		return VerdictRejected, err
	}
}

func verify(class Class, text string) error {
	switch class {
	case ClassVersion:
		_, err := oracle.ParseVersion(text)
		return err
	case ClassComparator:
		_, err := oracle.ParseComparator(text)
		return err
	case ClassRequirement:
		_, err := oracle.ParseVersionReq(text)
		return err
	case ClassPreRelease:
		if text == "" {
			return errors.New(errors.ErrCodeInvalidRequest, "pre-release cannot be empty")
		}
		_, err := oracle.NewPrerelease(text)
		return err
	case ClassBuildMetadata:
		if text == "" {
			return errors.New(errors.ErrCodeInvalidRequest, "build metadata cannot be empty")
		}
		_, err := oracle.NewBuildMetadata(text)
		return err
	case ClassComponent:
		return verifyComponent(text)
	case ClassOp:
		return verifyOp(text)
	default:
		return errors.NewWithContext(errors.ErrCodeNotFound, "unknown class", map[string]any{
			"class":     class,
			"supported": Classes(),
		})
	}
}

func verifyComponent(text string) error {
	if !grammar.Component.MatchString(text) {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "invalid numeric component",
			map[string]any{"component": text})
	}
	if _, err := strconv.ParseUint(text, 10, 64); err != nil {
		if stderrors.Is(err, strconv.ErrRange) {
			return errors.WrapWithContext(errors.ErrCodeOverflow, "component exceeds uint64 range", err,
				map[string]any{"component": text})
		}
		return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid numeric component", err)
	}
	return nil
}

// opText renders an operator as it leads a comparator; the wildcard
// operator has no symbol and is shown as "*".
func opText(o oracle.Op) string {
	if o == oracle.OpWildcard {
		return "*"
	}
	return o.String()
}

// verifyOp accepts an operator when the parser accepts it in front of a
// fixed version.
func verifyOp(text string) error {
	if text == "*" {
		_, err := oracle.ParseComparator("1.*")
		return err
	}
	for _, o := range oracle.Ops() {
		if o.String() == text {
			_, err := oracle.ParseComparator(text + "1.2.3")
			return err
		}
	}
	return errors.NewWithContext(errors.ErrCodeInvalidRequest, "unknown operator", map[string]any{"op": text})
}
