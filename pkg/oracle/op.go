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

// Op is a comparison operator used by a requirement comparator.
type Op int

const (
	// OpExact represents "=".
	OpExact Op = iota
	// OpGreater represents ">".
	OpGreater
	// OpGreaterEq represents ">=".
	OpGreaterEq
	// OpLess represents "<".
	OpLess
	// OpLessEq represents "<=".
	OpLessEq
	// OpTilde represents "~" (patch-level changes).
	OpTilde
	// OpCaret represents "^" (compatible changes).
	OpCaret
	// OpWildcard represents a comparator whose trailing positions are "*".
	// It has no prefix symbol.
	OpWildcard
)

var opSymbols = map[Op]string{
	OpExact:     "=",
	OpGreater:   ">",
	OpGreaterEq: ">=",
	OpLess:      "<",
	OpLessEq:    "<=",
	OpTilde:     "~",
	OpCaret:     "^",
	OpWildcard:  "",
}

var opNames = map[Op]string{
	OpExact:     "Exact",
	OpGreater:   "Greater",
	OpGreaterEq: "GreaterEq",
	OpLess:      "Less",
	OpLessEq:    "LessEq",
	OpTilde:     "Tilde",
	OpCaret:     "Caret",
	OpWildcard:  "Wildcard",
}

// Ops returns the seven operators that carry a prefix symbol, in declaration
// order. OpWildcard is not included.
func Ops() []Op {
	return []Op{OpExact, OpGreater, OpGreaterEq, OpLess, OpLessEq, OpTilde, OpCaret}
}

// IsValid returns true if o is one of the declared operators.
func (o Op) IsValid() bool {
	_, ok := opSymbols[o]
	return ok
}

// String returns the prefix symbol of the operator as it appears in a
// requirement string.
func (o Op) String() string {
	return opSymbols[o]
}

// Name returns the operator's identifier, e.g. "GreaterEq".
func (o Op) Name() string {
	if n, ok := opNames[o]; ok {
		return n
	}
	return "Unknown"
}

// MarshalText renders the operator name so it reads well in YAML and JSON output.
func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.Name()), nil
}
