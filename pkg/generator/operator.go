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
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	"github.com/canardleteer/proptest-semver/pkg/oracle"
)

// Op generates a comparison operator [oracle.Op]. Each of the seven
// non-wildcard operators has weight w.Default and the wildcard operator has
// weight w.Wildcard. Panics if both weights are zero.
func Op(w OperatorWeights) gopter.Gen {
	must(w.Validate())
	ops := oracle.Ops()
	choices := make([]gen.WeightedGen, 0, len(ops)+1)
	for _, op := range ops {
		choices = append(choices, gen.WeightedGen{Weight: int(w.Default), Gen: gen.Const(op)})
	}
	choices = append(choices, gen.WeightedGen{Weight: int(w.Wildcard), Gen: gen.Const(oracle.OpWildcard)})
	return weighted(choices...)
}

// DefaultOp is Op with DefaultOperatorWeights.
func DefaultOp() gopter.Gen {
	return Op(DefaultOperatorWeights())
}

// ComparatorOp generates one of the seven non-wildcard operators with equal
// probability [oracle.Op].
func ComparatorOp() gopter.Gen {
	ops := oracle.Ops()
	consts := make([]any, len(ops))
	for i, op := range ops {
		consts[i] = op
	}
	return gen.OneConstOf(consts...)
}
