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
	"reflect"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	"github.com/canardleteer/proptest-semver/pkg/errors"
)

// weighted picks one of choices with probability proportional to its weight.
// Zero-weight choices are dropped; at least one must remain.
func weighted(choices ...gen.WeightedGen) gopter.Gen {
	kept := make([]gen.WeightedGen, 0, len(choices))
	for _, c := range choices {
		if c.Weight > 0 {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		panic(errors.New(errors.ErrCodeInvalidConfig, "at least one weight must be positive"))
	}
	if len(kept) == 1 {
		return kept[0].Gen
	}
	return gen.Weighted(kept)
}

// weightedOption yields a *T that is non-nil with probability p.
// p = 0 never draws from g, p = 1 always does.
func weightedOption[T any](p float64, g gopter.Gen) gopter.Gen {
	must(validateProbability("probabilityOfSome", p))
	return func(params *gopter.GenParameters) *gopter.GenResult {
		if params.Rng.Float64() >= p {
			return gopter.NewGenResult((*T)(nil), gopter.NoShrinker)
		}
		v, ok := draw[T](g, params)
		if !ok {
			return gopter.NewEmptyResult(reflect.TypeFor[*T]())
		}
		return gopter.NewGenResult(&v, gopter.NoShrinker)
	}
}

// boundedSliceOf yields a []T whose length is drawn from [1, maxLen), or
// exactly 1 when maxLen is 1.
func boundedSliceOf[T any](maxLen int, g gopter.Gen) gopter.Gen {
	must(validateMaxLength(maxLen))
	upper := max(maxLen-1, 1)
	return gen.IntRange(1, upper).FlatMap(func(n any) gopter.Gen {
		return sliceOfLen[T](n.(int), g)
	}, reflect.TypeFor[[]T]())
}

// sliceOfLen yields a []T of exactly n elements.
func sliceOfLen[T any](n int, g gopter.Gen) gopter.Gen {
	return gen.SliceOfN(n, g, reflect.TypeFor[T]())
}

// draw runs g once and returns its value as a T. ok is false when g
// discarded its result.
func draw[T any](g gopter.Gen, params *gopter.GenParameters) (T, bool) {
	var zero T
	v, ok := g(params).Retrieve()
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// discard is the result of a generator that has no value for this draw.
func discard[T any]() *gopter.GenResult {
	return gopter.NewEmptyResult(reflect.TypeFor[T]())
}

// internal panics with an INTERNAL coded error. It marks values the grammar
// produced but the parser refused, which is a defect in the generator.
func internal(message string, cause error, value string) {
	panic(errors.WrapWithContext(errors.ErrCodeInternal, message, cause,
		map[string]any{"value": value}))
}
