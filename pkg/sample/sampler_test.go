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
	"context"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canardleteer/proptest-semver/pkg/config"
	"github.com/canardleteer/proptest-semver/pkg/defaults"
	"github.com/canardleteer/proptest-semver/pkg/errors"
	"github.com/canardleteer/proptest-semver/pkg/generator"
)

// testMaxSize keeps regex-driven kinds short so batches stay fast.
const testMaxSize = 16

func newSampler(opts ...Option) *Sampler {
	return New(append([]Option{WithMaxSize(testMaxSize)}, opts...)...)
}

func run(t *testing.T, req Request) *Batch {
	t.Helper()
	batch, err := newSampler().Run(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, batch.Samples, req.Count)
	return batch
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	require.NotEmpty(t, kinds)

	classes := make(map[Class]bool)
	for _, c := range Classes() {
		classes[c] = true
	}

	for i, k := range kinds {
		if i > 0 {
			assert.Less(t, kinds[i-1].Name, k.Name, "kinds must be sorted and unique")
		}
		assert.NotEmpty(t, k.Description, k.Name)
		assert.True(t, classes[k.Class], "kind %s has unknown class %q", k.Name, k.Class)

		got, err := Lookup(k.Name)
		require.NoError(t, err)
		assert.Equal(t, k.Name, got.Name)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("no-such-kind")
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound), "got %v", err)
}

func TestRunEveryKind(t *testing.T) {
	tolerated := map[Verdict]bool{
		VerdictAccepted:  true,
		VerdictOverflow:  true,
		VerdictAbsent:    true,
		VerdictDiscarded: true,
	}

	for _, k := range Kinds() {
		t.Run(k.Name, func(t *testing.T) {
			batch := run(t, Request{Kind: k.Name, Count: 20, Seed: 1, Config: config.Default()})

			for _, s := range batch.Samples {
				assert.True(t, tolerated[s.Verdict], "seed %d: %s %q %v: %s", s.Seed, s.Verdict, s.Value, s.Items, s.Reason)
				if s.Verdict == VerdictAccepted {
					if k.Vector {
						assert.NotEmpty(t, s.Items)
						assert.Empty(t, s.Value)
					} else {
						assert.Empty(t, s.Items)
					}
				}
			}
			assert.Greater(t, batch.Summary[VerdictAccepted], 0, "no accepted samples in %v", batch.Summary)
		})
	}
}

func TestRunIsReproducible(t *testing.T) {
	req := Request{Kind: "version-req", Count: 25, Seed: 42, Config: config.Default()}

	first := run(t, req)
	second, err := newSampler(WithConcurrency(1)).Run(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunMaxSize(t *testing.T) {
	req := Request{Kind: "build-metadata-string", Count: 50, Seed: 3, Config: config.Default()}

	// size 1 leaves every repetition empty: one identifier of one character
	batch, err := New(WithMaxSize(1)).Run(context.Background(), req)
	require.NoError(t, err)
	for _, s := range batch.Samples {
		assert.Equal(t, VerdictAccepted, s.Verdict, "seed %d: %q", s.Seed, s.Value)
		assert.Len(t, s.Value, 1, "seed %d", s.Seed)
	}

	ignored, err := New(WithMaxSize(1), WithMaxSize(0)).Run(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, batch, ignored)
}

func TestRunLongerBatchExtendsShorter(t *testing.T) {
	short := run(t, Request{Kind: "semver-version", Count: 5, Seed: 7, Config: config.Default()})
	long := run(t, Request{Kind: "semver-version", Count: 10, Seed: 7, Config: config.Default()})
	assert.Equal(t, short.Samples, long.Samples[:5])

	for i, s := range long.Samples {
		assert.Equal(t, int64(7+i), s.Seed)
	}
}

func TestRunUsesProfile(t *testing.T) {
	cfg := config.Default()
	cfg.Probabilities = generator.Probabilities{PreRelease: 1, BuildMetadata: 1}

	batch := run(t, Request{Kind: "semver-version", Count: 20, Seed: 3, Config: cfg})
	for _, s := range batch.Samples {
		require.Equal(t, VerdictAccepted, s.Verdict, s.Reason)
		assert.Contains(t, s.Value, "-")
		assert.Contains(t, s.Value, "+")
	}

	cfg.Operator = generator.OperatorWeights{Wildcard: 1}
	batch = run(t, Request{Kind: "op", Count: 10, Seed: 3, Config: cfg})
	for _, s := range batch.Samples {
		assert.Equal(t, "*", s.Value)
	}
}

func TestRunComparatorLimit(t *testing.T) {
	cfg := config.Default()
	cfg.MaxLength = defaults.MaxComparatorsInVersionReq

	at := run(t, Request{Kind: "comparator-list", Count: 3, Seed: 9, Config: cfg})
	assert.Equal(t, 3, at.Summary[VerdictAccepted])

	cfg.MaxLength = defaults.MaxComparatorsInVersionReq + 1
	above := run(t, Request{Kind: "comparator-list", Count: 3, Seed: 9, Config: cfg})
	for _, s := range above.Samples {
		assert.Equal(t, VerdictRejected, s.Verdict)
		assert.Contains(t, s.Reason, string(errors.ErrCodeLimitExceeded))
	}

	// the parsing generator refuses instead of yielding a rejected value
	cfg.ComparatorVec = generator.ComparatorVecWeights{List: 1}
	parsed := run(t, Request{Kind: "version-req", Count: 3, Seed: 9, Config: cfg})
	for _, s := range parsed.Samples {
		assert.Equal(t, VerdictPanicked, s.Verdict)
		assert.Contains(t, s.Reason, "excessive number of version comparators")
	}
}

func TestRunRejectsBadRequests(t *testing.T) {
	badConfig := config.Default()
	badConfig.Operator = generator.OperatorWeights{}

	tests := []struct {
		name string
		req  Request
		code errors.ErrorCode
	}{
		{"unknown kind", Request{Kind: "nope", Count: 1, Config: config.Default()}, errors.ErrCodeNotFound},
		{"zero count", Request{Kind: "op", Count: 0, Config: config.Default()}, errors.ErrCodeInvalidRequest},
		{"count above max", Request{Kind: "op", Count: defaults.SampleMaxCount + 1, Config: config.Default()}, errors.ErrCodeInvalidRequest},
		{"invalid profile", Request{Kind: "op", Count: 1, Config: badConfig}, errors.ErrCodeInvalidConfig},
		{"zero profile", Request{Kind: "op", Count: 1}, errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newSampler().Run(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.code), "got %v", err)
		})
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Run(ctx, Request{Kind: "version", Count: 100, Seed: 1, Config: config.Default()})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTimeout), "got %v", err)
}

func TestBatchTableRows(t *testing.T) {
	batch := &Batch{Samples: []Sample{
		{Seed: 1, Value: "1.2.3", Verdict: VerdictAccepted},
		{Seed: 2, Items: []string{"0.0.1", "0.0.2"}, Verdict: VerdictAccepted},
		{Seed: 3, Verdict: VerdictAbsent},
	}}

	assert.Equal(t, []string{"SEED", "VERDICT", "VALUE", "REASON"}, batch.TableHeader())
	assert.Equal(t, [][]string{
		{"1", "accepted", "1.2.3", ""},
		{"2", "accepted", "[0.0.1 0.0.2]", ""},
		{"3", "absent", "", ""},
	}, batch.TableRows())
}

func TestSampledVersionsParse(t *testing.T) {
	params := gopter.DefaultTestParametersWithSeed(1234)
	params.MinSuccessfulTests = 25
	properties := gopter.NewProperties(params)
	sampler := newSampler()

	properties.Property("any seed yields an accepted struct-path version", prop.ForAll(
		func(seed int64) bool {
			batch, err := sampler.Run(context.Background(), Request{
				Kind: "semver-version", Count: 1, Seed: seed, Config: config.Default(),
			})
			return err == nil && batch.Samples[0].Verdict == VerdictAccepted &&
				!strings.HasPrefix(batch.Samples[0].Value, "v")
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}
