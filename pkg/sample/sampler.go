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
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/leanovate/gopter"
	"golang.org/x/sync/errgroup"

	"github.com/canardleteer/proptest-semver/pkg/config"
	"github.com/canardleteer/proptest-semver/pkg/defaults"
	"github.com/canardleteer/proptest-semver/pkg/errors"
)

// Request asks for Count values of Kind, one per seed from Seed to
// Seed+Count-1.
type Request struct {
	Kind   string
	Count  int
	Seed   int64
	Config config.Config
}

// Sample is one generated value and its verdict.
type Sample struct {
	Seed    int64    `json:"seed" yaml:"seed"`
	Value   string   `json:"value,omitempty" yaml:"value,omitempty"`
	Items   []string `json:"items,omitempty" yaml:"items,omitempty"`
	Verdict Verdict  `json:"verdict" yaml:"verdict"`
	Reason  string   `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Batch is the ordered result of one Request. Equal requests yield equal batches.
type Batch struct {
	Kind    string          `json:"kind" yaml:"kind"`
	Seed    int64           `json:"seed" yaml:"seed"`
	Count   int             `json:"count" yaml:"count"`
	Summary map[Verdict]int `json:"summary" yaml:"summary"`
	Samples []Sample        `json:"samples" yaml:"samples"`
}

// TableHeader implements serializer.Tabular.
func (b *Batch) TableHeader() []string {
	return []string{"SEED", "VERDICT", "VALUE", "REASON"}
}

// TableRows implements serializer.Tabular.
func (b *Batch) TableRows() [][]string {
	rows := make([][]string, 0, len(b.Samples))
	for _, s := range b.Samples {
		value := s.Value
		if len(s.Items) > 0 {
			value = "[" + strings.Join(s.Items, " ") + "]"
		}
		rows = append(rows, []string{strconv.FormatInt(s.Seed, 10), string(s.Verdict), value, s.Reason})
	}
	return rows
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithConcurrency bounds the number of values generated in parallel.
func WithConcurrency(n int) Option {
	return func(s *Sampler) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithTimeout sets the deadline for a whole batch.
func WithTimeout(d time.Duration) Option {
	return func(s *Sampler) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithMaxSize sets the gopter size bound used for every draw.
func WithMaxSize(n int) Option {
	return func(s *Sampler) {
		if n > 0 {
			s.maxSize = n
		}
	}
}

// Sampler generates reproducible batches of any registered kind.
type Sampler struct {
	concurrency int
	timeout     time.Duration
	maxSize     int
}

// New returns a Sampler with the limits from pkg/defaults.
func New(opts ...Option) *Sampler {
	s := &Sampler{
		concurrency: defaults.SampleConcurrency,
		timeout:     defaults.SampleTimeout,
		maxSize:     defaults.SampleMaxSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run generates the batch described by req.
func (s *Sampler) Run(ctx context.Context, req Request) (*Batch, error) {
	kind, err := Lookup(req.Kind)
	if err != nil {
		return nil, err
	}
	if req.Count < 1 || req.Count > defaults.SampleMaxCount {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "count out of range", map[string]any{
			"count": req.Count,
			"min":   1,
			"max":   defaults.SampleMaxCount,
		})
	}
	if err := req.Config.Validate(); err != nil {
		return nil, err
	}

	g := kind.Build(req.Config)
	base := gopter.DefaultGenParameters()
	base.MaxSize = s.maxSize
	samples := make([]Sample, req.Count)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.concurrency)

	for i := range samples {
		if egCtx.Err() != nil {
			break
		}
		seed := req.Seed + int64(i)
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			samples[i] = generate(kind, g, base.CloneWithSeed(seed), seed)
			return nil
		})
	}

	err = eg.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeTimeout, "sampling interrupted", err,
			map[string]any{"kind": kind.Name, "count": req.Count, "timeout": s.timeout.String()})
	}

	batch := &Batch{
		Kind:    kind.Name,
		Seed:    req.Seed,
		Count:   req.Count,
		Summary: make(map[Verdict]int),
		Samples: samples,
	}
	for _, smp := range samples {
		batch.Summary[smp.Verdict]++
	}

	slog.Info("sample batch generated",
		"kind", kind.Name,
		"seed", req.Seed,
		"count", req.Count,
		"summary", batch.Summary,
		"duration", time.Since(start))

	return batch, nil
}

// generate draws one value and checks every text it renders to. A panicking
// generator is reported, not propagated.
func generate(kind Kind, g gopter.Gen, params *gopter.GenParameters, seed int64) (out Sample) {
	out.Seed = seed
	defer func() {
		if r := recover(); r != nil {
			out = Sample{Seed: seed, Verdict: VerdictPanicked, Reason: panicReason(r)}
			slog.Debug("generator panicked", "kind", kind.Name, "seed", seed, "reason", out.Reason)
		}
	}()

	result := g(params)
	v, ok := result.Retrieve()
	if !ok {
		out.Verdict = VerdictDiscarded
		return out
	}

	texts, present := kind.texts(v)
	if !present {
		out.Verdict = VerdictAbsent
		return out
	}
	if kind.Vector {
		out.Items = texts
	} else {
		out.Value = texts[0]
	}

	out.Verdict = VerdictAccepted
	for _, text := range texts {
		verdict, err := Verify(kind.Class, text)
		if verdict != VerdictAccepted {
			out.Verdict = verdict
			out.Reason = err.Error()
			break
		}
	}
	return out
}

func panicReason(r any) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(r)
}
