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

package config

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"log/slog"

	"github.com/canardleteer/proptest-semver/pkg/defaults"
	"github.com/canardleteer/proptest-semver/pkg/errors"
	"github.com/canardleteer/proptest-semver/pkg/generator"
	"github.com/canardleteer/proptest-semver/pkg/serializer"
)

// Config is a generator profile.
type Config struct {
	Operator       generator.OperatorWeights       `json:"operator" yaml:"operator"`
	FullComparator generator.FullComparatorWeights `json:"fullComparator" yaml:"fullComparator"`
	ComparatorVec  generator.ComparatorVecWeights  `json:"comparatorVec" yaml:"comparatorVec"`
	Probabilities  generator.Probabilities         `json:"probabilities" yaml:"probabilities"`
	MaxLength      int                             `json:"maxLength" yaml:"maxLength"`
}

// Default returns the profile every generator uses when none is given.
func Default() Config {
	return Config{
		Operator:       generator.DefaultOperatorWeights(),
		FullComparator: generator.DefaultFullComparatorWeights(),
		ComparatorVec:  generator.DefaultComparatorVecWeights(),
		Probabilities:  generator.DefaultProbabilities(),
		MaxLength:      defaults.MaxLength,
	}
}

// Validate checks every section and the sequence bound.
func (c Config) Validate() error {
	checks := []struct {
		section string
		check   func() error
	}{
		{"operator", c.Operator.Validate},
		{"fullComparator", c.FullComparator.Validate},
		{"comparatorVec", c.ComparatorVec.Validate},
		{"probabilities", c.Probabilities.Validate},
	}
	for _, ch := range checks {
		if err := ch.check(); err != nil {
			return errors.WrapWithContext(errors.ErrCodeInvalidConfig, "invalid generator profile", err,
				map[string]any{"section": ch.section})
		}
	}

	if c.MaxLength < 1 || c.MaxLength > defaults.MaxLengthCeiling {
		return errors.NewWithContext(errors.ErrCodeInvalidConfig, "maxLength out of range", map[string]any{
			"maxLength": c.MaxLength,
			"min":       1,
			"max":       defaults.MaxLengthCeiling,
		})
	}
	return nil
}

// Parse decodes a YAML profile over the defaults and validates it.
// Empty input yields the defaults.
func Parse(data []byte) (Config, error) {
	r, err := serializer.NewReader(serializer.FormatYAML, bytes.NewReader(data))
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInternal, "failed to create profile reader", err)
	}
	return decode(r, "<inline>")
}

// Load reads a profile from a local path or an http(s) URL. The format is
// taken from the extension.
func Load(ctx context.Context, path string) (Config, error) {
	r, err := serializer.NewFileReaderAuto(ctx, path)
	if err != nil {
		return Config{}, errors.WrapWithContext(errors.ErrCodeNotFound, "failed to open generator profile", err,
			map[string]any{"path": path})
	}
	defer r.Close()

	return decode(r, path)
}

func decode(r *serializer.Reader, source string) (Config, error) {
	cfg := Default()
	err := r.Strict().Deserialize(&cfg)
	switch {
	case stderrors.Is(err, io.EOF):
		slog.Debug("empty generator profile, using defaults", "source", source)
		cfg = Default()
	case err != nil:
		return Config{}, errors.WrapWithContext(errors.ErrCodeInvalidConfig, "failed to decode generator profile", err,
			map[string]any{"source": source})
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	slog.Debug("generator profile loaded", "source", source, "maxLength", cfg.MaxLength)
	return cfg, nil
}
