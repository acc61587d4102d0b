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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/canardleteer/proptest-semver/pkg/config"
	"github.com/canardleteer/proptest-semver/pkg/defaults"
	"github.com/canardleteer/proptest-semver/pkg/sample"
	"github.com/canardleteer/proptest-semver/pkg/serializer"
)

func sampleCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sample",
		EnableShellCompletion: true,
		Usage:                 "Draw a reproducible batch of values from one generator",
		Description: `Draws --count values from the generator named by --kind. Value i is drawn
with seed --seed + i, so the same flags always print the same batch.

Each value is rendered to text and checked by the parser. The batch summary
counts accepted, overflow, rejected, absent, discarded and panicked values.

Weights, probabilities and the sequence bound come from --config, a YAML or
JSON generator profile given as a file path or an HTTP/HTTPS URL.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "kind",
				Aliases:  []string{"k"},
				Required: true,
				Usage:    "generator kind (see the kinds command)",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Value:   defaults.SampleCount,
				Usage:   fmt.Sprintf("number of values to draw (max %d)", defaults.SampleMaxCount),
			},
			&cli.Int64Flag{
				Name:    "seed",
				Aliases: []string{"s"},
				Value:   1,
				Usage:   "seed of the first value",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "generator profile path or URL (default: built-in weights)",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Value: defaults.SampleConcurrency,
				Usage: "values generated in parallel",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.SampleTimeout,
				Usage: "deadline for the whole batch",
			},
			outputFlag(),
			formatFlag(serializer.FormatYAML),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			cfg, err := loadProfile(ctx, cmd.String("config"))
			if err != nil {
				return err
			}

			sampler := sample.New(
				sample.WithConcurrency(cmd.Int("concurrency")),
				sample.WithTimeout(cmd.Duration("timeout")),
			)
			batch, err := sampler.Run(ctx, sample.Request{
				Kind:   strings.TrimSpace(cmd.String("kind")),
				Count:  cmd.Int("count"),
				Seed:   cmd.Int64("seed"),
				Config: cfg,
			})
			if err != nil {
				return fmt.Errorf("failed to sample: %w", err)
			}

			return writeOutput(ctx, cmd, batch)
		},
	}
}

func loadProfile(ctx context.Context, path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(ctx, path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load profile from %q: %w", path, err)
	}
	slog.Debug("using generator profile", "path", path)
	return cfg, nil
}
