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

	"github.com/urfave/cli/v3"

	"github.com/canardleteer/proptest-semver/pkg/api"
	"github.com/canardleteer/proptest-semver/pkg/defaults"
	"github.com/canardleteer/proptest-semver/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the sampler over HTTP",
		Description: fmt.Sprintf(`Starts an HTTP API with the same operations as the sample, check and kinds
commands:

  GET  /v1/sample?kind=K&count=N&seed=S
  POST /v1/sample?kind=K&count=N&seed=S   (body: generator profile)
  GET  /v1/check?kind=C&value=V...
  GET  /v1/kinds

plus /health, /ready and /metrics. A single sample request is capped at %d values.`,
			defaults.ServerMaxSampleCount),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "listen address (default: all interfaces)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   defaults.ServerPort,
				Usage:   "listen port",
				Sources: cli.EnvVars(server.EnvPort),
			},
			&cli.Float64Flag{
				Name:  "rate-limit",
				Value: defaults.ServerRateLimit,
				Usage: "sustained API requests per second",
			},
			&cli.IntFlag{
				Name:  "rate-limit-burst",
				Value: defaults.ServerRateLimitBurst,
				Usage: "API requests allowed in a burst",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "default generator profile path or URL (default: built-in weights)",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Value: defaults.SampleConcurrency,
				Usage: "values generated in parallel per request",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.SampleTimeout,
				Usage: "deadline for one sample request",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			profile, err := loadProfile(ctx, cmd.String("config"))
			if err != nil {
				return err
			}

			return api.Serve(ctx, api.ServeConfig{
				Name:           name,
				Version:        version,
				Address:        cmd.String("address"),
				Port:           cmd.Int("port"),
				RateLimit:      cmd.Float64("rate-limit"),
				RateLimitBurst: cmd.Int("rate-limit-burst"),
				Profile:        profile,
				Concurrency:    cmd.Int("concurrency"),
				Timeout:        cmd.Duration("timeout"),
			})
		},
	}
}
