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

package api

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/canardleteer/proptest-semver/pkg/config"
	"github.com/canardleteer/proptest-semver/pkg/sample"
	"github.com/canardleteer/proptest-semver/pkg/server"
)

// ServeConfig configures the API server.
type ServeConfig struct {
	Name    string
	Version string

	Address string
	Port    int // zero keeps the default or PORT

	RateLimit      float64
	RateLimitBurst int

	Profile     config.Config
	Concurrency int
	Timeout     time.Duration
}

// Serve runs the API server until ctx is done.
func Serve(ctx context.Context, cfg ServeConfig) error {
	h := NewHandler(cfg.Profile,
		sample.WithConcurrency(cfg.Concurrency),
		sample.WithTimeout(cfg.Timeout),
	)

	s := server.New(
		server.WithName(cfg.Name),
		server.WithVersion(cfg.Version),
		server.WithAddress(cfg.Address, cfg.Port),
		server.WithRateLimit(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst),
		server.WithHandler(h.Routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}
