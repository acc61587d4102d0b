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

package server

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/canardleteer/proptest-semver/pkg/defaults"
)

const (
	// EnvPort overrides the listen port.
	EnvPort = "PORT"

	// EnvShutdownTimeout overrides the graceful shutdown deadline, in seconds.
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"
)

// Config holds server configuration.
type Config struct {
	Name    string
	Version string

	// Handlers maps a path to its handler. Every handler runs behind the
	// middleware chain.
	Handlers map[string]http.HandlerFunc

	Address string
	Port    int

	// Rate limiting
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int

	// Timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithName sets the name reported by the root route.
func WithName(name string) Option {
	return func(s *Server) {
		s.config.Name = name
	}
}

// WithVersion sets the version reported by the root route.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.config.Version = version
	}
}

// WithHandler adds API routes. Later calls override earlier ones for the same path.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(s *Server) {
		if s.config.Handlers == nil {
			s.config.Handlers = make(map[string]http.HandlerFunc, len(handlers))
		}
		for path, h := range handlers {
			s.config.Handlers[path] = h
		}
	}
}

// WithAddress sets the listen address and port. A zero port keeps the current one.
func WithAddress(address string, port int) Option {
	return func(s *Server) {
		s.config.Address = address
		if port > 0 {
			s.config.Port = port
		}
	}
}

// WithRateLimit sets the sustained request rate and burst of the API routes.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(s *Server) {
		if limit > 0 {
			s.config.RateLimit = limit
		}
		if burst > 0 {
			s.config.RateLimitBurst = burst
		}
	}
}

// NewConfig returns the configuration built from defaults and the environment.
func NewConfig() *Config {
	return parseConfig()
}

func parseConfig() *Config {
	cfg := &Config{
		Name:            "server",
		Version:         "dev",
		Port:            defaults.ServerPort,
		RateLimit:       rate.Limit(defaults.ServerRateLimit),
		RateLimitBurst:  defaults.ServerRateLimitBurst,
		ReadTimeout:     defaults.ServerReadTimeout,
		WriteTimeout:    defaults.ServerWriteTimeout,
		IdleTimeout:     defaults.ServerIdleTimeout,
		ShutdownTimeout: defaults.ServerShutdownTimeout,
	}

	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 && port <= 65535 {
			cfg.Port = port
		} else {
			slog.Warn("ignoring invalid port", "env", EnvPort, "value", v)
		}
	}

	if v := os.Getenv(EnvShutdownTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.ShutdownTimeout = time.Duration(secs) * time.Second
		} else {
			slog.Warn("ignoring invalid shutdown timeout", "env", EnvShutdownTimeout, "value", v)
		}
	}

	return cfg
}
