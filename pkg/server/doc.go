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

// Package server provides the HTTP server behind the semvergen API.
//
// Routes registered through WithHandler run behind a middleware chain:
//
//   - Prometheus metrics labeled by route
//   - API version negotiation via application/vnd.semvergen.v1+json
//   - Request IDs (X-Request-Id, UUID)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Debug request logging
//
// The server also answers /health, /ready and /metrics, and lists its
// routes on /. Errors are written as ErrorResponse bodies; a
// StructuredError keeps its code and context.
//
// Usage:
//
//	s := server.New(
//	    server.WithName("semvergen"),
//	    server.WithHandler(map[string]http.HandlerFunc{"/v1/kinds": h}),
//	)
//	err := s.Run(ctx)
//
// PORT and SHUTDOWN_TIMEOUT_SECONDS override the listen port and the
// graceful shutdown deadline.
package server
