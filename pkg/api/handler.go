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
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/canardleteer/proptest-semver/pkg/config"
	"github.com/canardleteer/proptest-semver/pkg/defaults"
	"github.com/canardleteer/proptest-semver/pkg/errors"
	"github.com/canardleteer/proptest-semver/pkg/sample"
	"github.com/canardleteer/proptest-semver/pkg/serializer"
	"github.com/canardleteer/proptest-semver/pkg/server"
)

var samplesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "semvergen_samples_total",
		Help: "Total number of values generated through the API, by kind and verdict",
	},
	[]string{"kind", "verdict"},
)

// CheckResponse is the body of a /v1/check response.
type CheckResponse struct {
	Class   sample.Class       `json:"class"`
	Failed  int                `json:"failed"`
	Results sample.CheckReport `json:"results"`
}

// Handler serves the sampling API.
type Handler struct {
	sampler  *sample.Sampler
	profile  config.Config
	maxCount int
}

// NewHandler returns a Handler that samples with profile unless a request
// posts its own.
func NewHandler(profile config.Config, opts ...sample.Option) *Handler {
	return &Handler{
		sampler:  sample.New(opts...),
		profile:  profile,
		maxCount: defaults.ServerMaxSampleCount,
	}
}

// Routes returns the API routes keyed by path.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/sample": h.HandleSample,
		"/v1/check":  h.HandleCheck,
		"/v1/kinds":  h.HandleKinds,
	}
}

// HandleSample draws a batch. GET uses the server profile; POST takes a
// YAML or JSON generator profile as the body.
//
// Query parameters: kind (required), count, seed.
func (h *Handler) HandleSample(w http.ResponseWriter, r *http.Request) {
	if !server.RequireMethod(w, r, http.MethodGet, http.MethodPost) {
		return
	}

	req, err := h.parseSampleRequest(w, r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err)
		return
	}

	batch, err := h.sampler.Run(r.Context(), req)
	if err != nil {
		server.WriteErrorFromErr(w, r, err)
		return
	}

	for verdict, n := range batch.Summary {
		samplesTotal.WithLabelValues(batch.Kind, string(verdict)).Add(float64(n))
	}

	serializer.RespondJSON(w, http.StatusOK, batch)
}

func (h *Handler) parseSampleRequest(w http.ResponseWriter, r *http.Request) (sample.Request, error) {
	q := r.URL.Query()

	req := sample.Request{
		Kind:   strings.TrimSpace(q.Get("kind")),
		Count:  defaults.SampleCount,
		Seed:   1,
		Config: h.profile,
	}
	if req.Kind == "" {
		return req, errors.New(errors.ErrCodeInvalidRequest, "kind is required")
	}

	count, err := intParam(q, "count", int64(req.Count))
	if err != nil {
		return req, err
	}
	if count > int64(h.maxCount) {
		return req, errors.NewWithContext(errors.ErrCodeLimitExceeded, "count exceeds the per-request limit",
			map[string]any{"count": count, "max": h.maxCount})
	}
	req.Count = int(count)

	if req.Seed, err = intParam(q, "seed", req.Seed); err != nil {
		return req, err
	}

	if r.Method == http.MethodPost {
		data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, serializer.HttpReaderMaxBodyBytes))
		if err != nil {
			return req, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to read profile body", err)
		}
		if req.Config, err = config.Parse(data); err != nil {
			return req, err
		}
		slog.Debug("using posted generator profile", "kind", req.Kind, "bytes", len(data))
	}

	return req, nil
}

// HandleCheck runs the parser over every value query parameter.
//
// Query parameters: kind (default version), value (repeatable, at least one).
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	if !server.RequireMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	class := sample.ClassVersion
	if k := strings.TrimSpace(q.Get("kind")); k != "" {
		class = sample.Class(k)
	}

	values := q["value"]
	switch {
	case len(values) == 0:
		server.WriteErrorFromErr(w, r, errors.New(errors.ErrCodeInvalidRequest, "at least one value is required"))
		return
	case len(values) > defaults.ServerMaxCheckValues:
		server.WriteErrorFromErr(w, r, errors.NewWithContext(errors.ErrCodeLimitExceeded,
			"too many values", map[string]any{"count": len(values), "max": defaults.ServerMaxCheckValues}))
		return
	}

	report, err := sample.Check(class, values)
	if err != nil {
		server.WriteErrorFromErr(w, r, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid kind", err,
			map[string]any{"kind": string(class), "supported": sample.Classes()}))
		return
	}

	serializer.RespondJSON(w, http.StatusOK, CheckResponse{
		Class:   class,
		Failed:  report.Failed(),
		Results: report,
	})
}

// HandleKinds lists the generator kinds.
func (h *Handler) HandleKinds(w http.ResponseWriter, r *http.Request) {
	if !server.RequireMethod(w, r, http.MethodGet) {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, sample.Kinds())
}

func intParam(q url.Values, key string, def int64) (int64, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid "+key, err,
			map[string]any{key: v})
	}
	return n, nil
}
