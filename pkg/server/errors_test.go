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
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canardleteer/proptest-semver/pkg/errors"
)

func TestStatusForCode(t *testing.T) {
	tests := []struct {
		code errors.ErrorCode
		want int
	}{
		{errors.ErrCodeInvalidRequest, http.StatusBadRequest},
		{errors.ErrCodeInvalidConfig, http.StatusBadRequest},
		{errors.ErrCodeOverflow, http.StatusBadRequest},
		{errors.ErrCodeLimitExceeded, http.StatusBadRequest},
		{errors.ErrCodeNotFound, http.StatusNotFound},
		{errors.ErrCodeTimeout, http.StatusGatewayTimeout},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
		{errors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := StatusForCode(tt.code); got != tt.want {
				t.Errorf("StatusForCode(%s) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestWriteErrorFromErr(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantCode      string
		wantRetryable bool
		wantDetail    string
	}{
		{
			name:       "structured error keeps code and context",
			err:        errors.NewWithContext(errors.ErrCodeNotFound, "unknown kind", map[string]any{"kind": "nope"}),
			wantStatus: http.StatusNotFound,
			wantCode:   string(errors.ErrCodeNotFound),
			wantDetail: "kind",
		},
		{
			name:       "wrapped structured error",
			err:        fmt.Errorf("failed: %w", errors.New(errors.ErrCodeInvalidConfig, "bad weights")),
			wantStatus: http.StatusBadRequest,
			wantCode:   string(errors.ErrCodeInvalidConfig),
		},
		{
			name:          "timeout is retryable",
			err:           errors.New(errors.ErrCodeTimeout, "sampling interrupted"),
			wantStatus:    http.StatusGatewayTimeout,
			wantCode:      string(errors.ErrCodeTimeout),
			wantRetryable: true,
		},
		{
			name:       "plain error",
			err:        fmt.Errorf("plain"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteErrorFromErr(rec, httptest.NewRequest(http.MethodGet, "/test", nil), tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}

			var resp ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, resp.Code)
			}
			if resp.Retryable != tt.wantRetryable {
				t.Errorf("expected retryable %v, got %v", tt.wantRetryable, resp.Retryable)
			}
			if resp.RequestID == "" {
				t.Error("expected a request ID even without middleware")
			}
			if tt.wantDetail != "" {
				if _, ok := resp.Details[tt.wantDetail]; !ok {
					t.Errorf("expected detail %q in %v", tt.wantDetail, resp.Details)
				}
			}
		})
	}
}

func TestRequireMethod(t *testing.T) {
	rec := httptest.NewRecorder()
	if !RequireMethod(rec, httptest.NewRequest(http.MethodGet, "/test", nil), http.MethodGet) {
		t.Error("expected GET to be allowed")
	}

	rec = httptest.NewRecorder()
	if RequireMethod(rec, httptest.NewRequest(http.MethodDelete, "/test", nil), http.MethodGet) {
		t.Error("expected DELETE to be rejected")
	}
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
	}
}
