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
	stderrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/canardleteer/proptest-semver/pkg/errors"
	"github.com/canardleteer/proptest-semver/pkg/serializer"
)

// Error codes returned by the middleware. Handler errors carry the code of
// their StructuredError.
const (
	ErrCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
	ErrCodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr writes err as an error response. A StructuredError keeps
// its code and context; anything else is an internal error.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error) {
	var se *errors.StructuredError
	if !stderrors.As(err, &se) {
		WriteError(w, r, http.StatusInternalServerError, ErrCodeInternalError, err.Error(), false, nil)
		return
	}

	status := StatusForCode(se.Code)
	WriteError(w, r, status, string(se.Code), err.Error(), status == http.StatusGatewayTimeout, se.Context)
}

// StatusForCode maps an error code to its HTTP status.
func StatusForCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeInvalidRequest, errors.ErrCodeInvalidConfig,
		errors.ErrCodeOverflow, errors.ErrCodeLimitExceeded:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// RequireMethod writes a 405 response and returns false unless r uses one of methods.
func RequireMethod(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	if len(methods) > 0 {
		w.Header().Set("Allow", methods[0])
	}
	WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
		"method not allowed", false, map[string]any{"method": r.Method, "allowed": methods})
	return false
}
