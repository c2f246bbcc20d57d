// Copyright 2025 Poiesic Systems
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
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/poiesic/docflow/core"
	"github.com/poiesic/docflow/pipeline"
	"github.com/poiesic/docflow/storage"
)

// Error codes carried in the error envelope.
const (
	CodeValidation        = "validation"
	CodeNotFound          = "not_found"
	CodeInvalidTransition = "invalid_transition"
	CodeInternal          = "internal"
)

// errorBody is the uniform error envelope:
// {success: false, error: {code, message, details?}}.
type errorBody struct {
	Success bool        `json:"success"`
	Error   errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Debug("failed to encode response", "err", err)
	}
}

// writeError maps an error to its status code and envelope. Internal errors
// carry a generic message; the cause is logged, not exposed.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	status, code := http.StatusInternalServerError, CodeInternal
	message := err.Error()

	switch {
	case errors.Is(err, core.ErrValidation), errors.Is(err, pipeline.ErrUnknownStage):
		status, code = http.StatusBadRequest, CodeValidation
	case errors.Is(err, core.ErrNotFound), errors.Is(err, storage.ErrNotFound):
		status, code = http.StatusNotFound, CodeNotFound
	case errors.Is(err, core.ErrInvalidTransition):
		status, code = http.StatusConflict, CodeInvalidTransition
	default:
		logger.Error("internal error", "err", err)
		message = "internal error"
	}

	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// writeValidationError reports a request-shape problem without an underlying
// sentinel to map.
func writeValidationError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: errorDetail{Code: CodeValidation, Message: message}})
}
