// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/content-service/internal/apperrors"
)

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeConflict   = "CONFLICT"
	CodeForbidden  = "FORBIDDEN"
	CodeUnauth     = "UNAUTHORIZED"
	CodeInternal   = "INTERNAL_ERROR"
)

// Response is the envelope of every API response.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Meta struct {
	Page int64 `json:"page"`
	Size int64 `json:"size"`
}

// StatusFor maps an error of the service taxonomy to an HTTP status and code.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, CodeValidation
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, CodeForbidden
	case errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrInvalidState),
		errors.Is(err, apperrors.ErrConstraint):
		return http.StatusConflict, CodeConflict
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	write(w, status, Response{Success: status >= 200 && status < 300, Data: data})
}

func WritePage(w http.ResponseWriter, data interface{}, page, size int64) {
	write(w, http.StatusOK, Response{Success: true, Data: data, Meta: &Meta{Page: page, Size: size}})
}

// WriteError renders err in the envelope, unexpected errors never leak their message.
func WriteError(w http.ResponseWriter, err error) {
	status, code := StatusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	WriteErrorMessage(w, status, code, message)
}

func WriteErrorMessage(w http.ResponseWriter, status int, code, message string) {
	write(w, status, Response{Success: false, Error: &Error{Code: code, Message: message}})
}

func write(w http.ResponseWriter, status int, r Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(r); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
