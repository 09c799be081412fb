// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vendors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	CodeRateLimited    = "rate_limited"
	CodeUnavailable    = "unavailable"
	CodeTimeout        = "timeout"
	CodeNetwork        = "network"
	CodeCanceled       = "canceled"
	CodeInvalidRequest = "invalid_request"
	CodeUnauthorized   = "unauthorized"
	CodeBadResponse    = "bad_response"
	CodeRenderPending  = "render_pending"
	CodeRenderFailed   = "render_failed"
	CodeInternal       = "internal"
)

var retryableCodes = map[string]bool{
	CodeRateLimited:   true,
	CodeUnavailable:   true,
	CodeTimeout:       true,
	CodeNetwork:       true,
	CodeCanceled:      true,
	CodeRenderPending: true,
}

// Error is the normalized failure of a single vendor call. Adapters never
// retry on their own, Retryable only informs the job retry policy.
type Error struct {
	Vendor     string
	Code       string
	Message    string
	Retryable  bool
	StatusCode int
	RetryAfter time.Duration

	cause error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (http %d): %s", e.Vendor, e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Vendor, e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func NewError(vendor, code, message string) *Error {
	return &Error{
		Vendor:    vendor,
		Code:      code,
		Message:   message,
		Retryable: retryableCodes[code],
	}
}

// FromStatus maps a non-2xx HTTP response to an Error.
func FromStatus(vendor string, status int, body string, header http.Header) *Error {
	code := CodeInternal
	switch {
	case status == http.StatusTooManyRequests:
		code = CodeRateLimited
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		code = CodeUnauthorized
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		code = CodeTimeout
	case status >= 500:
		code = CodeUnavailable
	case status >= 400:
		code = CodeInvalidRequest
	}

	e := NewError(vendor, code, truncate(strings.TrimSpace(body), 512))
	e.StatusCode = status
	if header != nil {
		e.RetryAfter = parseRetryAfter(header.Get("Retry-After"))
	}

	return e
}

// Classify normalizes any error returned while calling a vendor.
func Classify(vendor string, err error) error {
	if err == nil {
		return nil
	}

	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr
	}

	var e *Error
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		e = NewError(vendor, CodeTimeout, err.Error())
	case errors.Is(err, context.Canceled):
		e = NewError(vendor, CodeCanceled, err.Error())
	case errors.As(err, &netErr) && netErr.Timeout():
		e = NewError(vendor, CodeTimeout, err.Error())
	case errors.As(err, &netErr):
		e = NewError(vendor, CodeNetwork, err.Error())
	default:
		e = NewError(vendor, CodeInternal, err.Error())
	}
	e.cause = err

	return e
}

// IsRetryable reports whether err is a vendor error worth another attempt.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable
}

func parseRetryAfter(v string) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
