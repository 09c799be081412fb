// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/content-service/internal/apperrors"
)

const (
	defaultPageSize int64 = 20
	maxPageSize     int64 = 100
	maxBodyBytes          = 1 << 20
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// DecodeJSON reads the request body into v and runs its validate tags.
// Any failure is returned as a validation error.
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return apperrors.NewValidationError("body", "invalid JSON: %v", err)
	}

	return Validate(v)
}

func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperrors.NewValidationError(fe.Field(), "failed on %q", fe.Tag())
	}

	return apperrors.NewValidationError("body", "%v", err)
}

// Pagination reads page (1-based) and size from the query string.
func Pagination(r *http.Request) (int64, int64, error) {
	page, size := int64(1), defaultPageSize

	if v := r.URL.Query().Get("page"); v != "" {
		p, err := strconv.ParseInt(v, 10, 64)
		if err != nil || p < 1 {
			return 0, 0, apperrors.NewValidationError("page", "must be a positive integer")
		}
		page = p
	}

	if v := r.URL.Query().Get("size"); v != "" {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil || s < 1 || s > maxPageSize {
			return 0, 0, apperrors.NewValidationError("size", "must be between 1 and %d", maxPageSize)
		}
		size = s
	}

	return page, size, nil
}
