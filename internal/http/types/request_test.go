// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/canonical/content-service/internal/apperrors"
)

type roleRequest struct {
	Role  string `json:"role" validate:"required,oneof=OWNER ADMIN MEMBER"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		field   string
		wantErr bool
	}{
		{name: "valid", body: `{"role":"ADMIN"}`},
		{name: "malformed", body: `{"role":`, field: "body", wantErr: true},
		{name: "unknown field", body: `{"role":"ADMIN","admin":true}`, field: "body", wantErr: true},
		{name: "missing role", body: `{}`, field: "role", wantErr: true},
		{name: "bad email", body: `{"role":"MEMBER","email":"nope"}`, field: "email", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(test.body))

			var req roleRequest
			err := DecodeJSON(r, &req)

			if !test.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var ve *apperrors.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Field != test.field {
				t.Errorf("expected field %s, got %s", test.field, ve.Field)
			}
		})
	}
}

func TestPagination(t *testing.T) {
	tests := []struct {
		query   string
		page    int64
		size    int64
		wantErr bool
	}{
		{query: "", page: 1, size: defaultPageSize},
		{query: "page=3&size=50", page: 3, size: 50},
		{query: "page=0", wantErr: true},
		{query: "size=1000", wantErr: true},
		{query: "page=abc", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/?"+test.query, nil)

			page, size, err := Pagination(r)

			if test.wantErr {
				if !errors.Is(err, apperrors.ErrValidation) {
					t.Errorf("expected validation error, got %v", err)
				}
				return
			}
			if page != test.page || size != test.size {
				t.Errorf("expected %d/%d, got %d/%d", test.page, test.size, page, size)
			}
		})
	}
}
