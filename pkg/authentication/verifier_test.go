// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessPolicyAuthorize(t *testing.T) {
	tests := []struct {
		name       string
		policy     AccessPolicy
		claims     tokenClaims
		wantErr    bool
		wantScopes []string
	}{
		{
			name:       "empty policy accepts any subject",
			claims:     tokenClaims{Subject: "user-1", Email: "a@example.com"},
			wantScopes: []string{},
		},
		{
			name:    "token without subject",
			claims:  tokenClaims{Scope: "content"},
			wantErr: true,
		},
		{
			name:       "allowed subject",
			policy:     AccessPolicy{AllowedSubjects: []string{"svc-a", "svc-b"}},
			claims:     tokenClaims{Subject: "svc-b"},
			wantScopes: []string{},
		},
		{
			name:    "subject not allowed",
			policy:  AccessPolicy{AllowedSubjects: []string{"svc-a"}},
			claims:  tokenClaims{Subject: "svc-c", Scope: "content"},
			wantErr: true,
		},
		{
			name:       "required scope from scope string",
			policy:     AccessPolicy{RequiredScope: "content"},
			claims:     tokenClaims{Subject: "user-1", Scope: "openid content"},
			wantScopes: []string{"openid", "content"},
		},
		{
			name:       "required scope from scp array",
			policy:     AccessPolicy{RequiredScope: "content"},
			claims:     tokenClaims{Subject: "user-1", Scp: []string{"content"}},
			wantScopes: []string{"content"},
		},
		{
			name:    "missing required scope",
			policy:  AccessPolicy{RequiredScope: "content"},
			claims:  tokenClaims{Subject: "user-1", Scope: "openid"},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, err := test.policy.authorize(&test.claims)

			if test.wantErr {
				assert.Error(t, err)
				assert.Nil(t, p)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.claims.Subject, p.UserID)
			assert.Equal(t, test.claims.Email, p.Email)
			assert.ElementsMatch(t, test.wantScopes, p.Scopes)
		})
	}
}
