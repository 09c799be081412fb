// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

type KratosIdentity struct {
	ID     string       `json:"id"`
	Traits KratosTraits `json:"traits"`
}

type KratosTraits struct {
	Email string `json:"email"`
}

// registrationHook is the body of the Kratos after registration hook. Depending
// on the jsonnet template the identity is the body itself or nested in "identity".
type registrationHook struct {
	KratosIdentity
	Identity *KratosIdentity `json:"identity,omitempty"`
}

func (h *registrationHook) identity() KratosIdentity {
	if h.Identity != nil {
		return *h.Identity
	}
	return h.KratosIdentity
}
