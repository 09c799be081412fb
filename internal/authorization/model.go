// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
)

var models = map[string]string{
	"v0": `model
  schema 1.1

type user

type organization
  relations
    define owner: [user]
    define admin: [user] or owner
    define member: [user] or admin
    define can_view: member
    define can_create: member
    define can_edit: admin
    define can_manage: owner
`,
}

type AuthorizationModelProvider struct {
	version string
}

// GetModel compiles the DSL of the provider version, it panics on an unknown version or invalid DSL.
func (a *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	model, err := a.Model()
	if err != nil {
		panic(err)
	}
	return model
}

func (a *AuthorizationModelProvider) Model() (*fga.AuthorizationModel, error) {
	dsl, ok := models[a.version]
	if !ok {
		return nil, fmt.Errorf("unknown authorization model version %q", a.version)
	}

	raw, err := transformer.TransformDSLToJSON(dsl)
	if err != nil {
		return nil, fmt.Errorf("failed to compile authorization model: %w", err)
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal([]byte(raw), model); err != nil {
		return nil, fmt.Errorf("failed to decode authorization model: %w", err)
	}

	return model, nil
}

func (a *AuthorizationModelProvider) DSL() string {
	return models[a.version]
}

func NewAuthorizationModelProvider(version string) *AuthorizationModelProvider {
	return &AuthorizationModelProvider{version: version}
}
