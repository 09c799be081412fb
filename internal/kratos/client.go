// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	ory "github.com/ory/client-go"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
)

var ErrIdentityNotFound = fmt.Errorf("identity not found")

type ClientInterface interface {
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
	GetTraits(ctx context.Context, id string) (*Traits, error)
}

// Traits are the identity schema fields mirrored onto profiles.
type Traits struct {
	Email    string
	FullName string
}

type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) GetIdentity(ctx context.Context, id string) (*ory.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentity")
	defer span.End()

	identity, r, err := c.client.IdentityAPI.GetIdentity(ctx, id).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil, ErrIdentityNotFound
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return identity, nil
}

func (c *Client) GetTraits(ctx context.Context, id string) (*Traits, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetTraits")
	defer span.End()

	identity, err := c.GetIdentity(ctx, id)
	if err != nil {
		return nil, err
	}

	return TraitsOf(identity), nil
}

// TraitsOf reads email and name from the default identity schema, where name is either a
// string or a {first, last} object.
func TraitsOf(identity *ory.Identity) *Traits {
	t := new(Traits)

	traits, ok := identity.GetTraits().(map[string]interface{})
	if !ok {
		return t
	}

	t.Email, _ = traits["email"].(string)

	switch name := traits["name"].(type) {
	case string:
		t.FullName = name
	case map[string]interface{}:
		first, _ := name["first"].(string)
		last, _ := name["last"].(string)
		t.FullName = strings.TrimSpace(first + " " + last)
	}

	return t
}
