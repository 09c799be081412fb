// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Article struct {
	ID             string    `db:"id" json:"id"`
	OrganizationID string    `db:"organization_id" json:"organization_id"`
	Title          string    `db:"title" json:"title"`
	Content        string    `db:"content" json:"content"`
	Language       string    `db:"language" json:"language"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type Tag struct {
	ID             string    `db:"id" json:"id"`
	OrganizationID string    `db:"organization_id" json:"organization_id"`
	Name           string    `db:"name" json:"name"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type Voice struct {
	ID             string    `db:"id" json:"id"`
	OrganizationID string    `db:"organization_id" json:"organization_id"`
	Name           string    `db:"name" json:"name"`
	VendorVoiceID  string    `db:"vendor_voice_id" json:"vendor_voice_id"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type Character struct {
	ID             string    `db:"id" json:"id"`
	OrganizationID string    `db:"organization_id" json:"organization_id"`
	Name           string    `db:"name" json:"name"`
	AvatarID       string    `db:"avatar_id" json:"avatar_id"`
	VoiceID        string    `db:"voice_id" json:"voice_id"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
