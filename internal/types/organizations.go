// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// CanManage reports whether the role may approve join requests and manage members.
func (r Role) CanManage() bool {
	return r == RoleOwner || r == RoleAdmin
}

type Organization struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	JoinCode  string    `db:"join_code" json:"join_code"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type Profile struct {
	ID              string     `db:"id" json:"id"`
	Email           string     `db:"email" json:"email"`
	FullName        string     `db:"full_name" json:"full_name"`
	IsAdmin         bool       `db:"is_admin" json:"is_admin"`
	AccessGrantedAt *time.Time `db:"access_granted_at" json:"access_granted_at,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}

type Member struct {
	ID             string    `db:"id" json:"id"`
	OrganizationID string    `db:"organization_id" json:"organization_id"`
	ProfileID      string    `db:"profile_id" json:"profile_id"`
	Role           Role      `db:"role" json:"role"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type JoinRequestStatus string

const (
	JoinRequestPending  JoinRequestStatus = "PENDING"
	JoinRequestApproved JoinRequestStatus = "APPROVED"
	JoinRequestDenied   JoinRequestStatus = "DENIED"
)

type JoinRequest struct {
	ID             string            `db:"id" json:"id"`
	OrganizationID string            `db:"organization_id" json:"organization_id"`
	ProfileID      string            `db:"profile_id" json:"profile_id"`
	InviteID       *string           `db:"invite_id" json:"invite_id,omitempty"`
	Status         JoinRequestStatus `db:"status" json:"status"`
	DecidedBy      *string           `db:"decided_by" json:"decided_by,omitempty"`
	DecidedAt      *time.Time        `db:"decided_at" json:"decided_at,omitempty"`
	CreatedAt      time.Time         `db:"created_at" json:"created_at"`
}

type Invite struct {
	ID             string    `db:"id" json:"id"`
	OrganizationID string    `db:"organization_id" json:"organization_id"`
	Token          string    `db:"token" json:"token"`
	Email          *string   `db:"email" json:"email,omitempty"`
	CreatedBy      string    `db:"created_by" json:"created_by"`
	ExpiresAt      time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

func (i *Invite) Expired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}
