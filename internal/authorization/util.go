// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/canonical/content-service/internal/types"
)

const (
	OWNER_RELATION  = "owner"
	ADMIN_RELATION  = "admin"
	MEMBER_RELATION = "member"

	CAN_VIEW_PERMISSION   = "can_view"
	CAN_CREATE_PERMISSION = "can_create"
	CAN_EDIT_PERMISSION   = "can_edit"
	CAN_MANAGE_PERMISSION = "can_manage"

	ORGANIZATION_TYPE = "organization"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func OrganizationTuple(orgId string) string {
	return ORGANIZATION_TYPE + ":" + orgId
}

// RoleRelation maps a membership role to its direct relation in the model.
func RoleRelation(role types.Role) string {
	switch role {
	case types.RoleOwner:
		return OWNER_RELATION
	case types.RoleAdmin:
		return ADMIN_RELATION
	default:
		return MEMBER_RELATION
	}
}
