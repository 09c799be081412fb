// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/content-service/internal/apperrors"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/storage"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/types"
)

const (
	ConstraintLastOwner        = "last_owner"
	ConstraintSingleMembership = "single_membership"
	ConstraintPendingJoin      = "pending_join_request"
)

const (
	defaultInvitationLifetime = 72 * time.Hour
	inviteTokenBytes          = 24

	entityOrganization = "organization"
	entityJoinRequest  = "join_request"
	entityMember       = "member"
	entityInvite       = "invite"
)

// JoinTarget names the organization of a join request, either by ID or by join code.
type JoinTarget struct {
	OrganizationID string `json:"organization_id,omitempty"`
	JoinCode       string `json:"join_code,omitempty"`
}

type Service struct {
	storage            StorageInterface
	authz              AuthzInterface
	invitationLifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Get(ctx context.Context, orgID string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.Get")
	defer span.End()

	org, err := s.storage.GetOrganization(ctx, orgID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperrors.NewNotFound(entityOrganization, orgID)
	}

	return org, err
}

// Membership returns the single organization membership of a profile.
func (s *Service) Membership(ctx context.Context, profileID string) (*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.Membership")
	defer span.End()

	m, err := s.storage.GetMemberByProfile(ctx, profileID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperrors.NewNotFound(entityMember, profileID)
	}

	return m, err
}

func (s *Service) ListMembers(ctx context.Context, actorID, orgID string) ([]*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.ListMembers")
	defer span.End()

	if _, err := s.actor(ctx, actorID, orgID, false); err != nil {
		return nil, err
	}

	return s.storage.ListMembers(ctx, orgID)
}

// ChangeRole updates the role of a member. Managers may change roles, only
// owners grant or revoke OWNER, and the last owner cannot be demoted.
func (s *Service) ChangeRole(ctx context.Context, actorID, orgID, profileID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.ChangeRole")
	defer span.End()

	if !role.Valid() {
		return apperrors.NewValidationError("role", "unknown role %q", role)
	}

	actor, err := s.actor(ctx, actorID, orgID, true)
	if err != nil {
		return err
	}

	var previous types.Role
	err = s.storage.WithTx(ctx, func(ctx context.Context) error {
		owners, err := s.storage.LockOwners(ctx, orgID)
		if err != nil {
			return err
		}

		target, err := s.member(ctx, orgID, profileID)
		if err != nil {
			return err
		}
		previous = target.Role

		if (target.Role == types.RoleOwner || role == types.RoleOwner) && actor.Role != types.RoleOwner {
			return apperrors.NewForbidden("only owners can grant or revoke the owner role")
		}

		if target.Role == types.RoleOwner && role != types.RoleOwner && len(owners) <= 1 {
			return apperrors.NewConstraintError(ConstraintLastOwner, "organization %s must keep at least one owner", orgID)
		}

		if target.Role == role {
			return nil
		}

		return s.storage.UpdateMemberRole(ctx, orgID, profileID, role)
	})
	if err != nil {
		return err
	}

	if err := s.authz.ChangeRole(ctx, orgID, profileID, previous, role); err != nil {
		s.logger.Errorf("failed to change role of %s in %s in authz: %v", profileID, orgID, err)
	}

	s.logger.Security().AdminAction(actorID, fmt.Sprintf("change_role:%s", role), fmt.Sprintf("%s/%s", orgID, profileID))

	return nil
}

// RemoveMember removes a member, managers may remove others and anyone may leave.
func (s *Service) RemoveMember(ctx context.Context, actorID, orgID, profileID string) error {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.RemoveMember")
	defer span.End()

	actor, err := s.actor(ctx, actorID, orgID, actorID != profileID)
	if err != nil {
		return err
	}

	var removed types.Role
	err = s.storage.WithTx(ctx, func(ctx context.Context) error {
		owners, err := s.storage.LockOwners(ctx, orgID)
		if err != nil {
			return err
		}

		target, err := s.member(ctx, orgID, profileID)
		if err != nil {
			return err
		}
		removed = target.Role

		if target.Role == types.RoleOwner {
			if actor.Role != types.RoleOwner {
				return apperrors.NewForbidden("only owners can remove an owner")
			}
			if len(owners) <= 1 {
				return apperrors.NewConstraintError(ConstraintLastOwner, "organization %s must keep at least one owner", orgID)
			}
		}

		if err := s.storage.RemoveMember(ctx, orgID, profileID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperrors.NewNotFound(entityMember, profileID)
			}
			return err
		}

		return nil
	})
	if err != nil {
		return err
	}

	if err := s.authz.RemoveRole(ctx, orgID, profileID, removed); err != nil {
		s.logger.Errorf("failed to remove role of %s in %s from authz: %v", profileID, orgID, err)
	}

	return nil
}

// RequestToJoin files a PENDING join request for a profile without organization.
func (s *Service) RequestToJoin(ctx context.Context, profileID string, target JoinTarget) (*types.JoinRequest, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.RequestToJoin")
	defer span.End()

	org, err := s.resolveTarget(ctx, target)
	if err != nil {
		return nil, err
	}

	return s.requestToJoin(ctx, &types.JoinRequest{OrganizationID: org.ID, ProfileID: profileID})
}

// RedeemInvite turns a valid invite into a PENDING join request.
func (s *Service) RedeemInvite(ctx context.Context, profileID, email, token string) (*types.JoinRequest, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.RedeemInvite")
	defer span.End()

	inv, err := s.storage.GetInviteByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NewNotFound(entityInvite, token)
		}
		return nil, err
	}

	if inv.Expired(time.Now()) {
		return nil, apperrors.NewValidationError("token", "invite expired at %s", inv.ExpiresAt.Format(time.RFC3339))
	}

	if inv.Email != nil && !strings.EqualFold(*inv.Email, strings.TrimSpace(email)) {
		return nil, apperrors.NewValidationError("token", "invite was issued for another email address")
	}

	return s.requestToJoin(ctx, &types.JoinRequest{OrganizationID: inv.OrganizationID, ProfileID: profileID, InviteID: &inv.ID})
}

func (s *Service) requestToJoin(ctx context.Context, jr *types.JoinRequest) (*types.JoinRequest, error) {
	if _, err := s.storage.GetMemberByProfile(ctx, jr.ProfileID); err == nil {
		return nil, apperrors.NewConstraintError(ConstraintSingleMembership, "profile %s already belongs to an organization", jr.ProfileID)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	created, err := s.storage.CreateJoinRequest(ctx, jr)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, apperrors.NewConstraintError(ConstraintPendingJoin, "profile %s already has a pending request for %s", jr.ProfileID, jr.OrganizationID)
		}
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, apperrors.NewNotFound(entityOrganization, jr.OrganizationID)
		}
		return nil, err
	}

	s.logger.Infof("profile %s requested to join organization %s", jr.ProfileID, jr.OrganizationID)

	return created, nil
}

func (s *Service) ListJoinRequests(ctx context.Context, actorID, orgID string, status types.JoinRequestStatus) ([]*types.JoinRequest, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.ListJoinRequests")
	defer span.End()

	if _, err := s.actor(ctx, actorID, orgID, true); err != nil {
		return nil, err
	}

	if status == "" {
		status = types.JoinRequestPending
	}

	return s.storage.ListJoinRequests(ctx, orgID, status)
}

// ApproveJoinRequest decides a PENDING request and adds the requester as MEMBER in the same transaction.
func (s *Service) ApproveJoinRequest(ctx context.Context, actorID, orgID, requestID string) (*types.JoinRequest, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.ApproveJoinRequest")
	defer span.End()

	jr, err := s.decide(ctx, actorID, orgID, requestID, types.JoinRequestApproved, func(ctx context.Context, jr *types.JoinRequest) error {
		_, err := s.storage.AddMember(ctx, orgID, jr.ProfileID, types.RoleMember)
		if errors.Is(err, storage.ErrDuplicateKey) {
			return apperrors.NewConstraintError(ConstraintSingleMembership, "profile %s already belongs to an organization", jr.ProfileID)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := s.authz.AssignRole(ctx, orgID, jr.ProfileID, types.RoleMember); err != nil {
		s.logger.Errorf("failed to assign member role of %s in %s in authz: %v", jr.ProfileID, orgID, err)
	}

	return jr, nil
}

func (s *Service) DenyJoinRequest(ctx context.Context, actorID, orgID, requestID string) (*types.JoinRequest, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.DenyJoinRequest")
	defer span.End()

	return s.decide(ctx, actorID, orgID, requestID, types.JoinRequestDenied, nil)
}

func (s *Service) decide(
	ctx context.Context,
	actorID, orgID, requestID string,
	status types.JoinRequestStatus,
	then func(context.Context, *types.JoinRequest) error,
) (*types.JoinRequest, error) {
	if _, err := s.actor(ctx, actorID, orgID, true); err != nil {
		return nil, err
	}

	var decided *types.JoinRequest
	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		current, err := s.storage.GetJoinRequest(ctx, requestID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperrors.NewNotFound(entityJoinRequest, requestID)
			}
			return err
		}

		if current.OrganizationID != orgID {
			return apperrors.NewNotFound(entityJoinRequest, requestID)
		}

		jr, err := s.storage.DecideJoinRequest(ctx, requestID, status, actorID)
		if err != nil {
			if errors.Is(err, storage.ErrConditionFailed) {
				return apperrors.NewInvalidState(entityJoinRequest, requestID, string(current.Status), string(status))
			}
			return err
		}

		if then != nil {
			if err := then(ctx, jr); err != nil {
				return err
			}
		}

		decided = jr
		return nil
	})
	if err != nil {
		return nil, err
	}

	return decided, nil
}

// CreateInvite issues an invite token, bound to email when one is given.
func (s *Service) CreateInvite(ctx context.Context, actorID, orgID, email string, ttl time.Duration) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.CreateInvite")
	defer span.End()

	if _, err := s.actor(ctx, actorID, orgID, true); err != nil {
		return nil, err
	}

	if ttl < 0 {
		return nil, apperrors.NewValidationError("ttl", "must not be negative")
	}
	if ttl == 0 {
		ttl = s.invitationLifetime
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}

	inv := &types.Invite{
		OrganizationID: orgID,
		Token:          token,
		CreatedBy:      actorID,
		ExpiresAt:      time.Now().Add(ttl).UTC(),
	}
	if email = strings.TrimSpace(email); email != "" {
		inv.Email = &email
	}

	return s.storage.CreateInvite(ctx, inv)
}

// actor loads the membership of actorID in orgID, requiring a managing role when manage is set.
func (s *Service) actor(ctx context.Context, actorID, orgID string, manage bool) (*types.Member, error) {
	m, err := s.storage.GetMemberByProfile(ctx, actorID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	if m == nil || m.OrganizationID != orgID {
		s.logger.Security().AuthzFailure(actorID, OrganizationResource(orgID))
		return nil, apperrors.NewForbidden("%s is not a member of organization %s", actorID, orgID)
	}

	if manage && !m.Role.CanManage() {
		s.logger.Security().AuthzFailure(actorID, OrganizationResource(orgID))
		return nil, apperrors.NewForbidden("%s cannot manage organization %s", actorID, orgID)
	}

	return m, nil
}

func (s *Service) member(ctx context.Context, orgID, profileID string) (*types.Member, error) {
	m, err := s.storage.GetMemberByProfile(ctx, profileID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	if m == nil || m.OrganizationID != orgID {
		return nil, apperrors.NewNotFound(entityMember, profileID)
	}

	return m, nil
}

func (s *Service) resolveTarget(ctx context.Context, target JoinTarget) (*types.Organization, error) {
	var (
		org *types.Organization
		err error
		ref string
	)

	switch {
	case target.JoinCode != "":
		ref = target.JoinCode
		org, err = s.storage.GetOrganizationByJoinCode(ctx, strings.TrimSpace(target.JoinCode))
	case target.OrganizationID != "":
		ref = target.OrganizationID
		org, err = s.storage.GetOrganization(ctx, target.OrganizationID)
	default:
		return nil, apperrors.NewValidationError("organization_id", "an organization ID or join code is required")
	}

	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperrors.NewNotFound(entityOrganization, ref)
	}

	return org, err
}

func OrganizationResource(orgID string) string {
	return "organization:" + orgID
}

func newToken() (string, error) {
	b := make([]byte, inviteTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate invite token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	invitationLifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.authz = authz
	s.invitationLifetime = invitationLifetime
	if s.invitationLifetime <= 0 {
		s.invitationLifetime = defaultInvitationLifetime
	}

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
