// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/content-service/internal/types"
)

var (
	organizationColumns = []string{"id", "name", "slug", "join_code", "created_at", "updated_at"}
	memberColumns       = []string{"id", "organization_id", "profile_id", "role", "created_at"}
	profileColumns      = []string{"id", "email", "full_name", "is_admin", "access_granted_at", "created_at"}
	joinRequestColumns  = []string{"id", "organization_id", "profile_id", "invite_id", "status", "decided_by", "decided_at", "created_at"}
	inviteColumns       = []string{"id", "organization_id", "token", "email", "created_by", "expires_at", "created_at"}
)

func scanOrganization(row sq.RowScanner) (*types.Organization, error) {
	o := new(types.Organization)
	if err := row.Scan(&o.ID, &o.Name, &o.Slug, &o.JoinCode, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return o, nil
}

func scanMember(row sq.RowScanner) (*types.Member, error) {
	m := new(types.Member)
	if err := row.Scan(&m.ID, &m.OrganizationID, &m.ProfileID, &m.Role, &m.CreatedAt); err != nil {
		return nil, err
	}
	return m, nil
}

func scanJoinRequest(row sq.RowScanner) (*types.JoinRequest, error) {
	jr := new(types.JoinRequest)
	if err := row.Scan(&jr.ID, &jr.OrganizationID, &jr.ProfileID, &jr.InviteID, &jr.Status, &jr.DecidedBy, &jr.DecidedAt, &jr.CreatedAt); err != nil {
		return nil, err
	}
	return jr, nil
}

func (s *Storage) CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganization")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate organization ID: %w", err)
	}

	org, err := scanOrganization(
		s.db.Statement(ctx).
			Insert("organizations").
			Columns("id", "name", "slug", "join_code").
			Values(id.String(), o.Name, o.Slug, o.JoinCode).
			Suffix("RETURNING id, name, slug, join_code, created_at, updated_at").
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, mapWriteError(err, "failed to insert organization")
	}

	return org, nil
}

func (s *Storage) GetOrganization(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganization")
	defer span.End()

	return s.getOrganization(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetOrganizationByJoinCode(ctx context.Context, code string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationByJoinCode")
	defer span.End()

	return s.getOrganization(ctx, sq.Eq{"join_code": code})
}

func (s *Storage) getOrganization(ctx context.Context, where sq.Eq) (*types.Organization, error) {
	org, err := scanOrganization(
		s.db.Statement(ctx).
			Select(organizationColumns...).
			From("organizations").
			Where(where).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return org, nil
}

// UpsertProfile inserts the profile or refreshes its identity traits, keeping
// stored values when the incoming ones are empty.
func (s *Storage) UpsertProfile(ctx context.Context, p *types.Profile) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertProfile")
	defer span.End()

	out := new(types.Profile)
	err := s.db.Statement(ctx).
		Insert("profiles").
		Columns("id", "email", "full_name").
		Values(p.ID, p.Email, p.FullName).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			email = COALESCE(NULLIF(EXCLUDED.email, ''), profiles.email),
			full_name = COALESCE(NULLIF(EXCLUDED.full_name, ''), profiles.full_name)
			RETURNING id, email, full_name, is_admin, access_granted_at, created_at`).
		QueryRowContext(ctx).
		Scan(&out.ID, &out.Email, &out.FullName, &out.IsAdmin, &out.AccessGrantedAt, &out.CreatedAt)
	if err != nil {
		return nil, mapWriteError(err, "failed to upsert profile")
	}

	return out, nil
}

func (s *Storage) GetProfile(ctx context.Context, id string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProfile")
	defer span.End()

	p := new(types.Profile)
	err := s.db.Statement(ctx).
		Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&p.ID, &p.Email, &p.FullName, &p.IsAdmin, &p.AccessGrantedAt, &p.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

// AddMember returns ErrDuplicateKey when the profile already belongs to an organization.
func (s *Storage) AddMember(ctx context.Context, orgID, profileID string, role types.Role) (*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate member ID: %w", err)
	}

	m, err := scanMember(
		s.db.Statement(ctx).
			Insert("organization_members").
			Columns("id", "organization_id", "profile_id", "role").
			Values(id.String(), orgID, profileID, string(role)).
			Suffix("RETURNING id, organization_id, profile_id, role, created_at").
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, mapWriteError(err, "failed to insert member")
	}

	return m, nil
}

func (s *Storage) GetMemberByProfile(ctx context.Context, profileID string) (*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMemberByProfile")
	defer span.End()

	m, err := scanMember(
		s.db.Statement(ctx).
			Select(memberColumns...).
			From("organization_members").
			Where(sq.Eq{"profile_id": profileID}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return m, nil
}

// ListMemberships pages through the members of every organization ordered by ID,
// returning the ones after afterID.
func (s *Storage) ListMemberships(ctx context.Context, afterID string, limit uint64) ([]*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMemberships")
	defer span.End()

	q := s.db.Statement(ctx).
		Select(memberColumns...).
		From("organization_members").
		OrderBy("id").
		Limit(limit)
	if afterID != "" {
		q = q.Where(sq.Gt{"id": afterID})
	}

	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	members := make([]*types.Member, 0, limit)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

func (s *Storage) ListMembers(ctx context.Context, orgID string) ([]*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(memberColumns...).
		From("organization_members").
		Where(sq.Eq{"organization_id": orgID}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}

	return members, nil
}

// LockOwners locks the owner rows of an organization for the rest of the
// transaction and returns their profile IDs.
func (s *Storage) LockOwners(ctx context.Context, orgID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockOwners")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("profile_id").
		From("organization_members").
		Where(sq.Eq{"organization_id": orgID, "role": string(types.RoleOwner)}).
		Suffix("FOR UPDATE").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock owners: %w", err)
	}
	defer rows.Close()

	var owners []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan owner: %w", err)
		}
		owners = append(owners, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating owner rows: %w", err)
	}

	return owners, nil
}

func (s *Storage) UpdateMemberRole(ctx context.Context, orgID, profileID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMemberRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("organization_members").
		Set("role", string(role)).
		Where(sq.Eq{"organization_id": orgID, "profile_id": profileID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update member role: %w", err)
	}

	return expectAffected(res)
}

func (s *Storage) RemoveMember(ctx context.Context, orgID, profileID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("organization_members").
		Where(sq.Eq{"organization_id": orgID, "profile_id": profileID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	return expectAffected(res)
}

// CreateJoinRequest returns ErrDuplicateKey when a pending request already exists.
func (s *Storage) CreateJoinRequest(ctx context.Context, jr *types.JoinRequest) (*types.JoinRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateJoinRequest")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate join request ID: %w", err)
	}

	out, err := scanJoinRequest(
		s.db.Statement(ctx).
			Insert("join_requests").
			Columns("id", "organization_id", "profile_id", "invite_id", "status").
			Values(id.String(), jr.OrganizationID, jr.ProfileID, jr.InviteID, string(types.JoinRequestPending)).
			Suffix("RETURNING id, organization_id, profile_id, invite_id, status, decided_by, decided_at, created_at").
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, mapWriteError(err, "failed to insert join request")
	}

	return out, nil
}

func (s *Storage) GetJoinRequest(ctx context.Context, id string) (*types.JoinRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetJoinRequest")
	defer span.End()

	jr, err := scanJoinRequest(
		s.db.Statement(ctx).
			Select(joinRequestColumns...).
			From("join_requests").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get join request: %w", err)
	}

	return jr, nil
}

func (s *Storage) ListJoinRequests(ctx context.Context, orgID string, status types.JoinRequestStatus) ([]*types.JoinRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListJoinRequests")
	defer span.End()

	q := s.db.Statement(ctx).
		Select(joinRequestColumns...).
		From("join_requests").
		Where(sq.Eq{"organization_id": orgID}).
		OrderBy("created_at DESC")

	if status != "" {
		q = q.Where(sq.Eq{"status": string(status)})
	}

	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list join requests: %w", err)
	}
	defer rows.Close()

	var out []*types.JoinRequest
	for rows.Next() {
		jr, err := scanJoinRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan join request: %w", err)
		}
		out = append(out, jr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating join request rows: %w", err)
	}

	return out, nil
}

// DecideJoinRequest moves a PENDING request to a terminal status.
// It returns ErrConditionFailed if the request is not pending anymore.
func (s *Storage) DecideJoinRequest(ctx context.Context, id string, status types.JoinRequestStatus, decidedBy string) (*types.JoinRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DecideJoinRequest")
	defer span.End()

	jr, err := scanJoinRequest(
		s.db.Statement(ctx).
			Update("join_requests").
			Set("status", string(status)).
			Set("decided_by", decidedBy).
			Set("decided_at", sq.Expr("NOW()")).
			Where(sq.Eq{"id": id, "status": string(types.JoinRequestPending)}).
			Suffix("RETURNING id, organization_id, profile_id, invite_id, status, decided_by, decided_at, created_at").
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrConditionFailed
		}
		return nil, fmt.Errorf("failed to decide join request: %w", err)
	}

	return jr, nil
}

func (s *Storage) CreateInvite(ctx context.Context, inv *types.Invite) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvite")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite ID: %w", err)
	}

	out := new(types.Invite)
	err = s.db.Statement(ctx).
		Insert("organization_invites").
		Columns("id", "organization_id", "token", "email", "created_by", "expires_at").
		Values(id.String(), inv.OrganizationID, inv.Token, inv.Email, inv.CreatedBy, inv.ExpiresAt).
		Suffix("RETURNING id, organization_id, token, email, created_by, expires_at, created_at").
		QueryRowContext(ctx).
		Scan(&out.ID, &out.OrganizationID, &out.Token, &out.Email, &out.CreatedBy, &out.ExpiresAt, &out.CreatedAt)
	if err != nil {
		return nil, mapWriteError(err, "failed to insert invite")
	}

	return out, nil
}

func (s *Storage) GetInviteByToken(ctx context.Context, token string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInviteByToken")
	defer span.End()

	inv := new(types.Invite)
	err := s.db.Statement(ctx).
		Select(inviteColumns...).
		From("organization_invites").
		Where(sq.Eq{"token": token}).
		QueryRowContext(ctx).
		Scan(&inv.ID, &inv.OrganizationID, &inv.Token, &inv.Email, &inv.CreatedBy, &inv.ExpiresAt, &inv.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return inv, nil
}

// DeleteExpiredInvites removes invites that expired before the cutoff.
func (s *Storage) DeleteExpiredInvites(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteExpiredInvites")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("organization_invites").
		Where(sq.Lt{"expires_at": cutoff}).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired invites: %w", err)
	}

	return res.RowsAffected()
}
