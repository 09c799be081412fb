// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/content-service/internal/types"
)

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error

	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	GetOrganization(ctx context.Context, id string) (*types.Organization, error)
	GetOrganizationByJoinCode(ctx context.Context, code string) (*types.Organization, error)
	UpsertProfile(ctx context.Context, p *types.Profile) (*types.Profile, error)
	GetProfile(ctx context.Context, id string) (*types.Profile, error)
	AddMember(ctx context.Context, orgID, profileID string, role types.Role) (*types.Member, error)
	GetMemberByProfile(ctx context.Context, profileID string) (*types.Member, error)
	ListMembers(ctx context.Context, orgID string) ([]*types.Member, error)
	ListMemberships(ctx context.Context, afterID string, limit uint64) ([]*types.Member, error)
	LockOwners(ctx context.Context, orgID string) ([]string, error)
	UpdateMemberRole(ctx context.Context, orgID, profileID string, role types.Role) error
	RemoveMember(ctx context.Context, orgID, profileID string) error
	CreateJoinRequest(ctx context.Context, jr *types.JoinRequest) (*types.JoinRequest, error)
	GetJoinRequest(ctx context.Context, id string) (*types.JoinRequest, error)
	ListJoinRequests(ctx context.Context, orgID string, status types.JoinRequestStatus) ([]*types.JoinRequest, error)
	DecideJoinRequest(ctx context.Context, id string, status types.JoinRequestStatus, decidedBy string) (*types.JoinRequest, error)
	CreateInvite(ctx context.Context, inv *types.Invite) (*types.Invite, error)
	GetInviteByToken(ctx context.Context, token string) (*types.Invite, error)
	DeleteExpiredInvites(ctx context.Context, cutoff time.Time) (int64, error)

	CreateArticle(ctx context.Context, a *types.Article) (*types.Article, error)
	GetArticle(ctx context.Context, id string) (*types.Article, error)
	CreateSubmission(ctx context.Context, sub *types.Submission) (*types.Submission, error)
	GetSubmission(ctx context.Context, id string) (*types.Submission, error)
	LockSubmission(ctx context.Context, id string) (*types.Submission, error)
	ListSubmissions(ctx context.Context, orgID string, page, size int64) ([]*types.Submission, error)
	UpdateSubmissionStatus(ctx context.Context, id string, status types.SubmissionStatus) error

	CreateOutputs(ctx context.Context, submissionID, orgID string, kinds []types.OutputKind) ([]*types.Output, error)
	GetOutput(ctx context.Context, id string) (*types.Output, error)
	ListOutputs(ctx context.Context, submissionID string) ([]*types.Output, error)
	ListOutputStatuses(ctx context.Context, submissionID string) ([]types.OutputStatus, error)
	StartOutput(ctx context.Context, id, jobID string, from []types.OutputStatus) (*types.Output, error)
	CompleteOutput(ctx context.Context, id, jobID string, payload []byte) (*types.Output, error)
	FailOutput(ctx context.Context, id, jobID, message string) (*types.Output, error)
	SetOutputApproval(ctx context.Context, id string, approved bool) (*types.Output, error)
	SaveCheckpoint(ctx context.Context, id, jobID string, cp *types.Checkpoint) error
	ListStaleOutputs(ctx context.Context, cutoff time.Time, limit uint64) ([]*types.Output, error)

	CreateTag(ctx context.Context, orgID, name string) (*types.Tag, error)
	GetTag(ctx context.Context, id string) (*types.Tag, error)
	AttachTag(ctx context.Context, orgID, tagID, outputID string) error
	DetachTag(ctx context.Context, tagID, outputID string) error
	ListTags(ctx context.Context, orgID string) ([]*types.Tag, error)
	ListTagsForOutput(ctx context.Context, outputID string) ([]*types.Tag, error)

	CreateVoice(ctx context.Context, v *types.Voice) (*types.Voice, error)
	GetVoice(ctx context.Context, id string) (*types.Voice, error)
	ListVoices(ctx context.Context, orgID string) ([]*types.Voice, error)
	CreateCharacter(ctx context.Context, c *types.Character) (*types.Character, error)
	GetCharacter(ctx context.Context, id string) (*types.Character, error)
	ListCharacters(ctx context.Context, orgID string) ([]*types.Character, error)
}
