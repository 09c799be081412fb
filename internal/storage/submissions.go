// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/content-service/internal/db"
	"github.com/canonical/content-service/internal/types"
)

var (
	articleColumns    = []string{"id", "organization_id", "title", "content", "language", "created_at"}
	submissionColumns = []string{
		"id", "organization_id", "article_id",
		"generate_audio", "generate_podcast", "generate_interactive_podcast", "generate_video", "generate_quiz",
		"status", "language", "character_id", "created_by", "created_at", "updated_at",
	}
)

func scanArticle(row sq.RowScanner) (*types.Article, error) {
	a := new(types.Article)
	if err := row.Scan(&a.ID, &a.OrganizationID, &a.Title, &a.Content, &a.Language, &a.CreatedAt); err != nil {
		return nil, err
	}
	return a, nil
}

func scanSubmission(row sq.RowScanner) (*types.Submission, error) {
	sub := new(types.Submission)
	err := row.Scan(
		&sub.ID, &sub.OrganizationID, &sub.ArticleID,
		&sub.GenerateAudio, &sub.GeneratePodcast, &sub.GenerateInteractivePodcast, &sub.GenerateVideo, &sub.GenerateQuiz,
		&sub.Status, &sub.Language, &sub.CharacterID, &sub.CreatedBy, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *Storage) CreateArticle(ctx context.Context, a *types.Article) (*types.Article, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateArticle")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate article ID: %w", err)
	}

	out, err := scanArticle(
		s.db.Statement(ctx).
			Insert("articles").
			Columns("id", "organization_id", "title", "content", "language").
			Values(id.String(), a.OrganizationID, a.Title, a.Content, a.Language).
			Suffix("RETURNING id, organization_id, title, content, language, created_at").
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, mapWriteError(err, "failed to insert article")
	}

	return out, nil
}

func (s *Storage) GetArticle(ctx context.Context, id string) (*types.Article, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetArticle")
	defer span.End()

	a, err := scanArticle(
		s.db.Statement(ctx).
			Select(articleColumns...).
			From("articles").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return a, nil
}

func (s *Storage) CreateSubmission(ctx context.Context, sub *types.Submission) (*types.Submission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSubmission")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate submission ID: %w", err)
	}

	out, err := scanSubmission(
		s.db.Statement(ctx).
			Insert("submissions").
			Columns(
				"id", "organization_id", "article_id",
				"generate_audio", "generate_podcast", "generate_interactive_podcast", "generate_video", "generate_quiz",
				"status", "language", "character_id", "created_by",
			).
			Values(
				id.String(), sub.OrganizationID, sub.ArticleID,
				sub.GenerateAudio, sub.GeneratePodcast, sub.GenerateInteractivePodcast, sub.GenerateVideo, sub.GenerateQuiz,
				string(types.SubmissionPending), sub.Language, sub.CharacterID, sub.CreatedBy,
			).
			Suffix("RETURNING " + columnList(submissionColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, mapWriteError(err, "failed to insert submission")
	}

	return out, nil
}

func (s *Storage) GetSubmission(ctx context.Context, id string) (*types.Submission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSubmission")
	defer span.End()

	return s.getSubmission(ctx, id, false)
}

// LockSubmission selects the submission row FOR UPDATE, it must be called inside WithTx.
func (s *Storage) LockSubmission(ctx context.Context, id string) (*types.Submission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockSubmission")
	defer span.End()

	return s.getSubmission(ctx, id, true)
}

func (s *Storage) getSubmission(ctx context.Context, id string, lock bool) (*types.Submission, error) {
	q := s.db.Statement(ctx).
		Select(submissionColumns...).
		From("submissions").
		Where(sq.Eq{"id": id})

	if lock {
		q = q.Suffix("FOR UPDATE")
	}

	sub, err := scanSubmission(q.QueryRowContext(ctx))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return sub, nil
}

func (s *Storage) ListSubmissions(ctx context.Context, orgID string, page, size int64) ([]*types.Submission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSubmissions")
	defer span.End()

	pageSize := db.PageSize(size)

	rows, err := s.db.Statement(ctx).
		Select(submissionColumns...).
		From("submissions").
		Where(sq.Eq{"organization_id": orgID}).
		OrderBy("created_at DESC").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize)).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var out []*types.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		out = append(out, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating submission rows: %w", err)
	}

	return out, nil
}

func (s *Storage) UpdateSubmissionStatus(ctx context.Context, id string, status types.SubmissionStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateSubmissionStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("submissions").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update submission status: %w", err)
	}

	return expectAffected(res)
}
