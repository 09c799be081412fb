// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/content-service/internal/types"
)

var tagColumns = []string{"id", "organization_id", "name", "created_at"}

func scanTag(row sq.RowScanner) (*types.Tag, error) {
	t := new(types.Tag)
	if err := row.Scan(&t.ID, &t.OrganizationID, &t.Name, &t.CreatedAt); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Storage) CreateTag(ctx context.Context, orgID, name string) (*types.Tag, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTag")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tag ID: %w", err)
	}

	t, err := scanTag(
		s.db.Statement(ctx).
			Insert("tags").
			Columns("id", "organization_id", "name").
			Values(id.String(), orgID, name).
			Suffix("RETURNING " + columnList(tagColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, mapWriteError(err, "failed to insert tag")
	}

	return t, nil
}

func (s *Storage) GetTag(ctx context.Context, id string) (*types.Tag, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTag")
	defer span.End()

	t, err := scanTag(
		s.db.Statement(ctx).
			Select(tagColumns...).
			From("tags").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	return t, nil
}

// AttachTag links tag and output only when both belong to orgID.
// ErrConditionFailed is returned when the tenant guard matches no row.
func (s *Storage) AttachTag(ctx context.Context, orgID, tagID, outputID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AttachTag")
	defer span.End()

	guard := sq.Select("o.id", "t.id").
		From("outputs o").
		Join("tags t ON t.organization_id = o.organization_id").
		Where(sq.Eq{"o.id": outputID, "t.id": tagID, "o.organization_id": orgID})

	res, err := s.db.Statement(ctx).
		Insert("output_tags").
		Columns("output_id", "tag_id").
		Select(guard).
		ExecContext(ctx)
	if err != nil {
		return mapWriteError(err, "failed to attach tag")
	}

	if err := expectAffected(res); err != nil {
		return ErrConditionFailed
	}

	return nil
}

func (s *Storage) DetachTag(ctx context.Context, tagID, outputID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DetachTag")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("output_tags").
		Where(sq.Eq{"output_id": outputID, "tag_id": tagID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to detach tag: %w", err)
	}

	return expectAffected(res)
}

func (s *Storage) ListTags(ctx context.Context, orgID string) ([]*types.Tag, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTags")
	defer span.End()

	return s.listTags(
		ctx,
		s.db.Statement(ctx).
			Select(tagColumns...).
			From("tags").
			Where(sq.Eq{"organization_id": orgID}).
			OrderBy("name"),
	)
}

func (s *Storage) ListTagsForOutput(ctx context.Context, outputID string) ([]*types.Tag, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTagsForOutput")
	defer span.End()

	return s.listTags(
		ctx,
		s.db.Statement(ctx).
			Select("t.id", "t.organization_id", "t.name", "t.created_at").
			From("tags t").
			Join("output_tags ot ON ot.tag_id = t.id").
			Where(sq.Eq{"ot.output_id": outputID}).
			OrderBy("t.name"),
	)
}

func (s *Storage) listTags(ctx context.Context, q sq.SelectBuilder) ([]*types.Tag, error) {
	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	var tags []*types.Tag
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag rows: %w", err)
	}

	return tags, nil
}
