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

var (
	voiceColumns     = []string{"id", "organization_id", "name", "vendor_voice_id", "created_at"}
	characterColumns = []string{"id", "organization_id", "name", "avatar_id", "voice_id", "created_at"}
)

func scanVoice(row sq.RowScanner) (*types.Voice, error) {
	v := new(types.Voice)
	if err := row.Scan(&v.ID, &v.OrganizationID, &v.Name, &v.VendorVoiceID, &v.CreatedAt); err != nil {
		return nil, err
	}
	return v, nil
}

func scanCharacter(row sq.RowScanner) (*types.Character, error) {
	c := new(types.Character)
	if err := row.Scan(&c.ID, &c.OrganizationID, &c.Name, &c.AvatarID, &c.VoiceID, &c.CreatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Storage) CreateVoice(ctx context.Context, v *types.Voice) (*types.Voice, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateVoice")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate voice ID: %w", err)
	}

	out, err := scanVoice(
		s.db.Statement(ctx).
			Insert("voices").
			Columns("id", "organization_id", "name", "vendor_voice_id").
			Values(id.String(), v.OrganizationID, v.Name, v.VendorVoiceID).
			Suffix("RETURNING " + columnList(voiceColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, mapWriteError(err, "failed to insert voice")
	}

	return out, nil
}

func (s *Storage) GetVoice(ctx context.Context, id string) (*types.Voice, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetVoice")
	defer span.End()

	v, err := scanVoice(
		s.db.Statement(ctx).
			Select(voiceColumns...).
			From("voices").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get voice: %w", err)
	}

	return v, nil
}

func (s *Storage) ListVoices(ctx context.Context, orgID string) ([]*types.Voice, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListVoices")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(voiceColumns...).
		From("voices").
		Where(sq.Eq{"organization_id": orgID}).
		OrderBy("name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list voices: %w", err)
	}
	defer rows.Close()

	var voices []*types.Voice
	for rows.Next() {
		v, err := scanVoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan voice: %w", err)
		}
		voices = append(voices, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating voice rows: %w", err)
	}

	return voices, nil
}

func (s *Storage) CreateCharacter(ctx context.Context, c *types.Character) (*types.Character, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCharacter")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate character ID: %w", err)
	}

	out, err := scanCharacter(
		s.db.Statement(ctx).
			Insert("characters").
			Columns("id", "organization_id", "name", "avatar_id", "voice_id").
			Values(id.String(), c.OrganizationID, c.Name, c.AvatarID, c.VoiceID).
			Suffix("RETURNING " + columnList(characterColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, mapWriteError(err, "failed to insert character")
	}

	return out, nil
}

func (s *Storage) GetCharacter(ctx context.Context, id string) (*types.Character, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCharacter")
	defer span.End()

	c, err := scanCharacter(
		s.db.Statement(ctx).
			Select(characterColumns...).
			From("characters").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	return c, nil
}

func (s *Storage) ListCharacters(ctx context.Context, orgID string) ([]*types.Character, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCharacters")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(characterColumns...).
		From("characters").
		Where(sq.Eq{"organization_id": orgID}).
		OrderBy("name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	defer rows.Close()

	var characters []*types.Character
	for rows.Next() {
		c, err := scanCharacter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan character: %w", err)
		}
		characters = append(characters, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating character rows: %w", err)
	}

	return characters, nil
}
