// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package apperrors

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestSentinelMatching(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"validation", NewValidationError("generate", "at least one output type is required"), ErrValidation},
		{"invalid transition", NewInvalidTransition("output", "1", "PROCESSING", "PROCESSING"), ErrInvalidTransition},
		{"invalid state", NewInvalidState("output", "1", "PROCESSING", "PROCESSING"), ErrInvalidState},
		{"constraint", NewConstraintError("last_owner", "organization needs an owner"), ErrConstraint},
		{"timeout", NewTimeoutError("pipeline", time.Minute), ErrTimeout},
		{"not found", NewNotFound("submission", "1"), ErrNotFound},
		{"forbidden", NewForbidden("not a member"), ErrForbidden},
		{"wrapped", fmt.Errorf("creating submission: %w", NewValidationError("", "bad")), ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("expected %v to match %v", tt.err, tt.sentinel)
			}
		})
	}
}

func TestTransitionErrorDetails(t *testing.T) {
	err := fmt.Errorf("regenerate: %w", NewInvalidState("output", "out-1", "PROCESSING", "PROCESSING"))

	var te *TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("expected a TransitionError, got %T", err)
	}

	if te.Current != "PROCESSING" || te.ID != "out-1" {
		t.Errorf("unexpected details %+v", te)
	}

	if errors.Is(err, ErrInvalidTransition) {
		t.Error("invalid state must not match invalid transition")
	}
}

func TestStageErrorUnwrapsCause(t *testing.T) {
	cause := NewTimeoutError("speech", 30*time.Second)
	err := NewStageError("synthesize", cause)

	if !errors.Is(err, ErrTimeout) {
		t.Error("expected stage error to expose its cause")
	}

	var se *StageError
	if !errors.As(err, &se) || se.Stage != "synthesize" {
		t.Errorf("expected stage synthesize, got %+v", se)
	}

	if err.Error() != "stage synthesize failed: speech timed out after 30s" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
