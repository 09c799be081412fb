// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package apperrors holds the error taxonomy shared by services, workers and handlers.
// Concrete error types unwrap to one of the sentinel values so callers can branch
// with errors.Is and still recover the details with errors.As.
package apperrors

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidState      = errors.New("invalid state")
	ErrConstraint        = errors.New("constraint violation")
	ErrTimeout           = errors.New("timeout")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// TransitionError is returned when a conditional status update did not apply.
// Err is either ErrInvalidTransition or ErrInvalidState.
type TransitionError struct {
	Entity  string
	ID      string
	Current string
	Target  string
	Err     error
}

func (e *TransitionError) Error() string {
	if e.Current == "" {
		return fmt.Sprintf("%s: %s %s cannot move to %s", e.Err, e.Entity, e.ID, e.Target)
	}
	return fmt.Sprintf("%s: %s %s is %s, cannot move to %s", e.Err, e.Entity, e.ID, e.Current, e.Target)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

func NewInvalidTransition(entity, id, current, target string) error {
	return &TransitionError{Entity: entity, ID: id, Current: current, Target: target, Err: ErrInvalidTransition}
}

func NewInvalidState(entity, id, current, target string) error {
	return &TransitionError{Entity: entity, ID: id, Current: current, Target: target, Err: ErrInvalidState}
}

type ConstraintError struct {
	Constraint string
	Reason     string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint %s violated: %s", e.Constraint, e.Reason)
}

func (e *ConstraintError) Unwrap() error {
	return ErrConstraint
}

func NewConstraintError(constraint, format string, args ...interface{}) error {
	return &ConstraintError{Constraint: constraint, Reason: fmt.Sprintf(format, args...)}
}

// StageError tags a pipeline failure with the stage that produced it.
type StageError struct {
	Stage string
	Cause error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s failed: %v", e.Stage, e.Cause)
}

func (e *StageError) Unwrap() error {
	return e.Cause
}

func NewStageError(stage string, cause error) error {
	return &StageError{Stage: stage, Cause: cause}
}

type TimeoutError struct {
	Operation string
	After     time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %s", e.Operation, e.After)
}

func (e *TimeoutError) Unwrap() error {
	return ErrTimeout
}

func NewTimeoutError(operation string, after time.Duration) error {
	return &TimeoutError{Operation: operation, After: after}
}

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func NewNotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func NewForbidden(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrForbidden, fmt.Sprintf(format, args...))
}
