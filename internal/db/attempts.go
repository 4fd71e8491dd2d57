package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateAttempt starts a new submission attempt for a user.
func (db *DB) CreateAttempt(ctx context.Context, userID uuid.UUID, template string) (*Attempt, error) {
	const q = `
		INSERT INTO submission_attempts (user_id, template)
		VALUES ($1, $2)
		RETURNING id, user_id, template, status, COALESCE(error, ''), created_at, completed_at`

	var a Attempt
	err := db.pool.QueryRow(ctx, q, userID, template).Scan(
		&a.ID, &a.UserID, &a.Template, &a.Status, &a.Error, &a.CreatedAt, &a.CompletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create attempt: %w", err)
	}
	return &a, nil
}

// GetAttempt fetches an attempt by id.
func (db *DB) GetAttempt(ctx context.Context, id uuid.UUID) (*Attempt, error) {
	const q = `
		SELECT id, user_id, template, status, COALESCE(error, ''), created_at, completed_at
		FROM submission_attempts WHERE id = $1`

	var a Attempt
	err := db.pool.QueryRow(ctx, q, id).Scan(
		&a.ID, &a.UserID, &a.Template, &a.Status, &a.Error, &a.CreatedAt, &a.CompletedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}
	return &a, nil
}

// CompleteAttempt marks an attempt as finished successfully.
func (db *DB) CompleteAttempt(ctx context.Context, id uuid.UUID) error {
	const q = `
		UPDATE submission_attempts
		SET status = $2, completed_at = NOW()
		WHERE id = $1`

	if _, err := db.pool.Exec(ctx, q, id, AttemptStatusCompleted); err != nil {
		return fmt.Errorf("failed to complete attempt: %w", err)
	}
	return nil
}

// FailAttempt marks an attempt as failed with the given error message.
func (db *DB) FailAttempt(ctx context.Context, id uuid.UUID, errMsg string) error {
	const q = `
		UPDATE submission_attempts
		SET status = $2, error = $3, completed_at = NOW()
		WHERE id = $1`

	if _, err := db.pool.Exec(ctx, q, id, AttemptStatusFailed, errMsg); err != nil {
		return fmt.Errorf("failed to fail attempt: %w", err)
	}
	return nil
}

// RecordStep upserts the status of a pipeline step within an attempt.
func (db *DB) RecordStep(ctx context.Context, attemptID uuid.UUID, step, status, errMsg string, duration time.Duration) error {
	const q = `
		INSERT INTO attempt_steps (attempt_id, step, status, error, duration_ms)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		ON CONFLICT (attempt_id, step)
		DO UPDATE SET status = $3, error = NULLIF($4, ''), duration_ms = $5`

	if _, err := db.pool.Exec(ctx, q, attemptID, step, status, errMsg, duration.Milliseconds()); err != nil {
		return fmt.Errorf("failed to record step: %w", err)
	}
	return nil
}

// ListSteps returns the recorded steps of an attempt in creation order.
func (db *DB) ListSteps(ctx context.Context, attemptID uuid.UUID) ([]AttemptStep, error) {
	const q = `
		SELECT id, attempt_id, step, status, COALESCE(error, ''), COALESCE(duration_ms, 0), created_at
		FROM attempt_steps
		WHERE attempt_id = $1
		ORDER BY created_at`

	rows, err := db.pool.Query(ctx, q, attemptID)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}
	defer rows.Close()

	var steps []AttemptStep
	for rows.Next() {
		var s AttemptStep
		if err := rows.Scan(&s.ID, &s.AttemptID, &s.Step, &s.Status, &s.Error, &s.DurationMS, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan step: %w", err)
		}
		steps = append(steps, s)
	}
	return steps, rows.Err()
}

// SaveArtifact stores the generated PDF for an attempt.
func (db *DB) SaveArtifact(ctx context.Context, attemptID uuid.UUID, pdf []byte) error {
	const q = `
		INSERT INTO resume_artifacts (attempt_id, pdf)
		VALUES ($1, $2)
		ON CONFLICT (attempt_id) DO UPDATE SET pdf = $2, created_at = NOW()`

	if _, err := db.pool.Exec(ctx, q, attemptID, pdf); err != nil {
		return fmt.Errorf("failed to save artifact: %w", err)
	}
	return nil
}

// GetArtifact fetches the generated PDF for an attempt.
func (db *DB) GetArtifact(ctx context.Context, attemptID uuid.UUID) ([]byte, error) {
	const q = `SELECT pdf FROM resume_artifacts WHERE attempt_id = $1`

	var pdf []byte
	err := db.pool.QueryRow(ctx, q, attemptID).Scan(&pdf)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get artifact: %w", err)
	}
	return pdf, nil
}
