// Package store provides PostgreSQL persistence for candidate profiles.
// Profiles are opaque to the core: stored as JSONB keyed by a generated ID.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sebastian-gasior/jobfit/internal/types"
)

// ErrNotFound is returned when no profile exists for the given ID.
var ErrNotFound = errors.New("profile not found")

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Pool exposes the underlying pool for collaborators that share the
// connection, such as the usage-statistics recorder.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// SaveProfile stores a new profile and returns its generated ID.
func (db *DB) SaveProfile(ctx context.Context, profile *types.CandidateProfile) (uuid.UUID, error) {
	data, err := json.Marshal(profile)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO profiles (id, data) VALUES ($1, $2)`,
		id, data,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return id, nil
}

// UpdateProfile replaces the stored data for an existing profile.
func (db *DB) UpdateProfile(ctx context.Context, id uuid.UUID, profile *types.CandidateProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE profiles SET data = $2, updated_at = NOW() WHERE id = $1`,
		id, data,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetProfile loads a profile by ID. Returns ErrNotFound when it does not exist.
func (db *DB) GetProfile(ctx context.Context, id uuid.UUID) (*types.CandidateProfile, error) {
	var data []byte
	err := db.pool.QueryRow(ctx,
		`SELECT data FROM profiles WHERE id = $1`, id,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// DeleteProfile removes a profile by ID. Returns ErrNotFound when it does
// not exist.
func (db *DB) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
