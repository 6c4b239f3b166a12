package moderation

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	CreateBlock(ctx context.Context, blockerID, blockedID int64) error
	DeleteBlock(ctx context.Context, blockerID, blockedID int64) (bool, error)
	ListBlocks(ctx context.Context, blockerID int64) ([]Block, error)
	CreateReport(ctx context.Context, reporterID, reportedID int64, reason string) error
	ProfileExists(ctx context.Context, id int64) (bool, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

// CreateBlock is idempotent: re-blocking an already blocked user is a
// no-op, not an error.
func (r *postgresRepository) CreateBlock(ctx context.Context, blockerID, blockedID int64) error {
	query := `
		INSERT INTO blocks (blocker_id, blocked_id)
		VALUES ($1, $2)
		ON CONFLICT (blocker_id, blocked_id) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, blockerID, blockedID); err != nil {
		return fmt.Errorf("create block: %w", err)
	}
	return nil
}

func (r *postgresRepository) DeleteBlock(ctx context.Context, blockerID, blockedID int64) (bool, error) {
	query := `DELETE FROM blocks WHERE blocker_id = $1 AND blocked_id = $2`

	result, err := r.db.ExecContext(ctx, query, blockerID, blockedID)
	if err != nil {
		return false, fmt.Errorf("delete block: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete block: %w", err)
	}
	return affected > 0, nil
}

func (r *postgresRepository) ListBlocks(ctx context.Context, blockerID int64) ([]Block, error) {
	var blocks []Block
	query := `
		SELECT id, blocker_id, blocked_id, created_at
		FROM blocks
		WHERE blocker_id = $1
		ORDER BY created_at DESC
	`

	if err := r.db.SelectContext(ctx, &blocks, query, blockerID); err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	return blocks, nil
}

func (r *postgresRepository) CreateReport(ctx context.Context, reporterID, reportedID int64, reason string) error {
	query := `
		INSERT INTO reports (reporter_id, reported_id, reason)
		VALUES ($1, $2, $3)
		ON CONFLICT (reporter_id, reported_id) DO UPDATE SET reason = EXCLUDED.reason
	`

	if _, err := r.db.ExecContext(ctx, query, reporterID, reportedID, reason); err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}

func (r *postgresRepository) ProfileExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM profiles WHERE id = $1)`

	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("check profile %d: %w", id, err)
	}
	return exists, nil
}
