package engagement

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	CreateLike(ctx context.Context, likerID, likedID int64) (bool, error)
	DeleteLike(ctx context.Context, likerID, likedID int64) (bool, error)
	HasLike(ctx context.Context, likerID, likedID int64) (bool, error)
	ListLikers(ctx context.Context, likedID int64) ([]Like, error)
	CreateProfileView(ctx context.Context, viewerID, viewedID int64) error
	ListViewers(ctx context.Context, viewedID int64) ([]ProfileView, error)
	AdjustPopularity(ctx context.Context, userID int64, delta int64) error
	ProfileExists(ctx context.Context, id int64) (bool, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

// CreateLike inserts the like and reports whether a row was actually
// created. Re-liking is absorbed by the conflict clause.
func (r *postgresRepository) CreateLike(ctx context.Context, likerID, likedID int64) (bool, error) {
	query := `
		INSERT INTO likes (liker_id, liked_id)
		VALUES ($1, $2)
		ON CONFLICT (liker_id, liked_id) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query, likerID, likedID)
	if err != nil {
		return false, fmt.Errorf("create like: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("create like: %w", err)
	}
	return affected > 0, nil
}

func (r *postgresRepository) DeleteLike(ctx context.Context, likerID, likedID int64) (bool, error) {
	query := `DELETE FROM likes WHERE liker_id = $1 AND liked_id = $2`

	result, err := r.db.ExecContext(ctx, query, likerID, likedID)
	if err != nil {
		return false, fmt.Errorf("delete like: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete like: %w", err)
	}
	return affected > 0, nil
}

func (r *postgresRepository) HasLike(ctx context.Context, likerID, likedID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM likes WHERE liker_id = $1 AND liked_id = $2)`

	if err := r.db.GetContext(ctx, &exists, query, likerID, likedID); err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ListLikers(ctx context.Context, likedID int64) ([]Like, error) {
	var likes []Like
	query := `
		SELECT id, liker_id, liked_id, created_at
		FROM likes
		WHERE liked_id = $1
		ORDER BY created_at DESC
	`

	if err := r.db.SelectContext(ctx, &likes, query, likedID); err != nil {
		return nil, fmt.Errorf("list likers: %w", err)
	}
	return likes, nil
}

func (r *postgresRepository) CreateProfileView(ctx context.Context, viewerID, viewedID int64) error {
	query := `INSERT INTO profile_views (viewer_id, viewed_id) VALUES ($1, $2)`

	if _, err := r.db.ExecContext(ctx, query, viewerID, viewedID); err != nil {
		return fmt.Errorf("create profile view: %w", err)
	}
	return nil
}

func (r *postgresRepository) ListViewers(ctx context.Context, viewedID int64) ([]ProfileView, error) {
	var views []ProfileView
	query := `
		SELECT id, viewer_id, viewed_id, created_at
		FROM profile_views
		WHERE viewed_id = $1
		ORDER BY created_at DESC
		LIMIT 100
	`

	if err := r.db.SelectContext(ctx, &views, query, viewedID); err != nil {
		return nil, fmt.Errorf("list viewers: %w", err)
	}
	return views, nil
}

// AdjustPopularity clamps at zero so an unlike can never push the
// score negative.
func (r *postgresRepository) AdjustPopularity(ctx context.Context, userID int64, delta int64) error {
	query := `UPDATE profiles SET popularity = GREATEST(popularity + $2, 0) WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID, delta); err != nil {
		return fmt.Errorf("adjust popularity: %w", err)
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
