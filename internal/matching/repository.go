package matching

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repository is the data-access port of the ranking engine. Every call
// is a pure read; the engine never writes through it.
type Repository interface {
	GetProfile(ctx context.Context, id int64) (*Profile, error)
	ListCandidatePool(ctx context.Context, excludeID int64) ([]*Profile, error)
	IsBlockedEitherDirection(ctx context.Context, a, b int64) (bool, error)
	IsReportedEitherDirection(ctx context.Context, a, b int64) (bool, error)
	GetTagSet(ctx context.Context, userID int64) (TagSet, error)
	GetTags(ctx context.Context, userID int64) ([]Tag, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

const profileColumns = `
	p.id, p.username, p.firstname, p.lastname, p.gender, p.sex_preference,
	p.bio, p.latitude, p.longitude, p.popularity, p.status, p.last_seen,
	ph.url AS avatar_url
`

func (r *postgresRepository) GetProfile(ctx context.Context, id int64) (*Profile, error) {
	var profile Profile
	query := `
		SELECT ` + profileColumns + `
		FROM profiles p
		LEFT JOIN photos ph ON ph.user_id = p.id AND ph.profile_picture = TRUE
		WHERE p.id = $1
	`

	err := r.db.GetContext(ctx, &profile, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequesterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile %d: %w", id, err)
	}

	return &profile, nil
}

func (r *postgresRepository) ListCandidatePool(ctx context.Context, excludeID int64) ([]*Profile, error) {
	var pool []*Profile
	query := `
		SELECT ` + profileColumns + `
		FROM profiles p
		LEFT JOIN photos ph ON ph.user_id = p.id AND ph.profile_picture = TRUE
		WHERE p.id <> $1
		ORDER BY p.id
	`

	if err := r.db.SelectContext(ctx, &pool, query, excludeID); err != nil {
		return nil, fmt.Errorf("list candidate pool: %w", err)
	}

	return pool, nil
}

func (r *postgresRepository) IsBlockedEitherDirection(ctx context.Context, a, b int64) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM blocks
			WHERE (blocker_id = $1 AND blocked_id = $2)
			   OR (blocker_id = $2 AND blocked_id = $1)
		)
	`

	if err := r.db.GetContext(ctx, &exists, query, a, b); err != nil {
		return false, fmt.Errorf("check blocks between %d and %d: %w", a, b, err)
	}
	return exists, nil
}

func (r *postgresRepository) IsReportedEitherDirection(ctx context.Context, a, b int64) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM reports
			WHERE (reporter_id = $1 AND reported_id = $2)
			   OR (reporter_id = $2 AND reported_id = $1)
		)
	`

	if err := r.db.GetContext(ctx, &exists, query, a, b); err != nil {
		return false, fmt.Errorf("check reports between %d and %d: %w", a, b, err)
	}
	return exists, nil
}

func (r *postgresRepository) GetTagSet(ctx context.Context, userID int64) (TagSet, error) {
	var ids []int64
	query := `SELECT tag_id FROM users_preferences WHERE user_id = $1`

	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, fmt.Errorf("get tag set for %d: %w", userID, err)
	}

	set := make(TagSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func (r *postgresRepository) GetTags(ctx context.Context, userID int64) ([]Tag, error) {
	var tags []Tag
	query := `
		SELECT t.id, t.slug
		FROM tags t
		JOIN users_preferences up ON up.tag_id = t.id
		WHERE up.user_id = $1
		ORDER BY t.slug
	`

	if err := r.db.SelectContext(ctx, &tags, query, userID); err != nil {
		return nil, fmt.Errorf("get tags for %d: %w", userID, err)
	}
	return tags, nil
}
