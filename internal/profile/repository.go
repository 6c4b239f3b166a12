package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repository interface {
	GetProfileByID(ctx context.Context, id int64) (*Profile, error)
	GetProfileByUsername(ctx context.Context, username string) (*Profile, error)
	UpdateProfile(ctx context.Context, id int64, req *UpdateProfileRequest) error
	ListAllTags(ctx context.Context) ([]Tag, error)
	GetUserTags(ctx context.Context, userID int64) ([]string, error)
	SetUserTags(ctx context.Context, userID int64, tagIDs []int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

const profileSelect = `
	SELECT
		p.id, p.username, p.firstname, p.lastname, p.gender, p.sex_preference,
		p.bio, p.city, p.latitude, p.longitude, p.popularity, p.status,
		p.is_verified, p.last_seen,
		EXTRACT(YEAR FROM AGE(p.birthdate))::int AS age,
		ph.url AS profile_picture
	FROM profiles p
	LEFT JOIN photos ph ON ph.user_id = p.id AND ph.profile_picture = TRUE
`

func (r *postgresRepository) GetProfileByID(ctx context.Context, id int64) (*Profile, error) {
	return r.getProfile(ctx, profileSelect+` WHERE p.id = $1`, id)
}

func (r *postgresRepository) GetProfileByUsername(ctx context.Context, username string) (*Profile, error) {
	return r.getProfile(ctx, profileSelect+` WHERE p.username = $1`, username)
}

func (r *postgresRepository) getProfile(ctx context.Context, query string, arg interface{}) (*Profile, error) {
	var profile Profile
	err := r.db.GetContext(ctx, &profile, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	tags, err := r.GetUserTags(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	profile.Tags = tags

	return &profile, nil
}

// UpdateProfile writes only the fields present in the request.
func (r *postgresRepository) UpdateProfile(ctx context.Context, id int64, req *UpdateProfileRequest) error {
	sets := []string{}
	args := []interface{}{id}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Gender != nil {
		add("gender", *req.Gender)
	}
	if req.SexPreference != nil {
		add("sex_preference", *req.SexPreference)
	}
	if req.Bio != nil {
		add("bio", *req.Bio)
	}
	if req.City != nil {
		add("city", *req.City)
	}
	if req.Latitude != nil {
		add("latitude", *req.Latitude)
	}
	if req.Longitude != nil {
		add("longitude", *req.Longitude)
	}

	if len(sets) == 0 {
		return nil
	}

	query := `UPDATE profiles SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update profile %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *postgresRepository) ListAllTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	query := `SELECT id, slug FROM tags ORDER BY slug`

	if err := r.db.SelectContext(ctx, &tags, query); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

func (r *postgresRepository) GetUserTags(ctx context.Context, userID int64) ([]string, error) {
	var slugs []string
	query := `
		SELECT t.slug
		FROM tags t
		JOIN users_preferences up ON up.tag_id = t.id
		WHERE up.user_id = $1
		ORDER BY t.slug
	`

	if err := r.db.SelectContext(ctx, &slugs, query, userID); err != nil {
		return nil, fmt.Errorf("get user tags: %w", err)
	}
	return slugs, nil
}

// SetUserTags replaces the interest set atomically. Membership is a
// set: duplicates in the input collapse via the unique constraint.
func (r *postgresRepository) SetUserTags(ctx context.Context, userID int64, tagIDs []int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin set tags: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM users_preferences WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear tags: %w", err)
	}

	if len(tagIDs) > 0 {
		query := `
			INSERT INTO users_preferences (user_id, tag_id)
			SELECT $1, id FROM tags WHERE id = ANY($2)
			ON CONFLICT DO NOTHING
		`
		if _, err := tx.ExecContext(ctx, query, userID, pq.Array(tagIDs)); err != nil {
			return fmt.Errorf("set tags: %w", err)
		}
	}

	return tx.Commit()
}

func (r *postgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM profiles WHERE id = $1)`

	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("check profile %d: %w", id, err)
	}
	return exists, nil
}
