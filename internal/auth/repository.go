package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	CreateUser(ctx context.Context, user *User, birthdate time.Time) error
	GetUserByID(ctx context.Context, id int64) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	IsUsernameTaken(ctx context.Context, username string) (bool, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

const userColumns = `id, email, username, firstname, lastname, password, is_verified, created_at`

func (r *postgresRepository) CreateUser(ctx context.Context, user *User, birthdate time.Time) error {
	query := `
		INSERT INTO profiles (email, username, firstname, lastname, password, birthdate)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(
		ctx, query,
		user.Email, user.Username, user.Firstname, user.Lastname,
		user.PasswordHash, birthdate,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetUserByID(ctx context.Context, id int64) (*User, error) {
	var user User
	query := `SELECT ` + userColumns + ` FROM profiles WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}

	return &user, nil
}

func (r *postgresRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	query := `SELECT ` + userColumns + ` FROM profiles WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

func (r *postgresRepository) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM profiles WHERE email = $1)`

	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM profiles WHERE username = $1)`

	if err := r.db.GetContext(ctx, &exists, query, username); err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return exists, nil
}
