package notification

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, userID, actorID int64, notifType NotificationType) error
	List(ctx context.Context, userID int64, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID int64) (bool, error)
	MarkAllRead(ctx context.Context, userID int64) error
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, userID, actorID int64, notifType NotificationType) error {
	query := `INSERT INTO notifications (user_id, actor_id, type) VALUES ($1, $2, $3)`

	if _, err := r.db.ExecContext(ctx, query, userID, actorID, notifType); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context, userID int64, limit int) ([]Notification, error) {
	var notifications []Notification
	query := `
		SELECT id, user_id, actor_id, type, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	if err := r.db.SelectContext(ctx, &notifications, query, userID, limit); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

func (r *postgresRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`

	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	return count, nil
}

// MarkRead scopes by user_id so nobody can flip another user's entry.
func (r *postgresRepository) MarkRead(ctx context.Context, userID, notificationID int64) (bool, error) {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, notificationID, userID)
	if err != nil {
		return false, fmt.Errorf("mark read: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark read: %w", err)
	}
	return affected > 0, nil
}

func (r *postgresRepository) MarkAllRead(ctx context.Context, userID int64) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("mark all read: %w", err)
	}
	return nil
}
