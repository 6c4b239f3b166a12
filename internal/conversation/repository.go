package conversation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	GetOrCreateConversation(ctx context.Context, userA, userB int64) (*Conversation, error)
	GetConversation(ctx context.Context, id int64) (*Conversation, error)
	ListConversations(ctx context.Context, userID int64) ([]Conversation, error)
	CreateMessage(ctx context.Context, conversationID, senderID int64, content string) (*Message, error)
	ListMessages(ctx context.Context, conversationID int64, limit int) ([]Message, error)
	ProfileExists(ctx context.Context, id int64) (bool, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) GetOrCreateConversation(ctx context.Context, userA, userB int64) (*Conversation, error) {
	a, b := orderedPair(userA, userB)

	var conversation Conversation
	query := `
		INSERT INTO conversations (user_a_id, user_b_id)
		VALUES ($1, $2)
		ON CONFLICT (user_a_id, user_b_id) DO UPDATE SET user_a_id = EXCLUDED.user_a_id
		RETURNING id, user_a_id, user_b_id, created_at, last_message_at
	`

	err := r.db.QueryRowxContext(ctx, query, a, b).StructScan(&conversation)
	if err != nil {
		return nil, fmt.Errorf("get or create conversation: %w", err)
	}
	return &conversation, nil
}

func (r *postgresRepository) GetConversation(ctx context.Context, id int64) (*Conversation, error) {
	var conversation Conversation
	query := `
		SELECT id, user_a_id, user_b_id, created_at, last_message_at
		FROM conversations
		WHERE id = $1
	`

	err := r.db.GetContext(ctx, &conversation, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return &conversation, nil
}

func (r *postgresRepository) ListConversations(ctx context.Context, userID int64) ([]Conversation, error) {
	var conversations []Conversation
	query := `
		SELECT id, user_a_id, user_b_id, created_at, last_message_at
		FROM conversations
		WHERE user_a_id = $1 OR user_b_id = $1
		ORDER BY last_message_at DESC NULLS LAST, created_at DESC
	`

	if err := r.db.SelectContext(ctx, &conversations, query, userID); err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return conversations, nil
}

func (r *postgresRepository) CreateMessage(ctx context.Context, conversationID, senderID int64, content string) (*Message, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin send message: %w", err)
	}
	defer tx.Rollback()

	var message Message
	insert := `
		INSERT INTO messages (conversation_id, sender_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, conversation_id, sender_id, content, created_at
	`
	if err := tx.QueryRowxContext(ctx, insert, conversationID, senderID, content).StructScan(&message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	touch := `UPDATE conversations SET last_message_at = $2 WHERE id = $1`
	if _, err := tx.ExecContext(ctx, touch, conversationID, message.CreatedAt); err != nil {
		return nil, fmt.Errorf("touch conversation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit send message: %w", err)
	}
	return &message, nil
}

func (r *postgresRepository) ListMessages(ctx context.Context, conversationID int64, limit int) ([]Message, error) {
	var messages []Message
	query := `
		SELECT id, conversation_id, sender_id, content, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	if err := r.db.SelectContext(ctx, &messages, query, conversationID, limit); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

func (r *postgresRepository) ProfileExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM profiles WHERE id = $1)`

	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("check profile %d: %w", id, err)
	}
	return exists, nil
}
