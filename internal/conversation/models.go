package conversation

import "time"

// Conversation is a direct thread between two users. UserAID is
// always the smaller id so each pair maps to exactly one row.
type Conversation struct {
	ID            int64      `json:"id" db:"id"`
	UserAID       int64      `json:"user_a_id" db:"user_a_id"`
	UserBID       int64      `json:"user_b_id" db:"user_b_id"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty" db:"last_message_at"`
}

type Message struct {
	ID             int64     `json:"id" db:"id"`
	ConversationID int64     `json:"conversation_id" db:"conversation_id"`
	SenderID       int64     `json:"sender_id" db:"sender_id"`
	Content        string    `json:"content" db:"content"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// orderedPair normalizes a user pair for conversation lookup.
func orderedPair(a, b int64) (int64, int64) {
	if a > b {
		return b, a
	}
	return a, b
}
