package notification

import "time"

type NotificationType string

const (
	TypeLike        NotificationType = "like"
	TypeMatch       NotificationType = "match"
	TypeUnlike      NotificationType = "unlike"
	TypeProfileView NotificationType = "profile_view"
	TypeMessage     NotificationType = "message"
)

// Notification is one entry in a user's feed. ActorID is the user
// whose action produced it.
type Notification struct {
	ID        int64            `json:"id" db:"id"`
	UserID    int64            `json:"user_id" db:"user_id"`
	ActorID   int64            `json:"actor_id" db:"actor_id"`
	Type      NotificationType `json:"type" db:"type"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}
