package moderation

import "time"

// Block hides two users from each other. It remains one-directional in
// storage; visibility checks look both ways.
type Block struct {
	ID        int64     `json:"id" db:"id"`
	BlockerID int64     `json:"blocker_id" db:"blocker_id"`
	BlockedID int64     `json:"blocked_id" db:"blocked_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Report flags a profile for moderation review.
type Report struct {
	ID         int64     `json:"id" db:"id"`
	ReporterID int64     `json:"reporter_id" db:"reporter_id"`
	ReportedID int64     `json:"reported_id" db:"reported_id"`
	Reason     string    `json:"reason" db:"reason"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
