package engagement

import "time"

// Like is one user liking another's profile. A pair of reciprocal
// likes forms a match.
type Like struct {
	ID        int64     `json:"id" db:"id"`
	LikerID   int64     `json:"liker_id" db:"liker_id"`
	LikedID   int64     `json:"liked_id" db:"liked_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ProfileView records one user opening another's profile.
type ProfileView struct {
	ID        int64     `json:"id" db:"id"`
	ViewerID  int64     `json:"viewer_id" db:"viewer_id"`
	ViewedID  int64     `json:"viewed_id" db:"viewed_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// LikeResult tells the caller whether their like completed a match.
type LikeResult struct {
	Liked   bool `json:"liked"`
	Matched bool `json:"matched"`
}
