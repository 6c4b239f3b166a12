package profile

import "time"

// Profile is the public view of a user, as served to other users.
// Nullable columns map to pointers so "never set" survives the trip
// through JSON.
type Profile struct {
	ID             int64      `json:"id" db:"id"`
	Username       string     `json:"username" db:"username"`
	Firstname      string     `json:"firstname" db:"firstname"`
	Lastname       string     `json:"lastname" db:"lastname"`
	Gender         *string    `json:"gender,omitempty" db:"gender"`
	SexPreference  *string    `json:"sex_preference,omitempty" db:"sex_preference"`
	Bio            *string    `json:"bio,omitempty" db:"bio"`
	Age            int        `json:"age" db:"age"`
	City           *string    `json:"city,omitempty" db:"city"`
	Latitude       *float64   `json:"latitude,omitempty" db:"latitude"`
	Longitude      *float64   `json:"longitude,omitempty" db:"longitude"`
	Popularity     int64      `json:"popularity" db:"popularity"`
	Status         string     `json:"status" db:"status"`
	IsVerified     bool       `json:"is_verified" db:"is_verified"`
	LastSeen       *time.Time `json:"last_seen,omitempty" db:"last_seen"`
	ProfilePicture *string    `json:"profile_picture,omitempty" db:"profile_picture"`

	Tags []string `json:"tags"`
}

// Tag is a selectable interest
type Tag struct {
	ID   int64  `json:"id" db:"id"`
	Slug string `json:"slug" db:"slug"`
}
