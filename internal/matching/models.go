package matching

import "time"

// Gender is the declared gender on a profile.
type Gender string

const (
	GenderMale      Gender = "male"
	GenderFemale    Gender = "female"
	GenderNonBinary Gender = "non-binary"
)

// Preference is a profile's stated sex preference. PreferenceBisexual
// means interested in everyone.
type Preference string

const (
	PreferenceMale     Preference = "male"
	PreferenceFemale   Preference = "female"
	PreferenceBisexual Preference = "bisexual"
)

// Profile is the read-only snapshot of a user the engine works with.
// Latitude/Longitude are nullable: a profile without a location can
// still be ranked, it just has no defined distance.
type Profile struct {
	ID            int64      `json:"id" db:"id"`
	Username      string     `json:"username" db:"username"`
	Firstname     string     `json:"firstname" db:"firstname"`
	Lastname      string     `json:"lastname" db:"lastname"`
	Gender        Gender     `json:"gender" db:"gender"`
	SexPreference Preference `json:"sex_preference" db:"sex_preference"`
	Bio           *string    `json:"bio,omitempty" db:"bio"`
	Latitude      *float64   `json:"latitude,omitempty" db:"latitude"`
	Longitude     *float64   `json:"longitude,omitempty" db:"longitude"`
	Popularity    int64      `json:"popularity" db:"popularity"`
	AvatarURL     *string    `json:"avatar_url,omitempty" db:"avatar_url"`
	Status        string     `json:"status" db:"status"`
	LastSeen      *time.Time `json:"last_seen,omitempty" db:"last_seen"`
}

// HasLocation reports whether the profile carries usable coordinates.
func (p *Profile) HasLocation() bool {
	return p != nil && p.Latitude != nil && p.Longitude != nil
}

// Tag is an interest tag attached to profiles.
type Tag struct {
	ID   int64  `json:"id" db:"id"`
	Slug string `json:"slug" db:"slug"`
}

// Candidate is a ranked, request-scoped view of a profile. DistanceKm
// is nil when either party lacks coordinates.
type Candidate struct {
	ID         int64    `json:"id"`
	Username   string   `json:"username"`
	Firstname  string   `json:"firstname"`
	Lastname   string   `json:"lastname"`
	Gender     Gender   `json:"gender"`
	Popularity int64    `json:"popularity"`
	AvatarURL  *string  `json:"avatar_url,omitempty"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
	CommonTags int      `json:"common_tags"`
	Tags       []string `json:"tags"`
}

// TagSet is a profile's tag membership. Membership only, insertion
// order is irrelevant.
type TagSet map[int64]struct{}

// Contains reports whether the set holds the given tag id.
func (s TagSet) Contains(id int64) bool {
	_, ok := s[id]
	return ok
}
