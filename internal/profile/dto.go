package profile

// UpdateProfileRequest carries the editable preference fields. Every
// field is optional; only non-nil values are written.
type UpdateProfileRequest struct {
	Gender        *string  `json:"gender,omitempty" validate:"omitempty,oneof=male female non-binary"`
	SexPreference *string  `json:"sex_preference,omitempty" validate:"omitempty,oneof=male female bisexual"`
	Bio           *string  `json:"bio,omitempty" validate:"omitempty,max=255"`
	City          *string  `json:"city,omitempty" validate:"omitempty,max=255"`
	Latitude      *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude     *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// Empty reports whether the request would change nothing.
func (r *UpdateProfileRequest) Empty() bool {
	return r.Gender == nil && r.SexPreference == nil && r.Bio == nil &&
		r.City == nil && r.Latitude == nil && r.Longitude == nil
}

// SetTagsRequest replaces the user's interest tags
type SetTagsRequest struct {
	TagIDs []int64 `json:"tag_ids" validate:"required,max=10,dive,gt=0"`
}
