package profile

import (
	"context"
	"errors"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrNothingToUpdate = errors.New("nothing to update")
)

type Service interface {
	GetProfile(ctx context.Context, id int64) (*Profile, error)
	GetProfileByUsername(ctx context.Context, username string) (*Profile, error)
	UpdateProfile(ctx context.Context, id int64, req *UpdateProfileRequest) (*Profile, error)
	ListTags(ctx context.Context) ([]Tag, error)
	SetTags(ctx context.Context, userID int64, req *SetTagsRequest) ([]string, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProfile(ctx context.Context, id int64) (*Profile, error) {
	return s.repo.GetProfileByID(ctx, id)
}

func (s *service) GetProfileByUsername(ctx context.Context, username string) (*Profile, error) {
	return s.repo.GetProfileByUsername(ctx, username)
}

func (s *service) UpdateProfile(ctx context.Context, id int64, req *UpdateProfileRequest) (*Profile, error) {
	if req.Empty() {
		return nil, ErrNothingToUpdate
	}

	if err := s.repo.UpdateProfile(ctx, id, req); err != nil {
		return nil, err
	}
	return s.repo.GetProfileByID(ctx, id)
}

func (s *service) ListTags(ctx context.Context) ([]Tag, error) {
	return s.repo.ListAllTags(ctx)
}

func (s *service) SetTags(ctx context.Context, userID int64, req *SetTagsRequest) ([]string, error) {
	if err := s.repo.SetUserTags(ctx, userID, req.TagIDs); err != nil {
		return nil, err
	}
	return s.repo.GetUserTags(ctx, userID)
}
