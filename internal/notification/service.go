package notification

import (
	"context"
	"errors"
)

var ErrNotificationNotFound = errors.New("notification not found")

const defaultFeedLimit = 50

type Service interface {
	List(ctx context.Context, userID int64, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID int64) error
	MarkAllRead(ctx context.Context, userID int64) error

	// Producer side, used by the engagement and conversation services.
	NotifyLike(ctx context.Context, userID, actorID int64) error
	NotifyMatch(ctx context.Context, userID, actorID int64) error
	NotifyUnlike(ctx context.Context, userID, actorID int64) error
	NotifyProfileView(ctx context.Context, userID, actorID int64) error
	NotifyMessage(ctx context.Context, userID, actorID int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, userID int64, limit int) ([]Notification, error) {
	if limit <= 0 || limit > defaultFeedLimit {
		limit = defaultFeedLimit
	}
	return s.repo.List(ctx, userID, limit)
}

func (s *service) CountUnread(ctx context.Context, userID int64) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *service) MarkRead(ctx context.Context, userID, notificationID int64) error {
	updated, err := s.repo.MarkRead(ctx, userID, notificationID)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *service) MarkAllRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *service) NotifyLike(ctx context.Context, userID, actorID int64) error {
	return s.repo.Create(ctx, userID, actorID, TypeLike)
}

func (s *service) NotifyMatch(ctx context.Context, userID, actorID int64) error {
	return s.repo.Create(ctx, userID, actorID, TypeMatch)
}

func (s *service) NotifyUnlike(ctx context.Context, userID, actorID int64) error {
	return s.repo.Create(ctx, userID, actorID, TypeUnlike)
}

func (s *service) NotifyProfileView(ctx context.Context, userID, actorID int64) error {
	return s.repo.Create(ctx, userID, actorID, TypeProfileView)
}

func (s *service) NotifyMessage(ctx context.Context, userID, actorID int64) error {
	return s.repo.Create(ctx, userID, actorID, TypeMessage)
}
