package engagement

import (
	"context"
	"errors"
	"log"
)

var (
	ErrSelfTarget     = errors.New("cannot target yourself")
	ErrTargetNotFound = errors.New("target profile not found")
	ErrLikeNotFound   = errors.New("like not found")
)

// Notifier delivers engagement events to the notification feed. It is
// satisfied by the notification service; failures are logged, never
// surfaced, so a broken feed cannot block a like.
type Notifier interface {
	NotifyLike(ctx context.Context, userID, actorID int64) error
	NotifyMatch(ctx context.Context, userID, actorID int64) error
	NotifyUnlike(ctx context.Context, userID, actorID int64) error
	NotifyProfileView(ctx context.Context, userID, actorID int64) error
}

type Service interface {
	LikeProfile(ctx context.Context, likerID, likedID int64) (*LikeResult, error)
	UnlikeProfile(ctx context.Context, likerID, likedID int64) error
	ListLikers(ctx context.Context, userID int64) ([]Like, error)
	RecordProfileView(ctx context.Context, viewerID, viewedID int64) error
	ListViewers(ctx context.Context, userID int64) ([]ProfileView, error)
}

type service struct {
	repo     Repository
	notifier Notifier
}

func NewService(repo Repository, notifier Notifier) Service {
	return &service{repo: repo, notifier: notifier}
}

// LikeProfile records the like, bumps the target's popularity, and
// reports whether the like completed a mutual match.
func (s *service) LikeProfile(ctx context.Context, likerID, likedID int64) (*LikeResult, error) {
	if err := s.checkTarget(ctx, likerID, likedID); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateLike(ctx, likerID, likedID)
	if err != nil {
		return nil, err
	}

	matched, err := s.repo.HasLike(ctx, likedID, likerID)
	if err != nil {
		return nil, err
	}

	if created {
		if err := s.repo.AdjustPopularity(ctx, likedID, 1); err != nil {
			return nil, err
		}
		RecordLike(matched)

		s.notify(ctx, likedID, likerID, matched)
		if matched {
			// The earlier liker learns about the match too.
			if err := s.notifier.NotifyMatch(ctx, likerID, likedID); err != nil {
				log.Printf("notify match to %d failed: %v", likerID, err)
			}
		}
	}

	return &LikeResult{Liked: true, Matched: matched}, nil
}

func (s *service) UnlikeProfile(ctx context.Context, likerID, likedID int64) error {
	if likerID == likedID {
		return ErrSelfTarget
	}

	removed, err := s.repo.DeleteLike(ctx, likerID, likedID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrLikeNotFound
	}

	if err := s.repo.AdjustPopularity(ctx, likedID, -1); err != nil {
		return err
	}

	if err := s.notifier.NotifyUnlike(ctx, likedID, likerID); err != nil {
		log.Printf("notify unlike to %d failed: %v", likedID, err)
	}
	return nil
}

func (s *service) ListLikers(ctx context.Context, userID int64) ([]Like, error) {
	return s.repo.ListLikers(ctx, userID)
}

func (s *service) RecordProfileView(ctx context.Context, viewerID, viewedID int64) error {
	if viewerID == viewedID {
		return nil
	}

	if err := s.checkTarget(ctx, viewerID, viewedID); err != nil {
		return err
	}

	if err := s.repo.CreateProfileView(ctx, viewerID, viewedID); err != nil {
		return err
	}
	RecordView()

	if err := s.notifier.NotifyProfileView(ctx, viewedID, viewerID); err != nil {
		log.Printf("notify view to %d failed: %v", viewedID, err)
	}
	return nil
}

func (s *service) ListViewers(ctx context.Context, userID int64) ([]ProfileView, error) {
	return s.repo.ListViewers(ctx, userID)
}

func (s *service) notify(ctx context.Context, userID, actorID int64, matched bool) {
	var err error
	if matched {
		err = s.notifier.NotifyMatch(ctx, userID, actorID)
	} else {
		err = s.notifier.NotifyLike(ctx, userID, actorID)
	}
	if err != nil {
		log.Printf("notify like to %d failed: %v", userID, err)
	}
}

func (s *service) checkTarget(ctx context.Context, actorID, targetID int64) error {
	if actorID == targetID {
		return ErrSelfTarget
	}

	exists, err := s.repo.ProfileExists(ctx, targetID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrTargetNotFound
	}
	return nil
}
