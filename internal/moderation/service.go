package moderation

import (
	"context"
	"errors"
)

var (
	ErrSelfTarget     = errors.New("cannot target yourself")
	ErrTargetNotFound = errors.New("target profile not found")
	ErrBlockNotFound  = errors.New("block not found")
)

type Service interface {
	BlockUser(ctx context.Context, blockerID, blockedID int64) error
	UnblockUser(ctx context.Context, blockerID, blockedID int64) error
	ListBlocks(ctx context.Context, blockerID int64) ([]Block, error)
	ReportUser(ctx context.Context, reporterID, reportedID int64, reason string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) BlockUser(ctx context.Context, blockerID, blockedID int64) error {
	if err := s.checkTarget(ctx, blockerID, blockedID); err != nil {
		return err
	}

	if err := s.repo.CreateBlock(ctx, blockerID, blockedID); err != nil {
		return err
	}
	RecordBlock()
	return nil
}

func (s *service) UnblockUser(ctx context.Context, blockerID, blockedID int64) error {
	if blockerID == blockedID {
		return ErrSelfTarget
	}

	removed, err := s.repo.DeleteBlock(ctx, blockerID, blockedID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrBlockNotFound
	}
	return nil
}

func (s *service) ListBlocks(ctx context.Context, blockerID int64) ([]Block, error) {
	return s.repo.ListBlocks(ctx, blockerID)
}

func (s *service) ReportUser(ctx context.Context, reporterID, reportedID int64, reason string) error {
	if err := s.checkTarget(ctx, reporterID, reportedID); err != nil {
		return err
	}

	if err := s.repo.CreateReport(ctx, reporterID, reportedID, reason); err != nil {
		return err
	}
	RecordReport()
	return nil
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
