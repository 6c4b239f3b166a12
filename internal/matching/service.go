package matching

import (
	"context"
	"errors"
	"time"
)

var (
	ErrRequesterNotFound = errors.New("requester profile not found")
	ErrInvalidRequester  = errors.New("invalid requester id")
)

// Service is what the HTTP layer talks to. It adds limiting and
// metrics on top of the ranker; the ranking itself never paginates.
type Service interface {
	GetCandidates(ctx context.Context, requesterID int64, limit int) ([]*Candidate, error)
}

type service struct {
	ranker Ranker
}

func NewService(ranker Ranker) Service {
	return &service{ranker: ranker}
}

func (s *service) GetCandidates(ctx context.Context, requesterID int64, limit int) ([]*Candidate, error) {
	start := time.Now()

	candidates, err := s.ranker.RankCandidates(ctx, requesterID)
	if err != nil {
		RecordRanking(outcomeForError(err), 0, time.Since(start))
		return nil, err
	}

	RecordRanking("ok", len(candidates), time.Since(start))

	if limit > 0 && limit < len(candidates) {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

func outcomeForError(err error) string {
	switch {
	case errors.Is(err, ErrRequesterNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidRequester):
		return "invalid_input"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal"
	}
}
