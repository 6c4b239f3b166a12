package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRanker struct {
	candidates []*Candidate
	err        error
}

func (s *stubRanker) RankCandidates(ctx context.Context, requesterID int64) ([]*Candidate, error) {
	return s.candidates, s.err
}

func TestGetCandidatesAppliesLimit(t *testing.T) {
	ranked := []*Candidate{{ID: 1}, {ID: 2}, {ID: 3}}
	svc := NewService(&stubRanker{candidates: ranked})

	got, err := svc.GetCandidates(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)

	// Zero means no limit, and a limit past the end is a no-op.
	got, err = svc.GetCandidates(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = svc.GetCandidates(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestGetCandidatesForwardsErrors(t *testing.T) {
	svc := NewService(&stubRanker{err: ErrRequesterNotFound})
	_, err := svc.GetCandidates(context.Background(), 1, 0)
	assert.ErrorIs(t, err, ErrRequesterNotFound)
}

func TestOutcomeForError(t *testing.T) {
	assert.Equal(t, "not_found", outcomeForError(ErrRequesterNotFound))
	assert.Equal(t, "invalid_input", outcomeForError(ErrInvalidRequester))
	assert.Equal(t, "canceled", outcomeForError(context.Canceled))
	assert.Equal(t, "canceled", outcomeForError(context.DeadlineExceeded))
	assert.Equal(t, "internal", outcomeForError(errors.New("boom")))
}
