package moderation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	profiles map[int64]bool
	blocks   map[[2]int64]bool
	reports  map[[2]int64]string
}

func newFakeRepo(profileIDs ...int64) *fakeRepo {
	f := &fakeRepo{
		profiles: map[int64]bool{},
		blocks:   map[[2]int64]bool{},
		reports:  map[[2]int64]string{},
	}
	for _, id := range profileIDs {
		f.profiles[id] = true
	}
	return f
}

func (f *fakeRepo) CreateBlock(_ context.Context, blockerID, blockedID int64) error {
	f.blocks[[2]int64{blockerID, blockedID}] = true
	return nil
}

func (f *fakeRepo) DeleteBlock(_ context.Context, blockerID, blockedID int64) (bool, error) {
	key := [2]int64{blockerID, blockedID}
	if !f.blocks[key] {
		return false, nil
	}
	delete(f.blocks, key)
	return true, nil
}

func (f *fakeRepo) ListBlocks(_ context.Context, blockerID int64) ([]Block, error) {
	var out []Block
	for key := range f.blocks {
		if key[0] == blockerID {
			out = append(out, Block{BlockerID: key[0], BlockedID: key[1]})
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateReport(_ context.Context, reporterID, reportedID int64, reason string) error {
	f.reports[[2]int64{reporterID, reportedID}] = reason
	return nil
}

func (f *fakeRepo) ProfileExists(_ context.Context, id int64) (bool, error) {
	return f.profiles[id], nil
}

func TestBlockSelfRejected(t *testing.T) {
	svc := NewService(newFakeRepo(1))

	err := svc.BlockUser(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrSelfTarget)
}

func TestBlockUnknownTarget(t *testing.T) {
	svc := NewService(newFakeRepo(1))

	err := svc.BlockUser(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestBlockThenUnblock(t *testing.T) {
	repo := newFakeRepo(1, 2)
	svc := NewService(repo)

	require.NoError(t, svc.BlockUser(context.Background(), 1, 2))
	assert.True(t, repo.blocks[[2]int64{1, 2}])

	require.NoError(t, svc.UnblockUser(context.Background(), 1, 2))
	assert.False(t, repo.blocks[[2]int64{1, 2}])
}

func TestUnblockMissingBlock(t *testing.T) {
	svc := NewService(newFakeRepo(1, 2))

	err := svc.UnblockUser(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestBlockIsIdempotent(t *testing.T) {
	repo := newFakeRepo(1, 2)
	svc := NewService(repo)

	require.NoError(t, svc.BlockUser(context.Background(), 1, 2))
	require.NoError(t, svc.BlockUser(context.Background(), 1, 2))

	blocks, err := svc.ListBlocks(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, blocks, 1)
}

func TestReportStoresReason(t *testing.T) {
	repo := newFakeRepo(1, 2)
	svc := NewService(repo)

	require.NoError(t, svc.ReportUser(context.Background(), 1, 2, "spam"))
	assert.Equal(t, "spam", repo.reports[[2]int64{1, 2}])
}

func TestReportSelfRejected(t *testing.T) {
	svc := NewService(newFakeRepo(1))

	err := svc.ReportUser(context.Background(), 1, 1, "spam")
	assert.ErrorIs(t, err, ErrSelfTarget)
}
