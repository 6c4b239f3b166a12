package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	nextID  int64
	entries []*Notification
}

func (f *fakeRepo) Create(_ context.Context, userID, actorID int64, notifType NotificationType) error {
	f.nextID++
	f.entries = append(f.entries, &Notification{
		ID:      f.nextID,
		UserID:  userID,
		ActorID: actorID,
		Type:    notifType,
	})
	return nil
}

func (f *fakeRepo) List(_ context.Context, userID int64, limit int) ([]Notification, error) {
	var out []Notification
	for i := len(f.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if f.entries[i].UserID == userID {
			out = append(out, *f.entries[i])
		}
	}
	return out, nil
}

func (f *fakeRepo) CountUnread(_ context.Context, userID int64) (int64, error) {
	var count int64
	for _, n := range f.entries {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) MarkRead(_ context.Context, userID, notificationID int64) (bool, error) {
	for _, n := range f.entries {
		if n.ID == notificationID && n.UserID == userID {
			n.IsRead = true
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) MarkAllRead(_ context.Context, userID int64) error {
	for _, n := range f.entries {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func TestNotifyAndList(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.NotifyLike(ctx, 1, 2))
	require.NoError(t, svc.NotifyMatch(ctx, 1, 3))
	require.NoError(t, svc.NotifyProfileView(ctx, 9, 2))

	feed, err := svc.List(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, TypeMatch, feed[0].Type)
	assert.Equal(t, TypeLike, feed[1].Type)
}

func TestUnreadCountDropsAfterMarkRead(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.NotifyLike(ctx, 1, 2))
	require.NoError(t, svc.NotifyLike(ctx, 1, 3))

	count, err := svc.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, svc.MarkRead(ctx, 1, 1))

	count, err = svc.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMarkReadScopedToOwner(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.NotifyLike(ctx, 1, 2))

	err := svc.MarkRead(ctx, 99, 1)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestMarkAllRead(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.NotifyLike(ctx, 1, 2))
	require.NoError(t, svc.NotifyUnlike(ctx, 1, 3))
	require.NoError(t, svc.MarkAllRead(ctx, 1))

	count, err := svc.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
