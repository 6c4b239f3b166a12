package conversation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	profiles      map[int64]bool
	conversations map[int64]*Conversation
	messages      map[int64][]Message
	nextConvID    int64
	nextMsgID     int64
}

func newFakeRepo(profileIDs ...int64) *fakeRepo {
	f := &fakeRepo{
		profiles:      map[int64]bool{},
		conversations: map[int64]*Conversation{},
		messages:      map[int64][]Message{},
	}
	for _, id := range profileIDs {
		f.profiles[id] = true
	}
	return f
}

func (f *fakeRepo) GetOrCreateConversation(_ context.Context, userA, userB int64) (*Conversation, error) {
	a, b := orderedPair(userA, userB)
	for _, c := range f.conversations {
		if c.UserAID == a && c.UserBID == b {
			return c, nil
		}
	}
	f.nextConvID++
	c := &Conversation{ID: f.nextConvID, UserAID: a, UserBID: b}
	f.conversations[c.ID] = c
	return c, nil
}

func (f *fakeRepo) GetConversation(_ context.Context, id int64) (*Conversation, error) {
	c, ok := f.conversations[id]
	if !ok {
		return nil, ErrConversationNotFound
	}
	return c, nil
}

func (f *fakeRepo) ListConversations(_ context.Context, userID int64) ([]Conversation, error) {
	var out []Conversation
	for _, c := range f.conversations {
		if c.UserAID == userID || c.UserBID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateMessage(_ context.Context, conversationID, senderID int64, content string) (*Message, error) {
	f.nextMsgID++
	m := Message{
		ID:             f.nextMsgID,
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		CreatedAt:      time.Now(),
	}
	f.messages[conversationID] = append(f.messages[conversationID], m)
	if c, ok := f.conversations[conversationID]; ok {
		at := m.CreatedAt
		c.LastMessageAt = &at
	}
	return &m, nil
}

func (f *fakeRepo) ListMessages(_ context.Context, conversationID int64, limit int) ([]Message, error) {
	msgs := f.messages[conversationID]
	var out []Message
	for i := len(msgs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, msgs[i])
	}
	return out, nil
}

func (f *fakeRepo) ProfileExists(_ context.Context, id int64) (bool, error) {
	return f.profiles[id], nil
}

type fakeBlocks struct {
	blocked map[[2]int64]bool
}

func (f *fakeBlocks) IsBlockedEitherDirection(_ context.Context, a, b int64) (bool, error) {
	return f.blocked[[2]int64{a, b}] || f.blocked[[2]int64{b, a}], nil
}

type fakeNotifier struct {
	messages [][2]int64
}

func (f *fakeNotifier) NotifyMessage(_ context.Context, userID, actorID int64) error {
	f.messages = append(f.messages, [2]int64{userID, actorID})
	return nil
}

func newTestService(repo *fakeRepo, blocks *fakeBlocks) (Service, *fakeNotifier) {
	if blocks == nil {
		blocks = &fakeBlocks{blocked: map[[2]int64]bool{}}
	}
	notifier := &fakeNotifier{}
	return NewService(repo, blocks, notifier), notifier
}

func TestSendMessageOpensConversation(t *testing.T) {
	repo := newFakeRepo(1, 2)
	svc, notifier := newTestService(repo, nil)

	message, err := svc.SendMessage(context.Background(), 1, 2, "hey")
	require.NoError(t, err)
	assert.Equal(t, "hey", message.Content)
	assert.Len(t, repo.conversations, 1)
	assert.Equal(t, [][2]int64{{2, 1}}, notifier.messages)
}

func TestSendMessageReusesConversation(t *testing.T) {
	repo := newFakeRepo(1, 2)
	svc, _ := newTestService(repo, nil)

	_, err := svc.SendMessage(context.Background(), 1, 2, "first")
	require.NoError(t, err)
	// Reply goes through the same thread regardless of direction.
	_, err = svc.SendMessage(context.Background(), 2, 1, "second")
	require.NoError(t, err)

	assert.Len(t, repo.conversations, 1)
}

func TestSendMessageBlockedPair(t *testing.T) {
	repo := newFakeRepo(1, 2)
	blocks := &fakeBlocks{blocked: map[[2]int64]bool{{2, 1}: true}}
	svc, _ := newTestService(repo, blocks)

	_, err := svc.SendMessage(context.Background(), 1, 2, "hey")
	assert.ErrorIs(t, err, ErrBlocked)
}

func TestSendMessageToSelf(t *testing.T) {
	svc, _ := newTestService(newFakeRepo(1), nil)

	_, err := svc.SendMessage(context.Background(), 1, 1, "hey")
	assert.ErrorIs(t, err, ErrSelfTarget)
}

func TestSendMessageUnknownRecipient(t *testing.T) {
	svc, _ := newTestService(newFakeRepo(1), nil)

	_, err := svc.SendMessage(context.Background(), 1, 99, "hey")
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestListMessagesRequiresParticipation(t *testing.T) {
	repo := newFakeRepo(1, 2)
	svc, _ := newTestService(repo, nil)

	_, err := svc.SendMessage(context.Background(), 1, 2, "hey")
	require.NoError(t, err)

	_, err = svc.ListMessages(context.Background(), 9, 1, 0)
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestListMessagesNewestFirst(t *testing.T) {
	repo := newFakeRepo(1, 2)
	svc, _ := newTestService(repo, nil)
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, 1, 2, "first")
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, 2, 1, "second")
	require.NoError(t, err)

	messages, err := svc.ListMessages(ctx, 1, 1, 0)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "second", messages[0].Content)
}

func TestListMessagesMissingConversation(t *testing.T) {
	svc, _ := newTestService(newFakeRepo(1), nil)

	_, err := svc.ListMessages(context.Background(), 1, 42, 0)
	assert.ErrorIs(t, err, ErrConversationNotFound)
}
