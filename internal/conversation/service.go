package conversation

import (
	"context"
	"errors"
	"log"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("not a participant of this conversation")
	ErrSelfTarget           = errors.New("cannot message yourself")
	ErrTargetNotFound       = errors.New("target profile not found")
	ErrBlocked              = errors.New("conversation unavailable")
)

// BlockChecker answers whether either user has blocked the other. It
// is satisfied by the matching repository.
type BlockChecker interface {
	IsBlockedEitherDirection(ctx context.Context, a, b int64) (bool, error)
}

// MessageNotifier pushes a feed entry for an incoming message.
type MessageNotifier interface {
	NotifyMessage(ctx context.Context, userID, actorID int64) error
}

type Service interface {
	SendMessage(ctx context.Context, senderID, recipientID int64, content string) (*Message, error)
	ListConversations(ctx context.Context, userID int64) ([]Conversation, error)
	ListMessages(ctx context.Context, userID, conversationID int64, limit int) ([]Message, error)
}

type service struct {
	repo     Repository
	blocks   BlockChecker
	notifier MessageNotifier
}

func NewService(repo Repository, blocks BlockChecker, notifier MessageNotifier) Service {
	return &service{repo: repo, blocks: blocks, notifier: notifier}
}

const defaultMessageLimit = 50

// SendMessage persists a message, creating the conversation on first
// contact. A block in either direction makes the pair unreachable.
func (s *service) SendMessage(ctx context.Context, senderID, recipientID int64, content string) (*Message, error) {
	if senderID == recipientID {
		return nil, ErrSelfTarget
	}

	exists, err := s.repo.ProfileExists(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTargetNotFound
	}

	blocked, err := s.blocks.IsBlockedEitherDirection(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, ErrBlocked
	}

	conversation, err := s.repo.GetOrCreateConversation(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}

	message, err := s.repo.CreateMessage(ctx, conversation.ID, senderID, content)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.NotifyMessage(ctx, recipientID, senderID); err != nil {
		log.Printf("notify message to %d failed: %v", recipientID, err)
	}
	return message, nil
}

func (s *service) ListConversations(ctx context.Context, userID int64) ([]Conversation, error) {
	return s.repo.ListConversations(ctx, userID)
}

func (s *service) ListMessages(ctx context.Context, userID, conversationID int64, limit int) ([]Message, error) {
	conversation, err := s.repo.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	if conversation.UserAID != userID && conversation.UserBID != userID {
		return nil, ErrNotParticipant
	}

	if limit <= 0 || limit > defaultMessageLimit {
		limit = defaultMessageLimit
	}
	return s.repo.ListMessages(ctx, conversationID, limit)
}
