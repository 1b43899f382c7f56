package repository

import (
	"context"

	"souqly/internal/domain/entity"
)

type ChatRepository interface {
	CreateConversation(ctx context.Context, conversation *entity.Conversation) error
	GetConversationByID(ctx context.Context, id string) (*entity.Conversation, error)
	// FindConversation locates an existing conversation between two users,
	// scoped to the listing; an empty listingID matches only the pair's
	// unscoped conversation. Returns (nil, nil) when none exists.
	FindConversation(ctx context.Context, userA, userB, listingID string) (*entity.Conversation, error)
	ListConversationsByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error)
	UpdateConversationStatus(ctx context.Context, id, status string) error

	CreateMessage(ctx context.Context, message *entity.Message) error
	ListMessages(ctx context.Context, conversationID string, limit, offset int) ([]*entity.Message, int64, error)
	// SetLastMessage updates the conversation's denormalized preview and
	// increments the recipient's unread counter in the same write.
	SetLastMessage(ctx context.Context, conversationID string, summary *entity.MessageSummary, recipientID string) error
	// MarkConversationRead flags every unread incoming message as read and
	// zeroes the reader's unread counter.
	MarkConversationRead(ctx context.Context, conversationID, readerID string) error

	SetTyping(ctx context.Context, conversationID, userID string, isTyping bool) error
	IsTyping(ctx context.Context, conversationID, userID string) (bool, error)
}
