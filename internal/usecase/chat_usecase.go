package usecase

import (
	"context"

	"souqly/internal/domain/entity"
	"souqly/internal/domain/repository"
	"souqly/internal/infrastructure/websocket"
	"souqly/pkg/errors"
	"souqly/pkg/logger"
)

type ChatUseCase struct {
	chatRepo    repository.ChatRepository
	listingRepo repository.ListingRepository
	wsManager   *websocket.Manager
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	listingRepo repository.ListingRepository,
	wsManager *websocket.Manager,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:    chatRepo,
		listingRepo: listingRepo,
		wsManager:   wsManager,
	}
}

type SendMessageInput struct {
	Text     string
	ImageURL string
}

// OpenConversation finds the conversation between the caller and the other
// user, scoped to a listing when one is given, or creates it. Opening an
// existing conversation never duplicates it.
func (uc *ChatUseCase) OpenConversation(ctx context.Context, userID, otherUserID, listingID string) (*entity.Conversation, error) {
	if userID == otherUserID {
		return nil, errors.BadRequest("You cannot open a conversation with yourself", nil)
	}

	existing, err := uc.chatRepo.FindConversation(ctx, userID, otherUserID, listingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	conversation := &entity.Conversation{
		Participants: []string{userID, otherUserID},
		UnreadCount:  map[string]int{userID: 0, otherUserID: 0},
		Status:       entity.ConversationStatusActive,
	}

	if listingID != "" {
		listing, err := uc.listingRepo.GetByID(ctx, listingID)
		if err != nil {
			return nil, err
		}
		conversation.ListingID = listingID
		conversation.ListingInfo = &entity.ListingSummary{
			Name:   listing.Name,
			Price:  listing.Price,
			Status: listing.Status,
		}
		if len(listing.Images) > 0 {
			conversation.ListingInfo.ImageURL = listing.Images[0]
		}
	}

	if err := uc.chatRepo.CreateConversation(ctx, conversation); err != nil {
		return nil, err
	}

	return conversation, nil
}

// SendMessage persists the message, refreshes the conversation preview and
// unread counter, clears the sender's typing flag and pushes the message to
// the recipient's websocket when connected.
func (uc *ChatUseCase) SendMessage(ctx context.Context, conversationID, senderID string, input SendMessageInput) (*entity.Message, error) {
	if input.Text == "" && input.ImageURL == "" {
		return nil, errors.BadRequest("Message cannot be empty", nil)
	}

	conversation, err := uc.authorizedConversation(ctx, conversationID, senderID)
	if err != nil {
		return nil, err
	}
	if conversation.Status == entity.ConversationStatusBlocked {
		return nil, errors.Forbidden("This conversation is blocked", nil)
	}

	message := &entity.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Text:           input.Text,
		ImageURL:       input.ImageURL,
		Type:           entity.MessageTypeText,
	}
	if input.ImageURL != "" {
		message.Type = entity.MessageTypeImage
	}

	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	summary := &entity.MessageSummary{
		Content:   input.Text,
		Timestamp: message.CreatedAt.UnixMilli(),
		SenderID:  senderID,
		Type:      message.Type,
	}
	if message.Type == entity.MessageTypeImage && summary.Content == "" {
		summary.Content = "Image"
	}

	recipientID := conversation.OtherParticipant(senderID)
	if err := uc.chatRepo.SetLastMessage(ctx, conversationID, summary, recipientID); err != nil {
		logger.Error("Failed to update conversation preview for %s: %v", conversationID, err)
	}

	if err := uc.chatRepo.SetTyping(ctx, conversationID, senderID, false); err != nil {
		logger.Warn("Failed to clear typing flag for %s: %v", conversationID, err)
	}

	uc.wsManager.SendEvent(recipientID, websocket.Event{
		Type:           "message",
		ConversationID: conversationID,
		Payload:        message,
	})

	return message, nil
}

func (uc *ChatUseCase) ListConversations(ctx context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error) {
	return uc.chatRepo.ListConversationsByUser(ctx, userID, limit, offset)
}

func (uc *ChatUseCase) ListMessages(ctx context.Context, conversationID, userID string, limit, offset int) ([]*entity.Message, int64, error) {
	if _, err := uc.authorizedConversation(ctx, conversationID, userID); err != nil {
		return nil, 0, err
	}
	return uc.chatRepo.ListMessages(ctx, conversationID, limit, offset)
}

// MarkRead flags every incoming message as read and zeroes the caller's
// unread counter.
func (uc *ChatUseCase) MarkRead(ctx context.Context, conversationID, userID string) error {
	if _, err := uc.authorizedConversation(ctx, conversationID, userID); err != nil {
		return err
	}
	return uc.chatRepo.MarkConversationRead(ctx, conversationID, userID)
}

// SetTyping updates the caller's typing flag and pushes the change to the
// other participant.
func (uc *ChatUseCase) SetTyping(ctx context.Context, conversationID, userID string, isTyping bool) error {
	conversation, err := uc.authorizedConversation(ctx, conversationID, userID)
	if err != nil {
		return err
	}

	if err := uc.chatRepo.SetTyping(ctx, conversationID, userID, isTyping); err != nil {
		return err
	}

	uc.wsManager.SendEvent(conversation.OtherParticipant(userID), websocket.Event{
		Type:           "typing",
		ConversationID: conversationID,
		Payload:        map[string]interface{}{"user_id": userID, "is_typing": isTyping},
	})

	return nil
}

func (uc *ChatUseCase) ArchiveConversation(ctx context.Context, conversationID, userID string) error {
	return uc.setStatus(ctx, conversationID, userID, entity.ConversationStatusArchived)
}

func (uc *ChatUseCase) BlockConversation(ctx context.Context, conversationID, userID string) error {
	return uc.setStatus(ctx, conversationID, userID, entity.ConversationStatusBlocked)
}

func (uc *ChatUseCase) setStatus(ctx context.Context, conversationID, userID, status string) error {
	if _, err := uc.authorizedConversation(ctx, conversationID, userID); err != nil {
		return err
	}
	return uc.chatRepo.UpdateConversationStatus(ctx, conversationID, status)
}

func (uc *ChatUseCase) authorizedConversation(ctx context.Context, conversationID, userID string) (*entity.Conversation, error) {
	conversation, err := uc.chatRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, errors.Forbidden("You are not part of this conversation", nil)
	}
	return conversation, nil
}
