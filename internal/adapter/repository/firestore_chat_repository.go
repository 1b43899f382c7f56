package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"souqly/internal/domain/entity"
	"souqly/internal/domain/repository"
	"souqly/pkg/errors"
	"souqly/pkg/logger"
)

type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{
		client: client,
	}
}

func (r *firestoreChatRepository) conversations() *firestore.CollectionRef {
	return r.client.Collection("conversations")
}

func (r *firestoreChatRepository) messagesOf(conversationID string) *firestore.CollectionRef {
	return r.conversations().Doc(conversationID).Collection("messages")
}

func (r *firestoreChatRepository) typingOf(conversationID string) *firestore.CollectionRef {
	return r.conversations().Doc(conversationID).Collection("typing")
}

func (r *firestoreChatRepository) CreateConversation(ctx context.Context, conversation *entity.Conversation) error {
	if conversation.ID == "" {
		conversation.ID = uuid.New().String()
	}

	now := time.Now()
	conversation.CreatedAt = now
	conversation.UpdatedAt = now
	if conversation.Status == "" {
		conversation.Status = entity.ConversationStatusActive
	}
	if conversation.UnreadCount == nil {
		conversation.UnreadCount = make(map[string]int)
	}

	_, err := r.conversations().Doc(conversation.ID).Set(ctx, conversation)
	if err != nil {
		return errors.Internal("Failed to create conversation", err)
	}

	return nil
}

func (r *firestoreChatRepository) GetConversationByID(ctx context.Context, id string) (*entity.Conversation, error) {
	doc, err := r.conversations().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Conversation", err)
		}
		return nil, errors.Internal("Failed to get conversation", err)
	}

	var conversation entity.Conversation
	if err := doc.DataTo(&conversation); err != nil {
		return nil, errors.Internal("Failed to parse conversation data", err)
	}

	return &conversation, nil
}

func (r *firestoreChatRepository) FindConversation(ctx context.Context, userA, userB, listingID string) (*entity.Conversation, error) {
	// An empty listingID matches only the pair's unscoped conversation, not
	// an arbitrary listing-scoped one. The field is always written, so the
	// equality filter holds for both cases.
	query := r.conversations().Query.
		Where("participants", "array-contains", userA).
		Where("productId", "==", listingID)

	iter := query.Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to query conversations", err)
		}

		var conversation entity.Conversation
		if err := doc.DataTo(&conversation); err != nil {
			logger.Warn("Dropping malformed conversation document %s: %v", doc.Ref.ID, err)
			continue
		}

		if conversation.HasParticipant(userB) {
			return &conversation, nil
		}
	}

	return nil, nil
}

func (r *firestoreChatRepository) ListConversationsByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error) {
	query := r.conversations().Query.
		Where("participants", "array-contains", userID).
		OrderBy("updatedAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to fetch conversations", err)
	}
	total := int64(len(allDocs))

	start := offset
	if start > len(allDocs) {
		start = len(allDocs)
	}
	end := len(allDocs)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	var conversations []*entity.Conversation
	for _, doc := range allDocs[start:end] {
		var conversation entity.Conversation
		if err := doc.DataTo(&conversation); err != nil {
			logger.Warn("Dropping malformed conversation document %s: %v", doc.Ref.ID, err)
			continue
		}
		conversations = append(conversations, &conversation)
	}

	return conversations, total, nil
}

func (r *firestoreChatRepository) UpdateConversationStatus(ctx context.Context, id, newStatus string) error {
	_, err := r.conversations().Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: newStatus},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Conversation", err)
		}
		return errors.Internal("Failed to update conversation status", err)
	}

	return nil
}

func (r *firestoreChatRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	_, err := r.messagesOf(message.ConversationID).Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}

	return nil
}

func (r *firestoreChatRepository) ListMessages(ctx context.Context, conversationID string, limit, offset int) ([]*entity.Message, int64, error) {
	query := r.messagesOf(conversationID).OrderBy("timestamp", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to fetch messages", err)
	}
	total := int64(len(allDocs))

	start := offset
	if start > len(allDocs) {
		start = len(allDocs)
	}
	end := len(allDocs)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	var messages []*entity.Message
	for _, doc := range allDocs[start:end] {
		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, 0, errors.Internal("Failed to parse message data", err)
		}
		messages = append(messages, &message)
	}

	return messages, total, nil
}

// SetLastMessage refreshes the denormalized preview and bumps the
// recipient's unread counter through a dotted-path update, so concurrent
// senders don't clobber each other's counters.
func (r *firestoreChatRepository) SetLastMessage(ctx context.Context, conversationID string, summary *entity.MessageSummary, recipientID string) error {
	_, err := r.conversations().Doc(conversationID).Update(ctx, []firestore.Update{
		{Path: "lastMessage", Value: summary},
		{Path: "lastMessageTimestamp", Value: summary.Timestamp},
		{Path: "updatedAt", Value: time.Now()},
		{Path: "unreadCount." + recipientID, Value: firestore.Increment(1)},
	})
	if err != nil {
		return errors.Internal("Failed to update conversation summary", err)
	}

	return nil
}

func (r *firestoreChatRepository) MarkConversationRead(ctx context.Context, conversationID, readerID string) error {
	iter := r.messagesOf(conversationID).Where("read", "==", false).Documents(ctx)
	defer iter.Stop()

	writer := r.client.BulkWriter(ctx)
	var jobs []*firestore.BulkWriterJob
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return errors.Internal("Failed to iterate unread messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			logger.Warn("Skipping malformed message document %s: %v", doc.Ref.ID, err)
			continue
		}
		if message.SenderID == readerID {
			continue
		}

		job, err := writer.Update(doc.Ref, []firestore.Update{
			{Path: "read", Value: true},
		})
		if err != nil {
			return errors.Internal("Failed to mark message read", err)
		}
		jobs = append(jobs, job)
	}
	writer.End()

	var failed int
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			failed++
			logger.Warn("Failed to mark message read in conversation %s: %v", conversationID, err)
		}
	}
	if failed > 0 {
		return errors.Internal("Failed to mark all messages read", nil)
	}

	_, err := r.conversations().Doc(conversationID).Update(ctx, []firestore.Update{
		{Path: "unreadCount." + readerID, Value: 0},
	})
	if err != nil {
		return errors.Internal("Failed to reset unread counter", err)
	}

	return nil
}

func (r *firestoreChatRepository) SetTyping(ctx context.Context, conversationID, userID string, isTyping bool) error {
	_, err := r.typingOf(conversationID).Doc(userID).Set(ctx, map[string]interface{}{
		"isTyping": isTyping,
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update typing status", err)
	}

	return nil
}

func (r *firestoreChatRepository) IsTyping(ctx context.Context, conversationID, userID string) (bool, error) {
	doc, err := r.typingOf(conversationID).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, errors.Internal("Failed to read typing status", err)
	}

	isTyping, _ := doc.Data()["isTyping"].(bool)
	return isTyping, nil
}
