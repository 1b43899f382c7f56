package entity

import "time"

const (
	ConversationStatusActive   = "active"
	ConversationStatusArchived = "archived"
	ConversationStatusBlocked  = "blocked"
)

// Conversation holds exactly two participants, a denormalized summary of the
// most recent message and per-participant unread counters keyed by user ID.
type Conversation struct {
	ID                   string          `json:"id" firestore:"id"`
	Participants         []string        `json:"participants" firestore:"participants"`
	LastMessage          *MessageSummary `json:"last_message,omitempty" firestore:"lastMessage,omitempty"`
	LastMessageTimestamp int64           `json:"last_message_timestamp" firestore:"lastMessageTimestamp"`
	UnreadCount          map[string]int  `json:"unread_count" firestore:"unreadCount"`
	ListingID            string          `json:"listing_id,omitempty" firestore:"productId,omitempty"`
	ListingInfo          *ListingSummary `json:"listing_info,omitempty" firestore:"productInfo,omitempty"`
	Status               string          `json:"status" firestore:"status"`
	CreatedAt            time.Time       `json:"created_at" firestore:"createdAt"`
	UpdatedAt            time.Time       `json:"updated_at" firestore:"updatedAt"`
}

// MessageSummary is the denormalized last-message preview stored on the
// conversation document.
type MessageSummary struct {
	Content   string `json:"content" firestore:"content"`
	Timestamp int64  `json:"timestamp" firestore:"timestamp"`
	SenderID  string `json:"sender_id" firestore:"senderId"`
	Type      string `json:"type" firestore:"type"`
}

// ListingSummary is the denormalized listing snapshot attached to a
// conversation opened from a listing page.
type ListingSummary struct {
	Name     string  `json:"name" firestore:"name"`
	Price    float64 `json:"price" firestore:"price"`
	ImageURL string  `json:"image_url" firestore:"imageUrl"`
	Status   string  `json:"status" firestore:"status"`
}

// OtherParticipant returns the participant that is not the given user, or
// an empty string when the user is not part of the conversation.
func (c *Conversation) OtherParticipant(userID string) string {
	if !c.HasParticipant(userID) {
		return ""
	}
	for _, participant := range c.Participants {
		if participant != userID {
			return participant
		}
	}
	return ""
}

// UnreadFor returns the unread counter for a participant.
func (c *Conversation) UnreadFor(userID string) int {
	return c.UnreadCount[userID]
}

// HasParticipant reports whether the user belongs to the conversation.
func (c *Conversation) HasParticipant(userID string) bool {
	for _, participant := range c.Participants {
		if participant == userID {
			return true
		}
	}
	return false
}
