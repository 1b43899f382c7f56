package entity

import "time"

const (
	MessageTypeText  = "text"
	MessageTypeImage = "image"
)

type Message struct {
	ID             string    `json:"id" firestore:"id"`
	ConversationID string    `json:"conversation_id" firestore:"conversationId"`
	SenderID       string    `json:"sender_id" firestore:"senderId"`
	Text           string    `json:"text" firestore:"text"`
	ImageURL       string    `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	Type           string    `json:"type" firestore:"type"`
	Read           bool      `json:"read" firestore:"read"`
	CreatedAt      time.Time `json:"created_at" firestore:"timestamp"`

	// Transient client-side state while an image attachment is in flight.
	Uploading bool `json:"uploading,omitempty" firestore:"-"`
}
