package utils

import (
	"encoding/base64"
	"encoding/json"

	"souqly/pkg/errors"
)

// Cursor marks the last item of a feed page. It is opaque to clients:
// a base64 payload carrying the order-by value and document ID needed
// to resume the query after that item.
type Cursor struct {
	CreatedAt int64  `json:"createdAt"`
	DocID     string `json:"docId"`
}

func EncodeCursor(createdAt int64, docID string) string {
	raw, _ := json.Marshal(Cursor{CreatedAt: createdAt, DocID: docID})
	return base64.URLEncoding.EncodeToString(raw)
}

func DecodeCursor(token string) (*Cursor, error) {
	if token == "" {
		return nil, nil
	}

	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, errors.BadRequest("Invalid pagination cursor", err)
	}

	var cursor Cursor
	if err := json.Unmarshal(raw, &cursor); err != nil {
		return nil, errors.BadRequest("Invalid pagination cursor", err)
	}

	if cursor.DocID == "" {
		return nil, errors.BadRequest("Invalid pagination cursor", nil)
	}

	return &cursor, nil
}
