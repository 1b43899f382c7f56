package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"souqly/pkg/utils"
)

func rawDoc(id string, createdAt interface{}) rawListingDoc {
	return rawListingDoc{
		id: id,
		data: map[string]interface{}{
			"name":      "Listing " + id,
			"price":     10.0,
			"sellerId":  "seller-1",
			"createdAt": createdAt,
			"status":    "active",
		},
	}
}

func TestAssembleListingPageCursorTracksRawTail(t *testing.T) {
	docs := []rawListingDoc{
		rawDoc("a", int64(3000)),
		rawDoc("b", int64(2000)),
		{
			// Malformed tail: the price type fails mapping, but the raw
			// document still carries a usable createdAt.
			id: "c",
			data: map[string]interface{}{
				"name":      "Listing c",
				"price":     "not a number",
				"sellerId":  "seller-1",
				"createdAt": int64(1000),
				"status":    "active",
			},
		},
	}

	page := assembleListingPage(docs, 3)
	require.Len(t, page.Items, 2, "malformed document is dropped, not the page")
	assert.True(t, page.HasMore, "raw count fills the page even with a drop")

	cursor, err := utils.DecodeCursor(page.NextCursor)
	require.NoError(t, err)
	assert.Equal(t, "c", cursor.DocID)
	assert.Equal(t, int64(1000), cursor.CreatedAt,
		"cursor createdAt must belong to the same document as its ID")
}

func TestAssembleListingPageAllDropped(t *testing.T) {
	docs := []rawListingDoc{
		{
			id: "x",
			data: map[string]interface{}{
				"price":     "broken",
				"createdAt": int64(5000),
			},
		},
	}

	page := assembleListingPage(docs, 1)
	assert.Empty(t, page.Items)
	assert.True(t, page.HasMore)

	cursor, err := utils.DecodeCursor(page.NextCursor)
	require.NoError(t, err)
	assert.Equal(t, "x", cursor.DocID)
	assert.Equal(t, int64(5000), cursor.CreatedAt)
}

func TestAssembleListingPageEmpty(t *testing.T) {
	page := assembleListingPage(nil, 20)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasMore)
	assert.Empty(t, page.NextCursor)
}
