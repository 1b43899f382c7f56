package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	token := EncodeCursor(1700000000000, "doc-42")

	cursor, err := DecodeCursor(token)
	require.NoError(t, err)
	require.NotNil(t, cursor)

	assert.Equal(t, int64(1700000000000), cursor.CreatedAt)
	assert.Equal(t, "doc-42", cursor.DocID)
}

func TestDecodeCursorEmptyTokenMeansFirstPage(t *testing.T) {
	cursor, err := DecodeCursor("")
	require.NoError(t, err)
	assert.Nil(t, cursor)
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	_, err := DecodeCursor("not base64 at all!!!")
	assert.Error(t, err)

	// Valid base64, not a cursor payload
	_, err = DecodeCursor("aGVsbG8gd29ybGQ=")
	assert.Error(t, err)
}
