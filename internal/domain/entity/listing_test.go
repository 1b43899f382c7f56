package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestListingIsNew(t *testing.T) {
	fresh := &Listing{CreatedAt: time.Now().Add(-2 * 24 * time.Hour).UnixMilli()}
	assert.True(t, fresh.IsNew())

	boundary := &Listing{CreatedAt: time.Now().Add(-6*24*time.Hour - 23*time.Hour).UnixMilli()}
	assert.True(t, boundary.IsNew())

	old := &Listing{CreatedAt: time.Now().Add(-8 * 24 * time.Hour).UnixMilli()}
	assert.False(t, old.IsNew())
}

func TestGenerateSearchKeywords(t *testing.T) {
	l := &Listing{
		Name:        "Calculatrice TI-82 pour les maths",
		Description: "Une calculatrice graphique",
		Category:    "Calculatrices",
		Condition:   "likeNew",
	}

	keywords := l.GenerateSearchKeywords()

	assert.Contains(t, keywords, "calculatrice")
	assert.Contains(t, keywords, "ti-82")
	assert.Contains(t, keywords, "maths")
	assert.Contains(t, keywords, "graphique")
	assert.Contains(t, keywords, "calculatrices")
	assert.Contains(t, keywords, "likenew")

	// Stop words and short tokens are excluded.
	assert.NotContains(t, keywords, "pour")
	assert.NotContains(t, keywords, "les")
	assert.NotContains(t, keywords, "une")

	// "calculatrice" appears in both name and description: no duplicates.
	count := 0
	for _, k := range keywords {
		if k == "calculatrice" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestUserDisplayName(t *testing.T) {
	assert.Equal(t, "Amine Ben", (&User{FirstName: "Amine", LastName: "Ben"}).DisplayName())
	assert.Equal(t, "Amine", (&User{FirstName: "Amine"}).DisplayName())
	assert.Equal(t, "amine93", (&User{Username: "amine93"}).DisplayName())
}

func TestConversationHelpers(t *testing.T) {
	c := &Conversation{
		Participants: []string{"alice", "bob"},
		UnreadCount:  map[string]int{"alice": 2},
	}

	assert.Equal(t, "bob", c.OtherParticipant("alice"))
	assert.Equal(t, "", c.OtherParticipant("mallory"))
	assert.True(t, c.HasParticipant("bob"))
	assert.False(t, c.HasParticipant("mallory"))
	assert.Equal(t, 2, c.UnreadFor("alice"))
	assert.Equal(t, 0, c.UnreadFor("bob"))
}
