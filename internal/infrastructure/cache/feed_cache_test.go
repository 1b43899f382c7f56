package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type feedItem struct {
	ID   string
	Star bool
}

func newTestCache() *FeedCache[feedItem] {
	return NewFeedCache(func(i feedItem) string { return i.ID })
}

func TestFeedCacheReplaceSwapsList(t *testing.T) {
	c := newTestCache()
	c.Replace([]feedItem{{ID: "a"}, {ID: "b"}})
	c.Replace([]feedItem{{ID: "c"}})

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestFeedCacheAppendDeduplicates(t *testing.T) {
	c := newTestCache()
	c.Replace([]feedItem{{ID: "a"}, {ID: "b"}})

	// Retrying a page must not duplicate, and must refresh in place.
	c.Append([]feedItem{{ID: "b", Star: true}, {ID: "c"}})

	assert.Equal(t, 3, c.Len())
	items := c.Items()
	assert.Equal(t, []string{"a", "b", "c"}, []string{items[0].ID, items[1].ID, items[2].ID})

	b, ok := c.Get("b")
	require.True(t, ok)
	assert.True(t, b.Star)
}

func TestFeedCachePatchAndRollback(t *testing.T) {
	c := newTestCache()
	c.Replace([]feedItem{{ID: "a"}})

	rollback, ok := c.Patch("a", func(i feedItem) feedItem {
		i.Star = true
		return i
	})
	require.True(t, ok)

	patched, _ := c.Get("a")
	assert.True(t, patched.Star)

	rollback()

	reverted, _ := c.Get("a")
	assert.False(t, reverted.Star)
}

func TestFeedCachePatchMissingItem(t *testing.T) {
	c := newTestCache()

	rollback, ok := c.Patch("ghost", func(i feedItem) feedItem { return i })
	assert.False(t, ok)
	assert.NotPanics(t, rollback)
}

func TestFeedCacheRemove(t *testing.T) {
	c := newTestCache()
	c.Replace([]feedItem{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	c.Remove("b")

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("b")
	assert.False(t, ok)

	// Index stays consistent after the shift.
	item, ok := c.Get("c")
	require.True(t, ok)
	assert.Equal(t, "c", item.ID)
}
