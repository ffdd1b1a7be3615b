package feed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockin-app/lockin/internal/feed"
	"github.com/lockin-app/lockin/internal/store"
	"github.com/lockin-app/lockin/tests/testutil"
)

func TestItemCompletedPublishesPost(t *testing.T) {
	s := testutil.NewTestStore(t)
	sync := feed.NewSynchronizer(s)

	item := testutil.AddTestItem(t, s, "u1", "Run 5k", true)
	post := sync.ItemCompleted(item, "jennie")

	assert.Equal(t, "Completed: Run 5k", post.Content)
	assert.True(t, post.IsPublic)
	assert.Equal(t, item.ID, post.ChecklistItemID)
}

func TestItemCompletedCopiesVisibilityAtCompletionTime(t *testing.T) {
	s := testutil.NewTestStore(t)
	sync := feed.NewSynchronizer(s)

	item := testutil.AddTestItem(t, s, "u1", "Journal", false)
	post := sync.ItemCompleted(item, "jennie")

	assert.False(t, post.IsPublic)
}

func TestRecompletingItemDoesNotDuplicatePost(t *testing.T) {
	s := testutil.NewTestStore(t)
	sync := feed.NewSynchronizer(s)
	item := testutil.AddTestItem(t, s, "u1", "Run 5k", true)

	first := sync.ItemCompleted(item, "jennie")
	sync.CompletionRevoked(item.ID)
	second := sync.ItemCompleted(item, "jennie")

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, s.Posts(store.PostFilter{}), 1)
}

func TestCompletionRevokedKeepsPost(t *testing.T) {
	s := testutil.NewTestStore(t)
	sync := feed.NewSynchronizer(s)
	item := testutil.AddTestItem(t, s, "u1", "Run 5k", true)

	post := sync.ItemCompleted(item, "jennie")
	sync.CompletionRevoked(item.ID)

	got, err := s.PostByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)
}

func TestItemDeletedRetractsPosts(t *testing.T) {
	s := testutil.NewTestStore(t)
	sync := feed.NewSynchronizer(s)
	item := testutil.AddTestItem(t, s, "u1", "Run 5k", true)

	sync.ItemCompleted(item, "jennie")

	assert.Equal(t, 1, sync.ItemDeleted(item.ID))
	assert.Empty(t, s.Posts(store.PostFilter{}))
	assert.Equal(t, 0, sync.ItemDeleted(item.ID))
}

func TestItemDeletedWithoutCompletionRemovesNothing(t *testing.T) {
	s := testutil.NewTestStore(t)
	sync := feed.NewSynchronizer(s)
	item := testutil.AddTestItem(t, s, "u1", "never done", true)

	assert.Equal(t, 0, sync.ItemDeleted(item.ID))
}

// TestChecklistToFeedLifecycle walks the full path: add, complete,
// un-complete, re-complete, delete.
func TestChecklistToFeedLifecycle(t *testing.T) {
	s := testutil.NewTestStore(t)
	sync := feed.NewSynchronizer(s)

	item := testutil.AddTestItem(t, s, "u1", "Run 5k", true)

	completed, err := s.Toggle(item.ID)
	require.NoError(t, err)
	require.True(t, completed.IsCompleted)
	post := sync.ItemCompleted(completed, "jennie")
	assert.Equal(t, "Completed: Run 5k", post.Content)
	assert.True(t, post.IsPublic)

	reverted, err := s.Toggle(item.ID)
	require.NoError(t, err)
	require.False(t, reverted.IsCompleted)
	sync.CompletionRevoked(reverted.ID)
	assert.Len(t, s.Posts(store.PostFilter{}), 1)

	recompleted, err := s.Toggle(item.ID)
	require.NoError(t, err)
	sync.ItemCompleted(recompleted, "jennie")
	assert.Len(t, s.Posts(store.PostFilter{}), 1)

	require.True(t, s.Remove(item.ID))
	assert.Equal(t, 1, sync.ItemDeleted(item.ID))
	assert.Empty(t, s.Posts(store.PostFilter{}))
}
