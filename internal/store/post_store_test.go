package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockin-app/lockin/internal/model"
	"github.com/lockin-app/lockin/internal/store"
	"github.com/lockin-app/lockin/tests/testutil"
)

func TestCreateChecklistPostDerivesContentAndVisibility(t *testing.T) {
	s := testutil.NewTestStore(t)
	item := testutil.AddTestItem(t, s, "u1", "Run 5k", true)

	post := s.CreateChecklistPost(item, "jennie")

	assert.Equal(t, "Completed: Run 5k", post.Content)
	assert.Equal(t, "jennie", post.Username)
	assert.Equal(t, "u1", post.UserID)
	assert.Equal(t, model.PostTypeChecklist, post.Type)
	assert.Equal(t, item.ID, post.ChecklistItemID)
	assert.True(t, post.IsPublic)
	assert.Empty(t, post.Likes)
	assert.Empty(t, post.Comments)
}

func TestCreateChecklistPostIsIdempotentPerItem(t *testing.T) {
	s := testutil.NewTestStore(t)
	item := testutil.AddTestItem(t, s, "u1", "Run 5k", true)

	first := s.CreateChecklistPost(item, "jennie")
	second := s.CreateChecklistPost(item, "jennie")

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, s.Posts(store.PostFilter{}), 1)
}

func TestPostsFilterAndSortNewestFirst(t *testing.T) {
	s := testutil.NewTestStore(t)

	old := testutil.AddTestItem(t, s, "u1", "older public", true)
	oldPost := s.CreateChecklistPost(old, "jennie")

	// Posts stamp CreatedAt at creation; nudge the first one back so the
	// ordering under test is unambiguous.
	time.Sleep(2 * time.Millisecond)

	newer := testutil.AddTestItem(t, s, "u2", "newer public", true)
	newPost := s.CreateChecklistPost(newer, "alexsmith")

	private := testutil.AddTestItem(t, s, "u1", "private one", false)
	s.CreateChecklistPost(private, "jennie")

	public := true
	posts := s.Posts(store.PostFilter{Public: &public})
	require.Len(t, posts, 2)
	assert.Equal(t, newPost.ID, posts[0].ID)
	assert.Equal(t, oldPost.ID, posts[1].ID)

	owner := "u1"
	mine := s.Posts(store.PostFilter{UserID: &owner})
	require.Len(t, mine, 2)
	for _, p := range mine {
		assert.Equal(t, "u1", p.UserID)
	}
}

func TestPostsQueryMatchesContentAndUsername(t *testing.T) {
	s := testutil.NewTestStore(t)

	run := testutil.AddTestItem(t, s, "u1", "Morning Run", true)
	s.CreateChecklistPost(run, "jennie")
	read := testutil.AddTestItem(t, s, "u2", "Read a chapter", true)
	s.CreateChecklistPost(read, "alexsmith")

	q := "run"
	byContent := s.Posts(store.PostFilter{Query: &q})
	require.Len(t, byContent, 1)
	assert.Equal(t, "Completed: Morning Run", byContent[0].Content)

	q = "ALEX"
	byAuthor := s.Posts(store.PostFilter{Query: &q})
	require.Len(t, byAuthor, 1)
	assert.Equal(t, "alexsmith", byAuthor[0].Username)

	q = "nothing matches this"
	assert.Empty(t, s.Posts(store.PostFilter{Query: &q}))
}

func TestDeletePostsForItemReturnsExactCount(t *testing.T) {
	s := testutil.NewTestStore(t)

	item := testutil.AddTestItem(t, s, "u1", "task", true)
	s.CreateChecklistPost(item, "jennie")
	other := testutil.AddTestItem(t, s, "u1", "unrelated", true)
	s.CreateChecklistPost(other, "jennie")

	assert.Equal(t, 1, s.DeletePostsForItem(item.ID))
	assert.Equal(t, 0, s.DeletePostsForItem(item.ID))
	assert.Len(t, s.Posts(store.PostFilter{}), 1)
}

func TestDeletePostsForItemIgnoresEmptyID(t *testing.T) {
	s := testutil.NewTestStore(t)

	item := testutil.AddTestItem(t, s, "u1", "task", true)
	s.CreateChecklistPost(item, "jennie")

	// Manual posts carry no item ID; an empty query must never match them.
	assert.Equal(t, 0, s.DeletePostsForItem(""))
	assert.Len(t, s.Posts(store.PostFilter{}), 1)
}

func TestToggleLikeAddsThenRemoves(t *testing.T) {
	s := testutil.NewTestStore(t)
	item := testutil.AddTestItem(t, s, "u1", "task", true)
	post := s.CreateChecklistPost(item, "jennie")

	liked, err := s.ToggleLike(post.ID, "u2")
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, liked.Likes)
	assert.True(t, liked.LikedBy("u2"))

	unliked, err := s.ToggleLike(post.ID, "u2")
	require.NoError(t, err)
	assert.Empty(t, unliked.Likes)

	_, err = s.ToggleLike("missing", "u2")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAddCommentAppendsAndStampsCreator(t *testing.T) {
	s := testutil.NewTestStore(t)
	item := testutil.AddTestItem(t, s, "u1", "task", true)
	post := s.CreateChecklistPost(item, "jennie")

	first, err := s.AddComment(post.ID, model.Comment{
		UserID:   "u2",
		Username: "alexsmith",
		Content:  "Nice!",
	})
	require.NoError(t, err)
	require.Len(t, first.Comments, 1)
	assert.False(t, first.Comments[0].IsCreator)
	assert.Equal(t, post.ID, first.Comments[0].PostID)
	assert.NotEmpty(t, first.Comments[0].ID)

	second, err := s.AddComment(post.ID, model.Comment{
		UserID:   "u1",
		Username: "jennie",
		Content:  "Thanks!",
	})
	require.NoError(t, err)
	require.Len(t, second.Comments, 2)
	assert.Equal(t, "Nice!", second.Comments[0].Content)
	assert.True(t, second.Comments[1].IsCreator)
}

func TestAddCommentRejectsEmptyContent(t *testing.T) {
	s := testutil.NewTestStore(t)
	item := testutil.AddTestItem(t, s, "u1", "task", true)
	post := s.CreateChecklistPost(item, "jennie")

	_, err := s.AddComment(post.ID, model.Comment{UserID: "u2", Content: "  "})
	require.Error(t, err)

	got, err := s.PostByID(post.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Comments)
}

func TestPostsReturnsCopies(t *testing.T) {
	s := testutil.NewTestStore(t)
	item := testutil.AddTestItem(t, s, "u1", "task", true)
	post := s.CreateChecklistPost(item, "jennie")

	_, err := s.ToggleLike(post.ID, "u2")
	require.NoError(t, err)

	posts := s.Posts(store.PostFilter{})
	require.Len(t, posts, 1)
	posts[0].Likes[0] = "tampered"

	fresh, err := s.PostByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, fresh.Likes)
}
