package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockin-app/lockin/internal/model"
	"github.com/lockin-app/lockin/tests/testutil"
)

func TestSendMessageValidation(t *testing.T) {
	s := testutil.NewTestStore(t)

	_, err := s.SendMessage(model.Message{SenderID: "a", ReceiverID: "b", Content: " "})
	require.Error(t, err)

	_, err = s.SendMessage(model.Message{SenderID: "a", Content: "hi"})
	require.Error(t, err)

	m, err := s.SendMessage(model.Message{SenderID: "a", ReceiverID: "b", Content: "hi"})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.False(t, m.CreatedAt.IsZero())
}

func TestMessagesForReturnsReceiverNewestFirst(t *testing.T) {
	s := testutil.NewTestStore(t)

	base := time.Now().UTC()
	for i, content := range []string{"first", "second", "third"} {
		_, err := s.SendMessage(model.Message{
			SenderID:   "a",
			ReceiverID: "b",
			Content:    content,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
	_, err := s.SendMessage(model.Message{SenderID: "a", ReceiverID: "c", Content: "other"})
	require.NoError(t, err)

	msgs := s.MessagesFor("b")
	require.Len(t, msgs, 3)
	assert.Equal(t, "third", msgs[0].Content)
	assert.Equal(t, "first", msgs[2].Content)
}

func TestUnreadCountsAndMarkAllRead(t *testing.T) {
	s := testutil.NewTestStore(t)

	for _, content := range []string{"one", "two"} {
		_, err := s.SendMessage(model.Message{SenderID: "a", ReceiverID: "b", Content: content})
		require.NoError(t, err)
	}
	s.AddNotification(model.Notification{
		UserID:       "b",
		Type:         model.NotificationLike,
		FromUserID:   "a",
		FromUsername: "jennie",
		Content:      "liked your post",
	})
	s.AddNotification(model.Notification{
		UserID:       "c",
		Type:         model.NotificationFollow,
		FromUserID:   "a",
		FromUsername: "jennie",
		Content:      "started following you",
	})

	assert.Equal(t, 2, s.UnreadMessageCount("b"))
	assert.Equal(t, 1, s.UnreadNotificationCount("b"))

	s.MarkAllRead("b")

	assert.Equal(t, 0, s.UnreadMessageCount("b"))
	assert.Equal(t, 0, s.UnreadNotificationCount("b"))

	// Other inboxes are untouched.
	assert.Equal(t, 1, s.UnreadNotificationCount("c"))
}

func TestNotificationsForNewestFirst(t *testing.T) {
	s := testutil.NewTestStore(t)

	base := time.Now().UTC()
	for i, content := range []string{"oldest", "newest"} {
		s.AddNotification(model.Notification{
			UserID:    "b",
			Content:   content,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	ns := s.NotificationsFor("b")
	require.Len(t, ns, 2)
	assert.Equal(t, "newest", ns[0].Content)
}
