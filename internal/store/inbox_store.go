package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lockin-app/lockin/internal/model"
)

// SendMessage delivers a direct message. Generates the ID and CreatedAt
// when unset.
func (s *MemoryStore) SendMessage(m model.Message) (model.Message, error) {
	if strings.TrimSpace(m.Content) == "" {
		return model.Message{}, fmt.Errorf("message content must not be empty")
	}
	if m.SenderID == "" || m.ReceiverID == "" {
		return model.Message{}, fmt.Errorf("message needs both a sender and a receiver")
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, m)
	return m, nil
}

// MessagesFor returns messages received by userID, newest first.
func (s *MemoryStore) MessagesFor(userID string) []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	var msgs []model.Message
	for _, m := range s.messages {
		if m.ReceiverID == userID {
			msgs = append(msgs, m)
		}
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.After(msgs[j].CreatedAt)
	})
	return msgs
}

// AddNotification records an activity notification for a user. Generates
// the ID and CreatedAt when unset.
func (s *MemoryStore) AddNotification(n model.Notification) model.Notification {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append(s.notifications, n)
	return n
}

// NotificationsFor returns userID's notifications, newest first.
func (s *MemoryStore) NotificationsFor(userID string) []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ns []model.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			ns = append(ns, n)
		}
	}
	sort.SliceStable(ns, func(i, j int) bool {
		return ns[i].CreatedAt.After(ns[j].CreatedAt)
	})
	return ns
}

// UnreadMessageCount returns how many of userID's received messages are
// unread.
func (s *MemoryStore) UnreadMessageCount(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, m := range s.messages {
		if m.ReceiverID == userID && !m.IsRead {
			count++
		}
	}
	return count
}

// UnreadNotificationCount returns how many of userID's notifications are
// unread.
func (s *MemoryStore) UnreadNotificationCount(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, n := range s.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count
}

// MarkAllRead marks every message and notification for userID as read.
func (s *MemoryStore) MarkAllRead(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ReceiverID == userID {
			s.messages[i].IsRead = true
		}
	}
	for i := range s.notifications {
		if s.notifications[i].UserID == userID {
			s.notifications[i].IsRead = true
		}
	}
}
