package store

import (
	"github.com/cabanahq/sandbox/internal/model"
)

// CreateConversation inserts a conversation and indexes it under every
// participant.
func (s *Store) CreateConversation(c model.Conversation) model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := c.Clone()
	s.conversations[clone.ID] = &clone
	s.convOrder = append(s.convOrder, clone.ID)
	for _, pid := range clone.ParticipantIDs {
		s.conversationsByUser[pid] = append(s.conversationsByUser[pid], clone.ID)
	}
	return clone.Clone()
}

// Conversation returns a copy of the conversation with the given ID.
func (s *Store) Conversation(id string) (model.Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.conversations[id]
	if !ok {
		return model.Conversation{}, false
	}
	return c.Clone(), true
}

// ConversationsByUser returns a user's conversations, most recently updated
// first.
func (s *Store) ConversationsByUser(userID string) []model.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.conversationsByUser[userID]
	out := make([]model.Conversation, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		if c := s.conversations[ids[i]]; c != nil {
			out = append(out, c.Clone())
		}
	}
	sortStableDesc(out, func(c model.Conversation) int64 { return c.UpdatedAt.UnixNano() })
	return out
}

// UpdateConversation merges a patch over the stored conversation.
func (s *Store) UpdateConversation(id string, p model.ConversationPatch) (model.Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateConversationLocked(id, p)
}

func (s *Store) updateConversationLocked(id string, p model.ConversationPatch) (model.Conversation, bool) {
	c, ok := s.conversations[id]
	if !ok {
		return model.Conversation{}, false
	}
	updated := c.Clone()
	p.Apply(&updated)
	updated.ID = id
	s.conversations[id] = &updated
	return updated.Clone(), true
}

// CreateMessage inserts a message and refreshes the parent conversation's
// cached aggregates (LastMessage, UpdatedAt, UnreadCount) atomically with it.
func (s *Store) CreateMessage(m model.Message) model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := m.Clone()
	s.messages[clone.ID] = &clone
	s.msgOrder = append(s.msgOrder, clone.ID)

	if conv, ok := s.conversations[clone.ConversationID]; ok {
		updated := conv.Clone()
		last := clone.Clone()
		updated.LastMessage = &last
		updated.UpdatedAt = clone.CreatedAt
		updated.UnreadCount++
		s.conversations[clone.ConversationID] = &updated
	}
	return clone.Clone()
}

// MessagesByConversation returns a conversation's messages, oldest first.
func (s *Store) MessagesByConversation(conversationID string) []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Message
	for _, id := range s.msgOrder {
		if m := s.messages[id]; m != nil && m.ConversationID == conversationID {
			out = append(out, m.Clone())
		}
	}
	sortStableAsc(out, func(m model.Message) int64 { return m.CreatedAt.UnixNano() })
	return out
}

// MarkConversationRead flips IsRead on every message in the conversation not
// sent by readerID and zeroes the conversation's unread count.
func (s *Store) MarkConversationRead(conversationID, readerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.msgOrder {
		m := s.messages[id]
		if m == nil || m.ConversationID != conversationID {
			continue
		}
		if m.SenderID != readerID && !m.IsRead {
			updated := m.Clone()
			updated.IsRead = true
			s.messages[id] = &updated
		}
	}
	if conv, ok := s.conversations[conversationID]; ok {
		updated := conv.Clone()
		updated.UnreadCount = 0
		s.conversations[conversationID] = &updated
	}
}

// CreateNotification inserts a notification.
func (s *Store) CreateNotification(n model.Notification) model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := n
	s.notifications[clone.ID] = &clone
	s.notifOrder = append(s.notifOrder, clone.ID)
	return clone
}

// NotificationsByUser returns a user's notifications, newest first.
func (s *Store) NotificationsByUser(userID string) []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Notification
	for i := len(s.notifOrder) - 1; i >= 0; i-- {
		n := s.notifications[s.notifOrder[i]]
		if n != nil && n.UserID == userID {
			out = append(out, *n)
		}
	}
	sortStableDesc(out, func(n model.Notification) int64 { return n.CreatedAt.UnixNano() })
	return out
}

// MarkNotificationRead flips a notification's read flag on.
func (s *Store) MarkNotificationRead(id string) (model.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[id]
	if !ok {
		return model.Notification{}, false
	}
	updated := *n
	updated.IsRead = true
	s.notifications[id] = &updated
	return updated, true
}

// MarkAllNotificationsRead flips every notification for userID to read.
func (s *Store) MarkAllNotificationsRead(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.notifOrder {
		n := s.notifications[id]
		if n != nil && n.UserID == userID && !n.IsRead {
			updated := *n
			updated.IsRead = true
			s.notifications[id] = &updated
		}
	}
}

// PutAnalytics stores a snapshot keyed by creator and period.
func (s *Store) PutAnalytics(a model.CreatorAnalytics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := a.Clone()
	s.analytics[analyticsKey(clone.UserID, clone.Period)] = &clone
}

// Analytics returns the snapshot for a creator and period.
func (s *Store) Analytics(creatorID string, period model.Period) (model.CreatorAnalytics, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.analytics[analyticsKey(creatorID, period)]
	if !ok {
		return model.CreatorAnalytics{}, false
	}
	return a.Clone(), true
}

func analyticsKey(creatorID string, period model.Period) string {
	return creatorID + "/" + string(period)
}
