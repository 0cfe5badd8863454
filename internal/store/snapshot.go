package store

import (
	"sort"

	"github.com/cabanahq/sandbox/internal/model"
)

// Snapshot is a full serializable dump of the store. Entity slices are in
// insertion order and index maps use sorted keys, so two stores seeded the
// same way marshal to identical JSON.
type Snapshot struct {
	Users         []model.User             `json:"users"`
	Posts         []model.Post             `json:"posts"`
	Comments      []model.Comment          `json:"comments"`
	Transactions  []model.Transaction      `json:"transactions"`
	Subscriptions []model.Subscription     `json:"subscriptions"`
	Messages      []model.Message          `json:"messages"`
	Conversations []model.Conversation     `json:"conversations"`
	Notifications []model.Notification     `json:"notifications"`
	Analytics     []model.CreatorAnalytics `json:"analytics"`
}

// Export builds a snapshot of the entire store.
func (s *Store) Export() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{}
	for _, id := range s.userOrder {
		if u := s.users[id]; u != nil {
			snap.Users = append(snap.Users, u.Clone())
		}
	}
	for _, id := range s.postOrder {
		if p := s.posts[id]; p != nil {
			snap.Posts = append(snap.Posts, p.Clone())
		}
	}
	for _, id := range s.commOrder {
		if c := s.comments[id]; c != nil {
			snap.Comments = append(snap.Comments, *c)
		}
	}
	for _, id := range s.txOrder {
		if t := s.transactions[id]; t != nil {
			snap.Transactions = append(snap.Transactions, *t)
		}
	}
	for _, id := range s.subOrder {
		if sub := s.subscriptions[id]; sub != nil {
			snap.Subscriptions = append(snap.Subscriptions, sub.Clone())
		}
	}
	for _, id := range s.msgOrder {
		if m := s.messages[id]; m != nil {
			snap.Messages = append(snap.Messages, m.Clone())
		}
	}
	for _, id := range s.convOrder {
		if c := s.conversations[id]; c != nil {
			snap.Conversations = append(snap.Conversations, c.Clone())
		}
	}
	for _, id := range s.notifOrder {
		if n := s.notifications[id]; n != nil {
			snap.Notifications = append(snap.Notifications, *n)
		}
	}

	keys := make([]string, 0, len(s.analytics))
	for k := range s.analytics {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		snap.Analytics = append(snap.Analytics, s.analytics[k].Clone())
	}
	return snap
}

// Import replaces the store contents with the snapshot. Aggregates and
// denormalized fields are taken from the snapshot as-is; the create-time
// side effects (comment counts, subscriber counts, conversation aggregates)
// must not run again, so this rebuilds maps and indexes directly.
func (s *Store) Import(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()

	for _, u := range snap.Users {
		clone := u.Clone()
		s.users[clone.ID] = &clone
		s.userOrder = append(s.userOrder, clone.ID)
	}
	for _, p := range snap.Posts {
		clone := p.Clone()
		s.posts[clone.ID] = &clone
		s.postOrder = append(s.postOrder, clone.ID)
		// Prepend to match the creator-index order CreatePost builds.
		s.postsByCreator[clone.CreatorID] = append([]string{clone.ID}, s.postsByCreator[clone.CreatorID]...)
	}
	for _, c := range snap.Comments {
		clone := c
		s.comments[clone.ID] = &clone
		s.commOrder = append(s.commOrder, clone.ID)
		s.commentsByPost[clone.PostID] = append(s.commentsByPost[clone.PostID], clone.ID)
	}
	for _, t := range snap.Transactions {
		clone := t
		s.transactions[clone.ID] = &clone
		s.txOrder = append(s.txOrder, clone.ID)
	}
	for _, sub := range snap.Subscriptions {
		clone := sub.Clone()
		s.subscriptions[clone.ID] = &clone
		s.subOrder = append(s.subOrder, clone.ID)
		s.subscriptionsByCreator[clone.CreatorID] = append(s.subscriptionsByCreator[clone.CreatorID], clone.ID)
		s.subscriptionsByFan[clone.FanID] = append(s.subscriptionsByFan[clone.FanID], clone.ID)
	}
	for _, m := range snap.Messages {
		clone := m.Clone()
		s.messages[clone.ID] = &clone
		s.msgOrder = append(s.msgOrder, clone.ID)
	}
	for _, c := range snap.Conversations {
		clone := c.Clone()
		s.conversations[clone.ID] = &clone
		s.convOrder = append(s.convOrder, clone.ID)
		for _, pid := range clone.ParticipantIDs {
			s.conversationsByUser[pid] = append(s.conversationsByUser[pid], clone.ID)
		}
	}
	for _, n := range snap.Notifications {
		clone := n
		s.notifications[clone.ID] = &clone
		s.notifOrder = append(s.notifOrder, clone.ID)
	}
	for _, a := range snap.Analytics {
		clone := a.Clone()
		s.analytics[analyticsKey(clone.UserID, clone.Period)] = &clone
	}
}
