package store

import (
	"github.com/cabanahq/sandbox/internal/model"
)

// CreateSubscription inserts a subscription, indexes it by creator and fan,
// appends the creator to the fan's subscriptions list, and increments the
// creator's subscriber count — all under one lock acquisition.
func (s *Store) CreateSubscription(sub model.Subscription) model.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := sub.Clone()
	s.subscriptions[clone.ID] = &clone
	s.subOrder = append(s.subOrder, clone.ID)
	s.subscriptionsByCreator[clone.CreatorID] = append(s.subscriptionsByCreator[clone.CreatorID], clone.ID)
	s.subscriptionsByFan[clone.FanID] = append(s.subscriptionsByFan[clone.FanID], clone.ID)

	if fan, ok := s.users[clone.FanID]; ok {
		updated := fan.Clone()
		updated.Subscriptions = append(updated.Subscriptions, clone.CreatorID)
		s.users[clone.FanID] = &updated
	}
	if creator, ok := s.users[clone.CreatorID]; ok {
		updated := creator.Clone()
		updated.SubscriberCount++
		s.users[clone.CreatorID] = &updated
	}
	return clone.Clone()
}

// Subscription returns a copy of the subscription with the given ID.
func (s *Store) Subscription(id string) (model.Subscription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.subscriptions[id]
	if !ok {
		return model.Subscription{}, false
	}
	return sub.Clone(), true
}

// SubscriptionsByCreator returns a creator's subscriptions in creation order.
func (s *Store) SubscriptionsByCreator(creatorID string) []model.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectSubs(s.subscriptionsByCreator[creatorID])
}

// SubscriptionsByFan returns a fan's subscriptions in creation order.
func (s *Store) SubscriptionsByFan(fanID string) []model.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectSubs(s.subscriptionsByFan[fanID])
}

func (s *Store) collectSubs(ids []string) []model.Subscription {
	out := make([]model.Subscription, 0, len(ids))
	for _, id := range ids {
		if sub := s.subscriptions[id]; sub != nil {
			out = append(out, sub.Clone())
		}
	}
	return out
}

// IsSubscribed reports whether fanID has an active subscription to creatorID.
func (s *Store) IsSubscribed(fanID, creatorID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.subscriptionsByFan[fanID] {
		sub := s.subscriptions[id]
		if sub != nil && sub.CreatorID == creatorID && sub.Status == model.SubActive {
			return true
		}
	}
	return false
}

// CancelSubscription moves a subscription to cancelled, removes the creator
// from the fan's subscriptions list, and decrements the creator's subscriber
// count (never below zero). The record itself is retained; cancelled is
// terminal, so cancelling twice is a no-op returning the stored record.
func (s *Store) CancelSubscription(id string) (model.Subscription, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subscriptions[id]
	if !ok {
		return model.Subscription{}, false
	}
	if sub.Status == model.SubCancelled {
		return sub.Clone(), true
	}

	updated := sub.Clone()
	updated.Status = model.SubCancelled
	s.subscriptions[id] = &updated

	if fan, ok := s.users[updated.FanID]; ok {
		f := fan.Clone()
		f.Subscriptions = removeID(f.Subscriptions, updated.CreatorID)
		s.users[updated.FanID] = &f
	}
	if creator, ok := s.users[updated.CreatorID]; ok && creator.SubscriberCount > 0 {
		c := creator.Clone()
		c.SubscriberCount--
		s.users[updated.CreatorID] = &c
	}
	return updated.Clone(), true
}

// CreateTransaction inserts a transaction. Completed transactions credit the
// recipient's TotalEarnings in the same critical section.
func (s *Store) CreateTransaction(t model.Transaction) model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := t
	s.transactions[clone.ID] = &clone
	s.txOrder = append(s.txOrder, clone.ID)

	if clone.Status == model.TxCompleted && clone.ToUserID != "" {
		if recipient, ok := s.users[clone.ToUserID]; ok {
			updated := recipient.Clone()
			updated.TotalEarnings += clone.Amount
			s.users[clone.ToUserID] = &updated
		}
	}
	return clone
}

// TransactionsByUser returns transactions where userID is sender or
// recipient, newest first.
func (s *Store) TransactionsByUser(userID string) []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Transaction
	for i := len(s.txOrder) - 1; i >= 0; i-- {
		t := s.transactions[s.txOrder[i]]
		if t != nil && (t.FromUserID == userID || t.ToUserID == userID) {
			out = append(out, *t)
		}
	}
	sortTxDesc(out)
	return out
}

// TransactionsByCreator returns transactions paid to creatorID, newest first.
func (s *Store) TransactionsByCreator(creatorID string) []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Transaction
	for i := len(s.txOrder) - 1; i >= 0; i-- {
		t := s.transactions[s.txOrder[i]]
		if t != nil && t.ToUserID == creatorID {
			out = append(out, *t)
		}
	}
	sortTxDesc(out)
	return out
}

func sortTxDesc(txs []model.Transaction) {
	// Reverse-insertion input plus a stable sort keeps newer records first
	// among equal timestamps.
	sortStableDesc(txs, func(t model.Transaction) int64 { return t.CreatedAt.UnixNano() })
}
