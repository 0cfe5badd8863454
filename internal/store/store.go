// Package store holds all sandbox entities in memory.
//
// The Store owns every entity exclusively: callers receive copies and must
// route mutations back through store operations, because creates and deletes
// maintain secondary indexes and denormalized aggregates (comment counts,
// subscriber counts, conversation unread counts) alongside the primary maps.
// Primary map and index updates for one operation happen under a single lock
// acquisition, so no reader ever observes one without the other. That
// single-writer atomicity is a design invariant, not an accident of the
// current locking.
//
// Insertion order is tracked explicitly per entity type; Go map iteration
// order must never leak into results, or seeded runs stop being reproducible.
package store

import (
	"sync"

	"github.com/cabanahq/sandbox/internal/model"
)

// Store is the in-memory database.
type Store struct {
	mu sync.RWMutex

	users         map[string]*model.User
	posts         map[string]*model.Post
	comments      map[string]*model.Comment
	transactions  map[string]*model.Transaction
	subscriptions map[string]*model.Subscription
	messages      map[string]*model.Message
	conversations map[string]*model.Conversation
	notifications map[string]*model.Notification
	analytics     map[string]*model.CreatorAnalytics // keyed by creatorID + "/" + period

	userOrder  []string
	postOrder  []string
	commOrder  []string
	txOrder    []string
	subOrder   []string
	msgOrder   []string
	convOrder  []string
	notifOrder []string

	postsByCreator         map[string][]string
	commentsByPost         map[string][]string
	conversationsByUser    map[string][]string
	subscriptionsByCreator map[string][]string
	subscriptionsByFan     map[string][]string
}

// New returns an empty store.
func New() *Store {
	s := &Store{}
	s.reset()
	return s
}

// Reset discards all entities and indexes.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Store) reset() {
	s.users = make(map[string]*model.User)
	s.posts = make(map[string]*model.Post)
	s.comments = make(map[string]*model.Comment)
	s.transactions = make(map[string]*model.Transaction)
	s.subscriptions = make(map[string]*model.Subscription)
	s.messages = make(map[string]*model.Message)
	s.conversations = make(map[string]*model.Conversation)
	s.notifications = make(map[string]*model.Notification)
	s.analytics = make(map[string]*model.CreatorAnalytics)

	s.userOrder = nil
	s.postOrder = nil
	s.commOrder = nil
	s.txOrder = nil
	s.subOrder = nil
	s.msgOrder = nil
	s.convOrder = nil
	s.notifOrder = nil

	s.postsByCreator = make(map[string][]string)
	s.commentsByPost = make(map[string][]string)
	s.conversationsByUser = make(map[string][]string)
	s.subscriptionsByCreator = make(map[string][]string)
	s.subscriptionsByFan = make(map[string][]string)
}

// removeID deletes the first occurrences of id from ids.
func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// CreateUser inserts a user.
func (s *Store) CreateUser(u model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := u.Clone()
	s.users[clone.ID] = &clone
	s.userOrder = append(s.userOrder, clone.ID)
	return clone.Clone()
}

// User returns a copy of the user with the given ID.
func (s *Store) User(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, false
	}
	return u.Clone(), true
}

// UserByEmail scans users in insertion order for a matching email.
func (s *Store) UserByEmail(email string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.userOrder {
		if u := s.users[id]; u != nil && u.Email == email {
			return u.Clone(), true
		}
	}
	return model.User{}, false
}

// UserByUsername scans users in insertion order for a matching username.
func (s *Store) UserByUsername(username string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.userOrder {
		if u := s.users[id]; u != nil && u.Username == username {
			return u.Clone(), true
		}
	}
	return model.User{}, false
}

// Users returns all users in insertion order.
func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		if u := s.users[id]; u != nil {
			out = append(out, u.Clone())
		}
	}
	return out
}

// Creators returns all users with the creator role, in insertion order.
func (s *Store) Creators() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.User
	for _, id := range s.userOrder {
		if u := s.users[id]; u != nil && u.Role == model.RoleCreator {
			out = append(out, u.Clone())
		}
	}
	return out
}

// UpdateUser merges a patch over the stored user. The ID is never changed.
func (s *Store) UpdateUser(id string, p model.UserPatch) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateUserLocked(id, p)
}

func (s *Store) updateUserLocked(id string, p model.UserPatch) (model.User, bool) {
	u, ok := s.users[id]
	if !ok {
		return model.User{}, false
	}
	updated := u.Clone()
	p.Apply(&updated)
	updated.ID = id
	s.users[id] = &updated
	return updated.Clone(), true
}

// DeleteUser removes a user. Associated content is left in place; the demo
// never deletes personas with live relationships.
func (s *Store) DeleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)
	s.userOrder = removeID(s.userOrder, id)
	return true
}

// CountUsers returns the number of stored users.
func (s *Store) CountUsers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
