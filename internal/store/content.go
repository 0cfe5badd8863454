package store

import (
	"sort"

	"github.com/cabanahq/sandbox/internal/model"
)

// sortPostsDesc orders posts newest-first. Ties on CreatedAt keep the later
// insertion first because the input is walked in reverse insertion order and
// the sort is stable.
func sortPostsDesc(posts []model.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

// CreatePost inserts a post and indexes it under its creator. The creator
// index is prepended so a creator's newest post is first even before sorting.
func (s *Store) CreatePost(p model.Post) model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := p.Clone()
	s.posts[clone.ID] = &clone
	s.postOrder = append(s.postOrder, clone.ID)
	s.postsByCreator[clone.CreatorID] = append([]string{clone.ID}, s.postsByCreator[clone.CreatorID]...)
	return clone.Clone()
}

// Post returns a copy of the post with the given ID.
func (s *Store) Post(id string) (model.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts[id]
	if !ok {
		return model.Post{}, false
	}
	return p.Clone(), true
}

// Posts returns every post in reverse-chronological order.
func (s *Store) Posts() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.postsDescLocked()
}

func (s *Store) postsDescLocked() []model.Post {
	out := make([]model.Post, 0, len(s.postOrder))
	for i := len(s.postOrder) - 1; i >= 0; i-- {
		if p := s.posts[s.postOrder[i]]; p != nil {
			out = append(out, p.Clone())
		}
	}
	sortPostsDesc(out)
	return out
}

// PostsByCreator returns a creator's posts, newest first.
func (s *Store) PostsByCreator(creatorID string) []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.postsByCreator[creatorID]
	out := make([]model.Post, 0, len(ids))
	for _, id := range ids {
		if p := s.posts[id]; p != nil {
			out = append(out, p.Clone())
		}
	}
	sortPostsDesc(out)
	return out
}

// Feed returns up to limit posts visible to userID, newest first. A post is
// visible when it is public, when its creator appears in the viewer's
// subscriptions list, or when the viewer owns it. Subscription tier is not
// consulted: any subscriber sees subscriber-gated and icon-gated posts alike.
// That looseness matches the platform's current behavior and is expected by
// its clients; tightening it here would silently hide content.
func (s *Store) Feed(userID string, limit int) []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.feedLocked(userID)
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// FeedAll returns every post visible to userID, newest first.
func (s *Store) FeedAll(userID string) []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.feedLocked(userID)
}

func (s *Store) feedLocked(userID string) []model.Post {
	viewer, ok := s.users[userID]
	if !ok {
		return []model.Post{}
	}
	subscribed := make(map[string]bool, len(viewer.Subscriptions))
	for _, id := range viewer.Subscriptions {
		subscribed[id] = true
	}

	all := s.postsDescLocked()
	out := make([]model.Post, 0, len(all))
	for _, p := range all {
		if p.Visibility == model.VisibilityPublic || subscribed[p.CreatorID] || p.CreatorID == userID {
			out = append(out, p)
		}
	}
	return out
}

// UpdatePost merges a patch over the stored post. The ID is never changed.
func (s *Store) UpdatePost(id string, p model.PostPatch) (model.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[id]
	if !ok {
		return model.Post{}, false
	}
	updated := post.Clone()
	p.Apply(&updated)
	updated.ID = id
	s.posts[id] = &updated
	return updated.Clone(), true
}

// DeletePost removes a post and its creator-index entry together.
func (s *Store) DeletePost(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[id]
	if !ok {
		return false
	}
	s.postsByCreator[post.CreatorID] = removeID(s.postsByCreator[post.CreatorID], id)
	s.postOrder = removeID(s.postOrder, id)
	delete(s.posts, id)
	return true
}

// ToggleLike flips IsLiked and moves LikeCount by one in the same direction.
// Returns false when the post does not exist.
func (s *Store) ToggleLike(postID string) (model.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[postID]
	if !ok {
		return model.Post{}, false
	}
	updated := post.Clone()
	if updated.IsLiked {
		updated.IsLiked = false
		updated.LikeCount--
	} else {
		updated.IsLiked = true
		updated.LikeCount++
	}
	s.posts[postID] = &updated
	return updated.Clone(), true
}

// CreateComment inserts a comment, indexes it under its post, and increments
// the post's CommentCount in the same critical section.
func (s *Store) CreateComment(c model.Comment) model.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := c
	s.comments[clone.ID] = &clone
	s.commOrder = append(s.commOrder, clone.ID)
	s.commentsByPost[clone.PostID] = append(s.commentsByPost[clone.PostID], clone.ID)

	if post, ok := s.posts[clone.PostID]; ok {
		updated := post.Clone()
		updated.CommentCount++
		s.posts[clone.PostID] = &updated
	}
	return clone
}

// Comment returns a copy of the comment with the given ID.
func (s *Store) Comment(id string) (model.Comment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.comments[id]
	if !ok {
		return model.Comment{}, false
	}
	return *c, true
}

// CommentsByPost returns a post's comments, oldest first.
func (s *Store) CommentsByPost(postID string) []model.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.commentsByPost[postID]
	out := make([]model.Comment, 0, len(ids))
	for _, id := range ids {
		if c := s.comments[id]; c != nil {
			out = append(out, *c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// DeleteComment removes a comment, its index entry, and decrements the
// parent post's CommentCount, never below zero.
func (s *Store) DeleteComment(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok {
		return false
	}
	s.commentsByPost[c.PostID] = removeID(s.commentsByPost[c.PostID], id)
	s.commOrder = removeID(s.commOrder, id)
	delete(s.comments, id)

	if post, ok := s.posts[c.PostID]; ok && post.CommentCount > 0 {
		updated := post.Clone()
		updated.CommentCount--
		s.posts[c.PostID] = &updated
	}
	return true
}
