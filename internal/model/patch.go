package model

import "time"

// Patch types implement partial updates: nil fields are left alone, set
// fields always win. Factories apply them after generating a full entity
// (override-wins contract) and the store applies them on update, so a merge
// is always explicit field assignment rather than reflection.

// UserPatch is a partial update for a User.
type UserPatch struct {
	ID               *string
	Email            *string
	Username         *string
	DisplayName      *string
	Avatar           *string
	Bio              *string
	Role             *Role
	SubscriptionTier *Tier
	IsVerified       *bool
	IsCreator        *bool
	SubscriberCount  *int
	TotalEarnings    *float64
	FollowingCount   *int
	Subscriptions    *[]string
	CreatedAt        *time.Time
}

// Apply merges the patch into u.
func (p *UserPatch) Apply(u *User) {
	if p == nil {
		return
	}
	if p.ID != nil {
		u.ID = *p.ID
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.DisplayName != nil {
		u.DisplayName = *p.DisplayName
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.SubscriptionTier != nil {
		u.SubscriptionTier = *p.SubscriptionTier
	}
	if p.IsVerified != nil {
		u.IsVerified = *p.IsVerified
	}
	if p.IsCreator != nil {
		u.IsCreator = *p.IsCreator
	}
	if p.SubscriberCount != nil {
		u.SubscriberCount = *p.SubscriberCount
	}
	if p.TotalEarnings != nil {
		u.TotalEarnings = *p.TotalEarnings
	}
	if p.FollowingCount != nil {
		u.FollowingCount = *p.FollowingCount
	}
	if p.Subscriptions != nil {
		u.Subscriptions = append([]string(nil), (*p.Subscriptions)...)
	}
	if p.CreatedAt != nil {
		u.CreatedAt = *p.CreatedAt
	}
}

// PostPatch is a partial update for a Post.
type PostPatch struct {
	ID           *string
	Content      *string
	Media        *[]Media
	Visibility   *Visibility
	LikeCount    *int
	CommentCount *int
	IsLiked      *bool
	IsPinned     *bool
	CreatedAt    *time.Time
	UpdatedAt    *time.Time
}

// Apply merges the patch into po.
func (p *PostPatch) Apply(po *Post) {
	if p == nil {
		return
	}
	if p.ID != nil {
		po.ID = *p.ID
	}
	if p.Content != nil {
		po.Content = *p.Content
	}
	if p.Media != nil {
		po.Media = append([]Media(nil), (*p.Media)...)
	}
	if p.Visibility != nil {
		po.Visibility = *p.Visibility
	}
	if p.LikeCount != nil {
		po.LikeCount = *p.LikeCount
	}
	if p.CommentCount != nil {
		po.CommentCount = *p.CommentCount
	}
	if p.IsLiked != nil {
		po.IsLiked = *p.IsLiked
	}
	if p.IsPinned != nil {
		po.IsPinned = *p.IsPinned
	}
	if p.CreatedAt != nil {
		po.CreatedAt = *p.CreatedAt
	}
	if p.UpdatedAt != nil {
		po.UpdatedAt = *p.UpdatedAt
	}
}

// CommentPatch is a partial update for a Comment.
type CommentPatch struct {
	ID        *string
	Content   *string
	LikeCount *int
	IsLiked   *bool
	CreatedAt *time.Time
}

// Apply merges the patch into c.
func (p *CommentPatch) Apply(c *Comment) {
	if p == nil {
		return
	}
	if p.ID != nil {
		c.ID = *p.ID
	}
	if p.Content != nil {
		c.Content = *p.Content
	}
	if p.LikeCount != nil {
		c.LikeCount = *p.LikeCount
	}
	if p.IsLiked != nil {
		c.IsLiked = *p.IsLiked
	}
	if p.CreatedAt != nil {
		c.CreatedAt = *p.CreatedAt
	}
}

// TransactionPatch is a partial update for a Transaction.
type TransactionPatch struct {
	ID          *string
	Type        *TransactionType
	Amount      *float64
	Status      *TransactionStatus
	Description *string
	CreatedAt   *time.Time
}

// Apply merges the patch into t.
func (p *TransactionPatch) Apply(t *Transaction) {
	if p == nil {
		return
	}
	if p.ID != nil {
		t.ID = *p.ID
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.CreatedAt != nil {
		t.CreatedAt = *p.CreatedAt
	}
}

// SubscriptionPatch is a partial update for a Subscription.
type SubscriptionPatch struct {
	ID        *string
	Tier      *Tier
	Amount    *float64
	Status    *SubscriptionStatus
	StartDate *time.Time
	EndDate   *time.Time
	AutoRenew *bool
}

// Apply merges the patch into s.
func (p *SubscriptionPatch) Apply(s *Subscription) {
	if p == nil {
		return
	}
	if p.ID != nil {
		s.ID = *p.ID
	}
	if p.Tier != nil {
		s.Tier = *p.Tier
	}
	if p.Amount != nil {
		s.Amount = *p.Amount
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.StartDate != nil {
		s.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		end := *p.EndDate
		s.EndDate = &end
	}
	if p.AutoRenew != nil {
		s.AutoRenew = *p.AutoRenew
	}
}

// MessagePatch is a partial update for a Message.
type MessagePatch struct {
	ID        *string
	Content   *string
	Media     *[]Media
	IsRead    *bool
	CreatedAt *time.Time
}

// Apply merges the patch into m.
func (p *MessagePatch) Apply(m *Message) {
	if p == nil {
		return
	}
	if p.ID != nil {
		m.ID = *p.ID
	}
	if p.Content != nil {
		m.Content = *p.Content
	}
	if p.Media != nil {
		m.Media = append([]Media(nil), (*p.Media)...)
	}
	if p.IsRead != nil {
		m.IsRead = *p.IsRead
	}
	if p.CreatedAt != nil {
		m.CreatedAt = *p.CreatedAt
	}
}

// ConversationPatch is a partial update for a Conversation.
type ConversationPatch struct {
	ID          *string
	LastMessage *Message
	UnreadCount *int
	UpdatedAt   *time.Time
}

// Apply merges the patch into c.
func (p *ConversationPatch) Apply(c *Conversation) {
	if p == nil {
		return
	}
	if p.ID != nil {
		c.ID = *p.ID
	}
	if p.LastMessage != nil {
		last := p.LastMessage.Clone()
		c.LastMessage = &last
	}
	if p.UnreadCount != nil {
		c.UnreadCount = *p.UnreadCount
	}
	if p.UpdatedAt != nil {
		c.UpdatedAt = *p.UpdatedAt
	}
}

// NotificationPatch is a partial update for a Notification.
type NotificationPatch struct {
	ID        *string
	Type      *NotificationType
	Title     *string
	Message   *string
	IsRead    *bool
	CreatedAt *time.Time
}

// Apply merges the patch into n.
func (p *NotificationPatch) Apply(n *Notification) {
	if p == nil {
		return
	}
	if p.ID != nil {
		n.ID = *p.ID
	}
	if p.Type != nil {
		n.Type = *p.Type
	}
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Message != nil {
		n.Message = *p.Message
	}
	if p.IsRead != nil {
		n.IsRead = *p.IsRead
	}
	if p.CreatedAt != nil {
		n.CreatedAt = *p.CreatedAt
	}
}

// Ptr returns a pointer to v. Convenience for building patches inline.
func Ptr[T any](v T) *T { return &v }
