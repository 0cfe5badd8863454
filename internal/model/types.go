// Package model defines the entity types held by the sandbox store.
//
// Entities are plain values: the store hands out copies and applies updates
// by building a new value merged over the old one (see the patch types in
// patch.go). JSON field names match what the Cabana web client consumes.
package model

import "time"

// Role is a user's platform role.
type Role string

// Platform roles.
const (
	RoleCreator Role = "creator"
	RoleFan     Role = "fan"
	RoleAdmin   Role = "admin"
)

// Tier is a subscription level controlling content visibility.
type Tier string

// Subscription tiers.
const (
	TierFree    Tier = "free"
	TierCreator Tier = "creator"
	TierIcon    Tier = "icon"
)

// Visibility controls which audience can see a post.
type Visibility string

// Post visibility levels.
const (
	VisibilityPublic      Visibility = "public"
	VisibilitySubscribers Visibility = "subscribers"
	VisibilityIconOnly    Visibility = "icon-only"
)

// MediaType is the kind of media attached to a post or message.
type MediaType string

// Media types.
const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaAudio MediaType = "audio"
)

// TransactionType is the kind of value transfer.
type TransactionType string

// Transaction types.
const (
	TxSubscription TransactionType = "subscription"
	TxTip          TransactionType = "tip"
	TxPayout       TransactionType = "payout"
)

// TransactionStatus is the settlement state of a transaction.
type TransactionStatus string

// Transaction statuses.
const (
	TxPending   TransactionStatus = "pending"
	TxCompleted TransactionStatus = "completed"
)

// SubscriptionStatus is the lifecycle state of a subscription.
// The only transition is active -> cancelled; cancelled is terminal.
type SubscriptionStatus string

// Subscription statuses.
const (
	SubActive    SubscriptionStatus = "active"
	SubCancelled SubscriptionStatus = "cancelled"
)

// NotificationType classifies a notification.
type NotificationType string

// Notification types.
const (
	NotifNewSubscriber NotificationType = "new_subscriber"
	NotifNewTip        NotificationType = "new_tip"
	NotifNewComment    NotificationType = "new_comment"
	NotifNewLike       NotificationType = "new_like"
	NotifNewMessage    NotificationType = "new_message"
)

// Period is an analytics reporting window.
type Period string

// Analytics periods.
const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Days returns the number of daily data points in the period.
func (p Period) Days() int {
	switch p {
	case PeriodDay:
		return 1
	case PeriodWeek:
		return 7
	case PeriodYear:
		return 365
	default:
		return 30
	}
}

// Valid reports whether p is a known period.
func (p Period) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// User is a platform account. SubscriberCount and TotalEarnings are
// meaningful only for creators; FollowingCount and Subscriptions only for
// fans. Subscriptions holds creator IDs the fan has access to.
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Username         string    `json:"username"`
	DisplayName      string    `json:"displayName"`
	Avatar           string    `json:"avatar"`
	Bio              string    `json:"bio"`
	Role             Role      `json:"role"`
	SubscriptionTier Tier      `json:"subscriptionTier"`
	IsVerified       bool      `json:"isVerified"`
	IsCreator        bool      `json:"isCreator,omitempty"`
	SubscriberCount  int       `json:"subscriberCount,omitempty"`
	TotalEarnings    float64   `json:"totalEarnings,omitempty"`
	FollowingCount   int       `json:"followingCount,omitempty"`
	Subscriptions    []string  `json:"subscriptions,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Clone returns a deep copy of the user.
func (u User) Clone() User {
	c := u
	if u.Subscriptions != nil {
		c.Subscriptions = append([]string(nil), u.Subscriptions...)
	}
	return c
}

// Media is an attachment on a post or message.
type Media struct {
	ID        string    `json:"id"`
	Type      MediaType `json:"type"`
	URL       string    `json:"url"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	Width     int       `json:"width,omitempty"`
	Height    int       `json:"height,omitempty"`
	Duration  int       `json:"duration,omitempty"`
}

// Post is a piece of creator content. It carries only the creator's ID;
// read models join the creator at query time so the user record cannot
// drift from a stored snapshot.
type Post struct {
	ID           string     `json:"id"`
	CreatorID    string     `json:"creatorId"`
	Content      string     `json:"content"`
	Media        []Media    `json:"media"`
	Visibility   Visibility `json:"visibility"`
	LikeCount    int        `json:"likeCount"`
	CommentCount int        `json:"commentCount"`
	IsLiked      bool       `json:"isLiked"`
	IsPinned     bool       `json:"isPinned"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Clone returns a deep copy of the post.
func (p Post) Clone() Post {
	c := p
	if p.Media != nil {
		c.Media = append([]Media(nil), p.Media...)
	}
	return c
}

// Comment belongs to one post and one author.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	LikeCount int       `json:"likeCount"`
	IsLiked   bool      `json:"isLiked"`
	CreatedAt time.Time `json:"createdAt"`
}

// Transaction is a directed value transfer between two users.
type Transaction struct {
	ID          string            `json:"id"`
	Type        TransactionType   `json:"type"`
	Amount      float64           `json:"amount"`
	Currency    string            `json:"currency"`
	Status      TransactionStatus `json:"status"`
	FromUserID  string            `json:"fromUserId"`
	ToUserID    string            `json:"toUserId"`
	Description string            `json:"description"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// Subscription is a fan->creator edge with a tier and monthly amount.
type Subscription struct {
	ID        string             `json:"id"`
	FanID     string             `json:"fanId"`
	CreatorID string             `json:"creatorId"`
	Tier      Tier               `json:"tier"`
	Amount    float64            `json:"amount"`
	Status    SubscriptionStatus `json:"status"`
	StartDate time.Time          `json:"startDate"`
	EndDate   *time.Time         `json:"endDate,omitempty"`
	AutoRenew bool               `json:"autoRenew"`
}

// Clone returns a deep copy of the subscription.
func (s Subscription) Clone() Subscription {
	c := s
	if s.EndDate != nil {
		end := *s.EndDate
		c.EndDate = &end
	}
	return c
}

// Message belongs to a conversation and a sender.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	Content        string    `json:"content"`
	Media          []Media   `json:"media,omitempty"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Clone returns a deep copy of the message.
func (m Message) Clone() Message {
	c := m
	if m.Media != nil {
		c.Media = append([]Media(nil), m.Media...)
	}
	return c
}

// Conversation is a set of participants plus cached message aggregates.
// LastMessage and UnreadCount are denormalized and maintained by the store
// whenever a message is created or the conversation is marked read.
type Conversation struct {
	ID             string    `json:"id"`
	ParticipantIDs []string  `json:"participantIds"`
	LastMessage    *Message  `json:"lastMessage,omitempty"`
	UnreadCount    int       `json:"unreadCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Clone returns a deep copy of the conversation.
func (c Conversation) Clone() Conversation {
	out := c
	if c.ParticipantIDs != nil {
		out.ParticipantIDs = append([]string(nil), c.ParticipantIDs...)
	}
	if c.LastMessage != nil {
		last := c.LastMessage.Clone()
		out.LastMessage = &last
	}
	return out
}

// Notification belongs to one recipient.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}

// AmountPoint is one day of a revenue series.
type AmountPoint struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// CountPoint is one day of a count series.
type CountPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// CreatorAnalytics is a precomputed snapshot keyed by creator and period.
// It is generated, not derived from the other entities.
type CreatorAnalytics struct {
	UserID              string        `json:"userId"`
	Period              Period        `json:"period"`
	TotalRevenue        float64       `json:"totalRevenue"`
	SubscriptionRevenue float64       `json:"subscriptionRevenue"`
	TipRevenue          float64       `json:"tipRevenue"`
	RevenueChange       float64       `json:"revenueChange"`
	TotalSubscribers    int           `json:"totalSubscribers"`
	NewSubscribers      int           `json:"newSubscribers"`
	SubscriberChange    float64       `json:"subscriberChange"`
	TotalViews          int           `json:"totalViews"`
	TotalLikes          int           `json:"totalLikes"`
	TotalComments       int           `json:"totalComments"`
	EngagementRate      float64       `json:"engagementRate"`
	TotalPosts          int           `json:"totalPosts"`
	PostsThisPeriod     int           `json:"postsThisPeriod"`
	RevenueByDay        []AmountPoint `json:"revenueByDay"`
	SubscribersByDay    []CountPoint  `json:"subscribersByDay"`
	ViewsByDay          []CountPoint  `json:"viewsByDay"`
}

// Clone returns a deep copy of the analytics snapshot.
func (a CreatorAnalytics) Clone() CreatorAnalytics {
	c := a
	c.RevenueByDay = append([]AmountPoint(nil), a.RevenueByDay...)
	c.SubscribersByDay = append([]CountPoint(nil), a.SubscribersByDay...)
	c.ViewsByDay = append([]CountPoint(nil), a.ViewsByDay...)
	return c
}
