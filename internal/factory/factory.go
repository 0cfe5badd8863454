// Package factory constructs plausible demo entities from a seeded
// generator. Every factory takes the linkage IDs the entity needs plus an
// optional patch; patched fields always win over generated ones. Numeric
// ranges mirror the reference demo scenario and are realism choices, not
// correctness constraints.
package factory

import (
	"fmt"
	"strings"

	"github.com/cabanahq/sandbox/internal/model"
	"github.com/cabanahq/sandbox/internal/random"
)

var (
	firstNames = []string{
		"Alex", "Jordan", "Taylor", "Casey", "Morgan", "Riley", "Avery",
		"Quinn", "Sage", "River", "Phoenix", "Skyler", "Blake", "Cameron",
		"Dakota", "Emery", "Finley", "Harper", "Indigo", "Jules",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
		"Davis", "Rodriguez", "Martinez", "Lopez", "Wilson", "Anderson",
		"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Chen",
	}
	bioLines = []string{
		"Living for golden hour and good company.",
		"Curating the best of city nightlife, one venue at a time.",
		"Photographer, dreamer, occasional DJ.",
		"VIP experiences and behind-the-scenes access.",
		"Here for the music, staying for the people.",
		"Luxury travel and rooftop views.",
		"Event host and full-time vibe curator.",
		"Collecting sunsets and guest lists.",
	}
	postLines = []string{
		"Last night was one for the books. Thank you all for showing up!",
		"Sneak peek from today's shoot. Full set dropping this week.",
		"Which venue should I feature next? Drop your picks below.",
		"New collection is live. This one is special.",
		"Behind the scenes from the rooftop session.",
		"Golden hour hits different from the penthouse.",
		"Big announcement coming Friday. Stay tuned.",
		"Throwback to the launch party. We have to do that again.",
	}
	commentLines = []string{
		"Amazing content as always!",
		"This is incredible.",
		"Obsessed with this.",
		"Take my money already.",
		"Best creator on the platform, hands down.",
		"The vibes are immaculate.",
		"Can't wait for the next one.",
	}
	messageLines = []string{
		"Hey! Loved your latest post.",
		"Thank you so much for the support!",
		"Will you be hosting another event soon?",
		"Just subscribed, so excited for the content!",
		"That last drop was incredible.",
		"Appreciate you being here!",
	}
)

var notificationMessages = map[model.NotificationType]string{
	model.NotifNewSubscriber: "You have a new subscriber!",
	model.NotifNewTip:        "You received a tip!",
	model.NotifNewComment:    "Someone commented on your post",
	model.NotifNewLike:       "Someone liked your post",
	model.NotifNewMessage:    "You have a new message",
}

// NotificationTitle renders the human title for a notification type, e.g.
// "new_subscriber" -> "New Subscriber".
func NotificationTitle(t model.NotificationType) string {
	parts := strings.Split(string(t), "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// AvatarURL returns a deterministic placeholder avatar for a username.
func AvatarURL(seed string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + seed
}

// NewMedia generates a media attachment of the given type.
func NewMedia(g *random.Generator, t model.MediaType) model.Media {
	id := g.UUID()
	switch t {
	case model.MediaVideo:
		return model.Media{
			ID:        id,
			Type:      model.MediaVideo,
			URL:       fmt.Sprintf("https://media.cabana.demo/video/%s.mp4", g.Alphanumeric(8)),
			Thumbnail: fmt.Sprintf("https://media.cabana.demo/thumb/%s.jpg", g.Alphanumeric(8)),
			Width:     1280,
			Height:    720,
			Duration:  g.IntBetween(10, 300),
		}
	case model.MediaAudio:
		return model.Media{
			ID:       id,
			Type:     model.MediaAudio,
			URL:      fmt.Sprintf("https://media.cabana.demo/audio/%s.mp3", g.Alphanumeric(8)),
			Duration: g.IntBetween(30, 600),
		}
	default:
		width := g.IntBetween(800, 1920)
		height := g.IntBetween(600, 1080)
		return model.Media{
			ID:        id,
			Type:      model.MediaImage,
			URL:       fmt.Sprintf("https://media.cabana.demo/img/%s.jpg", g.Alphanumeric(8)),
			Thumbnail: fmt.Sprintf("https://media.cabana.demo/thumb/%s.jpg", g.Alphanumeric(8)),
			Width:     width,
			Height:    height,
		}
	}
}

// NewUser generates a user. Role-conditional fields follow the generated or
// overridden role: creators get subscriber/earnings figures, everyone else
// gets a following count and an empty subscriptions list.
func NewUser(g *random.Generator, p *model.UserPatch) model.User {
	role := random.Pick(g, []model.Role{model.RoleCreator, model.RoleFan, model.RoleAdmin})
	if p != nil && p.Role != nil {
		role = *p.Role
	}
	first := random.Pick(g, firstNames)
	last := random.Pick(g, lastNames)
	username := strings.ToLower(first + "_" + last + g.Alphanumeric(2))

	u := model.User{
		ID:               g.UUID(),
		Email:            strings.ToLower(first+"."+last) + g.Alphanumeric(2) + "@example.com",
		Username:         username,
		DisplayName:      first + " " + last,
		Avatar:           AvatarURL(username),
		Bio:              random.Pick(g, bioLines),
		Role:             role,
		SubscriptionTier: random.Pick(g, []model.Tier{model.TierFree, model.TierCreator, model.TierIcon}),
		IsVerified:       g.Bool(0.3),
		CreatedAt:        g.PastTime(730),
	}
	if role == model.RoleCreator {
		u.IsCreator = true
		u.SubscriberCount = g.IntBetween(10, 50000)
		u.TotalEarnings = g.FloatBetween(100, 500000, 2)
	} else {
		u.FollowingCount = g.IntBetween(0, 200)
		u.Subscriptions = []string{}
	}
	p.Apply(&u)
	return u
}

// NewPost generates a post owned by creatorID.
func NewPost(g *random.Generator, creatorID string, p *model.PostPatch) model.Post {
	var media []model.Media
	if g.Bool(0.7) {
		count := g.IntBetween(1, 4)
		for i := 0; i < count; i++ {
			// Favor images over video 3:1.
			t := random.Pick(g, []model.MediaType{
				model.MediaImage, model.MediaImage, model.MediaImage, model.MediaVideo,
			})
			media = append(media, NewMedia(g, t))
		}
	}
	post := model.Post{
		ID:           g.UUID(),
		CreatorID:    creatorID,
		Content:      random.Pick(g, postLines),
		Media:        media,
		Visibility:   random.Pick(g, []model.Visibility{model.VisibilityPublic, model.VisibilitySubscribers, model.VisibilityIconOnly}),
		LikeCount:    g.IntBetween(0, 10000),
		CommentCount: g.IntBetween(0, 500),
		IsLiked:      g.Bool(0.2),
		IsPinned:     g.Bool(0.05),
		CreatedAt:    g.PastTime(30),
		UpdatedAt:    g.PastTime(30),
	}
	p.Apply(&post)
	return post
}

// NewComment generates a comment on postID authored by userID.
func NewComment(g *random.Generator, postID, userID string, p *model.CommentPatch) model.Comment {
	c := model.Comment{
		ID:        g.UUID(),
		PostID:    postID,
		UserID:    userID,
		Content:   random.Pick(g, commentLines),
		LikeCount: g.IntBetween(0, 500),
		IsLiked:   g.Bool(0.15),
		CreatedAt: g.PastTime(7),
	}
	p.Apply(&c)
	return c
}

// NewTransaction generates a transfer from fromID to toID. The generated
// type drives the amount range: subscriptions are the flat monthly price,
// tips run 5..500, payouts 100..5000.
func NewTransaction(g *random.Generator, fromID, toID string, p *model.TransactionPatch) model.Transaction {
	txType := random.Pick(g, []model.TransactionType{model.TxSubscription, model.TxTip, model.TxPayout})
	// Completed 3:1 over pending.
	status := random.Pick(g, []model.TransactionStatus{
		model.TxCompleted, model.TxCompleted, model.TxCompleted, model.TxPending,
	})

	amount := 9.99
	description := "Monthly subscription"
	switch txType {
	case model.TxTip:
		amount = g.FloatBetween(5, 500, 2)
		description = "Tip from fan"
	case model.TxPayout:
		amount = g.FloatBetween(100, 5000, 2)
		description = "Payout to bank account"
	}

	t := model.Transaction{
		ID:          g.UUID(),
		Type:        txType,
		Amount:      amount,
		Currency:    "USD",
		Status:      status,
		FromUserID:  fromID,
		ToUserID:    toID,
		Description: description,
		CreatedAt:   g.PastTime(60),
	}
	p.Apply(&t)
	return t
}

// Monthly subscription prices per tier.
const (
	TierPriceCreator = 9.99
	TierPriceIcon    = 29.99
)

// PriceForTier returns the monthly price for a paid tier.
func PriceForTier(t model.Tier) float64 {
	if t == model.TierIcon {
		return TierPriceIcon
	}
	return TierPriceCreator
}

// NewSubscription generates a fan->creator subscription edge.
func NewSubscription(g *random.Generator, fanID, creatorID string, p *model.SubscriptionPatch) model.Subscription {
	tier := random.Pick(g, []model.Tier{model.TierCreator, model.TierIcon})
	// Active 3:1 over cancelled.
	status := random.Pick(g, []model.SubscriptionStatus{
		model.SubActive, model.SubActive, model.SubActive, model.SubCancelled,
	})

	s := model.Subscription{
		ID:        g.UUID(),
		FanID:     fanID,
		CreatorID: creatorID,
		Tier:      tier,
		Amount:    PriceForTier(tier),
		Status:    status,
		StartDate: g.PastTime(365),
		AutoRenew: status == model.SubActive && g.Bool(0.8),
	}
	if status == model.SubCancelled {
		end := g.FutureTime(180)
		s.EndDate = &end
	}
	p.Apply(&s)
	return s
}

// NewMessage generates a message in conversationID sent by senderID.
func NewMessage(g *random.Generator, conversationID, senderID string, p *model.MessagePatch) model.Message {
	var media []model.Media
	if g.Bool(0.15) {
		media = []model.Media{NewMedia(g, model.MediaImage)}
	}
	m := model.Message{
		ID:             g.UUID(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        random.Pick(g, messageLines),
		Media:          media,
		IsRead:         g.Bool(0.6),
		CreatedAt:      g.PastTime(7),
	}
	p.Apply(&m)
	return m
}

// NewConversation generates a conversation between the given participants.
// LastMessage starts empty; the store maintains it as messages arrive.
func NewConversation(g *random.Generator, participantIDs []string, p *model.ConversationPatch) model.Conversation {
	c := model.Conversation{
		ID:             g.UUID(),
		ParticipantIDs: append([]string(nil), participantIDs...),
		UnreadCount:    g.IntBetween(0, 10),
		CreatedAt:      g.PastTime(365),
		UpdatedAt:      g.PastTime(7),
	}
	p.Apply(&c)
	return c
}

// NewNotification generates a notification for userID.
func NewNotification(g *random.Generator, userID string, p *model.NotificationPatch) model.Notification {
	t := random.Pick(g, []model.NotificationType{
		model.NotifNewSubscriber, model.NotifNewTip, model.NotifNewComment,
		model.NotifNewLike, model.NotifNewMessage,
	})
	n := model.Notification{
		ID:        g.UUID(),
		UserID:    userID,
		Type:      t,
		Title:     NotificationTitle(t),
		Message:   notificationMessages[t],
		IsRead:    g.Bool(0.4),
		CreatedAt: g.PastTime(14),
	}
	p.Apply(&n)
	return n
}

// NewAnalytics generates a snapshot for creatorID over the period. Revenue
// splits 70/30 between subscriptions and tips; daily series are anchored to
// the generator epoch so snapshots are reproducible.
func NewAnalytics(g *random.Generator, creatorID string, period model.Period) model.CreatorAnalytics {
	total := g.FloatBetween(1000, 100000, 2)
	days := period.Days()

	a := model.CreatorAnalytics{
		UserID:              creatorID,
		Period:              period,
		TotalRevenue:        total,
		SubscriptionRevenue: total * 0.7,
		TipRevenue:          total * 0.3,
		RevenueChange:       g.FloatBetween(-20, 50, 2),
		TotalSubscribers:    g.IntBetween(50, 10000),
		NewSubscribers:      g.IntBetween(5, 500),
		SubscriberChange:    g.FloatBetween(-10, 30, 2),
		TotalViews:          g.IntBetween(10000, 500000),
		TotalLikes:          g.IntBetween(5000, 50000),
		TotalComments:       g.IntBetween(500, 10000),
		EngagementRate:      g.FloatBetween(1, 15, 2),
		TotalPosts:          g.IntBetween(10, 500),
		PostsThisPeriod:     g.IntBetween(1, 50),
	}

	for i := days - 1; i >= 0; i-- {
		date := g.Epoch().AddDate(0, 0, -i).Format("2006-01-02")
		a.RevenueByDay = append(a.RevenueByDay, model.AmountPoint{
			Date: date, Amount: g.FloatBetween(50, 5000, 2),
		})
		a.SubscribersByDay = append(a.SubscribersByDay, model.CountPoint{
			Date: date, Count: g.IntBetween(10, 1000),
		})
		a.ViewsByDay = append(a.ViewsByDay, model.CountPoint{
			Date: date, Count: g.IntBetween(100, 10000),
		})
	}
	return a
}

// NewUsers generates count users, all with the given role when set.
func NewUsers(g *random.Generator, count int, role model.Role) []model.User {
	users := make([]model.User, 0, count)
	for i := 0; i < count; i++ {
		var p *model.UserPatch
		if role != "" {
			p = &model.UserPatch{Role: model.Ptr(role)}
		}
		users = append(users, NewUser(g, p))
	}
	return users
}

// NewPosts generates count posts for creatorID.
func NewPosts(g *random.Generator, count int, creatorID string) []model.Post {
	posts := make([]model.Post, 0, count)
	for i := 0; i < count; i++ {
		posts = append(posts, NewPost(g, creatorID, nil))
	}
	return posts
}
