package fixtures

import (
	"github.com/cabanahq/sandbox/internal/factory"
	"github.com/cabanahq/sandbox/internal/model"
	"github.com/cabanahq/sandbox/internal/random"
	"github.com/cabanahq/sandbox/internal/store"
)

// Counts for the randomized supporting cast.
const (
	extraCreatorCount = 5
	extraFanCount     = 10
)

// Seed wipes the store and rebuilds the demo scenario from the given seed.
// It is destructive and idempotent: every entity after the four personas is
// drawn from a fresh generator, so the same seed always produces the same
// object graph. Callers must not interleave other factory work with a fresh
// generator mid-seed, or reproducibility breaks.
func Seed(st *store.Store, seed int64) {
	st.Reset()
	g := random.New(seed)

	s := &seeder{st: st, g: g}
	s.seedPersonas()
	s.seedExtras()
	s.seedPosts()
	s.seedSubscriptions()
	s.seedTransactions()
	s.seedConversations()
	s.seedNotifications()
	s.seedAnalytics()
}

type seeder struct {
	st *store.Store
	g  *random.Generator

	sophia model.User
	marcus model.User
	emma   model.User
	alex   model.User

	extraCreators []model.User
	extraFans     []model.User
}

// creators returns every creator, personas first.
func (s *seeder) creators() []model.User {
	return append([]model.User{s.sophia, s.marcus}, s.extraCreators...)
}

func (s *seeder) seedPersonas() {
	s.sophia = s.st.CreateUser(factory.NewUser(s.g, &model.UserPatch{
		ID:               model.Ptr(CreatorSophia.UserID),
		Email:            model.Ptr("sophia@cabana.demo"),
		Username:         model.Ptr("sophia_luxury"),
		DisplayName:      model.Ptr("Sophia Laurent"),
		Avatar:           model.Ptr(CreatorSophia.Avatar),
		Bio:              model.Ptr("Luxury lifestyle & nightlife curator | VIP event host | Cabana Icon tier creator"),
		Role:             model.Ptr(model.RoleCreator),
		SubscriptionTier: model.Ptr(model.TierIcon),
		IsVerified:       model.Ptr(true),
		IsCreator:        model.Ptr(true),
		SubscriberCount:  model.Ptr(2547),
		TotalEarnings:    model.Ptr(45320.50),
	}))

	s.marcus = s.st.CreateUser(factory.NewUser(s.g, &model.UserPatch{
		ID:               model.Ptr(CreatorMarcus.UserID),
		Email:            model.Ptr("marcus@cabana.demo"),
		Username:         model.Ptr("marcus_nights"),
		DisplayName:      model.Ptr("Marcus Chen"),
		Avatar:           model.Ptr(CreatorMarcus.Avatar),
		Bio:              model.Ptr("Nightlife photographer | Event host | Capturing the magic of LA nights"),
		Role:             model.Ptr(model.RoleCreator),
		SubscriptionTier: model.Ptr(model.TierCreator),
		IsVerified:       model.Ptr(true),
		IsCreator:        model.Ptr(true),
		SubscriberCount:  model.Ptr(892),
		TotalEarnings:    model.Ptr(12450.25),
	}))

	// Sophia sits on Emma's subscriptions list from the start so gated
	// content is visible in her feed, but no active subscription record is
	// seeded for the pair: the walkthrough subscribes Emma to Sophia live.
	s.emma = s.st.CreateUser(factory.NewUser(s.g, &model.UserPatch{
		ID:               model.Ptr(FanEmma.UserID),
		Email:            model.Ptr("emma@cabana.demo"),
		Username:         model.Ptr("emma_vip"),
		DisplayName:      model.Ptr("Emma Rodriguez"),
		Avatar:           model.Ptr(FanEmma.Avatar),
		Bio:              model.Ptr("Living my best life | VIP enthusiast | Cabana member"),
		Role:             model.Ptr(model.RoleFan),
		SubscriptionTier: model.Ptr(model.TierCreator),
		IsVerified:       model.Ptr(false),
		FollowingCount:   model.Ptr(12),
		Subscriptions:    model.Ptr([]string{CreatorSophia.UserID}),
	}))

	s.alex = s.st.CreateUser(factory.NewUser(s.g, &model.UserPatch{
		ID:               model.Ptr(AdminAlex.UserID),
		Email:            model.Ptr("alex@cabana.demo"),
		Username:         model.Ptr("admin_alex"),
		DisplayName:      model.Ptr("Alex Kim"),
		Avatar:           model.Ptr(AdminAlex.Avatar),
		Bio:              model.Ptr("Cabana Platform Administrator"),
		Role:             model.Ptr(model.RoleAdmin),
		SubscriptionTier: model.Ptr(model.TierIcon),
		IsVerified:       model.Ptr(true),
	}))
}

func (s *seeder) seedExtras() {
	for _, u := range factory.NewUsers(s.g, extraCreatorCount, model.RoleCreator) {
		s.extraCreators = append(s.extraCreators, s.st.CreateUser(u))
	}
	for _, u := range factory.NewUsers(s.g, extraFanCount, model.RoleFan) {
		s.extraFans = append(s.extraFans, s.st.CreateUser(u))
	}
}

func (s *seeder) seedPosts() {
	// Sophia: 8 posts; the first is a pinned icon-only exclusive, the second
	// is subscriber-gated.
	for idx := 0; idx < 8; idx++ {
		var patch *model.PostPatch
		switch idx {
		case 0:
			patch = &model.PostPatch{
				Visibility: model.Ptr(model.VisibilityIconOnly),
				IsPinned:   model.Ptr(true),
				Content:    model.Ptr("ICON MEMBERS ONLY: Behind the scenes at last night's exclusive rooftop event! Thank you all for the incredible support"),
			}
		case 1:
			patch = &model.PostPatch{
				Visibility: model.Ptr(model.VisibilitySubscribers),
				Content:    model.Ptr("Subscriber exclusive: My top 5 luxury venues in LA this season! Which one should I feature next?"),
			}
		}
		post := s.st.CreatePost(factory.NewPost(s.g, s.sophia.ID, patch))

		if idx < 3 {
			commenters := append([]model.User{s.emma}, s.extraFans[:3]...)
			content := "Amazing content as always!"
			if idx == 0 {
				content = "This looks absolutely stunning!"
			}
			for _, fan := range commenters {
				s.st.CreateComment(factory.NewComment(s.g, post.ID, fan.ID, &model.CommentPatch{
					Content: model.Ptr(content),
				}))
			}
		}
	}

	// Marcus: 6 posts; the first is a pinned subscriber teaser.
	for idx := 0; idx < 6; idx++ {
		var patch *model.PostPatch
		if idx == 0 {
			patch = &model.PostPatch{
				Visibility: model.Ptr(model.VisibilitySubscribers),
				IsPinned:   model.Ptr(true),
				Content:    model.Ptr("New photo series dropping soon! Subscribers get early access to my latest nightlife collection."),
			}
		}
		post := s.st.CreatePost(factory.NewPost(s.g, s.marcus.ID, patch))

		if idx < 2 {
			for _, fan := range []model.User{s.emma, s.extraFans[0]} {
				s.st.CreateComment(factory.NewComment(s.g, post.ID, fan.ID, nil))
			}
		}
	}

	for _, creator := range s.extraCreators {
		for i := 0; i < 3; i++ {
			s.st.CreatePost(factory.NewPost(s.g, creator.ID, nil))
		}
	}
}

func (s *seeder) seedSubscriptions() {
	// Emma's one seeded record: Creator tier to Marcus.
	s.st.CreateSubscription(factory.NewSubscription(s.g, s.emma.ID, s.marcus.ID, &model.SubscriptionPatch{
		Tier:      model.Ptr(model.TierCreator),
		Amount:    model.Ptr(factory.TierPriceCreator),
		Status:    model.Ptr(model.SubActive),
		AutoRenew: model.Ptr(true),
	}))

	// Five extra fans spread across the creator roster.
	creators := s.creators()
	for i := 0; i < 5 && i < len(s.extraFans); i++ {
		s.st.CreateSubscription(factory.NewSubscription(s.g, s.extraFans[i].ID, creators[i%len(creators)].ID, &model.SubscriptionPatch{
			Status: model.Ptr(model.SubActive),
		}))
	}
}

func (s *seeder) seedTransactions() {
	s.st.CreateTransaction(factory.NewTransaction(s.g, s.emma.ID, s.sophia.ID, &model.TransactionPatch{
		Type:        model.Ptr(model.TxSubscription),
		Amount:      model.Ptr(factory.TierPriceIcon),
		Status:      model.Ptr(model.TxCompleted),
		Description: model.Ptr("Icon tier monthly subscription"),
	}))
	s.st.CreateTransaction(factory.NewTransaction(s.g, s.emma.ID, s.marcus.ID, &model.TransactionPatch{
		Type:        model.Ptr(model.TxSubscription),
		Amount:      model.Ptr(factory.TierPriceCreator),
		Status:      model.Ptr(model.TxCompleted),
		Description: model.Ptr("Creator tier monthly subscription"),
	}))
	s.st.CreateTransaction(factory.NewTransaction(s.g, s.emma.ID, s.sophia.ID, &model.TransactionPatch{
		Type:        model.Ptr(model.TxTip),
		Amount:      model.Ptr(50.00),
		Status:      model.Ptr(model.TxCompleted),
		Description: model.Ptr("Tip from fan"),
	}))
	s.st.CreateTransaction(factory.NewTransaction(s.g, s.extraFans[1].ID, s.marcus.ID, &model.TransactionPatch{
		Type:        model.Ptr(model.TxTip),
		Amount:      model.Ptr(25.00),
		Status:      model.Ptr(model.TxCompleted),
		Description: model.Ptr("Tip from fan"),
	}))

	// Earnings history for Sophia's dashboard.
	for i := 0; i < 20; i++ {
		fan := s.extraFans[i%len(s.extraFans)]
		s.st.CreateTransaction(factory.NewTransaction(s.g, fan.ID, s.sophia.ID, nil))
	}
}

func (s *seeder) seedConversations() {
	emmaSophia := s.st.CreateConversation(factory.NewConversation(s.g,
		[]string{s.emma.ID, s.sophia.ID},
		&model.ConversationPatch{ID: model.Ptr("conv-emma-sophia")},
	))
	script := []struct {
		sender  model.User
		content string
		read    bool
	}{
		{s.emma, "Hi Sophia! Loved your recent post about the rooftop event", true},
		{s.sophia, "Thank you so much Emma! So glad you enjoyed it!", true},
		{s.emma, "Will you be hosting another event soon? I'd love to attend!", false},
	}
	for _, m := range script {
		s.st.CreateMessage(factory.NewMessage(s.g, emmaSophia.ID, m.sender.ID, &model.MessagePatch{
			Content: model.Ptr(m.content),
			IsRead:  model.Ptr(m.read),
		}))
	}

	emmaMarcus := s.st.CreateConversation(factory.NewConversation(s.g,
		[]string{s.emma.ID, s.marcus.ID},
		&model.ConversationPatch{ID: model.Ptr("conv-emma-marcus")},
	))
	for _, m := range []struct {
		sender  model.User
		content string
	}{
		{s.emma, "Your photography is incredible!"},
		{s.marcus, "Thanks! I appreciate the support"},
	} {
		s.st.CreateMessage(factory.NewMessage(s.g, emmaMarcus.ID, m.sender.ID, &model.MessagePatch{
			Content: model.Ptr(m.content),
			IsRead:  model.Ptr(true),
		}))
	}
}

func (s *seeder) seedNotifications() {
	sophiaNotifs := []struct {
		t       model.NotificationType
		title   string
		message string
		read    bool
	}{
		{model.NotifNewSubscriber, "New Subscriber", "Emma Rodriguez just subscribed to your Icon tier!", false},
		{model.NotifNewTip, "New Tip", "You received a $50 tip from Emma Rodriguez!", false},
		{model.NotifNewComment, "New Comment", "Emma Rodriguez commented on your post", true},
		{model.NotifNewMessage, "New Message", "You have a new message from Emma Rodriguez", false},
	}
	for _, n := range sophiaNotifs {
		s.st.CreateNotification(factory.NewNotification(s.g, s.sophia.ID, &model.NotificationPatch{
			Type:    model.Ptr(n.t),
			Title:   model.Ptr(n.title),
			Message: model.Ptr(n.message),
			IsRead:  model.Ptr(n.read),
		}))
	}

	s.st.CreateNotification(factory.NewNotification(s.g, s.emma.ID, &model.NotificationPatch{
		Type:    model.Ptr(model.NotifNewMessage),
		Title:   model.Ptr("New Message"),
		Message: model.Ptr("Sophia Laurent replied to your message"),
		IsRead:  model.Ptr(true),
	}))
}

func (s *seeder) seedAnalytics() {
	s.st.PutAnalytics(factory.NewAnalytics(s.g, s.sophia.ID, model.PeriodMonth))
	s.st.PutAnalytics(factory.NewAnalytics(s.g, s.marcus.ID, model.PeriodMonth))
}
