package api

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabanahq/sandbox/internal/fixtures"
	"github.com/cabanahq/sandbox/internal/model"
	"github.com/cabanahq/sandbox/internal/store"
)

// newTestAPI returns an API over freshly seeded demo data with the
// simulation gate wide open: no delay, no injected errors.
func newTestAPI(t *testing.T) (*API, *store.Store) {
	t.Helper()
	st := store.New()
	fixtures.Seed(st, fixtures.DefaultSeed)
	cfg := Config{
		EnableNetworkDelay: false,
		EnableRandomErrors: false,
		ErrorRate:          0.1,
	}
	return New(st, cfg, zerolog.Nop(), "test-secret"), st
}

func TestLogin(t *testing.T) {
	a, _ := newTestAPI(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantOK   bool
	}{
		{"demo domain any password", "emma@cabana.demo", "whatever", true},
		{"demo domain demo password", "sophia@cabana.demo", fixtures.DemoPassword, true},
		{"unknown email", "nobody@example.com", fixtures.DemoPassword, false},
		{"empty email", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := a.Login(ctx, tt.email, tt.password)
			assert.Equal(t, tt.wantOK, resp.Success)
			if tt.wantOK {
				assert.Equal(t, tt.email, resp.Data.User.Email)
				assert.NotEmpty(t, resp.Data.Token)
			} else {
				assert.Equal(t, "Invalid credentials", resp.Error)
			}
		})
	}
}

func TestLoginNonDemoDomainNeedsDemoPassword(t *testing.T) {
	a, st := newTestAPI(t)
	ctx := context.Background()

	// Extra seeded users live on example.com addresses.
	var email string
	for _, u := range st.Users() {
		if u.Email != "" && u.Role == model.RoleFan && u.ID != fixtures.FanEmma.UserID {
			email = u.Email
			break
		}
	}
	require.NotEmpty(t, email)

	assert.False(t, a.Login(ctx, email, "wrong").Success)
	assert.True(t, a.Login(ctx, email, fixtures.DemoPassword).Success)
}

func TestSignup(t *testing.T) {
	a, _ := newTestAPI(t)
	ctx := context.Background()

	resp := a.Signup(ctx, SignupInput{
		Email:    "new@example.com",
		Username: "newbie",
		Role:     model.RoleFan,
	})
	require.True(t, resp.Success, resp.Error)
	assert.Equal(t, "new@example.com", resp.Data.User.Email)
	assert.Equal(t, "newbie", resp.Data.User.DisplayName, "display name defaults to the username")
	assert.Zero(t, resp.Data.User.FollowingCount)
	assert.NotEmpty(t, resp.Data.Token)

	dupEmail := a.Signup(ctx, SignupInput{Email: "new@example.com", Username: "other"})
	assert.False(t, dupEmail.Success)
	assert.Equal(t, "Email already registered", dupEmail.Error)

	dupName := a.Signup(ctx, SignupInput{Email: "other@example.com", Username: "newbie"})
	assert.False(t, dupName.Success)
	assert.Equal(t, "Username already taken", dupName.Error)

	missing := a.Signup(ctx, SignupInput{})
	assert.False(t, missing.Success)
}

func TestTokenRoundTrip(t *testing.T) {
	a, _ := newTestAPI(t)

	token, err := a.GenerateToken("user-123")
	require.NoError(t, err)

	userID, err := a.UserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)

	_, err = a.UserIDFromToken("not-a-token")
	assert.Error(t, err)

	other := New(store.New(), DefaultConfig(), zerolog.Nop(), "different-secret")
	_, err = other.UserIDFromToken(token)
	assert.Error(t, err, "tokens signed with another secret must be rejected")
}

func TestCurrentUser(t *testing.T) {
	a, _ := newTestAPI(t)
	ctx := context.Background()

	login := a.Login(ctx, "emma@cabana.demo", "")
	require.True(t, login.Success)

	me := a.CurrentUser(ctx, login.Data.Token)
	require.True(t, me.Success)
	assert.Equal(t, fixtures.FanEmma.UserID, me.Data.ID)

	bad := a.CurrentUser(ctx, "garbage")
	assert.False(t, bad.Success)
}

func TestSubscribe(t *testing.T) {
	a, st := newTestAPI(t)
	ctx := context.Background()

	before, _ := st.User(CreatorSophiaID())
	txBefore := len(st.TransactionsByCreator(CreatorSophiaID()))
	notifBefore := len(st.NotificationsByUser(CreatorSophiaID()))

	resp := a.Subscribe(ctx, fixtures.FanEmma.UserID, CreatorSophiaID(), model.TierIcon)
	require.True(t, resp.Success, resp.Error)
	assert.Equal(t, model.SubActive, resp.Data.Status)
	assert.InDelta(t, 29.99, resp.Data.Amount, 1e-9)
	assert.True(t, resp.Data.AutoRenew)

	after, _ := st.User(CreatorSophiaID())
	assert.Equal(t, before.SubscriberCount+1, after.SubscriberCount)
	assert.InDelta(t, before.TotalEarnings+29.99, after.TotalEarnings, 1e-9)

	txs := st.TransactionsByCreator(CreatorSophiaID())
	require.Len(t, txs, txBefore+1)
	assert.Equal(t, model.TxSubscription, txs[0].Type)
	assert.InDelta(t, 29.99, txs[0].Amount, 1e-9)

	notifs := st.NotificationsByUser(CreatorSophiaID())
	require.Len(t, notifs, notifBefore+1)
	assert.Equal(t, model.NotifNewSubscriber, notifs[0].Type)

	again := a.Subscribe(ctx, fixtures.FanEmma.UserID, CreatorSophiaID(), model.TierCreator)
	assert.False(t, again.Success)
	assert.Equal(t, "Already subscribed", again.Error)
}

// CreatorSophiaID keeps the test bodies short.
func CreatorSophiaID() string { return fixtures.CreatorSophia.UserID }

func TestSubscribeValidation(t *testing.T) {
	a, _ := newTestAPI(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		fanID     string
		creatorID string
		tier      model.Tier
		wantErr   string
	}{
		{"already subscribed", fixtures.FanEmma.UserID, fixtures.CreatorMarcus.UserID, model.TierCreator, "Already subscribed"},
		{"unknown creator", fixtures.FanEmma.UserID, "ghost", model.TierCreator, "Creator not found"},
		{"target is not a creator", fixtures.FanEmma.UserID, fixtures.AdminAlex.UserID, model.TierCreator, "Creator not found"},
		{"unknown fan", "ghost", CreatorSophiaID(), model.TierCreator, "User not found"},
		{"invalid tier", fixtures.FanEmma.UserID, CreatorSophiaID(), model.TierFree, "Invalid tier"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := a.Subscribe(ctx, tt.fanID, tt.creatorID, tt.tier)
			require.False(t, resp.Success)
			assert.Equal(t, tt.wantErr, resp.Error)
		})
	}
}

func TestCancelSubscription(t *testing.T) {
	a, st := newTestAPI(t)
	ctx := context.Background()

	subs := st.SubscriptionsByFan(fixtures.FanEmma.UserID)
	require.NotEmpty(t, subs)
	subID := subs[0].ID

	denied := a.CancelSubscription(ctx, "someone-else", subID)
	assert.False(t, denied.Success)
	assert.Equal(t, "Unauthorized", denied.Error)

	resp := a.CancelSubscription(ctx, fixtures.FanEmma.UserID, subID)
	require.True(t, resp.Success)
	assert.Equal(t, model.SubCancelled, resp.Data.Status)
	assert.False(t, st.IsSubscribed(fixtures.FanEmma.UserID, fixtures.CreatorMarcus.UserID))

	missing := a.CancelSubscription(ctx, fixtures.FanEmma.UserID, "ghost")
	assert.False(t, missing.Success)
	assert.Equal(t, "Subscription not found", missing.Error)
}

func TestSendTip(t *testing.T) {
	a, st := newTestAPI(t)
	ctx := context.Background()

	before, _ := st.User(CreatorSophiaID())
	resp := a.SendTip(ctx, fixtures.FanEmma.UserID, CreatorSophiaID(), 50, "Great event!")
	require.True(t, resp.Success, resp.Error)
	assert.Equal(t, model.TxTip, resp.Data.Type)
	assert.Equal(t, "Great event!", resp.Data.Description)

	after, _ := st.User(CreatorSophiaID())
	assert.InDelta(t, before.TotalEarnings+50, after.TotalEarnings, 1e-9)

	notifs := st.NotificationsByUser(CreatorSophiaID())
	require.NotEmpty(t, notifs)
	assert.Equal(t, model.NotifNewTip, notifs[0].Type)

	invalid := a.SendTip(ctx, fixtures.FanEmma.UserID, CreatorSophiaID(), 0, "")
	assert.False(t, invalid.Success)
	assert.Equal(t, "Invalid amount", invalid.Error)
}

func TestCreatePostStartsAtZero(t *testing.T) {
	a, st := newTestAPI(t)
	ctx := context.Background()

	resp := a.CreatePost(ctx, CreatorSophiaID(), PostInput{
		Content:    "fresh post",
		Visibility: model.VisibilitySubscribers,
	})
	require.True(t, resp.Success, resp.Error)
	assert.Zero(t, resp.Data.LikeCount)
	assert.Zero(t, resp.Data.CommentCount)
	assert.False(t, resp.Data.IsPinned)
	require.NotNil(t, resp.Data.Creator)
	assert.Equal(t, CreatorSophiaID(), resp.Data.Creator.ID)

	assert.Len(t, st.PostsByCreator(CreatorSophiaID()), 9)

	fanResp := a.CreatePost(ctx, fixtures.FanEmma.UserID, PostInput{Content: "nope"})
	assert.False(t, fanResp.Success)
	assert.Equal(t, "Only creators can publish posts", fanResp.Error)
}

func TestDeletePostOwnership(t *testing.T) {
	a, st := newTestAPI(t)
	ctx := context.Background()

	posts := st.PostsByCreator(CreatorSophiaID())
	require.NotEmpty(t, posts)
	postID := posts[0].ID

	denied := a.DeletePost(ctx, fixtures.FanEmma.UserID, postID)
	assert.False(t, denied.Success)
	assert.Equal(t, "Unauthorized", denied.Error)

	resp := a.DeletePost(ctx, CreatorSophiaID(), postID)
	require.True(t, resp.Success)
	_, found := st.Post(postID)
	assert.False(t, found)
}

func TestFeedPagination(t *testing.T) {
	a, _ := newTestAPI(t)
	ctx := context.Background()

	first := a.Feed(ctx, fixtures.FanEmma.UserID, 1, 5)
	require.True(t, first.Success)
	assert.Len(t, first.Data.Data, 5)
	assert.Equal(t, 1, first.Data.Page)
	assert.True(t, first.Data.HasMore)
	total := first.Data.Total
	assert.Greater(t, total, 5)

	// Walk every page; the union must cover the total exactly once.
	seen := map[string]bool{}
	page := 1
	for {
		resp := a.Feed(ctx, fixtures.FanEmma.UserID, page, 5)
		require.True(t, resp.Success)
		for _, p := range resp.Data.Data {
			assert.False(t, seen[p.ID], "post %s appeared twice", p.ID)
			seen[p.ID] = true
		}
		if !resp.Data.HasMore {
			break
		}
		page++
	}
	assert.Len(t, seen, total)

	ghost := a.Feed(ctx, "ghost", 1, 5)
	assert.False(t, ghost.Success)
}

func TestStartConversationReusesExisting(t *testing.T) {
	a, _ := newTestAPI(t)
	ctx := context.Background()

	participants := []string{fixtures.FanEmma.UserID, fixtures.AdminAlex.UserID}
	first := a.StartConversation(ctx, participants)
	require.True(t, first.Success, first.Error)

	second := a.StartConversation(ctx, []string{fixtures.AdminAlex.UserID, fixtures.FanEmma.UserID})
	require.True(t, second.Success)
	assert.Equal(t, first.Data.ID, second.Data.ID, "participant order must not matter")

	existing := a.StartConversation(ctx, []string{fixtures.FanEmma.UserID, CreatorSophiaID()})
	require.True(t, existing.Success)
	assert.Equal(t, "conv-emma-sophia", existing.Data.ID)
}

func TestSendMessageChecksConversation(t *testing.T) {
	a, st := newTestAPI(t)
	ctx := context.Background()

	missing := a.SendMessage(ctx, "ghost-conv", fixtures.FanEmma.UserID, "hello?")
	assert.False(t, missing.Success)
	assert.Equal(t, "Conversation not found", missing.Error)

	outsider := a.SendMessage(ctx, "conv-emma-sophia", fixtures.AdminAlex.UserID, "let me in")
	assert.False(t, outsider.Success)
	assert.Equal(t, "Unauthorized", outsider.Error)

	resp := a.SendMessage(ctx, "conv-emma-sophia", fixtures.FanEmma.UserID, "See you there!")
	require.True(t, resp.Success)
	assert.False(t, resp.Data.IsRead)

	conv, _ := st.Conversation("conv-emma-sophia")
	require.NotNil(t, conv.LastMessage)
	assert.Equal(t, resp.Data.ID, conv.LastMessage.ID)
}

func TestAnalytics(t *testing.T) {
	a, _ := newTestAPI(t)
	ctx := context.Background()

	resp := a.CreatorAnalytics(ctx, CreatorSophiaID(), model.PeriodMonth)
	require.True(t, resp.Success)
	assert.Equal(t, model.PeriodMonth, resp.Data.Period)
	assert.Len(t, resp.Data.RevenueByDay, 30)

	missing := a.CreatorAnalytics(ctx, CreatorSophiaID(), model.PeriodWeek)
	assert.False(t, missing.Success)
	assert.Equal(t, "Analytics not found", missing.Error)

	invalid := a.CreatorAnalytics(ctx, CreatorSophiaID(), model.Period("quarter"))
	assert.False(t, invalid.Success)
	assert.Equal(t, "Invalid period", invalid.Error)
}

func TestErrorInjectionLeavesStoreUntouched(t *testing.T) {
	a, st := newTestAPI(t)
	ctx := context.Background()

	before, err := json.Marshal(st.Export())
	require.NoError(t, err)

	a.SetConfig(ConfigPatch{
		EnableRandomErrors: ptr(true),
		ErrorRate:          ptr(1.0),
	})

	resp := a.Subscribe(ctx, fixtures.FanEmma.UserID, CreatorSophiaID(), model.TierIcon)
	require.False(t, resp.Success)
	assert.Contains(t, transientErrors, resp.Error)

	tip := a.SendTip(ctx, fixtures.FanEmma.UserID, CreatorSophiaID(), 50, "")
	require.False(t, tip.Success)
	assert.Contains(t, transientErrors, tip.Error)

	post := a.CreatePost(ctx, CreatorSophiaID(), PostInput{Content: "never lands"})
	require.False(t, post.Success)

	after, err := json.Marshal(st.Export())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after), "injected failures must not touch the store")
}

func TestConfigPatch(t *testing.T) {
	a, _ := newTestAPI(t)

	updated := a.SetConfig(ConfigPatch{MinDelayMs: ptr(10), MaxDelayMs: ptr(20)})
	assert.Equal(t, 10, updated.MinDelayMs)
	assert.Equal(t, 20, updated.MaxDelayMs)
	assert.False(t, updated.EnableNetworkDelay, "untouched fields keep their values")

	assert.Equal(t, updated, a.Config())
}

func ptr[T any](v T) *T { return &v }
