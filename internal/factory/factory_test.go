package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabanahq/sandbox/internal/model"
	"github.com/cabanahq/sandbox/internal/random"
)

func TestNewUserDeterministic(t *testing.T) {
	a := NewUser(random.New(42), nil)
	b := NewUser(random.New(42), nil)
	assert.Equal(t, a, b)
}

func TestNewUserOverridesWin(t *testing.T) {
	g := random.New(1)
	u := NewUser(g, &model.UserPatch{
		ID:          model.Ptr("user-fixed"),
		Email:       model.Ptr("fixed@cabana.demo"),
		Role:        model.Ptr(model.RoleCreator),
		DisplayName: model.Ptr("Fixed Name"),
	})

	assert.Equal(t, "user-fixed", u.ID)
	assert.Equal(t, "fixed@cabana.demo", u.Email)
	assert.Equal(t, model.RoleCreator, u.Role)
	assert.Equal(t, "Fixed Name", u.DisplayName)
}

func TestNewUserRoleConditionalFields(t *testing.T) {
	g := random.New(2)

	creator := NewUser(g, &model.UserPatch{Role: model.Ptr(model.RoleCreator)})
	assert.True(t, creator.IsCreator)
	assert.Greater(t, creator.SubscriberCount, 0)
	assert.Greater(t, creator.TotalEarnings, 0.0)
	assert.Nil(t, creator.Subscriptions)

	fan := NewUser(g, &model.UserPatch{Role: model.Ptr(model.RoleFan)})
	assert.False(t, fan.IsCreator)
	assert.Zero(t, fan.SubscriberCount)
	assert.NotNil(t, fan.Subscriptions)
	assert.Empty(t, fan.Subscriptions)
}

func TestNewPostOverrides(t *testing.T) {
	g := random.New(3)
	post := NewPost(g, "creator-1", &model.PostPatch{
		Visibility: model.Ptr(model.VisibilityIconOnly),
		IsPinned:   model.Ptr(true),
		Content:    model.Ptr("pinned exclusive"),
	})

	assert.Equal(t, "creator-1", post.CreatorID)
	assert.Equal(t, model.VisibilityIconOnly, post.Visibility)
	assert.True(t, post.IsPinned)
	assert.Equal(t, "pinned exclusive", post.Content)
	assert.NotEmpty(t, post.ID)
}

func TestNewTransactionAmountRanges(t *testing.T) {
	g := random.New(4)
	for i := 0; i < 200; i++ {
		tx := NewTransaction(g, "fan", "creator", nil)
		switch tx.Type {
		case model.TxSubscription:
			assert.Equal(t, 9.99, tx.Amount)
		case model.TxTip:
			assert.GreaterOrEqual(t, tx.Amount, 5.0)
			assert.LessOrEqual(t, tx.Amount, 500.0)
		case model.TxPayout:
			assert.GreaterOrEqual(t, tx.Amount, 100.0)
			assert.LessOrEqual(t, tx.Amount, 5000.0)
		default:
			t.Fatalf("unexpected transaction type %q", tx.Type)
		}
		assert.Equal(t, "USD", tx.Currency)
	}
}

func TestNewSubscriptionEndDateOnlyWhenCancelled(t *testing.T) {
	g := random.New(5)
	for i := 0; i < 100; i++ {
		sub := NewSubscription(g, "fan", "creator", nil)
		assert.Equal(t, PriceForTier(sub.Tier), sub.Amount)
		if sub.Status == model.SubCancelled {
			require.NotNil(t, sub.EndDate)
			assert.False(t, sub.AutoRenew)
		} else {
			assert.Nil(t, sub.EndDate)
		}
	}
}

func TestPriceForTier(t *testing.T) {
	assert.Equal(t, 9.99, PriceForTier(model.TierCreator))
	assert.Equal(t, 29.99, PriceForTier(model.TierIcon))
	assert.Equal(t, 9.99, PriceForTier(model.TierFree), "free falls back to the base paid price")
}

func TestNotificationTitle(t *testing.T) {
	tests := []struct {
		in   model.NotificationType
		want string
	}{
		{model.NotifNewSubscriber, "New Subscriber"},
		{model.NotifNewTip, "New Tip"},
		{model.NotifNewComment, "New Comment"},
		{model.NotifNewLike, "New Like"},
		{model.NotifNewMessage, "New Message"},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, NotificationTitle(tt.in))
		})
	}
}

func TestNewAnalyticsSeries(t *testing.T) {
	g := random.New(6)
	a := NewAnalytics(g, "creator-1", model.PeriodWeek)

	assert.Equal(t, "creator-1", a.UserID)
	assert.Equal(t, model.PeriodWeek, a.Period)
	require.Len(t, a.RevenueByDay, 7)
	require.Len(t, a.SubscribersByDay, 7)
	require.Len(t, a.ViewsByDay, 7)

	assert.InDelta(t, a.TotalRevenue*0.7, a.SubscriptionRevenue, 1e-9)
	assert.InDelta(t, a.TotalRevenue*0.3, a.TipRevenue, 1e-9)

	// Daily points end at the generator epoch and step one day at a time.
	last := a.RevenueByDay[len(a.RevenueByDay)-1].Date
	assert.Equal(t, g.Epoch().Format("2006-01-02"), last)
	for i := 1; i < len(a.RevenueByDay); i++ {
		assert.Greater(t, a.RevenueByDay[i].Date, a.RevenueByDay[i-1].Date)
	}
}

func TestNewUsersRole(t *testing.T) {
	g := random.New(7)
	users := NewUsers(g, 5, model.RoleCreator)
	require.Len(t, users, 5)
	for _, u := range users {
		assert.Equal(t, model.RoleCreator, u.Role)
	}
}
