package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabanahq/sandbox/internal/model"
)

func seedFanAndCreator(s *Store) {
	fan := testUser("fan1", model.RoleFan)
	fan.Subscriptions = []string{}
	s.CreateUser(fan)

	creator := testUser("cr1", model.RoleCreator)
	creator.SubscriberCount = 5
	s.CreateUser(creator)
}

func activeSub(id string) model.Subscription {
	return model.Subscription{
		ID:        id,
		FanID:     "fan1",
		CreatorID: "cr1",
		Tier:      model.TierCreator,
		Amount:    9.99,
		Status:    model.SubActive,
		StartDate: day(0),
		AutoRenew: true,
	}
}

func TestCreateSubscriptionSideEffects(t *testing.T) {
	s := New()
	seedFanAndCreator(s)

	s.CreateSubscription(activeSub("sub1"))

	fan, _ := s.User("fan1")
	assert.Equal(t, []string{"cr1"}, fan.Subscriptions)

	creator, _ := s.User("cr1")
	assert.Equal(t, 6, creator.SubscriberCount)

	assert.Len(t, s.SubscriptionsByFan("fan1"), 1)
	assert.Len(t, s.SubscriptionsByCreator("cr1"), 1)
	assert.True(t, s.IsSubscribed("fan1", "cr1"))
}

func TestCancelSubscriptionReversesSideEffects(t *testing.T) {
	s := New()
	seedFanAndCreator(s)
	s.CreateSubscription(activeSub("sub1"))

	cancelled, found := s.CancelSubscription("sub1")
	require.True(t, found)
	assert.Equal(t, model.SubCancelled, cancelled.Status)

	fan, _ := s.User("fan1")
	assert.Empty(t, fan.Subscriptions)

	creator, _ := s.User("cr1")
	assert.Equal(t, 5, creator.SubscriberCount)

	assert.False(t, s.IsSubscribed("fan1", "cr1"))

	// The record is retained, not deleted.
	assert.Len(t, s.SubscriptionsByFan("fan1"), 1)
}

func TestCancelSubscriptionTwiceIsNoOp(t *testing.T) {
	s := New()
	seedFanAndCreator(s)
	s.CreateSubscription(activeSub("sub1"))

	s.CancelSubscription("sub1")
	again, found := s.CancelSubscription("sub1")
	require.True(t, found)
	assert.Equal(t, model.SubCancelled, again.Status)

	// Side effects must not apply a second time.
	creator, _ := s.User("cr1")
	assert.Equal(t, 5, creator.SubscriberCount)

	_, found = s.CancelSubscription("missing")
	assert.False(t, found)
}

func TestIsSubscribedIgnoresCancelled(t *testing.T) {
	s := New()
	seedFanAndCreator(s)
	sub := activeSub("sub1")
	sub.Status = model.SubCancelled
	s.CreateSubscription(sub)

	assert.False(t, s.IsSubscribed("fan1", "cr1"))
}

func TestCompletedTransactionCreditsEarnings(t *testing.T) {
	s := New()
	creator := testUser("cr1", model.RoleCreator)
	creator.TotalEarnings = 100
	s.CreateUser(creator)

	s.CreateTransaction(model.Transaction{
		ID: "t1", Type: model.TxTip, Amount: 50,
		Status: model.TxCompleted, FromUserID: "fan1", ToUserID: "cr1",
		CreatedAt: day(1),
	})
	got, _ := s.User("cr1")
	assert.InDelta(t, 150, got.TotalEarnings, 1e-9)

	s.CreateTransaction(model.Transaction{
		ID: "t2", Type: model.TxTip, Amount: 25,
		Status: model.TxPending, FromUserID: "fan1", ToUserID: "cr1",
		CreatedAt: day(2),
	})
	got, _ = s.User("cr1")
	assert.InDelta(t, 150, got.TotalEarnings, 1e-9, "pending transactions must not credit earnings")
}

func TestTransactionQueriesNewestFirst(t *testing.T) {
	s := New()
	s.CreateTransaction(model.Transaction{ID: "t1", FromUserID: "fan1", ToUserID: "cr1", CreatedAt: day(1)})
	s.CreateTransaction(model.Transaction{ID: "t2", FromUserID: "cr1", ToUserID: "fan1", CreatedAt: day(3)})
	s.CreateTransaction(model.Transaction{ID: "t3", FromUserID: "fan2", ToUserID: "cr1", CreatedAt: day(2)})

	byUser := s.TransactionsByUser("fan1")
	require.Len(t, byUser, 2)
	assert.Equal(t, "t2", byUser[0].ID)
	assert.Equal(t, "t1", byUser[1].ID)

	byCreator := s.TransactionsByCreator("cr1")
	require.Len(t, byCreator, 2)
	assert.Equal(t, "t3", byCreator[0].ID)
	assert.Equal(t, "t1", byCreator[1].ID)
}
