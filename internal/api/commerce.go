package api

import (
	"context"
	"fmt"
	"time"

	"github.com/cabanahq/sandbox/internal/factory"
	"github.com/cabanahq/sandbox/internal/model"
)

// MySubscriptions lists a fan's subscriptions with creators joined.
func (a *API) MySubscriptions(ctx context.Context, fanID string) Response[[]SubscriptionView] {
	if err := a.simulate(ctx, "mySubscriptions"); err != nil {
		return fail[[]SubscriptionView](err.Error())
	}
	subs := a.store.SubscriptionsByFan(fanID)
	out := make([]SubscriptionView, 0, len(subs))
	for _, sub := range subs {
		v := SubscriptionView{Subscription: sub}
		if creator, found := a.store.User(sub.CreatorID); found {
			v.Creator = &creator
		}
		out = append(out, v)
	}
	return ok(out)
}

// Subscribers lists a creator's subscriptions with fans joined.
func (a *API) Subscribers(ctx context.Context, creatorID string) Response[[]SubscriptionView] {
	if err := a.simulate(ctx, "subscribers"); err != nil {
		return fail[[]SubscriptionView](err.Error())
	}
	subs := a.store.SubscriptionsByCreator(creatorID)
	out := make([]SubscriptionView, 0, len(subs))
	for _, sub := range subs {
		v := SubscriptionView{Subscription: sub}
		if fan, found := a.store.User(sub.FanID); found {
			v.Fan = &fan
		}
		out = append(out, v)
	}
	return ok(out)
}

// Subscribe opens an active subscription from fanID to creatorID at the
// given tier, records the payment, and notifies the creator. A fan holds at
// most one active subscription per creator.
func (a *API) Subscribe(ctx context.Context, fanID, creatorID string, tier model.Tier) Response[model.Subscription] {
	if err := a.simulate(ctx, "subscribe"); err != nil {
		return fail[model.Subscription](err.Error())
	}

	fan, found := a.store.User(fanID)
	if !found {
		return fail[model.Subscription]("User not found")
	}
	creator, found := a.store.User(creatorID)
	if !found || creator.Role != model.RoleCreator {
		return fail[model.Subscription]("Creator not found")
	}
	if a.store.IsSubscribed(fanID, creatorID) {
		return fail[model.Subscription]("Already subscribed")
	}
	if tier != model.TierCreator && tier != model.TierIcon {
		return fail[model.Subscription]("Invalid tier")
	}

	a.mu.Lock()
	subID := a.gen.UUID()
	txID := a.gen.UUID()
	notifID := a.gen.UUID()
	a.mu.Unlock()

	now := time.Now()
	amount := factory.PriceForTier(tier)
	tierName := "Creator"
	if tier == model.TierIcon {
		tierName = "Icon"
	}
	sub := a.store.CreateSubscription(model.Subscription{
		ID:        subID,
		FanID:     fanID,
		CreatorID: creatorID,
		Tier:      tier,
		Amount:    amount,
		Status:    model.SubActive,
		StartDate: now,
		AutoRenew: true,
	})
	a.store.CreateTransaction(model.Transaction{
		ID:          txID,
		Type:        model.TxSubscription,
		Amount:      amount,
		Currency:    "USD",
		Status:      model.TxCompleted,
		FromUserID:  fanID,
		ToUserID:    creatorID,
		Description: fmt.Sprintf("%s tier monthly subscription", tierName),
		CreatedAt:   now,
	})
	a.store.CreateNotification(model.Notification{
		ID:        notifID,
		UserID:    creatorID,
		Type:      model.NotifNewSubscriber,
		Title:     factory.NotificationTitle(model.NotifNewSubscriber),
		Message:   fmt.Sprintf("%s just subscribed to your %s tier!", fan.DisplayName, tier),
		CreatedAt: now,
	})

	a.log.Info().
		Str("fanId", fanID).
		Str("creatorId", creatorID).
		Str("tier", string(tier)).
		Float64("amount", amount).
		Msg("subscription created")
	return ok(sub)
}

// CancelSubscription cancels one of the caller's subscriptions.
func (a *API) CancelSubscription(ctx context.Context, fanID, subscriptionID string) Response[model.Subscription] {
	if err := a.simulate(ctx, "cancelSubscription"); err != nil {
		return fail[model.Subscription](err.Error())
	}
	sub, found := a.store.Subscription(subscriptionID)
	if !found {
		return fail[model.Subscription]("Subscription not found")
	}
	if sub.FanID != fanID {
		return fail[model.Subscription]("Unauthorized")
	}
	cancelled, _ := a.store.CancelSubscription(subscriptionID)
	a.log.Info().Str("subscriptionId", subscriptionID).Msg("subscription cancelled")
	return okMsg(cancelled, "Subscription cancelled")
}

// Transactions lists transactions involving userID, newest first.
func (a *API) Transactions(ctx context.Context, userID string) Response[[]model.Transaction] {
	if err := a.simulate(ctx, "transactions"); err != nil {
		return fail[[]model.Transaction](err.Error())
	}
	return ok(a.store.TransactionsByUser(userID))
}

// SendTip records a completed tip from fromID to toID and notifies the
// recipient.
func (a *API) SendTip(ctx context.Context, fromID, toID string, amount float64, message string) Response[model.Transaction] {
	if err := a.simulate(ctx, "sendTip"); err != nil {
		return fail[model.Transaction](err.Error())
	}
	if amount <= 0 {
		return fail[model.Transaction]("Invalid amount")
	}
	sender, found := a.store.User(fromID)
	if !found {
		return fail[model.Transaction]("User not found")
	}
	if _, found := a.store.User(toID); !found {
		return fail[model.Transaction]("User not found")
	}

	a.mu.Lock()
	txID := a.gen.UUID()
	notifID := a.gen.UUID()
	a.mu.Unlock()

	description := message
	if description == "" {
		description = "Tip from fan"
	}
	now := time.Now()
	tx := a.store.CreateTransaction(model.Transaction{
		ID:          txID,
		Type:        model.TxTip,
		Amount:      amount,
		Currency:    "USD",
		Status:      model.TxCompleted,
		FromUserID:  fromID,
		ToUserID:    toID,
		Description: description,
		CreatedAt:   now,
	})
	a.store.CreateNotification(model.Notification{
		ID:        notifID,
		UserID:    toID,
		Type:      model.NotifNewTip,
		Title:     factory.NotificationTitle(model.NotifNewTip),
		Message:   fmt.Sprintf("You received a $%.2f tip from %s!", amount, sender.DisplayName),
		CreatedAt: now,
	})
	a.log.Info().Str("fromId", fromID).Str("toId", toID).Float64("amount", amount).Msg("tip sent")
	return ok(tx)
}

// CreatorAnalytics returns the precomputed snapshot for a creator and
// period.
func (a *API) CreatorAnalytics(ctx context.Context, creatorID string, period model.Period) Response[model.CreatorAnalytics] {
	if err := a.simulate(ctx, "analytics"); err != nil {
		return fail[model.CreatorAnalytics](err.Error())
	}
	if !period.Valid() {
		return fail[model.CreatorAnalytics]("Invalid period")
	}
	snapshot, found := a.store.Analytics(creatorID, period)
	if !found {
		return fail[model.CreatorAnalytics]("Analytics not found")
	}
	return ok(snapshot)
}
