package api

import (
	"context"
	"sort"
	"time"

	"github.com/cabanahq/sandbox/internal/model"
)

// Conversations lists a user's conversations with participants joined,
// most recently updated first.
func (a *API) Conversations(ctx context.Context, userID string) Response[[]ConversationView] {
	if err := a.simulate(ctx, "conversations"); err != nil {
		return fail[[]ConversationView](err.Error())
	}
	convs := a.store.ConversationsByUser(userID)
	out := make([]ConversationView, 0, len(convs))
	for _, c := range convs {
		out = append(out, a.conversationView(c))
	}
	return ok(out)
}

// Messages lists a conversation's messages, oldest first.
func (a *API) Messages(ctx context.Context, conversationID string) Response[[]model.Message] {
	if err := a.simulate(ctx, "messages"); err != nil {
		return fail[[]model.Message](err.Error())
	}
	if _, found := a.store.Conversation(conversationID); !found {
		return fail[[]model.Message]("Conversation not found")
	}
	return ok(a.store.MessagesByConversation(conversationID))
}

// SendMessage posts a message into an existing conversation. New messages
// start unread; MarkConversationRead clears them for the other side.
func (a *API) SendMessage(ctx context.Context, conversationID, senderID, content string) Response[model.Message] {
	if err := a.simulate(ctx, "sendMessage"); err != nil {
		return fail[model.Message](err.Error())
	}
	conv, found := a.store.Conversation(conversationID)
	if !found {
		return fail[model.Message]("Conversation not found")
	}
	participant := false
	for _, id := range conv.ParticipantIDs {
		if id == senderID {
			participant = true
			break
		}
	}
	if !participant {
		return fail[model.Message]("Unauthorized")
	}

	a.mu.Lock()
	id := a.gen.UUID()
	a.mu.Unlock()

	msg := a.store.CreateMessage(model.Message{
		ID:             id,
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		CreatedAt:      time.Now(),
	})
	return ok(msg)
}

// StartConversation returns the existing conversation between exactly the
// given participants, creating it when none exists.
func (a *API) StartConversation(ctx context.Context, participantIDs []string) Response[ConversationView] {
	if err := a.simulate(ctx, "startConversation"); err != nil {
		return fail[ConversationView](err.Error())
	}
	if len(participantIDs) < 2 {
		return fail[ConversationView]("A conversation needs at least two participants")
	}
	for _, id := range participantIDs {
		if _, found := a.store.User(id); !found {
			return fail[ConversationView]("User not found")
		}
	}

	if existing, found := a.findConversation(participantIDs); found {
		return ok(a.conversationView(existing))
	}

	a.mu.Lock()
	id := a.gen.UUID()
	a.mu.Unlock()

	now := time.Now()
	conv := a.store.CreateConversation(model.Conversation{
		ID:             id,
		ParticipantIDs: participantIDs,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	a.log.Info().Str("conversationId", conv.ID).Int("participants", len(participantIDs)).Msg("conversation started")
	return ok(a.conversationView(conv))
}

// findConversation looks for a conversation whose participant set matches
// ids exactly.
func (a *API) findConversation(ids []string) (model.Conversation, bool) {
	want := append([]string(nil), ids...)
	sort.Strings(want)
	for _, conv := range a.store.ConversationsByUser(ids[0]) {
		if len(conv.ParticipantIDs) != len(want) {
			continue
		}
		have := append([]string(nil), conv.ParticipantIDs...)
		sort.Strings(have)
		match := true
		for i := range want {
			if have[i] != want[i] {
				match = false
				break
			}
		}
		if match {
			return conv, true
		}
	}
	return model.Conversation{}, false
}

// MarkConversationRead marks every message not sent by readerID as read and
// zeroes the conversation's unread count.
func (a *API) MarkConversationRead(ctx context.Context, conversationID, readerID string) Response[bool] {
	if err := a.simulate(ctx, "markConversationRead"); err != nil {
		return fail[bool](err.Error())
	}
	if _, found := a.store.Conversation(conversationID); !found {
		return fail[bool]("Conversation not found")
	}
	a.store.MarkConversationRead(conversationID, readerID)
	return ok(true)
}

// Notifications lists a user's notifications, newest first.
func (a *API) Notifications(ctx context.Context, userID string) Response[[]model.Notification] {
	if err := a.simulate(ctx, "notifications"); err != nil {
		return fail[[]model.Notification](err.Error())
	}
	return ok(a.store.NotificationsByUser(userID))
}

// MarkNotificationRead marks one notification as read.
func (a *API) MarkNotificationRead(ctx context.Context, id string) Response[model.Notification] {
	if err := a.simulate(ctx, "markNotificationRead"); err != nil {
		return fail[model.Notification](err.Error())
	}
	n, found := a.store.MarkNotificationRead(id)
	if !found {
		return fail[model.Notification]("Notification not found")
	}
	return ok(n)
}

// MarkAllNotificationsRead marks every notification for userID as read.
func (a *API) MarkAllNotificationsRead(ctx context.Context, userID string) Response[bool] {
	if err := a.simulate(ctx, "markAllNotificationsRead"); err != nil {
		return fail[bool](err.Error())
	}
	a.store.MarkAllNotificationsRead(userID)
	return okMsg(true, "All notifications marked as read")
}
