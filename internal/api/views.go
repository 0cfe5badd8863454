package api

import "github.com/cabanahq/sandbox/internal/model"

// Read models join related users at query time. Author and creator records
// are embedded by pointer and omitted when the user no longer exists, so a
// deleted account never blocks listing the content it left behind.

// PostView is a post plus its creator.
type PostView struct {
	model.Post
	Creator *model.User `json:"creator,omitempty"`
}

// CommentView is a comment plus its author.
type CommentView struct {
	model.Comment
	User *model.User `json:"user,omitempty"`
}

// SubscriptionView is a subscription plus whichever side the caller asked
// to see joined in.
type SubscriptionView struct {
	model.Subscription
	Creator *model.User `json:"creator,omitempty"`
	Fan     *model.User `json:"fan,omitempty"`
}

// ConversationView is a conversation plus its participant records.
type ConversationView struct {
	model.Conversation
	Participants []model.User `json:"participants"`
}

func (a *API) postView(p model.Post) PostView {
	v := PostView{Post: p}
	if creator, found := a.store.User(p.CreatorID); found {
		v.Creator = &creator
	}
	return v
}

func (a *API) postViews(posts []model.Post) []PostView {
	out := make([]PostView, 0, len(posts))
	for _, p := range posts {
		out = append(out, a.postView(p))
	}
	return out
}

func (a *API) commentView(c model.Comment) CommentView {
	v := CommentView{Comment: c}
	if user, found := a.store.User(c.UserID); found {
		v.User = &user
	}
	return v
}

func (a *API) conversationView(c model.Conversation) ConversationView {
	v := ConversationView{Conversation: c, Participants: []model.User{}}
	for _, id := range c.ParticipantIDs {
		if user, found := a.store.User(id); found {
			v.Participants = append(v.Participants, user)
		}
	}
	return v
}
