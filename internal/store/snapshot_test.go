package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabanahq/sandbox/internal/model"
)

func populated() *Store {
	s := New()
	s.CreateUser(testUser("fan1", model.RoleFan))
	s.CreateUser(testUser("cr1", model.RoleCreator))
	s.CreatePost(testPost("p1", "cr1", model.VisibilityPublic, day(1)))
	s.CreatePost(testPost("p2", "cr1", model.VisibilitySubscribers, day(2)))
	s.CreateComment(model.Comment{ID: "c1", PostID: "p1", UserID: "fan1", CreatedAt: day(1)})
	s.CreateSubscription(activeSub("sub1"))
	s.CreateTransaction(model.Transaction{
		ID: "t1", Type: model.TxTip, Amount: 10, Status: model.TxCompleted,
		FromUserID: "fan1", ToUserID: "cr1", CreatedAt: day(1),
	})
	s.CreateConversation(testConversation("conv1", "fan1", "cr1"))
	s.CreateMessage(model.Message{ID: "m1", ConversationID: "conv1", SenderID: "fan1", CreatedAt: day(2)})
	s.CreateNotification(model.Notification{ID: "n1", UserID: "cr1", CreatedAt: day(1)})
	s.PutAnalytics(model.CreatorAnalytics{UserID: "cr1", Period: model.PeriodMonth, TotalRevenue: 10})
	return s
}

func TestExportOrderIsStable(t *testing.T) {
	a, err := json.Marshal(populated().Export())
	require.NoError(t, err)
	b, err := json.Marshal(populated().Export())
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestImportRoundTrip(t *testing.T) {
	s := populated()
	before, err := json.Marshal(s.Export())
	require.NoError(t, err)

	fresh := New()
	fresh.Import(s.Export())
	after, err := json.Marshal(fresh.Export())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))

	// Indexes are rebuilt, not just the primary maps.
	assert.Len(t, fresh.PostsByCreator("cr1"), 2)
	assert.Len(t, fresh.CommentsByPost("p1"), 1)
	assert.True(t, fresh.IsSubscribed("fan1", "cr1"))
	assert.Len(t, fresh.ConversationsByUser("fan1"), 1)
}

func TestImportDoesNotReplaySideEffects(t *testing.T) {
	s := populated()
	creatorBefore, _ := s.User("cr1")

	fresh := New()
	fresh.Import(s.Export())

	creatorAfter, _ := fresh.User("cr1")
	assert.Equal(t, creatorBefore.SubscriberCount, creatorAfter.SubscriberCount)
	assert.InDelta(t, creatorBefore.TotalEarnings, creatorAfter.TotalEarnings, 1e-9)

	post, _ := fresh.Post("p1")
	assert.Equal(t, 1, post.CommentCount)
}

func TestImportReplacesExistingState(t *testing.T) {
	snap := populated().Export()

	s := New()
	s.CreateUser(testUser("stray", model.RoleFan))
	s.Import(snap)

	_, found := s.User("stray")
	assert.False(t, found)
	assert.Equal(t, 2, s.CountUsers())
}
