package api

import (
	"context"
	"time"

	"github.com/cabanahq/sandbox/internal/model"
)

// DefaultPageSize is used when a feed request does not set one.
const DefaultPageSize = 20

// FeedPage is one page of a user's feed.
type FeedPage struct {
	Data     []PostView `json:"data"`
	Page     int        `json:"page"`
	PageSize int        `json:"pageSize"`
	Total    int        `json:"total"`
	HasMore  bool       `json:"hasMore"`
}

// Feed returns one page of posts visible to userID, newest first. Page
// numbers start at 1; out-of-range pages return an empty page, not an error.
func (a *API) Feed(ctx context.Context, userID string, page, pageSize int) Response[FeedPage] {
	if err := a.simulate(ctx, "feed"); err != nil {
		return fail[FeedPage](err.Error())
	}
	if _, found := a.store.User(userID); !found {
		return fail[FeedPage]("User not found")
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	visible := a.store.FeedAll(userID)
	total := len(visible)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return ok(FeedPage{
		Data:     a.postViews(visible[start:end]),
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		HasMore:  end < total,
	})
}

// GetPost fetches a single post with its creator joined.
func (a *API) GetPost(ctx context.Context, id string) Response[PostView] {
	if err := a.simulate(ctx, "getPost"); err != nil {
		return fail[PostView](err.Error())
	}
	post, found := a.store.Post(id)
	if !found {
		return fail[PostView]("Post not found")
	}
	return ok(a.postView(post))
}

// PostsByCreator lists a creator's posts, newest first.
func (a *API) PostsByCreator(ctx context.Context, creatorID string) Response[[]PostView] {
	if err := a.simulate(ctx, "postsByCreator"); err != nil {
		return fail[[]PostView](err.Error())
	}
	if _, found := a.store.User(creatorID); !found {
		return fail[[]PostView]("User not found")
	}
	return ok(a.postViews(a.store.PostsByCreator(creatorID)))
}

// PostInput is what a new post needs.
type PostInput struct {
	Content    string           `json:"content"`
	Media      []model.Media    `json:"media"`
	Visibility model.Visibility `json:"visibility"`
}

// CreatePost publishes a post for creatorID. New posts start with zero
// likes and comments; counts only ever move through store operations, never
// through generation.
func (a *API) CreatePost(ctx context.Context, creatorID string, in PostInput) Response[PostView] {
	if err := a.simulate(ctx, "createPost"); err != nil {
		return fail[PostView](err.Error())
	}
	creator, found := a.store.User(creatorID)
	if !found {
		return fail[PostView]("User not found")
	}
	if creator.Role != model.RoleCreator {
		return fail[PostView]("Only creators can publish posts")
	}
	visibility := in.Visibility
	if visibility == "" {
		visibility = model.VisibilityPublic
	}

	a.mu.Lock()
	id := a.gen.UUID()
	a.mu.Unlock()

	now := time.Now()
	post := a.store.CreatePost(model.Post{
		ID:         id,
		CreatorID:  creatorID,
		Content:    in.Content,
		Media:      in.Media,
		Visibility: visibility,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	a.log.Info().Str("postId", post.ID).Str("creatorId", creatorID).Msg("post created")
	return ok(a.postView(post))
}

// DeletePost removes a post. Only its creator may delete it.
func (a *API) DeletePost(ctx context.Context, userID, postID string) Response[bool] {
	if err := a.simulate(ctx, "deletePost"); err != nil {
		return fail[bool](err.Error())
	}
	post, found := a.store.Post(postID)
	if !found {
		return fail[bool]("Post not found")
	}
	if post.CreatorID != userID {
		return fail[bool]("Unauthorized")
	}
	a.store.DeletePost(postID)
	a.log.Info().Str("postId", postID).Msg("post deleted")
	return okMsg(true, "Post deleted")
}

// ToggleLike flips the caller's like on a post.
func (a *API) ToggleLike(ctx context.Context, postID string) Response[PostView] {
	if err := a.simulate(ctx, "toggleLike"); err != nil {
		return fail[PostView](err.Error())
	}
	post, found := a.store.ToggleLike(postID)
	if !found {
		return fail[PostView]("Post not found")
	}
	return ok(a.postView(post))
}

// Comments lists a post's comments with authors joined, oldest first.
func (a *API) Comments(ctx context.Context, postID string) Response[[]CommentView] {
	if err := a.simulate(ctx, "comments"); err != nil {
		return fail[[]CommentView](err.Error())
	}
	if _, found := a.store.Post(postID); !found {
		return fail[[]CommentView]("Post not found")
	}
	comments := a.store.CommentsByPost(postID)
	out := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		out = append(out, a.commentView(c))
	}
	return ok(out)
}

// AddComment posts a comment by userID on postID.
func (a *API) AddComment(ctx context.Context, postID, userID, content string) Response[CommentView] {
	if err := a.simulate(ctx, "addComment"); err != nil {
		return fail[CommentView](err.Error())
	}
	if _, found := a.store.Post(postID); !found {
		return fail[CommentView]("Post not found")
	}
	if _, found := a.store.User(userID); !found {
		return fail[CommentView]("User not found")
	}

	a.mu.Lock()
	id := a.gen.UUID()
	a.mu.Unlock()

	comment := a.store.CreateComment(model.Comment{
		ID:        id,
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	})
	return ok(a.commentView(comment))
}

// DeleteComment removes a comment. Only its author may delete it.
func (a *API) DeleteComment(ctx context.Context, userID, commentID string) Response[bool] {
	if err := a.simulate(ctx, "deleteComment"); err != nil {
		return fail[bool](err.Error())
	}
	comment, found := a.store.Comment(commentID)
	if !found {
		return fail[bool]("Comment not found")
	}
	if comment.UserID != userID {
		return fail[bool]("Unauthorized")
	}
	a.store.DeleteComment(commentID)
	return okMsg(true, "Comment deleted")
}
