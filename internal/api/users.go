package api

import (
	"context"

	"github.com/cabanahq/sandbox/internal/model"
)

// GetUser fetches a user by ID.
func (a *API) GetUser(ctx context.Context, id string) Response[model.User] {
	if err := a.simulate(ctx, "getUser"); err != nil {
		return fail[model.User](err.Error())
	}
	user, found := a.store.User(id)
	if !found {
		return fail[model.User]("User not found")
	}
	return ok(user)
}

// ProfileUpdate is the subset of account fields a user may edit themselves.
type ProfileUpdate struct {
	DisplayName *string `json:"displayName"`
	Bio         *string `json:"bio"`
	Avatar      *string `json:"avatar"`
}

// UpdateProfile edits the caller's own profile fields. Identity and
// aggregate fields are not reachable from here.
func (a *API) UpdateProfile(ctx context.Context, userID string, in ProfileUpdate) Response[model.User] {
	if err := a.simulate(ctx, "updateProfile"); err != nil {
		return fail[model.User](err.Error())
	}
	updated, found := a.store.UpdateUser(userID, model.UserPatch{
		DisplayName: in.DisplayName,
		Bio:         in.Bio,
		Avatar:      in.Avatar,
	})
	if !found {
		return fail[model.User]("User not found")
	}
	a.log.Info().Str("userId", userID).Msg("profile updated")
	return ok(updated)
}

// Creators lists all creator accounts.
func (a *API) Creators(ctx context.Context) Response[[]model.User] {
	if err := a.simulate(ctx, "creators"); err != nil {
		return fail[[]model.User](err.Error())
	}
	return ok(a.store.Creators())
}
