package api

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/cabanahq/sandbox/internal/factory"
	"github.com/cabanahq/sandbox/internal/fixtures"
	"github.com/cabanahq/sandbox/internal/model"
)

const tokenTTL = 24 * time.Hour

type sessionClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session token for userID.
func (a *API) GenerateToken(userID string) (string, error) {
	claims := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.jwtSecret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}

// UserIDFromToken verifies a session token and returns the user ID it was
// issued for.
func (a *API) UserIDFromToken(tokenString string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return a.jwtSecret, nil
	})
	if err != nil {
		return "", errors.Wrap(err, "parse token")
	}
	if !token.Valid || claims.UserID == "" {
		return "", errors.New("invalid token")
	}
	return claims.UserID, nil
}

// AuthPayload is the login/signup result.
type AuthPayload struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

// Login authenticates by email. Demo-domain accounts accept any password;
// everyone else must present the shared demo password. Real credential
// checks are out of scope for a sandbox.
func (a *API) Login(ctx context.Context, email, password string) Response[AuthPayload] {
	if err := a.simulate(ctx, "login"); err != nil {
		return fail[AuthPayload](err.Error())
	}

	user, found := a.store.UserByEmail(email)
	if !found {
		return fail[AuthPayload]("Invalid credentials")
	}
	if !strings.HasSuffix(email, fixtures.DemoDomain) && password != fixtures.DemoPassword {
		return fail[AuthPayload]("Invalid credentials")
	}

	token, err := a.GenerateToken(user.ID)
	if err != nil {
		a.log.Error().Err(err).Str("userId", user.ID).Msg("token generation failed")
		return fail[AuthPayload]("Login failed")
	}
	a.log.Info().Str("userId", user.ID).Msg("user logged in")
	return ok(AuthPayload{User: user, Token: token})
}

// SignupInput is what a new account needs.
type SignupInput struct {
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	DisplayName string     `json:"displayName"`
	Role        model.Role `json:"role"`
}

// Signup registers a new account and returns it logged in.
func (a *API) Signup(ctx context.Context, in SignupInput) Response[AuthPayload] {
	if err := a.simulate(ctx, "signup"); err != nil {
		return fail[AuthPayload](err.Error())
	}

	if in.Email == "" || in.Username == "" {
		return fail[AuthPayload]("Email and username are required")
	}
	if _, exists := a.store.UserByEmail(in.Email); exists {
		return fail[AuthPayload]("Email already registered")
	}
	if _, exists := a.store.UserByUsername(in.Username); exists {
		return fail[AuthPayload]("Username already taken")
	}

	role := in.Role
	if role == "" {
		role = model.RoleFan
	}
	displayName := in.DisplayName
	if displayName == "" {
		displayName = in.Username
	}

	a.mu.Lock()
	user := factory.NewUser(a.gen, &model.UserPatch{
		Email:            model.Ptr(in.Email),
		Username:         model.Ptr(in.Username),
		DisplayName:      model.Ptr(displayName),
		Avatar:           model.Ptr(factory.AvatarURL(in.Username)),
		Bio:              model.Ptr(""),
		Role:             model.Ptr(role),
		SubscriptionTier: model.Ptr(model.TierFree),
		IsVerified:       model.Ptr(false),
		SubscriberCount:  model.Ptr(0),
		TotalEarnings:    model.Ptr(0.0),
		FollowingCount:   model.Ptr(0),
		Subscriptions:    model.Ptr([]string{}),
		CreatedAt:        model.Ptr(time.Now()),
	})
	a.mu.Unlock()

	created := a.store.CreateUser(user)
	token, err := a.GenerateToken(created.ID)
	if err != nil {
		a.log.Error().Err(err).Str("userId", created.ID).Msg("token generation failed")
		return fail[AuthPayload]("Signup failed")
	}
	a.log.Info().Str("userId", created.ID).Str("role", string(created.Role)).Msg("user signed up")
	return ok(AuthPayload{User: created, Token: token})
}

// CurrentUser resolves a session token to its account.
func (a *API) CurrentUser(ctx context.Context, token string) Response[model.User] {
	if err := a.simulate(ctx, "currentUser"); err != nil {
		return fail[model.User](err.Error())
	}
	userID, err := a.UserIDFromToken(token)
	if err != nil {
		return fail[model.User]("Invalid or expired token")
	}
	user, found := a.store.User(userID)
	if !found {
		return fail[model.User]("User not found")
	}
	return ok(user)
}

// Logout ends a session. Tokens are stateless, so this only exists to give
// clients a symmetric call to exercise.
func (a *API) Logout(ctx context.Context) Response[bool] {
	if err := a.simulate(ctx, "logout"); err != nil {
		return fail[bool](err.Error())
	}
	return okMsg(true, "Logged out")
}
