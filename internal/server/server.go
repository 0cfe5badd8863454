// Package server exposes the sandbox API over HTTP.
//
// Every operation under /api returns HTTP 200 with the response envelope;
// Success inside the body is the only outcome signal, matching what the
// Cabana web client expects from its mock layer. Non-200 codes are reserved
// for transport problems: malformed JSON, missing or invalid bearer tokens,
// and unknown routes.
package server

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/cabanahq/sandbox/internal/api"
	"github.com/cabanahq/sandbox/internal/store"
)

type contextKey string

const userIDKey contextKey = "userID"

// Server is the HTTP front of the sandbox.
type Server struct {
	httpServer *http.Server
	api        *api.API
	store      *store.Store
	log        zerolog.Logger
	activeReqs int64
}

// New builds a server bound to addr.
func New(addr string, a *api.API, st *store.Store, log zerolog.Logger) *Server {
	s := &Server{
		api:   a,
		store: st,
		log:   log.With().Str("component", "server").Logger(),
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	r := mux.NewRouter()
	r.Use(s.trackRequests)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeError(s.log, w, http.StatusNotFound, "Route not found")
	})

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/config", s.handleGetConfig).Methods(http.MethodGet)
	r.HandleFunc("/config", s.handleSetConfig).Methods(http.MethodPost)
	r.HandleFunc("/demo/reset", s.handleReset).Methods(http.MethodPost)
	r.HandleFunc("/demo/personas", s.handlePersonas).Methods(http.MethodGet)
	r.HandleFunc("/state/export", s.handleExport).Methods(http.MethodGet)
	r.HandleFunc("/state/import", s.handleImport).Methods(http.MethodPost)

	r.HandleFunc("/api/auth/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/signup", s.handleSignup).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/logout", s.handleLogout).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/me", s.handleCurrentUser).Methods(http.MethodGet)

	// Public reads.
	r.HandleFunc("/api/users/{id}", s.handleGetUser).Methods(http.MethodGet)
	r.HandleFunc("/api/creators", s.handleCreators).Methods(http.MethodGet)
	r.HandleFunc("/api/creators/{id}/posts", s.handlePostsByCreator).Methods(http.MethodGet)
	r.HandleFunc("/api/creators/{id}/analytics", s.handleAnalytics).Methods(http.MethodGet)
	r.HandleFunc("/api/posts/{id}", s.handleGetPost).Methods(http.MethodGet)
	r.HandleFunc("/api/posts/{id}/comments", s.handleComments).Methods(http.MethodGet)

	// Authenticated operations.
	auth := r.PathPrefix("/api").Subrouter()
	auth.Use(s.requireAuth)
	auth.HandleFunc("/users/me", s.handleUpdateProfile).Methods(http.MethodPatch)
	auth.HandleFunc("/feed", s.handleFeed).Methods(http.MethodGet)
	auth.HandleFunc("/posts", s.handleCreatePost).Methods(http.MethodPost)
	auth.HandleFunc("/posts/{id}", s.handleDeletePost).Methods(http.MethodDelete)
	auth.HandleFunc("/posts/{id}/like", s.handleToggleLike).Methods(http.MethodPost)
	auth.HandleFunc("/posts/{id}/comments", s.handleAddComment).Methods(http.MethodPost)
	auth.HandleFunc("/comments/{id}", s.handleDeleteComment).Methods(http.MethodDelete)
	auth.HandleFunc("/subscriptions", s.handleMySubscriptions).Methods(http.MethodGet)
	auth.HandleFunc("/subscriptions", s.handleSubscribe).Methods(http.MethodPost)
	auth.HandleFunc("/subscriptions/{id}", s.handleCancelSubscription).Methods(http.MethodDelete)
	auth.HandleFunc("/creators/{id}/subscribers", s.handleSubscribers).Methods(http.MethodGet)
	auth.HandleFunc("/transactions", s.handleTransactions).Methods(http.MethodGet)
	auth.HandleFunc("/tips", s.handleSendTip).Methods(http.MethodPost)
	auth.HandleFunc("/conversations", s.handleConversations).Methods(http.MethodGet)
	auth.HandleFunc("/conversations", s.handleStartConversation).Methods(http.MethodPost)
	auth.HandleFunc("/conversations/{id}/messages", s.handleMessages).Methods(http.MethodGet)
	auth.HandleFunc("/conversations/{id}/messages", s.handleSendMessage).Methods(http.MethodPost)
	auth.HandleFunc("/conversations/{id}/read", s.handleMarkConversationRead).Methods(http.MethodPost)
	auth.HandleFunc("/notifications", s.handleNotifications).Methods(http.MethodGet)
	auth.HandleFunc("/notifications/read-all", s.handleMarkAllNotificationsRead).Methods(http.MethodPost)
	auth.HandleFunc("/notifications/{id}/read", s.handleMarkNotificationRead).Methods(http.MethodPost)

	return r
}

// trackRequests counts in-flight requests so Stop can drain them.
func (s *Server) trackRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		atomic.AddInt64(&s.activeReqs, 1)
		defer atomic.AddInt64(&s.activeReqs, -1)
		next.ServeHTTP(w, req)
	})
}

// requireAuth resolves the bearer token to a user ID and stores it on the
// request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		header := req.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(s.log, w, http.StatusUnauthorized, "Missing bearer token")
			return
		}
		userID, err := s.api.UserIDFromToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeError(s.log, w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		ctx := context.WithValue(req.Context(), userIDKey, userID)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// callerID returns the authenticated user ID placed by requireAuth.
func callerID(req *http.Request) string {
	id, _ := req.Context().Value(userIDKey).(string)
	return id
}

// Start begins serving. It blocks until the listener fails or Stop is
// called.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.httpServer.Addr).Msg("server listening")
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop shuts the server down, letting in-flight requests finish. Simulated
// delays mean requests routinely take a second; the drain window covers
// that plus headroom.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	deadline := time.Now().Add(5 * time.Second)
	for atomic.LoadInt64(&s.activeReqs) > 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}
	if n := atomic.LoadInt64(&s.activeReqs); n > 0 {
		s.log.Warn().Int64("active", n).Msg("stopping with requests still in flight")
	}
	return s.httpServer.Shutdown(ctx)
}
